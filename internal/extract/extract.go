package extract

import (
    "strings"

    "github.com/hyperifyio/gotimeline/internal/deck"
)

// bulletGlyph is the private-use Symbol-font bullet that some decks leave
// inline in their text.
const bulletGlyph = "\uF0B7"

// SlideRecord is the text of one slide after normalization.
type SlideRecord struct {
    // Title is nil when the slide has no title or its title is blank.
    Title *string  `json:"title"`
    Lines []string `json:"lines"`
}

// Result holds the per-slide records and every line flattened in slide order.
type Result struct {
    Slides []SlideRecord
    Lines  []string
}

// FromDeck extracts normalized, run-length de-duplicated lines from every
// slide. The title, when present, is the first line of its slide; shape text
// follows in document order, with tables read row-major and groups recursed.
// Shapes that carry no readable text contribute nothing.
func FromDeck(p deck.Presentation) Result {
    res := Result{Slides: make([]SlideRecord, 0, len(p.Slides)), Lines: []string{}}
    for _, slide := range p.Slides {
        var candidates []string
        var title *string
        if slide.Title != nil {
            if t := NormalizeLine(slide.Title.Text()); t != "" {
                title = &t
                candidates = append(candidates, t)
            }
        }
        for _, sh := range slide.Shapes {
            candidates = append(candidates, shapeTexts(sh)...)
        }
        lines := dedupeRuns(candidates)
        res.Slides = append(res.Slides, SlideRecord{Title: title, Lines: lines})
        res.Lines = append(res.Lines, lines...)
    }
    return res
}

func shapeTexts(sh deck.Shape) []string {
    var out []string
    switch s := sh.(type) {
    case deck.TextShape:
        for _, p := range s.Paragraphs {
            if strings.TrimSpace(p) != "" {
                out = append(out, p)
            }
        }
    case deck.TableShape:
        for _, row := range s.Rows {
            for _, cell := range row {
                if strings.TrimSpace(cell) != "" {
                    out = append(out, cell)
                }
            }
        }
    case deck.GroupShape:
        for _, child := range s.Shapes {
            out = append(out, shapeTexts(child)...)
        }
    }
    return out
}

// dedupeRuns normalizes each candidate and drops blanks and immediate repeats.
func dedupeRuns(candidates []string) []string {
    out := make([]string, 0, len(candidates))
    for _, c := range candidates {
        line := NormalizeLine(c)
        if line == "" {
            continue
        }
        if len(out) > 0 && out[len(out)-1] == line {
            continue
        }
        out = append(out, line)
    }
    return out
}

// NormalizeLine strips the bullet glyph, collapses whitespace runs to single
// spaces and trims both ends.
func NormalizeLine(s string) string {
    s = strings.ReplaceAll(s, bulletGlyph, "")
    return strings.Join(strings.Fields(s), " ")
}
