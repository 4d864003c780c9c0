// Package timeline splits extracted slide text into dated timeline events
// and a free-text history summary.
package timeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hyperifyio/gotimeline/internal/extract"
)

const (
	// SubstantialChars is the length a non-year line must exceed, in
	// characters, to count as history prose.
	SubstantialChars = 20
	// SummaryMaxChars caps the summary built from the first slide.
	SummaryMaxChars = 600
)

// YearPattern finds the leftmost year token in a line: a four-digit year in
// 1800-2099 with an optional "+" or range suffix, or a whole-word two-digit
// number with an optional leading apostrophe.
//
// RE2's \b only knows ASCII word characters, so the two-digit branches guard
// their edges with explicit letter and digit classes instead; "é12" is one
// word. The guards consume a character, which is why the token is read from
// whichever capture group took part in the match.
//
// The two-digit branch also hits page numbers and percentages. That
// looseness is intended.
var YearPattern = regexp.MustCompile(
	`((?:18|19|20)\d{2}(?:\+|\s*[-–—]\s*\d{2,4})?)` +
		`|(['’]\d{2})(?:$|[^\p{L}\p{N}_])` +
		`|(?:^|[^\p{L}\p{N}_])(\d{2})(?:$|[^\p{L}\p{N}_])`)

// descriptionSeparators may follow the year token at the start of a line.
const descriptionSeparators = "-:–—•"

// Event is one timeline entry.
type Event struct {
	Year string `json:"year"`
	Text string `json:"text"`
}

// FindYear returns the leftmost year token in s.
func FindYear(s string) (string, bool) {
	m := YearPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	for _, g := range m[1:] {
		if g != "" {
			return g, true
		}
	}
	return "", false
}

// Describe removes a leading year token and the separators after it. When
// nothing is left the whole line is returned so the text is never empty.
func Describe(line, year string) string {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(rest, year) {
		return strings.TrimSpace(line)
	}
	rest = strings.TrimLeftFunc(rest[len(year):], unicode.IsSpace)
	rest = strings.TrimLeft(rest, descriptionSeparators)
	if desc := strings.TrimSpace(rest); desc != "" {
		return desc
	}
	return line
}

// Classify returns the history summary and the events for the extracted
// lines. Every line holding a year becomes an event. If no line holds one,
// each slide yields exactly one event instead.
func Classify(slides []extract.SlideRecord, lines []string) (string, []Event) {
	events := []Event{}
	var pool []string
	for _, line := range lines {
		if year, ok := FindYear(line); ok {
			events = append(events, Event{Year: year, Text: Describe(line, year)})
			continue
		}
		if charLen(line) > SubstantialChars {
			pool = append(pool, line)
		}
	}
	if len(events) == 0 {
		events = perSlideEvents(slides)
	}
	return summarize(pool, slides), events
}

func perSlideEvents(slides []extract.SlideRecord) []Event {
	events := make([]Event, 0, len(slides))
	for i, s := range slides {
		n := i + 1
		title := ""
		if s.Title != nil {
			title = strings.TrimSpace(*s.Title)
		}
		first := ""
		for _, ln := range s.Lines {
			if ln != "" && ln != title {
				first = ln
				break
			}
		}
		source := title
		if source == "" {
			source = first
		}
		year, ok := FindYear(source)
		if !ok {
			year = fmt.Sprintf("Slide %d", n)
		}
		text := first
		if text == "" {
			text = title
		}
		if text == "" {
			text = fmt.Sprintf("Timeline item %d", n)
		}
		events = append(events, Event{Year: year, Text: text})
	}
	return events
}

// summarize prefers the longest history line, first one winning ties. Without
// one it joins the substantial lines of the first slide.
func summarize(pool []string, slides []extract.SlideRecord) string {
	best := ""
	for _, p := range pool {
		if charLen(p) > charLen(best) {
			best = p
		}
	}
	if best != "" || len(slides) == 0 {
		return best
	}
	var primary []string
	for _, ln := range slides[0].Lines {
		if charLen(ln) > SubstantialChars {
			primary = append(primary, ln)
		}
	}
	return truncateChars(strings.Join(primary, " "), SummaryMaxChars)
}

func charLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncateChars cuts s to at most n characters, without regard to word
// boundaries.
func truncateChars(s string, n int) string {
	if charLen(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
