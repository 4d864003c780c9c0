package timeline

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hyperifyio/gotimeline/internal/extract"
)

func strptr(s string) *string { return &s }

func TestClassify_YearBoundaries(t *testing.T) {
	cases := []struct {
		line, year, text string
	}{
		{"1999 - Founded", "1999", "Founded"},
		{"2001-2005 Expansion", "2001-2005", "Expansion"},
		{"'98 Launch", "'98", "Launch"},
		{"2023+ Growth", "2023+", "Growth"},
		{"1850 – 1875: Early years", "1850 – 1875", "Early years"},
		{"2010 • Rebrand", "2010", "Rebrand"},
		{"’07 Merger", "’07", "Merger"},
	}
	for _, tc := range cases {
		_, events := Classify(nil, []string{tc.line})
		if len(events) != 1 {
			t.Fatalf("%q: expected 1 event, got %d", tc.line, len(events))
		}
		if events[0].Year != tc.year || events[0].Text != tc.text {
			t.Fatalf("%q: expected {%q %q}, got {%q %q}", tc.line, tc.year, tc.text, events[0].Year, events[0].Text)
		}
	}
}

func TestFindYear_LeftmostMatchWins(t *testing.T) {
	y, ok := FindYear("From 1990 to 2000")
	if !ok || y != "1990" {
		t.Fatalf("expected 1990, got %q (ok=%v)", y, ok)
	}
	// Two-digit numbers count, whole words only.
	if y, ok := FindYear("Grew 45% in a year"); !ok || y != "45" {
		t.Fatalf("expected 45, got %q (ok=%v)", y, ok)
	}
	if _, ok := FindYear("Model 123 and X7"); ok {
		t.Fatalf("expected no match inside longer numbers")
	}
	if _, ok := FindYear("No digits here"); ok {
		t.Fatalf("expected no match")
	}
	// 1750 is outside the four-digit range and "17" is not a whole word.
	if y, ok := FindYear("In 1750 things began"); ok {
		t.Fatalf("unexpected match %q", y)
	}
}

func TestFindYear_WordBoundariesCoverNonASCIILetters(t *testing.T) {
	for _, s := range []string{"é12 thing", "thing 12é", "Straße12", "_12 items", "١٢ 34x"} {
		if y, ok := FindYear(s); ok {
			t.Fatalf("%q: expected no match, got %q", s, y)
		}
	}
	cases := []struct{ line, year string }{
		{"42", "42"},
		{"Über 12 Jahre", "12"},
		{"(42)", "42"},
		{"x'98 reunion", "'98"},
		{"Class of ’98.", "’98"},
		{"café 1999", "1999"},
	}
	for _, tc := range cases {
		if y, ok := FindYear(tc.line); !ok || y != tc.year {
			t.Fatalf("%q: expected %q, got %q (ok=%v)", tc.line, tc.year, y, ok)
		}
	}
}

func TestDescribe_FallsBackToWholeLine(t *testing.T) {
	if got := Describe("1999", "1999"); got != "1999" {
		t.Fatalf("expected whole line, got %q", got)
	}
	if got := Describe("1999 :", "1999"); got != "1999 :" {
		t.Fatalf("expected whole line, got %q", got)
	}
	if got := Describe("Opened in 1999", "1999"); got != "Opened in 1999" {
		t.Fatalf("expected unchanged line when year is not leading, got %q", got)
	}
}

func TestClassify_PrimaryPathPicksLongestHistoryLine(t *testing.T) {
	lines := []string{
		"A company with a long tradition",
		"1999 - Founded",
		"Built by a small group of friends",
		"Grown by a big group of partners",
		"Short line",
		"Crafted by a tiny team of artisans",
	}
	summary, events := Classify(nil, lines)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if summary != "Crafted by a tiny team of artisans" {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestClassify_TieKeepsFirstOccurrence(t *testing.T) {
	lines := []string{"1999 - Founded", "aaaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbbb"}
	summary, _ := Classify(nil, lines)
	if summary != "aaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("expected first of equal-length lines, got %q", summary)
	}
}

func TestClassify_SubstantialThresholdIsExclusive(t *testing.T) {
	exactly := strings.Repeat("x", SubstantialChars)
	slides := []extract.SlideRecord{{Lines: []string{exactly}}}
	summary, _ := Classify(slides, []string{"2000 Launch", exactly})
	if summary != "" {
		t.Fatalf("expected lines of exactly %d chars to be ignored, got %q", SubstantialChars, summary)
	}
}

func TestClassify_FallbackOneEventPerSlide(t *testing.T) {
	slides := []extract.SlideRecord{
		{Title: strptr("Company Story"), Lines: []string{"Company Story", "A company with a long history"}},
		{Title: strptr("Founded"), Lines: []string{"Founded"}},
		{Title: nil, Lines: []string{}},
		{Title: nil, Lines: []string{"Only line"}},
	}
	lines := []string{"Company Story", "A company with a long history", "Founded", "Only line"}

	summary, events := Classify(slides, lines)
	if len(events) != len(slides) {
		t.Fatalf("expected %d events, got %d", len(slides), len(events))
	}
	want := []Event{
		{Year: "Slide 1", Text: "A company with a long history"},
		{Year: "Slide 2", Text: "Founded"},
		{Year: "Slide 3", Text: "Timeline item 3"},
		{Year: "Slide 4", Text: "Only line"},
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}
	if summary != "A company with a long history" {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestClassify_FallbackDetectsYearInTitle(t *testing.T) {
	// The title line is left out of lines so that nothing matches and the
	// fallback runs; it still searches the title for a year.
	slides := []extract.SlideRecord{{Title: strptr("Class of '98"), Lines: []string{"Class of '98", "Graduation"}}}
	_, events := Classify(slides, []string{"Graduation"})
	if len(events) != 1 || events[0].Year != "'98" || events[0].Text != "Graduation" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestClassify_FirstSlideSummaryTruncatedTo600Chars(t *testing.T) {
	// Every long line holds a year, so none is history prose and the summary
	// comes from the first slide.
	long := "1999 " + strings.Repeat("é", 245)
	slides := []extract.SlideRecord{{Lines: []string{long, long, long}}}
	summary, events := Classify(slides, slides[0].Lines)
	if n := utf8.RuneCountInString(summary); n != SummaryMaxChars {
		t.Fatalf("expected %d chars, got %d", SummaryMaxChars, n)
	}
	if !strings.HasPrefix(summary, long+" "+long+" ") {
		t.Fatalf("expected lines joined by single spaces")
	}
	if len(events) != 3 || events[0].Year != "1999" {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestClassify_FirstSlideSummaryUnderLimitIsKept(t *testing.T) {
	slides := []extract.SlideRecord{
		{Lines: []string{"1999 - Founded in a small garage", "short", "2001 - Opened the first store"}},
		{Lines: []string{"Nothing from later slides is used here"}},
	}
	summary, _ := Classify(slides, slides[0].Lines)
	if summary != "1999 - Founded in a small garage 2001 - Opened the first store" {
		t.Fatalf("unexpected summary %q", summary)
	}
}

func TestClassify_EventTextNeverEmpty(t *testing.T) {
	lines := []string{"1999", "2000 -", "'01 :", "2002 Something"}
	_, events := Classify(nil, lines)
	if len(events) != len(lines) {
		t.Fatalf("expected %d events, got %d", len(lines), len(events))
	}
	for i, e := range events {
		if strings.TrimSpace(e.Text) == "" {
			t.Fatalf("event %d has empty text", i)
		}
	}
}

func TestClassify_EndToEndThreeSlideFallback(t *testing.T) {
	thirty := "Our story began in a garage!!!" // 30 chars
	if utf8.RuneCountInString(thirty) != 30 {
		t.Fatalf("fixture must be 30 chars")
	}
	slides := []extract.SlideRecord{
		{Title: strptr("About"), Lines: []string{"About", thirty}},
		{Title: strptr("Team"), Lines: []string{"Team", "People"}},
		{Title: nil, Lines: []string{"Closing"}},
	}
	var lines []string
	for _, s := range slides {
		lines = append(lines, s.Lines...)
	}
	summary, events := Classify(slides, lines)
	// thirty is a non-year substantial line, so the primary pool picks it.
	if summary != thirty {
		t.Fatalf("expected summary %q, got %q", thirty, summary)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if !strings.HasPrefix(e.Year, "Slide ") {
			t.Fatalf("event %d: expected placeholder year, got %q", i, e.Year)
		}
	}
}

func TestClassify_NoSlidesNoLines(t *testing.T) {
	summary, events := Classify(nil, nil)
	if summary != "" || events == nil || len(events) != 0 {
		t.Fatalf("expected empty summary and empty events, got %q %+v", summary, events)
	}
}
