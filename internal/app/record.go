package app

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/hyperifyio/gotimeline/internal/extract"
	"github.com/hyperifyio/gotimeline/internal/timeline"
)

// OutputRecord is the JSON document written for one presentation.
type OutputRecord struct {
	PPT            string                `json:"ppt"`
	HistorySummary string                `json:"history_summary"`
	Events         []timeline.Event      `json:"events"`
	Slides         []extract.SlideRecord `json:"slides"`
}

// Summary reports what a run produced.
type Summary struct {
	JSONPath    string
	HistoryLen  int
	EventsCount int
}

// Status is the single-line success object printed on stdout.
type Status struct {
	OK          bool   `json:"ok"`
	JSON        string `json:"json"`
	HistoryLen  int    `json:"history_len"`
	EventsCount int    `json:"events_count"`
}

// ErrorStatus is the single-line object printed when the input is missing.
type ErrorStatus struct {
	Error string `json:"error"`
}

// Status converts the summary into its stdout form.
func (s Summary) Status() Status {
	return Status{OK: true, JSON: s.JSONPath, HistoryLen: s.HistoryLen, EventsCount: s.EventsCount}
}

func summarizeRecord(path string, rec OutputRecord) Summary {
	return Summary{
		JSONPath:    path,
		HistoryLen:  utf8.RuneCountInString(rec.HistorySummary),
		EventsCount: len(rec.Events),
	}
}

// marshalRecord encodes rec with two-space indentation and non-ASCII text
// kept verbatim.
func marshalRecord(rec OutputRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteJSONLine writes v as one compact JSON line.
func WriteJSONLine(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
