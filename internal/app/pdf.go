package app

import (
    "bytes"
    "path/filepath"
    "strings"

    "github.com/jung-kurt/gofpdf"
)

// writeTimelinePDF renders the summary and the events as a simple A4
// document: a heading, the history paragraph, then one row per event with
// the year in bold.
func writeTimelinePDF(rec OutputRecord, outPath string) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    // Core fonts are cp1252; translate from UTF-8.
    tr := pdf.UnicodeTranslatorFromDescriptor("")
    pdf.SetTitle(tr(filepath.Base(rec.PPT)), false)
    pdf.AddPage()

    pdf.SetFont("Helvetica", "B", 16)
    pdf.CellFormat(0, 10, tr(strings.TrimSuffix(filepath.Base(rec.PPT), filepath.Ext(rec.PPT))), "", 1, "L", false, 0, "")
    pdf.Ln(2)

    if s := strings.TrimSpace(rec.HistorySummary); s != "" {
        pdf.SetFont("Helvetica", "B", 13)
        pdf.CellFormat(0, 8, "History", "", 1, "L", false, 0, "")
        pdf.SetFont("Helvetica", "", 11)
        pdf.MultiCell(0, 5, tr(s), "", "L", false)
        pdf.Ln(4)
    }

    pdf.SetFont("Helvetica", "B", 13)
    pdf.CellFormat(0, 8, "Timeline", "", 1, "L", false, 0, "")
    const yearWidth = 35.0
    for _, ev := range rec.Events {
        pdf.SetFont("Helvetica", "B", 11)
        pdf.CellFormat(yearWidth, 6, tr(ev.Year), "", 0, "L", false, 0, "")
        pdf.SetFont("Helvetica", "", 11)
        pdf.MultiCell(0, 6, tr(ev.Text), "", "L", false)
    }

    var buf bytes.Buffer
    if err := pdf.Output(&buf); err != nil {
        return err
    }
    return writeFileAtomic(outPath, buf.Bytes(), 0o644)
}
