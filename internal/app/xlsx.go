package app

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	timelineSheet = "Timeline"
	slidesSheet   = "Slides"
)

// buildTimelineWorkbook lays the events and the per-slide text out in two
// sheets.
func buildTimelineWorkbook(rec OutputRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), timelineSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(slidesSheet); err != nil {
		return nil, err
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(timelineSheet, 1, 1, "Year")
	write(timelineSheet, 2, 1, "Event")
	for i, ev := range rec.Events {
		write(timelineSheet, 1, i+2, ev.Year)
		write(timelineSheet, 2, i+2, ev.Text)
	}
	_ = f.SetColWidth(timelineSheet, "A", "A", 16)
	_ = f.SetColWidth(timelineSheet, "B", "B", 80)

	write(slidesSheet, 1, 1, "Slide")
	write(slidesSheet, 2, 1, "Title")
	write(slidesSheet, 3, 1, "Lines")
	for i, s := range rec.Slides {
		title := ""
		if s.Title != nil {
			title = *s.Title
		}
		write(slidesSheet, 1, i+2, i+1)
		write(slidesSheet, 2, i+2, title)
		write(slidesSheet, 3, i+2, strings.Join(s.Lines, "\n"))
	}
	_ = f.SetColWidth(slidesSheet, "B", "B", 32)
	_ = f.SetColWidth(slidesSheet, "C", "C", 80)

	idx, _ := f.GetSheetIndex(timelineSheet)
	f.SetActiveSheet(idx)
	return f, nil
}

func writeTimelineXLSX(rec OutputRecord, outPath string) error {
	f, err := buildTimelineWorkbook(rec)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return writeFileAtomic(outPath, buf.Bytes(), 0o644)
}
