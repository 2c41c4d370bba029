package filler

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// highlighter applies the absence fill to cells, creating the underlying
// style once per workbook. The color arrives by value from configuration;
// nothing here is shared between runs.
type highlighter struct {
	file    *excelize.File
	color   string
	styleID int
	created bool
}

func newHighlighter(file *excelize.File, color string) *highlighter {
	return &highlighter{file: file, color: color}
}

func (h *highlighter) apply(sheet, cell string) error {
	if !h.created {
		id, err := h.file.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{h.color}},
		})
		if err != nil {
			return fmt.Errorf("create highlight style: %w", err)
		}
		h.styleID = id
		h.created = true
	}

	if err := h.file.SetCellStyle(sheet, cell, cell, h.styleID); err != nil {
		return fmt.Errorf("apply highlight to %s: %w", cell, err)
	}
	return nil
}
