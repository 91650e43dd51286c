// Package export renders matrix sessions as spreadsheets for underwriters who work offline.
package export

import (
	"fmt"
	"strings"

	"quote_matrix/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetOptions = "Options"

	assignedMark = "X"
	maxSheetName = 31
)

var itemHeaders = []any{"Item ID", "Code", "Label", "Required", "Auto"}

// MatrixWorkbook builds a workbook with an Options sheet followed by one sheet per category.
// Category sheets have one row per item and one column per option, marked where assigned.
//
// The caller owns the returned file and must Close it.
func MatrixWorkbook(c entities.Catalog) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := writeOptionsSheet(f, c.Options, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}

	used := map[string]struct{}{strings.ToLower(SheetOptions): {}}
	for _, cat := range c.Categories {
		name := uniqueSheetName(string(cat.Key), used)
		if err := writeCategorySheet(f, name, c.Options, cat.Items, headerStyle); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	return f, nil
}

func writeOptionsSheet(f *excelize.File, options []entities.Option, headerStyle int) error {
	if err := f.SetSheetName("Sheet1", SheetOptions); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetOptions, "A1", &[]any{"Option ID", "Name", "Descriptor", "Status"}); err != nil {
		return err
	}
	for i, o := range options {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetOptions, cell, &[]any{o.ID, o.Name, o.Descriptor, string(o.Status)}); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(SheetOptions, 1, 1, headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(SheetOptions, "A", "D", 20)
}

func writeCategorySheet(f *excelize.File, sheet string, options []entities.Option, items []entities.Item, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := append([]any{}, itemHeaders...)
	for _, o := range options {
		header = append(header, optionTitle(o))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, it := range items {
		assigned := make(map[string]struct{}, len(it.AssignedOptions))
		for _, id := range it.AssignedOptions {
			assigned[id] = struct{}{}
		}

		row := []any{it.ID, it.Code, it.Label, yesNo(it.Required), yesNo(it.Auto)}
		for _, o := range options {
			mark := ""
			if _, ok := assigned[o.ID]; ok {
				mark = assignedMark
			}
			row = append(row, mark)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "C", "C", 40); err != nil {
		return err
	}
	if len(options) > 0 {
		first, err := excelize.ColumnNumberToName(len(itemHeaders) + 1)
		if err != nil {
			return err
		}
		last, err := excelize.ColumnNumberToName(len(itemHeaders) + len(options))
		if err != nil {
			return err
		}
		return f.SetColWidth(sheet, first, last, 16)
	}
	return nil
}

func optionTitle(o entities.Option) string {
	if o.Name == "" {
		return o.ID
	}
	return o.Name
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// uniqueSheetName turns a category key into a valid sheet name not yet in used.
func uniqueSheetName(key string, used map[string]struct{}) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(key))
	if base == "" {
		base = "category"
	}
	base = truncateRunes(base, maxSheetName)

	name := base
	for n := 2; ; n++ {
		if _, taken := used[strings.ToLower(name)]; !taken {
			break
		}
		suffix := fmt.Sprintf("-%d", n)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = struct{}{}
	return name
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
