package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sorabatch/sora-batch/internal/model"
)

// SheetName is the worksheet holding task rows
const SheetName = "Tasks"

// FirstTaskRow is the first workbook row with task data (row 1 is the header)
const FirstTaskRow = 2

// Workbook columns, 1-based
const (
	ColPrompt = iota + 1
	ColImagePath
	ColKind
	ColAspectRatio
	ColDuration
	ColResolution
	ColVariations
	ColOutputPath
	ColStatus
	ColResult
)

// TemplateColumns are the documented header names, in column order
var TemplateColumns = []string{
	"Prompt",
	"ImagePath",
	"Type",
	"AspectRatio",
	"Duration",
	"Resolution",
	"Variations",
	"OutputPath",
	"Status",
	"Result",
}

// templateColumnWidths holds per-column display widths for the template
var templateColumnWidths = map[string]float64{
	"A": 50, // Prompt
	"B": 40, // ImagePath
	"C": 10, // Type
	"D": 12, // AspectRatio
	"E": 10, // Duration
	"F": 12, // Resolution
	"G": 12, // Variations
	"H": 40, // OutputPath
	"I": 15, // Status
	"J": 30, // Result
}

// templateSampleRow is written under the header so users see the expected format
var templateSampleRow = []interface{}{
	"A beautiful sunset over the ocean with golden light",
	"",
	model.DefaultKind,
	model.DefaultAspectRatio,
	model.DefaultDuration,
	model.DefaultResolution,
	model.DefaultVariations,
	"",
	string(model.TaskStatusPending),
	"",
}

// Workbook wraps an open task workbook
type Workbook struct {
	path string
	file *excelize.File
}

// Open opens an existing workbook for reading and in-place updates
func Open(path string) (*Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	sheet := resolveSheet(file)
	if sheet == "" {
		_ = file.Close()
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	return &Workbook{path: path, file: file}, nil
}

// resolveSheet returns the Tasks sheet if present, otherwise the first sheet.
// Hand-made workbooks often keep the default sheet name.
func resolveSheet(file *excelize.File) string {
	for _, name := range file.GetSheetList() {
		if name == SheetName {
			return name
		}
	}
	list := file.GetSheetList()
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// Path returns the workbook file path
func (w *Workbook) Path() string {
	return w.path
}

// Tasks reads task rows from the workbook. Rows with a blank Prompt are
// skipped. Rows already marked completed are skipped unless includeCompleted
// is set.
func (w *Workbook) Tasks(includeCompleted bool) ([]*model.Task, error) {
	sheet := resolveSheet(w.file)

	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var tasks []*model.Task
	for idx := FirstTaskRow - 1; idx < len(rows); idx++ {
		row := rows[idx]
		rowNumber := idx + 1

		prompt := strings.TrimSpace(cell(row, ColPrompt))
		if prompt == "" {
			continue
		}

		status := strings.TrimSpace(cell(row, ColStatus))
		if !includeCompleted && model.IsCompletedAlias(status) {
			continue
		}

		task := &model.Task{
			Row:         rowNumber,
			Prompt:      prompt,
			ImageNames:  strings.TrimSpace(cell(row, ColImagePath)),
			Kind:        strings.TrimSpace(cell(row, ColKind)),
			AspectRatio: strings.TrimSpace(cell(row, ColAspectRatio)),
			Duration:    strings.TrimSpace(cell(row, ColDuration)),
			Resolution:  strings.TrimSpace(cell(row, ColResolution)),
			Variations:  parseVariations(cell(row, ColVariations)),
			OutputPath:  strings.TrimSpace(cell(row, ColOutputPath)),
			Status:      model.TaskStatus(status),
			Result:      strings.TrimSpace(cell(row, ColResult)),
		}
		task.ApplyDefaults()

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// UpdateResult writes the status and result cells of one row and saves the
// file. Other rows are left untouched.
func (w *Workbook) UpdateResult(row int, status model.TaskStatus, result string) error {
	sheet := resolveSheet(w.file)

	statusCell, err := excelize.CoordinatesToCellName(ColStatus, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := w.file.SetCellValue(sheet, statusCell, status.String()); err != nil {
		return fmt.Errorf("failed to set status cell: %w", err)
	}

	resultCell, err := excelize.CoordinatesToCellName(ColResult, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := w.file.SetCellValue(sheet, resultCell, result); err != nil {
		return fmt.Errorf("failed to set result cell: %w", err)
	}

	return w.Save()
}

// UpdateOutputPath writes the output path cell of one row and saves the file
func (w *Workbook) UpdateOutputPath(row int, outputPath string) error {
	sheet := resolveSheet(w.file)

	pathCell, err := excelize.CoordinatesToCellName(ColOutputPath, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := w.file.SetCellValue(sheet, pathCell, outputPath); err != nil {
		return fmt.Errorf("failed to set output path cell: %w", err)
	}

	return w.Save()
}

// Save writes pending changes back to the workbook file
func (w *Workbook) Save() error {
	if err := w.file.Save(); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", w.path, err)
	}
	return nil
}

// Close releases the underlying file
func (w *Workbook) Close() error {
	return w.file.Close()
}

// WriteTemplate creates a styled template workbook with the documented header
// row, column widths, and one sample row.
func WriteTemplate(path string) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	index, err := file.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range TemplateColumns {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("invalid header column %d: %w", i+1, err)
		}
		if err := file.SetCellValue(SheetName, cellName, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	lastCol, err := excelize.CoordinatesToCellName(len(TemplateColumns), 1)
	if err != nil {
		return fmt.Errorf("invalid last column: %w", err)
	}
	if err := file.SetCellStyle(SheetName, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for col, width := range templateColumnWidths {
		if err := file.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	for i, value := range templateSampleRow {
		cellName, err := excelize.CoordinatesToCellName(i+1, FirstTaskRow)
		if err != nil {
			return fmt.Errorf("invalid sample column %d: %w", i+1, err)
		}
		if err := file.SetCellValue(SheetName, cellName, value); err != nil {
			return fmt.Errorf("failed to write sample cell: %w", err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save template %s: %w", path, err)
	}
	return nil
}

// cell returns a cell value from a row slice, tolerating short rows
func cell(row []string, col int) string {
	if col-1 >= len(row) {
		return ""
	}
	return row[col-1]
}

// parseVariations parses the variations cell, falling back to the default
func parseVariations(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.DefaultVariations
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return model.DefaultVariations
	}
	return n
}
