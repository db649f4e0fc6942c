package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"estudaia/internal/domain"
)

// Sheet names of the study workbook, in order.
const (
	SheetFlashcards = "Flashcards"
	SheetQuiz       = "Quiz"
	SheetSchedule   = "Study Plan"
)

// WriteXLSX writes a workbook with the flashcards, the quiz and the study plan.
func WriteXLSX(w io.Writer, result *domain.AnalysisResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// NewFile starts with Sheet1; rename it instead of leaving it empty.
	if err := f.SetSheetName(f.GetSheetName(0), SheetFlashcards); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetQuiz, SheetSchedule} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return fmt.Errorf("creating body style: %w", err)
	}

	sheets := []struct {
		name    string
		columns []string
		rows    [][]string
	}{
		{SheetFlashcards, flashcardColumns, flashcardRows(result.Flashcards)},
		{SheetQuiz, quizColumns, quizRows(result.Quiz)},
		{SheetSchedule, scheduleColumns, scheduleRows(result.StudySchedules)},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.columns, s.rows, header, wrap); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, columns []string, rows [][]string, headerStyle, bodyStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) > 0 {
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, len(rows)+1), bodyStyle); err != nil {
			return fmt.Errorf("styling %s rows: %w", sheet, err)
		}
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 40); err != nil {
		return fmt.Errorf("sizing %s columns: %w", sheet, err)
	}
	return nil
}
