package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	exportTimeLayout = "2006-01-02 15:04:05"
	expenseSheetName = "Expenses"
	breakdownSheet   = "Breakdown"
	utf8BOM          = "\xEF\xBB\xBF"
)

var exportHeaders = []string{"ID", "Description", "Amount", "Category", "Date", "Created At"}

// WriteCSV 导出 CSV，带 BOM 以便 Excel 正确识别 UTF-8
func WriteCSV(w io.Writer, expenses []ExpenseView) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, e := range expenses {
		row := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Category,
			e.Date,
			e.CreatedAt.Format(exportTimeLayout),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX 导出 Excel：明细表加合计行，另附类别汇总表
func WriteXLSX(w io.Writer, expenses []ExpenseView, breakdown Breakdown) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expenseSheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	f.SetColWidth(expenseSheetName, "A", "A", 10)
	f.SetColWidth(expenseSheetName, "B", "B", 36)
	f.SetColWidth(expenseSheetName, "C", "D", 16)
	f.SetColWidth(expenseSheetName, "E", "F", 20)

	if err := writeRow(f, expenseSheetName, 1, toCells(exportHeaders)); err != nil {
		return err
	}
	f.SetCellStyle(expenseSheetName, "A1", "F1", headerStyle)

	for i, e := range expenses {
		row := []interface{}{e.ID, e.Description, e.Amount, e.Category, e.Date, e.CreatedAt.Format(exportTimeLayout)}
		if err := writeRow(f, expenseSheetName, i+2, row); err != nil {
			return err
		}
	}

	totalRow := len(expenses) + 2
	if err := writeRow(f, expenseSheetName, totalRow, []interface{}{"Total", "", breakdown.Total, "", "", fmt.Sprintf("%d items", breakdown.Count)}); err != nil {
		return err
	}
	f.SetCellStyle(expenseSheetName, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("F%d", totalRow), totalStyle)

	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return err
	}
	f.SetColWidth(breakdownSheet, "A", "C", 18)
	if err := writeRow(f, breakdownSheet, 1, []interface{}{"Category", "Total", "Count"}); err != nil {
		return err
	}
	f.SetCellStyle(breakdownSheet, "A1", "C1", headerStyle)
	for i, c := range breakdown.Categories {
		if err := writeRow(f, breakdownSheet, i+2, []interface{}{c.Category, c.Total, c.Count}); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
