package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportRows() []ExpenseView {
	created := time.Date(2026, 2, 18, 10, 30, 0, 0, time.UTC)
	return []ExpenseView{
		{ID: 2, Description: "Taxi, airport", Amount: 30, Category: "Transport", Date: "2026-02-18", CreatedAt: created},
		{ID: 1, Description: "Lunch", Amount: 100.5, Category: "Food", Date: "2026-02-17", CreatedAt: created.Add(-time.Hour)},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportRows()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, utf8BOM))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, []string{"2", "Taxi, airport", "30.00", "Transport", "2026-02-18", "2026-02-18 10:30:00"}, records[1])
	assert.Equal(t, "100.50", records[2][2])
}

func TestWriteXLSX(t *testing.T) {
	rows := exportRows()
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, rows, BuildBreakdown(rows)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{expenseSheetName, breakdownSheet}, f.GetSheetList())

	expenseRows, err := f.GetRows(expenseSheetName)
	require.NoError(t, err)
	require.Len(t, expenseRows, 4)
	assert.Equal(t, exportHeaders, expenseRows[0])
	assert.Equal(t, "Taxi, airport", expenseRows[1][1])
	assert.Equal(t, "Total", expenseRows[3][0])
	assert.Equal(t, "130.5", expenseRows[3][2])

	summary, err := f.GetRows(breakdownSheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"Food", "100.5", "1"}, summary[1])
	assert.Equal(t, []string{"Transport", "30", "1"}, summary[2])
}
