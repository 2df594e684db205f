package api

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHandler_CSV(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, "Lunch, with team", "12.5", env.food, "2026-02-18")

	w := env.do("GET", "/api/expenses/export?year=2026&month=2", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=expenses_2026-02.csv", w.Header().Get("Content-Disposition"))

	body := strings.TrimPrefix(w.Body.String(), "\xEF\xBB\xBF")
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"ID", "Description", "Amount", "Category", "Date", "Created At"}, records[0])
	assert.Equal(t, "Lunch, with team", records[1][1])
	assert.Equal(t, "12.50", records[1][2])
	assert.Equal(t, "Food", records[1][3])
}

func TestExportHandler_XLSX(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, "Lunch", "12.5", env.food, "2026-02-18")
	env.create(t, "Taxi", "7.5", env.trans, "2026-02-18")

	w := env.do("GET", "/api/expenses/export?format=xlsx", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=expenses_all.xlsx", w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "20", rows[3][2])

	rows, err = f.GetRows("Breakdown")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Food", rows[1][0])
}

func TestExportHandler_BadRequest(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, http.StatusBadRequest, env.do("GET", "/api/expenses/export?format=pdf", "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do("GET", "/api/expenses/export?year=2026&month=13", "").Code)
}
