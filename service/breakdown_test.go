package service

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdata/breakdown.json 同时供前端汇总实现使用，两端结果必须一致
type breakdownFixture struct {
	Name     string `json:"name"`
	Expenses []struct {
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
	} `json:"expenses"`
	Want Breakdown `json:"want"`
}

func TestBuildBreakdown_Fixtures(t *testing.T) {
	raw, err := os.ReadFile("testdata/breakdown.json")
	require.NoError(t, err)

	var fixtures []breakdownFixture
	require.NoError(t, json.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures)

	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			views := make([]ExpenseView, 0, len(fx.Expenses))
			for _, e := range fx.Expenses {
				views = append(views, ExpenseView{Category: e.Category, Amount: e.Amount})
			}
			assert.Equal(t, fx.Want, BuildBreakdown(views))
		})
	}
}

func TestBuildBreakdown_Example(t *testing.T) {
	got := BuildBreakdown([]ExpenseView{
		{Category: "Food", Amount: 100},
		{Category: "Food", Amount: 50},
		{Category: "Transport", Amount: 30},
	})

	assert.Equal(t, []CategoryTotal{
		{Category: "Food", Total: 150, Count: 2},
		{Category: "Transport", Total: 30, Count: 1},
	}, got.Categories)
	assert.Equal(t, 180.0, got.Total)
	assert.Equal(t, 3, got.Count)
}
