package database

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"expenses/clock"
	"expenses/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type expenseTemplate struct {
	Description string
	Min, Max    int
}

// demoTemplates 各类别的演示消费模板，金额为整数区间
var demoTemplates = map[string][]expenseTemplate{
	"Food": {
		{"Grocery shopping", 50, 150},
		{"Restaurant dinner", 30, 80},
		{"Coffee shop", 5, 15},
		{"Fast food lunch", 8, 20},
		{"Delivery food", 15, 40},
		{"Bakery items", 10, 25},
	},
	"Transportation": {
		{"Gas fill-up", 40, 70},
		{"Uber/Lyft ride", 15, 35},
		{"Public transit pass", 50, 100},
		{"Parking fee", 5, 20},
		{"Car maintenance", 100, 300},
		{"Toll fees", 5, 15},
	},
	"Shopping": {
		{"Clothing purchase", 40, 150},
		{"Electronics", 100, 500},
		{"Home goods", 30, 120},
		{"Books", 15, 50},
		{"Beauty products", 20, 80},
		{"Online shopping", 25, 100},
	},
	"Entertainment": {
		{"Movie tickets", 15, 40},
		{"Streaming subscription", 10, 20},
		{"Concert tickets", 50, 150},
		{"Gaming purchase", 20, 60},
		{"Sports event", 30, 100},
		{"Museum entry", 15, 30},
	},
	"Bills": {
		{"Electricity bill", 80, 150},
		{"Water bill", 30, 60},
		{"Internet service", 50, 100},
		{"Mobile phone bill", 40, 80},
		{"Home insurance", 100, 200},
		{"Rent payment", 800, 1500},
	},
	"Healthcare": {
		{"Doctor visit", 50, 150},
		{"Prescription medication", 20, 80},
		{"Dental checkup", 80, 200},
		{"Health insurance", 200, 400},
		{"Gym membership", 40, 80},
		{"Medical supplies", 15, 50},
	},
	"Education": {
		{"Online course", 30, 150},
		{"Textbooks", 50, 200},
		{"School supplies", 20, 60},
		{"Tutoring session", 40, 100},
		{"Workshop fee", 50, 150},
		{"Certification exam", 100, 300},
	},
	"Travel": {
		{"Flight tickets", 200, 800},
		{"Hotel booking", 100, 400},
		{"Travel insurance", 50, 150},
		{"Luggage", 50, 200},
		{"Tour package", 150, 500},
		{"Visa application", 50, 200},
	},
	"Personal": {
		{"Haircut", 20, 60},
		{"Spa treatment", 50, 150},
		{"Personal care items", 15, 50},
		{"Gift purchase", 30, 100},
		{"Charity donation", 20, 100},
		{"Pet care", 30, 100},
	},
	"Other": {
		{"Miscellaneous expense", 10, 100},
		{"Bank fees", 5, 30},
		{"Subscription service", 10, 50},
		{"Repairs", 50, 200},
		{"Storage rental", 50, 150},
		{"Professional services", 100, 300},
	},
}

// SeedDemoExpenses 清空消费记录，并从 start 到今天每天生成 3~8 条演示数据
// 日期、created_at、updated_at 均取当天零点，按月筛选时落在对应月份
func SeedDemoExpenses(db *gorm.DB, clk clock.Clock, start time.Time, rng *rand.Rand) (int, error) {
	var categories []models.Category
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return 0, fmt.Errorf("查询类别失败: %w", err)
	}
	if len(categories) == 0 {
		return 0, fmt.Errorf("没有可用的类别，请先初始化类别")
	}

	now := clk.Now()
	loc := now.Location()
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var expenses []models.Expense
	for ; !day.After(today); day = day.AddDate(0, 0, 1) {
		n := 3 + rng.IntN(6)
		for i := 0; i < n; i++ {
			cat := categories[rng.IntN(len(categories))]
			templates := demoTemplates[cat.Name]
			if len(templates) == 0 {
				continue
			}
			tpl := templates[rng.IntN(len(templates))]

			whole := tpl.Min + rng.IntN(tpl.Max-tpl.Min+1)
			cents := rng.IntN(100)
			amount := decimal.NewFromInt(int64(whole*100 + cents)).Shift(-2)

			expenses = append(expenses, models.Expense{
				Description: tpl.Description,
				Amount:      amount,
				Date:        day,
				CategoryID:  cat.ID,
				CreatedAt:   day,
				UpdatedAt:   day,
			})
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Expense{}).Error; err != nil {
			return fmt.Errorf("清空消费记录失败: %w", err)
		}
		if len(expenses) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&expenses, 500).Error; err != nil {
			return fmt.Errorf("写入演示数据失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("演示数据已生成",
		"expenses", len(expenses),
		"from", start.Format(models.DateLayout),
		"to", today.Format(models.DateLayout),
	)
	return len(expenses), nil
}
