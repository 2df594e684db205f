package service

import (
	"sort"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel 无类别时的分组名称
const UncategorizedLabel = "Uncategorized"

// CategoryTotal 单个类别的合计
type CategoryTotal struct {
	Category string  `json:"category" example:"Food"`
	Total    float64 `json:"total" example:"150"`
	Count    int     `json:"count" example:"2"`
}

// Breakdown 按类别汇总结果
type Breakdown struct {
	Categories []CategoryTotal `json:"categories"`
	Total      float64         `json:"total" example:"180"`
	Count      int             `json:"count" example:"3"`
}

// BuildBreakdown 按类别名称分组求和计数，按合计金额降序排列（相同金额保持首次出现顺序）
// 总金额为各组合计之和，总数为各组条数之和
func BuildBreakdown(expenses []ExpenseView) Breakdown {
	type group struct {
		name  string
		total decimal.Decimal
		count int
	}

	var groups []*group
	index := make(map[string]*group)
	for _, e := range expenses {
		name := e.Category
		if name == "" {
			name = UncategorizedLabel
		}
		g, ok := index[name]
		if !ok {
			g = &group{name: name, total: decimal.Zero}
			index[name] = g
			groups = append(groups, g)
		}
		g.total = g.total.Add(decimal.NewFromFloat(e.Amount).Round(2))
		g.count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].total.GreaterThan(groups[j].total)
	})

	result := Breakdown{Categories: make([]CategoryTotal, 0, len(groups))}
	total := decimal.Zero
	for _, g := range groups {
		result.Categories = append(result.Categories, CategoryTotal{
			Category: g.name,
			Total:    g.total.InexactFloat64(),
			Count:    g.count,
		})
		total = total.Add(g.total)
		result.Count += g.count
	}
	result.Total = total.InexactFloat64()
	return result
}
