package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period 年月
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod 解析 year/month 查询参数
// 只有两者都提供时才返回 Period，缺少任一个返回 nil（不筛选）
func ParsePeriod(year, month string) (*Period, error) {
	year, month = strings.TrimSpace(year), strings.TrimSpace(month)
	if year == "" || month == "" {
		return nil, nil
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < 1 || y > 9999 {
		return nil, fmt.Errorf("%w: year must be an integer between 1 and 9999", ErrInvalidQuery)
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return nil, fmt.Errorf("%w: month must be an integer between 1 and 12", ErrInvalidQuery)
	}
	return &Period{Year: y, Month: time.Month(m)}, nil
}

// Range 返回该月在 loc 日历下的 [当月1日 00:00, 下月1日 00:00)
func (p Period) Range(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// DateField 按月筛选所使用的字段
type DateField string

const (
	// FilterByCreatedAt 按入库时间筛选（默认）
	FilterByCreatedAt DateField = "created_at"
	// FilterByDate 按消费日期筛选
	FilterByDate DateField = "date"
)

// ParseDateField 解析 date_field 参数，空值为 created_at
func ParseDateField(s string) (DateField, error) {
	switch DateField(strings.TrimSpace(s)) {
	case "", FilterByCreatedAt:
		return FilterByCreatedAt, nil
	case FilterByDate:
		return FilterByDate, nil
	default:
		return "", fmt.Errorf("%w: date_field must be created_at or date", ErrInvalidQuery)
	}
}

// ListFilter 消费记录列表筛选条件
type ListFilter struct {
	Period *Period
	Field  DateField
}
