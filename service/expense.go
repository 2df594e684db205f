package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"expenses/clock"
	"expenses/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseService 消费记录查询与增删改
type ExpenseService struct {
	db    *gorm.DB
	clock clock.Clock
	loc   *time.Location
}

// NewExpenseService 创建消费记录服务，loc 为服务器本地日历时区
func NewExpenseService(db *gorm.DB, clk clock.Clock, loc *time.Location) *ExpenseService {
	if loc == nil {
		loc = time.Local
	}
	return &ExpenseService{db: db, clock: clk, loc: loc}
}

// Location 服务器本地日历时区
func (s *ExpenseService) Location() *time.Location {
	return s.loc
}

// ExpenseView 对外输出的消费记录：类别展开为名称，金额为数字，日期不带时间
type ExpenseView struct {
	ID          uint      `json:"id" example:"1"`
	Description string    `json:"description" example:"Team Lunch"`
	Amount      float64   `json:"amount" example:"150.5"`
	Category    string    `json:"category" example:"Food"`
	Date        string    `json:"date" example:"2026-02-18"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FormatExpense 将模型转换为输出格式，需已加载 Category
func FormatExpense(e *models.Expense) ExpenseView {
	return ExpenseView{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Category:    e.CategoryName(),
		Date:        e.Date.Format(models.DateLayout),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// NewExpense 新建消费记录的字段，格式已由接口层校验
type NewExpense struct {
	Description string
	Amount      decimal.Decimal
	CategoryID  uint
	Date        time.Time
}

// ExpenseChanges 部分更新，nil 表示不修改
type ExpenseChanges struct {
	Description *string
	Amount      *decimal.Decimal
	CategoryID  *uint
	Date        *time.Time
}

// IsEmpty 是否没有任何字段需要修改
func (c ExpenseChanges) IsEmpty() bool {
	return c.Description == nil && c.Amount == nil && c.CategoryID == nil && c.Date == nil
}

// ListCategories 所有类别，按名称升序
func (s *ExpenseService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	return list, nil
}

// List 按筛选条件返回消费记录，按 created_at 倒序，相同时按 id 倒序
func (s *ExpenseService) List(ctx context.Context, f ListFilter) ([]ExpenseView, error) {
	query := s.db.WithContext(ctx).Model(&models.Expense{}).Preload("Category")

	if f.Period != nil {
		start, end := f.Period.Range(s.loc)
		switch f.Field {
		case FilterByDate:
			query = query.Where("date >= ? AND date < ?", start, end)
		default:
			query = query.Where("created_at >= ? AND created_at < ?", start, end)
		}
	}

	var expenses []models.Expense
	if err := query.Order("created_at DESC").Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}

	views := make([]ExpenseView, 0, len(expenses))
	for i := range expenses {
		views = append(views, FormatExpense(&expenses[i]))
	}
	return views, nil
}

// Get 获取单条消费记录
func (s *ExpenseService) Get(ctx context.Context, id uint) (ExpenseView, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return ExpenseView{}, err
	}
	return FormatExpense(e), nil
}

// Create 创建消费记录，created_at/updated_at 取当前时钟
func (s *ExpenseService) Create(ctx context.Context, in NewExpense) (ExpenseView, error) {
	db := s.db.WithContext(ctx)
	verr := &ValidationError{}

	amount := s.checkAmount(in.Amount, verr)
	cat, err := s.checkCategory(db, in.CategoryID, verr)
	if err != nil {
		return ExpenseView{}, err
	}
	if err := verr.orNil(); err != nil {
		return ExpenseView{}, err
	}

	now := s.clock.Now()
	e := models.Expense{
		Description: in.Description,
		Amount:      amount,
		Date:        s.dateOnly(in.Date),
		CategoryID:  cat.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Omit(clause.Associations).Create(&e).Error; err != nil {
		return ExpenseView{}, fmt.Errorf("create expense: %w", err)
	}
	e.Category = *cat

	return FormatExpense(&e), nil
}

// Update 更新提供的字段并刷新 updated_at
func (s *ExpenseService) Update(ctx context.Context, id uint, ch ExpenseChanges) (ExpenseView, error) {
	db := s.db.WithContext(ctx)

	e, err := s.find(ctx, id)
	if err != nil {
		return ExpenseView{}, err
	}

	verr := &ValidationError{}
	updates := make(map[string]interface{})
	if ch.Description != nil {
		updates["description"] = *ch.Description
	}
	if ch.Amount != nil {
		updates["amount"] = s.checkAmount(*ch.Amount, verr)
	}
	if ch.CategoryID != nil {
		cat, err := s.checkCategory(db, *ch.CategoryID, verr)
		if err != nil {
			return ExpenseView{}, err
		}
		if cat != nil {
			updates["category_id"] = cat.ID
		}
	}
	if ch.Date != nil {
		updates["date"] = s.dateOnly(*ch.Date)
	}
	if err := verr.orNil(); err != nil {
		return ExpenseView{}, err
	}
	if len(updates) == 0 {
		return FormatExpense(e), nil
	}

	updates["updated_at"] = s.clock.Now()
	if err := db.Model(&models.Expense{ID: e.ID}).Omit(clause.Associations).Updates(updates).Error; err != nil {
		return ExpenseView{}, fmt.Errorf("update expense %d: %w", id, err)
	}

	// 重新获取更新后的记录
	return s.Get(ctx, id)
}

// Delete 永久删除消费记录
func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Expense{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete expense %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ExpenseService) find(ctx context.Context, id uint) (*models.Expense, error) {
	var e models.Expense
	err := s.db.WithContext(ctx).Preload("Category").First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query expense %d: %w", id, err)
	}
	return &e, nil
}

func (s *ExpenseService) checkAmount(v decimal.Decimal, verr *ValidationError) decimal.Decimal {
	amount := v.Round(models.AmountScale)
	switch {
	case !amount.IsPositive():
		verr.add("Amount must be greater than 0")
	case amount.GreaterThan(models.MaxAmount):
		verr.add("Amount must be less than or equal to " + models.MaxAmount.StringFixed(models.AmountScale))
	}
	return amount
}

// checkCategory 返回的 error 仅表示查询失败，类别不存在记入 verr
func (s *ExpenseService) checkCategory(db *gorm.DB, id uint, verr *ValidationError) (*models.Category, error) {
	if id == 0 {
		verr.add("Category must exist")
		return nil, nil
	}
	var cat models.Category
	err := db.First(&cat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		verr.add("Category must exist")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query category %d: %w", id, err)
	}
	return &cat, nil
}

// dateOnly 截取为本地日历当天 00:00
func (s *ExpenseService) dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

// ParseDate 解析 YYYY-MM-DD，也接受 RFC3339 时间并取其日期部分
func ParseDate(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if d, err := time.ParseInLocation(models.DateLayout, v, loc); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}
