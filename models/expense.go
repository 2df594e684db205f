package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout 消费日期格式
	DateLayout = "2006-01-02"
	// MaxDescriptionLength 描述最大长度
	MaxDescriptionLength = 255
	// AmountScale 金额小数位
	AmountScale = 2
)

// MaxAmount 金额上限，对应 decimal(10,2)
var MaxAmount = decimal.RequireFromString("99999999.99")

// Expense 消费记录模型
// Date 为用户填写的消费日期，CreatedAt 为入库时间，两者可以不同
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Description string          `json:"description" gorm:"size:255;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date        time.Time       `json:"date" gorm:"type:date;not null"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Category    Category        `json:"-" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// CategoryName 关联类别名称，未加载时为空
func (e *Expense) CategoryName() string {
	return e.Category.Name
}
