package models

import (
	"time"
)

// MaxCategoryNameLength 类别名称最大长度
const MaxCategoryNameLength = 100

// Category 消费类别（初始化时写入，无创建接口）
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey" example:"1"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex" example:"Food"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
