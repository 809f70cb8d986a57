package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 支出记录模型，归属于某一预算类别
type Expense struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"size:64;index;not null"`
	Category  string         `json:"category" gorm:"size:20;index;not null"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date      time.Time      `json:"date" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// 预算类别常量
const (
	CategoryNeeds   = "needs"   // 必要支出
	CategoryWants   = "wants"   // 弹性支出
	CategorySavings = "savings" // 储蓄
)

// GetCategories 获取所有预算类别
func GetCategories() []string {
	return []string{
		CategoryNeeds,
		CategoryWants,
		CategorySavings,
	}
}

// IsValidCategory 校验类别是否合法
func IsValidCategory(category string) bool {
	switch category {
	case CategoryNeeds, CategoryWants, CategorySavings:
		return true
	}
	return false
}
