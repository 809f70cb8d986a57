package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultUserID 单用户模式下的固定用户标识，所有数据归属该用户
const DefaultUserID = "default-user"

// 默认预算分配比例（50/30/20 法则）
const (
	DefaultNeedsPercentage   = 50
	DefaultWantsPercentage   = 30
	DefaultSavingsPercentage = 20
)

// BudgetSettings 预算设置模型：月收入与三类预算的分配比例
type BudgetSettings struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	UserID            string         `json:"user_id" gorm:"size:64;uniqueIndex;not null"`
	MonthlyIncome     float64        `json:"monthly_income" gorm:"type:decimal(12,2);not null;default:0"`
	NeedsPercentage   float64        `json:"needs_percentage" gorm:"type:decimal(5,2);not null;default:50"`
	WantsPercentage   float64        `json:"wants_percentage" gorm:"type:decimal(5,2);not null;default:30"`
	SavingsPercentage float64        `json:"savings_percentage" gorm:"type:decimal(5,2);not null;default:20"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (BudgetSettings) TableName() string {
	return "budget_settings"
}

// Percentage 返回指定类别的分配比例
func (s *BudgetSettings) Percentage(category string) float64 {
	switch category {
	case CategoryNeeds:
		return s.NeedsPercentage
	case CategoryWants:
		return s.WantsPercentage
	case CategorySavings:
		return s.SavingsPercentage
	}
	return 0
}

// SetPercentage 设置指定类别的分配比例
func (s *BudgetSettings) SetPercentage(category string, percentage float64) {
	switch category {
	case CategoryNeeds:
		s.NeedsPercentage = percentage
	case CategoryWants:
		s.WantsPercentage = percentage
	case CategorySavings:
		s.SavingsPercentage = percentage
	}
}

// OtherPercentages 返回除指定类别外另外两类比例之和，用于总分配校验
func (s *BudgetSettings) OtherPercentages(category string) float64 {
	total := s.NeedsPercentage + s.WantsPercentage + s.SavingsPercentage
	return total - s.Percentage(category)
}
