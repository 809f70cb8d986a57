package models

import (
	"time"

	"gorm.io/gorm"
)

// SavingsGoal 储蓄目标模型
// 目标金额、目标日期（决定月数）与每月储蓄额三者互相冗余，
// 由 service 中的推算引擎保持一致，入库时三者均已补全。
type SavingsGoal struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         string         `json:"user_id" gorm:"size:64;index;not null"`
	Name           string         `json:"name" gorm:"size:100;not null"`
	Type           string         `json:"type" gorm:"size:20;not null"`
	Category       string         `json:"category" gorm:"size:20;index;not null"`
	TargetAmount   float64        `json:"target_amount" gorm:"type:decimal(12,2);not null"`
	CurrentSaved   float64        `json:"current_saved" gorm:"type:decimal(12,2);not null;default:0"`
	StartDate      time.Time      `json:"start_date" gorm:"not null"`
	TargetDate     time.Time      `json:"target_date" gorm:"not null"`
	MonthlySavings float64        `json:"monthly_savings" gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (SavingsGoal) TableName() string {
	return "savings_goals"
}

// 储蓄目标期限类型常量
const (
	GoalTypeShortTerm  = "short-term"
	GoalTypeMediumTerm = "medium-term"
	GoalTypeLongTerm   = "long-term"
)

// IsValidGoalType 校验目标期限类型是否合法
func IsValidGoalType(goalType string) bool {
	switch goalType {
	case GoalTypeShortTerm, GoalTypeMediumTerm, GoalTypeLongTerm:
		return true
	}
	return false
}
