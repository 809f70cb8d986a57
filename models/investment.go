package models

import (
	"time"

	"gorm.io/gorm"
)

// InvestmentPlan 定投计划模型
// TotalReturn 为保存时的预测快照，由服务端按复利公式计算，之后不自动重算。
type InvestmentPlan struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	UserID              string         `json:"user_id" gorm:"size:64;index;not null"`
	Name                string         `json:"name" gorm:"size:100;not null"`
	MonthlyInvestment   float64        `json:"monthly_investment" gorm:"type:decimal(12,2);not null"`
	DurationMonths      int            `json:"duration_months" gorm:"not null"`
	EstimatedReturnRate float64        `json:"estimated_return_rate" gorm:"type:decimal(6,2);not null;default:0"`
	TotalReturn         float64        `json:"total_return" gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (InvestmentPlan) TableName() string {
	return "investment_plans"
}
