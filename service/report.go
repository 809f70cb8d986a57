package service

import (
	"fmt"
	"time"

	"budgeto/models"
)

// ExpenseTruncateLimit 报表中每个类别最多展示的支出条数。
// 渲染方依赖该固定阈值，修改会改变报表输出。
const ExpenseTruncateLimit = 5

// ReportData 报表渲染所需的全部派生数值。
// 金额均为未格式化的数值，货币串格式化由渲染方负责。
type ReportData struct {
	GeneratedAt       time.Time               `json:"generated_at"`
	MonthlyIncome     float64                 `json:"monthly_income"`
	TotalBudget       float64                 `json:"total_budget"`
	TotalSpent        float64                 `json:"total_spent"`
	TotalRemaining    float64                 `json:"total_remaining"`
	NeedsPercentage   float64                 `json:"needs_percentage"`
	WantsPercentage   float64                 `json:"wants_percentage"`
	SavingsPercentage float64                 `json:"savings_percentage"`
	NeedsBudget       float64                 `json:"needs_budget"`
	WantsBudget       float64                 `json:"wants_budget"`
	SavingsBudget     float64                 `json:"savings_budget"`
	NeedsTotal        float64                 `json:"needs_total"`
	WantsTotal        float64                 `json:"wants_total"`
	SavingsTotal      float64                 `json:"savings_total"`
	NeedsExpenses     []models.Expense        `json:"needs_expenses"`
	WantsExpenses     []models.Expense        `json:"wants_expenses"`
	SavingsExpenses   []models.Expense        `json:"savings_expenses"`
	Goals             []models.SavingsGoal    `json:"goals"`
	InvestmentPlans   []models.InvestmentPlan `json:"investment_plans"`
}

// BuildReport 将持久化实体汇总为报表数据，不做截断，完整列表交给渲染方
func BuildReport(settings models.BudgetSettings, expenses []models.Expense,
	goals []models.SavingsGoal, plans []models.InvestmentPlan, now time.Time) ReportData {

	byCategory := map[string][]models.Expense{}
	for _, e := range expenses {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	needsBudget := BucketBudget(settings.MonthlyIncome, settings.NeedsPercentage)
	wantsBudget := BucketBudget(settings.MonthlyIncome, settings.WantsPercentage)
	savingsBudget := BucketBudget(settings.MonthlyIncome, settings.SavingsPercentage)

	needsTotal := TotalSpent(byCategory[models.CategoryNeeds])
	wantsTotal := TotalSpent(byCategory[models.CategoryWants])
	savingsTotal := TotalSpent(byCategory[models.CategorySavings])

	totalBudget := needsBudget + wantsBudget + savingsBudget
	totalSpent := needsTotal + wantsTotal + savingsTotal

	return ReportData{
		GeneratedAt:       now,
		MonthlyIncome:     settings.MonthlyIncome,
		TotalBudget:       totalBudget,
		TotalSpent:        totalSpent,
		TotalRemaining:    Remaining(totalBudget, totalSpent),
		NeedsPercentage:   settings.NeedsPercentage,
		WantsPercentage:   settings.WantsPercentage,
		SavingsPercentage: settings.SavingsPercentage,
		NeedsBudget:       needsBudget,
		WantsBudget:       wantsBudget,
		SavingsBudget:     savingsBudget,
		NeedsTotal:        needsTotal,
		WantsTotal:        wantsTotal,
		SavingsTotal:      savingsTotal,
		NeedsExpenses:     byCategory[models.CategoryNeeds],
		WantsExpenses:     byCategory[models.CategoryWants],
		SavingsExpenses:   byCategory[models.CategorySavings],
		Goals:             goals,
		InvestmentPlans:   plans,
	}
}

// TruncateExpenses 返回前 ExpenseTruncateLimit 条支出以及被省略的条数
func TruncateExpenses(expenses []models.Expense) ([]models.Expense, int) {
	if len(expenses) <= ExpenseTruncateLimit {
		return expenses, 0
	}
	return expenses[:ExpenseTruncateLimit], len(expenses) - ExpenseTruncateLimit
}

// TruncateMarker 截断提示串，如 "... and 3 more"
func TruncateMarker(omitted int) string {
	return fmt.Sprintf("... and %d more", omitted)
}
