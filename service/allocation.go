package service

import (
	"math"

	"budgeto/models"
)

// BucketBudget 按分配比例从月收入推算类别预算金额
func BucketBudget(income, percentage float64) float64 {
	return income * percentage / 100
}

// TotalSpent 汇总一组支出记录的金额
func TotalSpent(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Remaining 预算减去已花费。结果可以为负：超支是合法的可展示状态，不是错误。
func Remaining(budget, totalSpent float64) float64 {
	return budget - totalSpent
}

// PercentageFromAmount 将金额换算为占收入的百分比，保留两位小数。
// 收入为 0 时返回 0，避免除零。
func PercentageFromAmount(amount, income float64) float64 {
	if income <= 0 {
		return 0
	}
	return math.Round(amount/income*10000) / 100
}

// ValidateAllocation 校验单个类别的新比例：与另外两类之和超过 100% 时拒绝。
// 恰好等于 100% 是允许的。拒绝时调用方不应用任何变更。
func ValidateAllocation(newPercentage, otherTwoPercentages float64) error {
	if newPercentage+otherTwoPercentages > 100 {
		return ErrAllocationOverflow
	}
	return nil
}

// ValidateExpenseAgainstBudget 校验支出变更后类别总额是否超出预算。
// 仅在显式预算大于 0 时检查；预算为 0 时首笔支出的引导逻辑由调用方处理。
func ValidateExpenseAgainstBudget(newTotal, budget float64) error {
	if budget > 0 && newTotal > budget {
		return ErrBudgetExceeded
	}
	return nil
}
