package service

import (
	"testing"

	"budgeto/models"

	"github.com/stretchr/testify/assert"
)

func TestBucketBudget(t *testing.T) {
	// 金额 = 收入 × 比例 / 100，不做取整
	assert.Equal(t, 25000.0, BucketBudget(50000, 50))
	assert.Equal(t, 15000.0, BucketBudget(50000, 30))
	assert.Equal(t, 0.0, BucketBudget(0, 50))
	assert.Equal(t, 0.0, BucketBudget(50000, 0))
	assert.InDelta(t, 12512.5, BucketBudget(50050, 25), 1e-9)
}

func TestTotalSpentAndRemaining(t *testing.T) {
	expenses := []models.Expense{
		{Name: "房租", Amount: 12000},
		{Name: "水电", Amount: 1500.5},
		{Name: "网费", Amount: 999.5},
	}
	assert.Equal(t, 14500.0, TotalSpent(expenses))
	assert.Equal(t, 0.0, TotalSpent(nil))

	assert.Equal(t, 10500.0, Remaining(25000, TotalSpent(expenses)))
	// 超支返回负值，不是错误
	assert.Equal(t, -4500.0, Remaining(10000, TotalSpent(expenses)))
}

func TestPercentageFromAmount(t *testing.T) {
	assert.Equal(t, 50.0, PercentageFromAmount(25000, 50000))
	// 保留两位小数
	assert.Equal(t, 33.33, PercentageFromAmount(10000, 30000))
	// 收入为 0 时除零保护，任何金额都返回 0
	assert.Equal(t, 0.0, PercentageFromAmount(10000, 0))
	assert.Equal(t, 0.0, PercentageFromAmount(0, 0))
}

func TestValidateAllocation(t *testing.T) {
	// 未超出
	assert.NoError(t, ValidateAllocation(50, 40))
	// 恰好 100% 允许
	assert.NoError(t, ValidateAllocation(60, 40))
	// 超出拒绝
	assert.ErrorIs(t, ValidateAllocation(61, 40), ErrAllocationOverflow)
	assert.ErrorIs(t, ValidateAllocation(100, 0.01), ErrAllocationOverflow)
}

func TestValidateExpenseAgainstBudget(t *testing.T) {
	assert.NoError(t, ValidateExpenseAgainstBudget(24000, 25000))
	assert.NoError(t, ValidateExpenseAgainstBudget(25000, 25000))
	assert.ErrorIs(t, ValidateExpenseAgainstBudget(30000, 25000), ErrBudgetExceeded)
	// 预算为 0 时不检查，由调用方做首笔支出引导
	assert.NoError(t, ValidateExpenseAgainstBudget(30000, 0))
}

func TestValidateExpenseAgainstBudget_Idempotent(t *testing.T) {
	// 纯函数：相同输入重复调用结论一致
	first := ValidateExpenseAgainstBudget(30000, 25000)
	second := ValidateExpenseAgainstBudget(30000, 25000)
	assert.Equal(t, first, second)
}
