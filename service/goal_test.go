package service

import (
	"testing"

	"budgeto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompute_Dates(t *testing.T) {
	// 修改日期 -> 重算月数和每月储蓄额
	draft := Recompute(GoalDraft{
		TargetAmount: 1200,
		StartDate:    date(2025, 1, 1),
		TargetDate:   date(2026, 1, 1),
	}, DriverDates)

	assert.Equal(t, 12, draft.DurationMonths)
	assert.Equal(t, 100.0, draft.MonthlySavings)
}

func TestRecompute_MonthlySavings(t *testing.T) {
	// 修改每月储蓄额 -> 重算月数和目标日期
	draft := Recompute(GoalDraft{
		TargetAmount:   1200,
		StartDate:      date(2025, 1, 1),
		MonthlySavings: 100,
	}, DriverMonthlySavings)

	assert.Equal(t, 12, draft.DurationMonths)
	assert.Equal(t, date(2026, 1, 1), draft.TargetDate)

	// 除不尽时月数向上取整
	draft = Recompute(GoalDraft{
		TargetAmount:   1000,
		StartDate:      date(2025, 1, 1),
		MonthlySavings: 300,
	}, DriverMonthlySavings)
	assert.Equal(t, 4, draft.DurationMonths)
	assert.Equal(t, date(2025, 5, 1), draft.TargetDate)
}

func TestRecompute_TargetAmount(t *testing.T) {
	// 已有目标日期：按日期重算月数，再均摊
	draft := Recompute(GoalDraft{
		TargetAmount: 2400,
		StartDate:    date(2025, 1, 1),
		TargetDate:   date(2026, 1, 1),
	}, DriverTargetAmount)
	assert.Equal(t, 12, draft.DurationMonths)
	assert.Equal(t, 200.0, draft.MonthlySavings)

	// 无目标日期但有月数：均摊并补出目标日期
	draft = Recompute(GoalDraft{
		TargetAmount:   600,
		StartDate:      date(2025, 1, 1),
		DurationMonths: 6,
	}, DriverTargetAmount)
	assert.Equal(t, 100.0, draft.MonthlySavings)
	assert.Equal(t, date(2025, 7, 1), draft.TargetDate)
}

func TestRecompute_Duration(t *testing.T) {
	draft := Recompute(GoalDraft{
		TargetAmount:   1200,
		StartDate:      date(2025, 1, 1),
		DurationMonths: 6,
	}, DriverDuration)

	assert.Equal(t, date(2025, 7, 1), draft.TargetDate)
	assert.Equal(t, 200.0, draft.MonthlySavings)
}

func TestRecompute_MonthlyMinimumOne(t *testing.T) {
	// 均摊结果不足 1 时按最低 1 计
	draft := Recompute(GoalDraft{
		TargetAmount: 5,
		StartDate:    date(2025, 1, 1),
		TargetDate:   date(2027, 1, 1),
	}, DriverDates)
	assert.Equal(t, 1.0, draft.MonthlySavings)
}

func TestRecompute_NoDriver(t *testing.T) {
	// 无驱动字段时不做任何推算
	in := GoalDraft{TargetAmount: 1200, StartDate: date(2025, 1, 1), MonthlySavings: 50}
	assert.Equal(t, in, Recompute(in, DriverNone))
}

func TestNormalize(t *testing.T) {
	// 完整草稿原样通过
	draft, err := Normalize(GoalDraft{
		Name:           "去土耳其旅行",
		TargetAmount:   1200,
		StartDate:      date(2025, 1, 1),
		TargetDate:     date(2026, 1, 1),
		DurationMonths: 12,
		MonthlySavings: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, draft.DurationMonths)

	// 月数缺失时由目标日期推出，每月储蓄额均摊补全
	draft, err = Normalize(GoalDraft{
		Name:         "应急基金",
		TargetAmount: 1200,
		StartDate:    date(2025, 1, 1),
		TargetDate:   date(2026, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, draft.DurationMonths)
	assert.Equal(t, 100.0, draft.MonthlySavings)

	// 只有月数时补出目标日期
	draft, err = Normalize(GoalDraft{
		Name:           "新手机",
		TargetAmount:   600,
		StartDate:      date(2025, 1, 1),
		DurationMonths: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, date(2025, 7, 1), draft.TargetDate)
	assert.Equal(t, 100.0, draft.MonthlySavings)
}

func TestNormalize_SameMonthTargetDate(t *testing.T) {
	// 目标日期在同一日历月内，按 1 个月计而不是拒绝
	draft, err := Normalize(GoalDraft{
		Name:         "月底小目标",
		TargetAmount: 600,
		StartDate:    date(2025, 1, 1),
		TargetDate:   date(2025, 1, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, draft.DurationMonths)
	assert.Equal(t, 600.0, draft.MonthlySavings)
	assert.Equal(t, date(2025, 1, 15), draft.TargetDate)
}

func TestNormalize_Incomplete(t *testing.T) {
	// 名称为空
	_, err := Normalize(GoalDraft{TargetAmount: 1200, StartDate: date(2025, 1, 1), TargetDate: date(2026, 1, 1)})
	assert.ErrorIs(t, err, ErrIncompleteGoal)

	// 目标金额非正
	_, err = Normalize(GoalDraft{Name: "x", StartDate: date(2025, 1, 1), TargetDate: date(2026, 1, 1)})
	assert.ErrorIs(t, err, ErrIncompleteGoal)

	// 既无月数也无可用的目标日期
	_, err = Normalize(GoalDraft{Name: "x", TargetAmount: 1200, StartDate: date(2025, 1, 1)})
	assert.ErrorIs(t, err, ErrIncompleteGoal)

	// 目标日期早于开始日期，推不出月数
	_, err = Normalize(GoalDraft{Name: "x", TargetAmount: 1200, StartDate: date(2025, 6, 1), TargetDate: date(2025, 1, 1)})
	assert.ErrorIs(t, err, ErrIncompleteGoal)
}

func TestRemainingMonths(t *testing.T) {
	assert.Equal(t, 10, RemainingMonths(1000, 0, 100))
	assert.Equal(t, 5, RemainingMonths(1000, 500, 100))
	// 除不尽向上取整
	assert.Equal(t, 4, RemainingMonths(1000, 0, 300))
	// 已达标
	assert.Equal(t, 0, RemainingMonths(1000, 1000, 100))
	assert.Equal(t, 0, RemainingMonths(1000, 1200, 100))
	// 每月储蓄额为 0 时除零保护
	assert.Equal(t, 0, RemainingMonths(1000, 0, 0))
}

func TestProjectGoal(t *testing.T) {
	now := date(2025, 6, 15)
	goal := models.SavingsGoal{
		TargetAmount:   1200,
		CurrentSaved:   0,
		StartDate:      date(2025, 1, 1),
		TargetDate:     date(2026, 1, 1),
		MonthlySavings: 100,
	}

	// 尚未存入：沿用原目标日期
	p := ProjectGoal(goal, now)
	assert.Equal(t, 1200.0, p.RemainingAmount)
	assert.Equal(t, 12, p.RemainingMonths)
	assert.Equal(t, date(2026, 1, 1), p.ProjectedTargetDate)
	assert.Equal(t, "1 year", p.DurationLabel)

	// 有存入：以当前日期为基准重推
	goal.CurrentSaved = 600
	p = ProjectGoal(goal, now)
	assert.Equal(t, 600.0, p.RemainingAmount)
	assert.Equal(t, 6, p.RemainingMonths)
	assert.Equal(t, date(2025, 12, 15), p.ProjectedTargetDate)

	// 已达标：预计日期为当天，剩余为 0
	goal.CurrentSaved = 1500
	p = ProjectGoal(goal, now)
	assert.Equal(t, 0.0, p.RemainingAmount)
	assert.Equal(t, 0, p.RemainingMonths)
	assert.Equal(t, now, p.ProjectedTargetDate)
}

func TestApplySaved(t *testing.T) {
	now := date(2025, 6, 15)
	goal := models.SavingsGoal{
		TargetAmount:   1200,
		StartDate:      date(2025, 1, 1),
		TargetDate:     date(2026, 1, 1),
		MonthlySavings: 100,
	}

	// 存入后目标日期以当天为基准重推
	saved, targetDate := ApplySaved(goal, 600, now)
	assert.Equal(t, 600.0, saved)
	assert.Equal(t, date(2025, 12, 15), targetDate)

	// 清零：回到原目标日期
	saved, targetDate = ApplySaved(goal, 0, now)
	assert.Equal(t, 0.0, saved)
	assert.Equal(t, date(2026, 1, 1), targetDate)
}

func TestGoalRoundTrip(t *testing.T) {
	// 日期驱动与月投驱动互为逆运算：1200 / 12 个月 = 100/月
	byDates := Recompute(GoalDraft{
		TargetAmount: 1200,
		StartDate:    date(2025, 1, 1),
		TargetDate:   date(2026, 1, 1),
	}, DriverDates)
	require.Equal(t, 100.0, byDates.MonthlySavings)

	byMonthly := Recompute(GoalDraft{
		TargetAmount:   1200,
		StartDate:      date(2025, 1, 1),
		MonthlySavings: byDates.MonthlySavings,
	}, DriverMonthlySavings)
	assert.Equal(t, 12, byMonthly.DurationMonths)
	assert.Equal(t, date(2026, 1, 1), byMonthly.TargetDate)
}

func TestIsValidDriver(t *testing.T) {
	assert.True(t, IsValidDriver(DriverNone))
	assert.True(t, IsValidDriver(DriverDates))
	assert.True(t, IsValidDriver(DriverDuration))
	assert.True(t, IsValidDriver(DriverTargetAmount))
	assert.True(t, IsValidDriver(DriverMonthlySavings))
	assert.False(t, IsValidDriver(DriverField("amount")))
}
