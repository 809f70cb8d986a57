package service

import (
	"math"
	"strings"
	"time"

	"budgeto/models"
)

// DriverField 目标编辑会话中最近一次被用户修改的字段。
// 目标金额、目标日期（决定月数）与每月储蓄额互相冗余，
// 记住最后修改的字段即可确定性地决定重算哪些下游字段。
type DriverField string

const (
	DriverNone           DriverField = ""
	DriverTargetAmount   DriverField = "targetAmount"
	DriverMonthlySavings DriverField = "monthlySavings"
	DriverDates          DriverField = "dates"
	DriverDuration       DriverField = "duration"
)

// IsValidDriver 校验驱动字段取值是否合法
func IsValidDriver(d DriverField) bool {
	switch d {
	case DriverNone, DriverTargetAmount, DriverMonthlySavings, DriverDates, DriverDuration:
		return true
	}
	return false
}

// GoalDraft 编辑中的储蓄目标快照。TargetDate 零值表示未填写。
type GoalDraft struct {
	Name           string
	TargetAmount   float64
	StartDate      time.Time
	TargetDate     time.Time
	DurationMonths int
	MonthlySavings float64
}

// monthlyFromTarget 目标金额均摊到月数，取整到整币单位，最低为 1
func monthlyFromTarget(targetAmount float64, months int) float64 {
	if months < 1 {
		months = 1
	}
	monthly := math.Round(targetAmount / float64(months))
	if monthly < 1 {
		monthly = 1
	}
	return monthly
}

// Recompute 按"最后修改字段优先"规则做一轮推算，保持
// {目标金额, 目标日期, 月数, 每月储蓄额} 互相一致。
// 每次调用只处理一个驱动字段、只做一轮下游推算，不回写正在编辑的字段。
func Recompute(draft GoalDraft, driver DriverField) GoalDraft {
	switch driver {
	case DriverDates:
		months := MonthsBetween(draft.StartDate, draft.TargetDate)
		draft.DurationMonths = months
		if months > 0 && draft.TargetAmount > 0 {
			draft.MonthlySavings = monthlyFromTarget(draft.TargetAmount, months)
		}
	case DriverTargetAmount:
		if !draft.TargetDate.IsZero() {
			months := MonthsBetween(draft.StartDate, draft.TargetDate)
			draft.DurationMonths = months
			if months > 0 && draft.TargetAmount > 0 {
				draft.MonthlySavings = monthlyFromTarget(draft.TargetAmount, months)
			}
		} else if draft.DurationMonths > 0 && draft.TargetAmount > 0 {
			draft.MonthlySavings = monthlyFromTarget(draft.TargetAmount, draft.DurationMonths)
			draft.TargetDate = AddMonths(draft.StartDate, draft.DurationMonths)
		}
	case DriverDuration:
		if draft.DurationMonths > 0 {
			draft.TargetDate = AddMonths(draft.StartDate, draft.DurationMonths)
			if draft.TargetAmount > 0 {
				draft.MonthlySavings = monthlyFromTarget(draft.TargetAmount, draft.DurationMonths)
			}
		}
	case DriverMonthlySavings:
		if draft.MonthlySavings > 0 && draft.TargetAmount > 0 {
			months := int(math.Ceil(draft.TargetAmount / draft.MonthlySavings))
			if months < 1 {
				months = 1
			}
			draft.DurationMonths = months
			draft.TargetDate = AddMonths(draft.StartDate, months)
		}
	}
	return draft
}

// Normalize 保存前校验并补全草稿：名称、目标金额、开始日期为必填；
// 月数缺失时由目标日期推出，仍推不出则拒绝；每月储蓄额缺失时均摊补全。
func Normalize(draft GoalDraft) (GoalDraft, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" || draft.TargetAmount <= 0 || draft.StartDate.IsZero() {
		return draft, ErrIncompleteGoal
	}
	if draft.DurationMonths <= 0 {
		draft.DurationMonths = MonthsBetween(draft.StartDate, draft.TargetDate)
		// 同一日历月内的未来目标日期按 1 个月计
		if draft.DurationMonths <= 0 && draft.TargetDate.After(draft.StartDate) {
			draft.DurationMonths = 1
		}
	}
	if draft.DurationMonths <= 0 {
		return draft, ErrIncompleteGoal
	}
	if draft.TargetDate.IsZero() {
		draft.TargetDate = AddMonths(draft.StartDate, draft.DurationMonths)
	}
	if draft.MonthlySavings <= 0 {
		draft.MonthlySavings = monthlyFromTarget(draft.TargetAmount, draft.DurationMonths)
	}
	return draft, nil
}

// GoalProgress 目标进度预测结果（只读，不落库）
type GoalProgress struct {
	RemainingAmount     float64   `json:"remaining_amount"`
	RemainingMonths     int       `json:"remaining_months"`
	ProjectedTargetDate time.Time `json:"projected_target_date"`
	DurationMonths      int       `json:"duration_months"`
	DurationLabel       string    `json:"duration_label"`
}

// RemainingMonths 按当前已存金额推算剩余月数。
// 每月储蓄额非正或已达标时返回 0（除零保护）。
func RemainingMonths(targetAmount, currentSaved, monthlySavings float64) int {
	if monthlySavings <= 0 || currentSaved >= targetAmount {
		return 0
	}
	return int(math.Ceil((targetAmount - currentSaved) / monthlySavings))
}

// ProjectGoal 只读的进度预测。
// 尚未存入任何金额时沿用原目标日期；一旦有存入，
// 预计达成日期以当前日期为基准重推；已达标则为当天。
func ProjectGoal(goal models.SavingsGoal, now time.Time) GoalProgress {
	remaining := math.Max(0, goal.TargetAmount-goal.CurrentSaved)
	months := RemainingMonths(goal.TargetAmount, goal.CurrentSaved, goal.MonthlySavings)

	projected := goal.TargetDate
	if goal.CurrentSaved != 0 {
		if months == 0 {
			projected = now
		} else {
			projected = AddMonths(now, months)
		}
	}

	duration := MonthsBetween(goal.StartDate, goal.TargetDate)
	return GoalProgress{
		RemainingAmount:     remaining,
		RemainingMonths:     months,
		ProjectedTargetDate: projected,
		DurationMonths:      duration,
		DurationLabel:       DurationLabel(duration),
	}
}

// ApplySaved 更新已存金额并按进度重推目标日期。
// 返回应持久化的 (current_saved, target_date)；目标金额、开始日期、每月储蓄额不受影响。
func ApplySaved(goal models.SavingsGoal, newSaved float64, now time.Time) (float64, time.Time) {
	goal.CurrentSaved = newSaved
	progress := ProjectGoal(goal, now)
	return newSaved, progress.ProjectedTargetDate
}
