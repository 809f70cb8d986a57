package service

import "errors"

// 业务校验错误，均为可恢复的输入拒绝，由 api 层转换为 400 响应
var (
	// ErrAllocationOverflow 三类预算比例之和超过 100%
	ErrAllocationOverflow = errors.New("三类预算比例之和不能超过 100%")
	// ErrBudgetExceeded 类别支出总额超出该类别预算
	ErrBudgetExceeded = errors.New("该类别支出总额已超出预算")
	// ErrIncompleteGoal 信息不足，无法补全储蓄目标的全部字段
	ErrIncompleteGoal = errors.New("目标信息不完整，无法推算储蓄计划")
)
