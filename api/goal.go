package api

import (
	"errors"
	"strconv"
	"time"

	"budgeto/database"
	"budgeto/models"
	"budgeto/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler 储蓄目标处理器
type GoalHandler struct{}

// NewGoalHandler 创建储蓄目标处理器
func NewGoalHandler() *GoalHandler {
	return &GoalHandler{}
}

// SaveGoalRequest 创建/更新储蓄目标请求
// changed_field 标记本次编辑中用户最后修改的字段，决定重算哪些依赖字段：
// targetAmount / monthlySavings / dates / duration，留空表示直接保存
type SaveGoalRequest struct {
	Name           string  `json:"name" binding:"required" example:"Travel to Turkey"`
	Type           string  `json:"type" binding:"required" example:"short-term"`
	Category       string  `json:"category" binding:"required" example:"savings"`
	TargetAmount   float64 `json:"target_amount" binding:"required,gt=0" example:"120000"`
	CurrentSaved   float64 `json:"current_saved" binding:"gte=0" example:"0"`
	StartDate      string  `json:"start_date" binding:"required" example:"2025-01-01"`
	TargetDate     string  `json:"target_date" example:"2026-01-01"`
	DurationMonths int     `json:"duration_months" example:"12"`
	MonthlySavings float64 `json:"monthly_savings" example:"10000"`
	ChangedField   string  `json:"changed_field" example:"dates"`
}

// SavedAmountRequest 追加/设置已存金额请求
type SavedAmountRequest struct {
	Amount float64 `json:"amount" example:"5000"`
}

// GoalResponse 储蓄目标返回，附带只读的进度预测
type GoalResponse struct {
	models.SavingsGoal
	Progress service.GoalProgress `json:"progress"`
}

func goalResponse(goal models.SavingsGoal) GoalResponse {
	return GoalResponse{
		SavingsGoal: goal,
		Progress:    service.ProjectGoal(goal, time.Now()),
	}
}

// buildDraft 解析请求并完成一轮重算与保存前补全
func buildDraft(req *SaveGoalRequest) (service.GoalDraft, error) {
	driver := service.DriverField(req.ChangedField)
	if !service.IsValidDriver(driver) {
		return service.GoalDraft{}, errors.New("无效的 changed_field 取值")
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return service.GoalDraft{}, errors.New("开始日期格式错误，应为: 2006-01-02")
	}
	var targetDate time.Time
	if req.TargetDate != "" {
		targetDate, err = time.ParseInLocation("2006-01-02", req.TargetDate, time.Local)
		if err != nil {
			return service.GoalDraft{}, errors.New("目标日期格式错误，应为: 2006-01-02")
		}
	}

	draft := service.GoalDraft{
		Name:           req.Name,
		TargetAmount:   req.TargetAmount,
		StartDate:      startDate,
		TargetDate:     targetDate,
		DurationMonths: req.DurationMonths,
		MonthlySavings: req.MonthlySavings,
	}
	// 一轮下游重算后补全缺失字段；信息不足时返回 ErrIncompleteGoal
	draft = service.Recompute(draft, driver)
	return service.Normalize(draft)
}

// Create 创建储蓄目标
// @Summary 创建储蓄目标
// @Description 创建目标前按 changed_field 做一轮字段重算，补全目标日期、月数与每月储蓄额；信息不足时拒绝
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param request body SaveGoalRequest true "目标信息"
// @Success 200 {object} Response{data=GoalResponse} "创建成功"
// @Failure 400 {object} Response "信息不完整或参数错误"
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if !models.IsValidGoalType(req.Type) {
		BadRequest(c, "无效的目标期限类型")
		return
	}
	if !models.IsValidCategory(req.Category) {
		BadRequest(c, "无效的预算类别")
		return
	}

	draft, err := buildDraft(&req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	goal := models.SavingsGoal{
		UserID:         models.DefaultUserID,
		Name:           draft.Name,
		Type:           req.Type,
		Category:       req.Category,
		TargetAmount:   draft.TargetAmount,
		CurrentSaved:   req.CurrentSaved,
		StartDate:      draft.StartDate,
		TargetDate:     draft.TargetDate,
		MonthlySavings: draft.MonthlySavings,
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建储蓄目标失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", goalResponse(goal))
}

// List 获取储蓄目标列表
// @Summary 获取储蓄目标列表
// @Description 获取全部储蓄目标，按创建时间倒序，每条附带进度预测
// @Tags 储蓄目标
// @Produce json
// @Success 200 {object} Response{data=[]GoalResponse} "获取成功"
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	var goals []models.SavingsGoal
	if err := database.DB.Where("user_id = ?", models.DefaultUserID).
		Order("created_at DESC").Find(&goals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	responses := make([]GoalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, goalResponse(goal))
	}
	Success(c, responses)
}

// Get 获取单个储蓄目标
// @Summary 获取单个储蓄目标
// @Description 根据ID获取储蓄目标详情及进度预测
// @Tags 储蓄目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} Response{data=GoalResponse} "获取成功"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	goal, ok := h.find(c)
	if !ok {
		return
	}
	Success(c, goalResponse(*goal))
}

// Update 更新储蓄目标
// @Summary 更新储蓄目标
// @Description 按 changed_field 做一轮字段重算后整体覆盖目标字段；已存金额不在此接口修改
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param request body SaveGoalRequest true "目标信息"
// @Success 200 {object} Response{data=GoalResponse} "更新成功"
// @Failure 400 {object} Response "信息不完整或参数错误"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	goal, ok := h.find(c)
	if !ok {
		return
	}

	var req SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if !models.IsValidGoalType(req.Type) {
		BadRequest(c, "无效的目标期限类型")
		return
	}
	if !models.IsValidCategory(req.Category) {
		BadRequest(c, "无效的预算类别")
		return
	}

	draft, err := buildDraft(&req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{
		"name":            draft.Name,
		"type":            req.Type,
		"category":        req.Category,
		"target_amount":   draft.TargetAmount,
		"start_date":      draft.StartDate,
		"target_date":     draft.TargetDate,
		"monthly_savings": draft.MonthlySavings,
	}
	if err := database.DB.Model(goal).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新储蓄目标失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(goal, goal.ID)
	SuccessWithMessage(c, "更新成功", goalResponse(*goal))
}

// Delete 删除储蓄目标
// @Summary 删除储蓄目标
// @Description 根据ID删除储蓄目标
// @Tags 储蓄目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	goal, ok := h.find(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除储蓄目标失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// AddSaved 追加已存金额
// @Summary 追加已存金额
// @Description 把金额累加到已存金额上，并按进度用当前日期重推预计达成日期；金额必须为正
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param request body SavedAmountRequest true "追加金额"
// @Success 200 {object} Response{data=GoalResponse} "更新成功"
// @Failure 400 {object} Response "金额非正或参数错误"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id}/savings [post]
func (h *GoalHandler) AddSaved(c *gin.Context) {
	goal, ok := h.find(c)
	if !ok {
		return
	}

	var req SavedAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if req.Amount <= 0 {
		BadRequest(c, "追加金额必须大于 0")
		return
	}

	h.persistSaved(c, goal, goal.CurrentSaved+req.Amount)
}

// SetSaved 设置已存金额
// @Summary 设置已存金额
// @Description 将已存金额设为指定值（可为 0），并按进度重推预计达成日期
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param request body SavedAmountRequest true "已存金额"
// @Success 200 {object} Response{data=GoalResponse} "更新成功"
// @Failure 400 {object} Response "金额为负或参数错误"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id}/savings [put]
func (h *GoalHandler) SetSaved(c *gin.Context) {
	goal, ok := h.find(c)
	if !ok {
		return
	}

	var req SavedAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if req.Amount < 0 {
		BadRequest(c, "已存金额不能为负")
		return
	}

	h.persistSaved(c, goal, req.Amount)
}

// ClearSaved 清零已存金额
// @Summary 清零已存金额
// @Description 将已存金额清零，目标日期回到原定日期
// @Tags 储蓄目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} Response{data=GoalResponse} "更新成功"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id}/savings [delete]
func (h *GoalHandler) ClearSaved(c *gin.Context) {
	goal, ok := h.find(c)
	if !ok {
		return
	}
	h.persistSaved(c, goal, 0)
}

// persistSaved 写入 (current_saved, target_date)，其余字段不受已存金额变更影响
func (h *GoalHandler) persistSaved(c *gin.Context, goal *models.SavingsGoal, newSaved float64) {
	saved, targetDate := service.ApplySaved(*goal, newSaved, time.Now())
	updates := map[string]interface{}{
		"current_saved": saved,
		"target_date":   targetDate,
	}
	if err := database.DB.Model(goal).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新已存金额失败"))
		return
	}
	goal.CurrentSaved = saved
	goal.TargetDate = targetDate

	SuccessWithMessage(c, "更新成功", goalResponse(*goal))
}

// find 按路径 ID 查找目标，未找到时写出响应并返回 false
func (h *GoalHandler) find(c *gin.Context) (*models.SavingsGoal, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return nil, false
	}

	var goal models.SavingsGoal
	if err := database.DB.Where("id = ? AND user_id = ?", id, models.DefaultUserID).First(&goal).Error; err != nil {
		NotFound(c, "储蓄目标不存在")
		return nil, false
	}
	return &goal, true
}
