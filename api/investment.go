package api

import (
	"strconv"
	"strings"

	"budgeto/database"
	"budgeto/models"
	"budgeto/service"

	"github.com/gin-gonic/gin"
)

// InvestmentHandler 定投计划处理器
type InvestmentHandler struct{}

// NewInvestmentHandler 创建定投计划处理器
func NewInvestmentHandler() *InvestmentHandler {
	return &InvestmentHandler{}
}

// SaveInvestmentRequest 创建/更新定投计划请求
// total_return 不接受客户端提交，保存时由服务端按复利公式重算快照
type SaveInvestmentRequest struct {
	Name                string  `json:"name" binding:"required" example:"Retirement Fund"`
	MonthlyInvestment   float64 `json:"monthly_investment" binding:"required,gt=0" example:"5000"`
	DurationMonths      int     `json:"duration_months" binding:"required,gt=0" example:"120"`
	EstimatedReturnRate float64 `json:"estimated_return_rate" binding:"gte=0" example:"7.0"`
}

// PreviewInvestmentRequest 定投预测试算请求（不落库）
type PreviewInvestmentRequest struct {
	MonthlyInvestment   float64 `json:"monthly_investment" binding:"required,gt=0" example:"5000"`
	DurationMonths      int     `json:"duration_months" binding:"required,gt=0" example:"120"`
	EstimatedReturnRate float64 `json:"estimated_return_rate" binding:"gte=0" example:"7.0"`
}

// InvestmentResponse 定投计划返回，附带本金合计与预计收益
type InvestmentResponse struct {
	models.InvestmentPlan
	TotalInvested float64 `json:"total_invested"`
	Profit        float64 `json:"profit"`
}

func investmentResponse(plan models.InvestmentPlan) InvestmentResponse {
	invested := service.TotalInvested(plan.MonthlyInvestment, plan.DurationMonths)
	return InvestmentResponse{
		InvestmentPlan: plan,
		TotalInvested:  invested,
		Profit:         plan.TotalReturn - invested,
	}
}

// Create 创建定投计划
// @Summary 创建定投计划
// @Description 创建定投计划，预测总额由服务端按普通年金终值公式计算后快照保存
// @Tags 定投计划
// @Accept json
// @Produce json
// @Param request body SaveInvestmentRequest true "计划信息"
// @Success 200 {object} Response{data=InvestmentResponse} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/investments [post]
func (h *InvestmentHandler) Create(c *gin.Context) {
	var req SaveInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "计划名称不能为空")
		return
	}

	plan := models.InvestmentPlan{
		UserID:              models.DefaultUserID,
		Name:                req.Name,
		MonthlyInvestment:   req.MonthlyInvestment,
		DurationMonths:      req.DurationMonths,
		EstimatedReturnRate: req.EstimatedReturnRate,
		TotalReturn:         service.FutureValue(req.MonthlyInvestment, req.DurationMonths, req.EstimatedReturnRate),
	}

	if err := database.DB.Create(&plan).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建定投计划失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", investmentResponse(plan))
}

// List 获取定投计划列表
// @Summary 获取定投计划列表
// @Description 获取全部定投计划，按创建时间倒序
// @Tags 定投计划
// @Produce json
// @Success 200 {object} Response{data=[]InvestmentResponse} "获取成功"
// @Router /api/v1/investments [get]
func (h *InvestmentHandler) List(c *gin.Context) {
	var plans []models.InvestmentPlan
	if err := database.DB.Where("user_id = ?", models.DefaultUserID).
		Order("created_at DESC").Find(&plans).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	responses := make([]InvestmentResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, investmentResponse(plan))
	}
	Success(c, responses)
}

// Get 获取单个定投计划
// @Summary 获取单个定投计划
// @Description 根据ID获取定投计划详情
// @Tags 定投计划
// @Produce json
// @Param id path int true "计划ID"
// @Success 200 {object} Response{data=InvestmentResponse} "获取成功"
// @Failure 404 {object} Response "计划不存在"
// @Router /api/v1/investments/{id} [get]
func (h *InvestmentHandler) Get(c *gin.Context) {
	plan, ok := h.find(c)
	if !ok {
		return
	}
	Success(c, investmentResponse(*plan))
}

// Update 更新定投计划
// @Summary 更新定投计划
// @Description 更新计划字段并重算预测总额快照
// @Tags 定投计划
// @Accept json
// @Produce json
// @Param id path int true "计划ID"
// @Param request body SaveInvestmentRequest true "计划信息"
// @Success 200 {object} Response{data=InvestmentResponse} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "计划不存在"
// @Router /api/v1/investments/{id} [put]
func (h *InvestmentHandler) Update(c *gin.Context) {
	plan, ok := h.find(c)
	if !ok {
		return
	}

	var req SaveInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "计划名称不能为空")
		return
	}

	updates := map[string]interface{}{
		"name":                  req.Name,
		"monthly_investment":    req.MonthlyInvestment,
		"duration_months":       req.DurationMonths,
		"estimated_return_rate": req.EstimatedReturnRate,
		"total_return":          service.FutureValue(req.MonthlyInvestment, req.DurationMonths, req.EstimatedReturnRate),
	}
	if err := database.DB.Model(plan).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新定投计划失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(plan, plan.ID)
	SuccessWithMessage(c, "更新成功", investmentResponse(*plan))
}

// Delete 删除定投计划
// @Summary 删除定投计划
// @Description 根据ID删除定投计划
// @Tags 定投计划
// @Produce json
// @Param id path int true "计划ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "计划不存在"
// @Router /api/v1/investments/{id} [delete]
func (h *InvestmentHandler) Delete(c *gin.Context) {
	plan, ok := h.find(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(plan).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除定投计划失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// Preview 定投预测试算
// @Summary 定投预测试算
// @Description 按输入试算终值、本金合计与预计收益，不保存任何数据
// @Tags 定投计划
// @Accept json
// @Produce json
// @Param request body PreviewInvestmentRequest true "试算参数"
// @Success 200 {object} Response{data=service.Projection} "试算成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/investments/preview [post]
func (h *InvestmentHandler) Preview(c *gin.Context) {
	var req PreviewInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	Success(c, service.Project(req.MonthlyInvestment, req.DurationMonths, req.EstimatedReturnRate))
}

// find 按路径 ID 查找计划，未找到时写出响应并返回 false
func (h *InvestmentHandler) find(c *gin.Context) (*models.InvestmentPlan, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return nil, false
	}

	var plan models.InvestmentPlan
	if err := database.DB.Where("id = ? AND user_id = ?", id, models.DefaultUserID).First(&plan).Error; err != nil {
		NotFound(c, "定投计划不存在")
		return nil, false
	}
	return &plan, true
}
