package api

import (
	"budgeto/database"
	"budgeto/models"
	"budgeto/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler 预算设置处理器
type SettingsHandler struct{}

// NewSettingsHandler 创建预算设置处理器
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// SettingsResponse 预算设置返回，附带按比例推算出的各类别预算金额
type SettingsResponse struct {
	models.BudgetSettings
	NeedsBudget   float64 `json:"needs_budget"`
	WantsBudget   float64 `json:"wants_budget"`
	SavingsBudget float64 `json:"savings_budget"`
	TotalBudget   float64 `json:"total_budget"`
}

// UpdateIncomeRequest 更新月收入请求
type UpdateIncomeRequest struct {
	MonthlyIncome float64 `json:"monthly_income" binding:"gte=0" example:"50000"`
}

// UpdatePercentageRequest 更新单个类别分配比例请求
type UpdatePercentageRequest struct {
	Category   string  `json:"category" binding:"required" example:"needs"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100" example:"50"`
}

// UpdateBudgetRequest 以绝对金额设置单个类别预算请求
type UpdateBudgetRequest struct {
	Category string  `json:"category" binding:"required" example:"needs"`
	Amount   float64 `json:"amount" binding:"gte=0" example:"25000"`
}

// loadSettings 读取当前用户的预算设置，不存在时创建默认记录
func loadSettings() (*models.BudgetSettings, error) {
	var settings models.BudgetSettings
	err := database.DB.Where("user_id = ?", models.DefaultUserID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	// 首次访问：落一条默认设置（收入 0，50/30/20）
	settings = models.BudgetSettings{
		UserID:            models.DefaultUserID,
		NeedsPercentage:   models.DefaultNeedsPercentage,
		WantsPercentage:   models.DefaultWantsPercentage,
		SavingsPercentage: models.DefaultSavingsPercentage,
	}
	if err := database.DB.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func settingsResponse(settings *models.BudgetSettings) SettingsResponse {
	needs := service.BucketBudget(settings.MonthlyIncome, settings.NeedsPercentage)
	wants := service.BucketBudget(settings.MonthlyIncome, settings.WantsPercentage)
	savings := service.BucketBudget(settings.MonthlyIncome, settings.SavingsPercentage)
	return SettingsResponse{
		BudgetSettings: *settings,
		NeedsBudget:    needs,
		WantsBudget:    wants,
		SavingsBudget:  savings,
		TotalBudget:    needs + wants + savings,
	}
}

// Get 获取预算设置
// @Summary 获取预算设置
// @Description 获取月收入、三类分配比例及推算出的各类别预算金额；首次访问自动创建默认设置
// @Tags 预算设置
// @Produce json
// @Success 200 {object} Response{data=SettingsResponse} "获取成功"
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "读取预算设置失败"))
		return
	}
	Success(c, settingsResponse(settings))
}

// UpdateIncome 更新月收入
// @Summary 更新月收入
// @Description 设置月收入，需为非负数；各类别预算金额随之重算
// @Tags 预算设置
// @Accept json
// @Produce json
// @Param request body UpdateIncomeRequest true "月收入"
// @Success 200 {object} Response{data=SettingsResponse} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/settings/income [put]
func (h *SettingsHandler) UpdateIncome(c *gin.Context) {
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	settings, err := loadSettings()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "读取预算设置失败"))
		return
	}

	if err := database.DB.Model(settings).Update("monthly_income", req.MonthlyIncome).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新月收入失败"))
		return
	}
	settings.MonthlyIncome = req.MonthlyIncome

	SuccessWithMessage(c, "更新成功", settingsResponse(settings))
}

// UpdatePercentage 更新单个类别的分配比例
// @Summary 更新类别分配比例
// @Description 设置单个类别的分配比例。三类比例之和超过 100% 时整体拒绝，不做部分应用。
// @Tags 预算设置
// @Accept json
// @Produce json
// @Param request body UpdatePercentageRequest true "类别与比例"
// @Success 200 {object} Response{data=SettingsResponse} "更新成功"
// @Failure 400 {object} Response "比例之和超过 100% 或参数错误"
// @Router /api/v1/settings/percentages [put]
func (h *SettingsHandler) UpdatePercentage(c *gin.Context) {
	var req UpdatePercentageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if !models.IsValidCategory(req.Category) {
		BadRequest(c, "无效的预算类别")
		return
	}

	settings, err := loadSettings()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "读取预算设置失败"))
		return
	}

	// 校验通过前不改动任何字段：要么整体生效，要么保持原状
	if err := service.ValidateAllocation(req.Percentage, settings.OtherPercentages(req.Category)); err != nil {
		BadRequest(c, err.Error())
		return
	}

	settings.SetPercentage(req.Category, req.Percentage)
	if err := database.DB.Model(settings).Update(req.Category+"_percentage", req.Percentage).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新分配比例失败"))
		return
	}

	SuccessWithMessage(c, "更新成功", settingsResponse(settings))
}

// UpdateBudget 以绝对金额设置单个类别预算
// @Summary 以金额设置类别预算
// @Description 将金额换算为占收入的比例后保存，与比例视图保持一致；换算后同样受 100% 总分配校验
// @Tags 预算设置
// @Accept json
// @Produce json
// @Param request body UpdateBudgetRequest true "类别与预算金额"
// @Success 200 {object} Response{data=SettingsResponse} "更新成功"
// @Failure 400 {object} Response "比例之和超过 100% 或参数错误"
// @Router /api/v1/settings/budget [put]
func (h *SettingsHandler) UpdateBudget(c *gin.Context) {
	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if !models.IsValidCategory(req.Category) {
		BadRequest(c, "无效的预算类别")
		return
	}

	settings, err := loadSettings()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "读取预算设置失败"))
		return
	}

	// 金额与比例是同一数量的两种视图，这里换算成比例存储
	percentage := service.PercentageFromAmount(req.Amount, settings.MonthlyIncome)
	if err := service.ValidateAllocation(percentage, settings.OtherPercentages(req.Category)); err != nil {
		BadRequest(c, err.Error())
		return
	}

	settings.SetPercentage(req.Category, percentage)
	if err := database.DB.Model(settings).Update(req.Category+"_percentage", percentage).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新预算失败"))
		return
	}

	SuccessWithMessage(c, "更新成功", settingsResponse(settings))
}
