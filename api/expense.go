package api

import (
	"strconv"
	"strings"
	"time"

	"budgeto/database"
	"budgeto/models"
	"budgeto/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建支出记录请求
type CreateExpenseRequest struct {
	Category string  `json:"category" binding:"required" example:"needs"`
	Name     string  `json:"name" binding:"required" example:"Internet Bill"`
	Amount   float64 `json:"amount" binding:"required,gt=0" example:"1500"`
	Date     string  `json:"date" example:"2025-06-15"`
}

// UpdateExpenseRequest 更新支出记录请求
type UpdateExpenseRequest struct {
	Name   string  `json:"name" example:"Internet Bill"`
	Amount float64 `json:"amount" binding:"omitempty,gt=0" example:"1500"`
	Date   string  `json:"date" example:"2025-06-15"`
}

// ExpenseListRequest 支出记录列表请求
type ExpenseListRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"10"`
	Category string `form:"category" example:"needs"`
}

// categoryTotal 汇总某一类别当前的支出总额，可排除指定记录（编辑场景）
func categoryTotal(category string, excludeID uint) (float64, error) {
	var total float64
	query := database.DB.Model(&models.Expense{}).
		Where("user_id = ? AND category = ?", models.DefaultUserID, category)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// Create 创建支出记录
// @Summary 创建支出记录
// @Description 在指定类别下新增一笔支出。新增后类别总额超出预算时拒绝；类别预算为 0 时，首笔支出自动将该类别预算设为支出金额。
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "超出预算或参数错误"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "支出名称不能为空")
		return
	}
	if !models.IsValidCategory(req.Category) {
		BadRequest(c, "无效的预算类别")
		return
	}

	// 解析日期，缺省为今天
	expenseDate := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		expenseDate = parsed
	}

	settings, err := loadSettings()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "读取预算设置失败"))
		return
	}

	total, err := categoryTotal(req.Category, 0)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询支出总额失败"))
		return
	}

	budget := service.BucketBudget(settings.MonthlyIncome, settings.Percentage(req.Category))
	if budget == 0 {
		// 预算为 0 的引导行为：首笔支出自动把该类别预算设为支出金额
		percentage := service.PercentageFromAmount(req.Amount, settings.MonthlyIncome)
		if percentage > 0 {
			settings.SetPercentage(req.Category, percentage)
			if err := database.DB.Model(settings).Update(req.Category+"_percentage", percentage).Error; err != nil {
				InternalError(c, SafeErrorMessage(err, "更新预算失败"))
				return
			}
		}
	} else if err := service.ValidateExpenseAgainstBudget(total+req.Amount, budget); err != nil {
		BadRequest(c, err.Error())
		return
	}

	expense := models.Expense{
		UserID:   models.DefaultUserID,
		Category: req.Category,
		Name:     req.Name,
		Amount:   req.Amount,
		Date:     expenseDate,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建支出记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", expense)
}

// List 获取支出记录列表
// @Summary 获取支出记录列表
// @Description 获取支出记录列表，支持分页和类别筛选
// @Tags 支出记录
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param category query string false "类别筛选 (needs/wants/savings)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}} "获取成功"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Expense{}).Where("user_id = ?", models.DefaultUserID)

	// 类别筛选
	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			BadRequest(c, "无效的预算类别")
			return
		}
		query = query.Where("category = ?", req.Category)
	}

	// 获取总数
	var total int64
	query.Count(&total)

	// 获取列表
	var expenses []models.Expense
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("date DESC, id DESC").Offset(offset).Limit(req.PageSize).Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     expenses,
	})
}

// Get 获取单条支出记录
// @Summary 获取单条支出记录
// @Description 根据ID获取支出记录详情
// @Tags 支出记录
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, models.DefaultUserID).First(&expense).Error; err != nil {
		NotFound(c, "支出记录不存在")
		return
	}

	Success(c, expense)
}

// Update 更新支出记录
// @Summary 更新支出记录
// @Description 更新支出的名称、金额或日期。金额变更后类别总额超出预算时拒绝，原记录保持不变。
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param id path int true "支出记录ID"
// @Param request body UpdateExpenseRequest true "更新内容"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "超出预算或参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, models.DefaultUserID).First(&expense).Error; err != nil {
		NotFound(c, "支出记录不存在")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["date"] = parsed
	}
	if req.Amount > 0 && req.Amount != expense.Amount {
		settings, err := loadSettings()
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "读取预算设置失败"))
			return
		}
		total, err := categoryTotal(expense.Category, expense.ID)
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "查询支出总额失败"))
			return
		}
		budget := service.BucketBudget(settings.MonthlyIncome, settings.Percentage(expense.Category))
		if err := service.ValidateExpenseAgainstBudget(total+req.Amount, budget); err != nil {
			BadRequest(c, err.Error())
			return
		}
		updates["amount"] = req.Amount
	}

	if len(updates) == 0 {
		Success(c, expense)
		return
	}

	if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新支出记录失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(&expense, expense.ID)
	SuccessWithMessage(c, "更新成功", expense)
}

// Delete 删除支出记录
// @Summary 删除支出记录
// @Description 根据ID删除支出记录
// @Tags 支出记录
// @Produce json
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, models.DefaultUserID).First(&expense).Error; err != nil {
		NotFound(c, "支出记录不存在")
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除支出记录失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
