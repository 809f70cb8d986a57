package api

import (
	"time"

	"budgeto/database"
	"budgeto/models"
	"budgeto/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 预算报表处理器
type ReportHandler struct{}

// NewReportHandler 创建预算报表处理器
func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// loadReportData 汇总报表数据，报表与导出接口共用
func loadReportData() (service.ReportData, error) {
	settings, err := loadSettings()
	if err != nil {
		return service.ReportData{}, err
	}

	var expenses []models.Expense
	if err := database.DB.Where("user_id = ?", models.DefaultUserID).
		Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return service.ReportData{}, err
	}

	var goals []models.SavingsGoal
	if err := database.DB.Where("user_id = ?", models.DefaultUserID).
		Order("created_at DESC").Find(&goals).Error; err != nil {
		return service.ReportData{}, err
	}

	var plans []models.InvestmentPlan
	if err := database.DB.Where("user_id = ?", models.DefaultUserID).
		Order("created_at DESC").Find(&plans).Error; err != nil {
		return service.ReportData{}, err
	}

	return service.BuildReport(*settings, expenses, goals, plans, time.Now()), nil
}

// GetReport 获取预算报表
// @Summary 获取预算报表
// @Description 汇总预算设置、支出、储蓄目标与定投计划生成报表数据
// @Tags 报表
// @Produce json
// @Success 200 {object} Response{data=service.ReportData} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := loadReportData()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成报表失败"))
		return
	}
	Success(c, report)
}
