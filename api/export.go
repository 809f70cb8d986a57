package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"budgeto/models"
	"budgeto/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 报表导出处理器
type ExportHandler struct{}

// NewExportHandler 创建报表导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// 报表中三个预算类别的展示名
var categoryLabels = map[string]string{
	models.CategoryNeeds:   "必要支出",
	models.CategoryWants:   "弹性支出",
	models.CategorySavings: "储蓄",
}

// ExportCSV 导出预算报表为 CSV
// @Summary 导出预算报表为 CSV
// @Description 导出报表汇总、各类别支出明细、储蓄目标与定投计划为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "生成失败"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	report, err := loadReportData()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成报表失败"))
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	rows := [][]string{
		{"预算报表", service.FormatDateReadable(report.GeneratedAt)},
		{},
		{"月收入", service.FormatCurrency(report.MonthlyIncome)},
		{"预算合计", service.FormatCurrency(report.TotalBudget)},
		{"支出合计", service.FormatCurrency(report.TotalSpent)},
		{"剩余", service.FormatCurrency(report.TotalRemaining)},
		{},
		{"类别", "占比", "预算", "已支出", "剩余"},
	}
	for _, section := range reportSections(report) {
		rows = append(rows, []string{
			categoryLabels[section.Category],
			fmt.Sprintf("%.2f%%", section.Percentage),
			service.FormatCurrency(section.Budget),
			service.FormatCurrency(section.Total),
			service.FormatCurrency(service.Remaining(section.Budget, section.Total)),
		})
	}

	rows = append(rows, []string{}, []string{"类别", "名称", "金额", "日期"})
	for _, section := range reportSections(report) {
		shown, omitted := service.TruncateExpenses(section.Expenses)
		for _, expense := range shown {
			rows = append(rows, []string{
				categoryLabels[section.Category],
				expense.Name,
				service.FormatCurrency(expense.Amount),
				expense.Date.Format("2006-01-02"),
			})
		}
		if omitted > 0 {
			rows = append(rows, []string{categoryLabels[section.Category], service.TruncateMarker(omitted)})
		}
	}

	rows = append(rows, []string{}, []string{"储蓄目标", "目标金额", "已储蓄", "每月储蓄", "目标日期"})
	for _, goal := range report.Goals {
		rows = append(rows, []string{
			goal.Name,
			service.FormatCurrency(goal.TargetAmount),
			service.FormatCurrency(goal.CurrentSaved),
			service.FormatCurrency(goal.MonthlySavings),
			service.FormatDateReadable(goal.TargetDate),
		})
	}

	rows = append(rows, []string{}, []string{"定投计划", "每月投入", "投资期限", "年化收益率", "预测总额"})
	for _, plan := range report.InvestmentPlans {
		rows = append(rows, []string{
			plan.Name,
			service.FormatCurrency(plan.MonthlyInvestment),
			service.DurationLabel(plan.DurationMonths),
			fmt.Sprintf("%.2f%%", plan.EstimatedReturnRate),
			service.FormatCurrency(plan.TotalReturn),
		})
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("budget_report_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出预算报表为 Excel
// @Summary 导出预算报表为 Excel
// @Description 导出报表汇总、各类别支出明细、储蓄目标与定投计划为 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "生成失败"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	report, err := loadReportData()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成报表失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "预算报表"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 20)

	row := 1
	writeHeader := func(cells ...string) {
		for i, cell := range cells {
			ref := fmt.Sprintf("%c%d", 'A'+i, row)
			f.SetCellValue(sheetName, ref, cell)
			f.SetCellStyle(sheetName, ref, ref, headerStyle)
		}
		row++
	}
	writeRow := func(cells ...interface{}) {
		for i, cell := range cells {
			ref := fmt.Sprintf("%c%d", 'A'+i, row)
			f.SetCellValue(sheetName, ref, cell)
			f.SetCellStyle(sheetName, ref, ref, dataStyle)
		}
		row++
	}

	// 汇总
	writeHeader("预算报表", service.FormatDateReadable(report.GeneratedAt))
	writeRow("月收入", service.FormatCurrency(report.MonthlyIncome))
	writeRow("预算合计", service.FormatCurrency(report.TotalBudget))
	writeRow("支出合计", service.FormatCurrency(report.TotalSpent))
	writeRow("剩余", service.FormatCurrency(report.TotalRemaining))
	row++

	// 类别概览
	writeHeader("类别", "占比", "预算", "已支出", "剩余")
	for _, section := range reportSections(report) {
		writeRow(
			categoryLabels[section.Category],
			fmt.Sprintf("%.2f%%", section.Percentage),
			service.FormatCurrency(section.Budget),
			service.FormatCurrency(section.Total),
			service.FormatCurrency(service.Remaining(section.Budget, section.Total)),
		)
	}
	row++

	// 各类别支出明细
	for _, section := range reportSections(report) {
		writeHeader(categoryLabels[section.Category], "金额", "日期")
		shown, omitted := service.TruncateExpenses(section.Expenses)
		for _, expense := range shown {
			writeRow(expense.Name, service.FormatCurrency(expense.Amount), expense.Date.Format("2006-01-02"))
		}
		if omitted > 0 {
			writeRow(service.TruncateMarker(omitted))
		}
		row++
	}

	// 储蓄目标
	writeHeader("储蓄目标", "目标金额", "已储蓄", "每月储蓄", "目标日期")
	for _, goal := range report.Goals {
		writeRow(
			goal.Name,
			service.FormatCurrency(goal.TargetAmount),
			service.FormatCurrency(goal.CurrentSaved),
			service.FormatCurrency(goal.MonthlySavings),
			service.FormatDateReadable(goal.TargetDate),
		)
	}
	row++

	// 定投计划
	writeHeader("定投计划", "每月投入", "投资期限", "年化收益率", "预测总额")
	for _, plan := range report.InvestmentPlans {
		writeRow(
			plan.Name,
			service.FormatCurrency(plan.MonthlyInvestment),
			service.DurationLabel(plan.DurationMonths),
			fmt.Sprintf("%.2f%%", plan.EstimatedReturnRate),
			service.FormatCurrency(plan.TotalReturn),
		)
	}

	// 设置响应头
	filename := fmt.Sprintf("budget_report_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "生成 Excel 失败"})
		return
	}
}

// reportSection 导出时按类别遍历用的切片视图
type reportSection struct {
	Category   string
	Percentage float64
	Budget     float64
	Total      float64
	Expenses   []models.Expense
}

func reportSections(report service.ReportData) []reportSection {
	return []reportSection{
		{models.CategoryNeeds, report.NeedsPercentage, report.NeedsBudget, report.NeedsTotal, report.NeedsExpenses},
		{models.CategoryWants, report.WantsPercentage, report.WantsBudget, report.WantsTotal, report.WantsExpenses},
		{models.CategorySavings, report.SavingsPercentage, report.SavingsBudget, report.SavingsTotal, report.SavingsExpenses},
	}
}
