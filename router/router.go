package router

import (
	"time"

	"budgeto/api"
	"budgeto/config"
	_ "budgeto/docs"
	"budgeto/middleware"
	"budgeto/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 预算类别（只读）
		v1.GET("/categories", func(c *gin.Context) {
			api.Success(c, models.GetCategories())
		})

		// 预算设置
		settingsHandler := api.NewSettingsHandler()
		settings := v1.Group("/settings")
		{
			settings.GET("", settingsHandler.Get)
			settings.PUT("/income", settingsHandler.UpdateIncome)
			settings.PUT("/percentages", settingsHandler.UpdatePercentage)
			settings.PUT("/budget", settingsHandler.UpdateBudget)
		}

		// 支出记录
		expenseHandler := api.NewExpenseHandler()
		expenses := v1.Group("/expenses")
		expenses.Use(mutationLimit())
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		// 储蓄目标
		goalHandler := api.NewGoalHandler()
		goals := v1.Group("/goals")
		goals.Use(mutationLimit())
		{
			goals.POST("", goalHandler.Create)
			goals.GET("", goalHandler.List)
			goals.GET("/:id", goalHandler.Get)
			goals.PUT("/:id", goalHandler.Update)
			goals.DELETE("/:id", goalHandler.Delete)
			goals.POST("/:id/savings", goalHandler.AddSaved)
			goals.PUT("/:id/savings", goalHandler.SetSaved)
			goals.DELETE("/:id/savings", goalHandler.ClearSaved)
		}

		// 定投计划
		investmentHandler := api.NewInvestmentHandler()
		investments := v1.Group("/investments")
		investments.Use(mutationLimit())
		{
			investments.POST("", investmentHandler.Create)
			investments.GET("", investmentHandler.List)
			investments.POST("/preview", investmentHandler.Preview)
			investments.GET("/:id", investmentHandler.Get)
			investments.PUT("/:id", investmentHandler.Update)
			investments.DELETE("/:id", investmentHandler.Delete)
		}

		// 报表
		reportHandler := api.NewReportHandler()
		v1.GET("/report", reportHandler.GetReport)

		// 导出相关
		exportHandler := api.NewExportHandler()
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// mutationLimit 写接口限流，读接口不受影响（中间件内部只统计写方法）
func mutationLimit() gin.HandlerFunc {
	limiter := middleware.MutationRateLimit(120, time.Minute)
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "POST", "PUT", "DELETE", "PATCH":
			limiter(c)
		default:
			c.Next()
		}
	}
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
