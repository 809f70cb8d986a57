package database

import (
	"fmt"
	"log"

	"budgeto/config"
	"budgeto/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite", "":
		path := cfg.Database.Path
		if path == "" {
			path = "budgeto.db"
		}
		dialector = sqlite.Open(path)
	case "mysql":
		// 构建 MySQL DSN 连接字符串
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		dialector = mysql.Open(dsn)
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.BudgetSettings{},
		&models.Expense{},
		&models.SavingsGoal{},
		&models.InvestmentPlan{},
	); err != nil {
		return err
	}

	// 初始化默认预算设置（仅当不存在时）：收入 0，按 50/30/20 分配
	var settingsCount int64
	DB.Model(&models.BudgetSettings{}).Where("user_id = ?", models.DefaultUserID).Count(&settingsCount)
	if settingsCount == 0 {
		defaults := models.BudgetSettings{
			UserID:            models.DefaultUserID,
			MonthlyIncome:     0,
			NeedsPercentage:   models.DefaultNeedsPercentage,
			WantsPercentage:   models.DefaultWantsPercentage,
			SavingsPercentage: models.DefaultSavingsPercentage,
		}
		if err := DB.Create(&defaults).Error; err != nil {
			return fmt.Errorf("初始化默认预算设置失败: %w", err)
		}
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
