package database

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"quentinhas/config"
	"quentinhas/constants"
	"quentinhas/model"
	"quentinhas/repository"
	"quentinhas/sheet"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB        *gorm.DB
	Orders    *repository.OrderRepository
	Deadlines *repository.DeadlineRepository
)

func dialector(driver string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		port, err := strconv.ParseUint(config.ConfigOr("DB_PORT", "5432"), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to parse database port: %w", err)
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_HOST"), config.ConfigOr("DB_PORT", "3306"), config.Config("DB_NAME"))
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(config.ConfigOr("SQLITE_PATH", "quentinhas.db?_busy_timeout=5000")), nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
}

// ConnectDB opens the table store selected by DB_DRIVER and makes sure both
// sheets carry their header row. DB_DRIVER=memory keeps everything in process.
func ConnectDB(loc *time.Location) {
	driver := config.ConfigOr("DB_DRIVER", "postgres")

	var orderTable, configTable sheet.Table
	if driver == "memory" {
		orderTable, configTable = sheet.NewMemoryTable(), sheet.NewMemoryTable()
		log.Println("Using in-memory sheets, data is lost on restart")
	} else {
		d, err := dialector(driver)
		if err != nil {
			panic(err)
		}
		DB, err = gorm.Open(d, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err != nil {
			panic("failed to connect database")
		}
		log.Printf("Connection Opened to Database (%s)", driver)

		if err := DB.AutoMigrate(&model.SheetCell{}); err != nil {
			panic(fmt.Sprintf("failed to migrate database: %v", err))
		}
		log.Println("Database Migrated")

		orderTable = sheet.NewGormTable(DB, constants.SHEET_ORDERS)
		configTable = sheet.NewGormTable(DB, constants.SHEET_CONFIG)
	}

	Orders = repository.NewOrderRepository(orderTable, loc)
	Deadlines = repository.NewDeadlineRepository(configTable)

	ctx := context.Background()
	if err := Orders.EnsureHeader(ctx); err != nil {
		panic(fmt.Sprintf("failed to write %s header: %v", constants.SHEET_ORDERS, err))
	}
	if err := Deadlines.EnsureHeader(ctx); err != nil {
		panic(fmt.Sprintf("failed to write %s header: %v", constants.SHEET_CONFIG, err))
	}
}
