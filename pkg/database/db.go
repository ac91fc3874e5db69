package database

import (
	"AppNotas/config"
	"AppNotas/models"
	"AppNotas/pkg/log"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SystemCategories 初始化时写入的系统分类（created_by 为空）
var SystemCategories = []string{
	"Personal",
	"Trabajo",
	"Estudios",
	"Ideas",
	"Recordatorios",
	"Proyectos",
}

// NewDB 初始化数据库连接，返回的 cleanup 负责关闭连接池
func NewDB(conf *config.Config) (*gorm.DB, func(), error) {
	dialector, err := dialect(conf.Database)
	if err != nil {
		return nil, nil, err
	}

	logLevel := logger.Silent
	if conf.Database.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.L.Error("failed to connect database", zap.Error(err))
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if conf.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.Database.MaxOpenConns)
	}
	if conf.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.Database.MaxIdleConns)
	}

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.L.Warn("close database", zap.Error(err))
			return
		}
		log.L.Info("database closed")
	}
	return db, cleanup, nil
}

func dialect(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverMysql:
		return mysql.Open(conf.Dsn), nil
	case config.DriverPostgres:
		return postgres.Open(conf.Dsn), nil
	case config.DriverSqlite:
		return sqlite.Open(SqliteDsn(conf.Dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", conf.Driver)
	}
}

// SqliteDsn sqlite 默认不校验外键，这里强制打开
func SqliteDsn(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// Migrate 建表并写入系统分类
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&models.Users{},
		&models.Category{},
		&models.Note{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return SeedCategories(ctx, db)
}

// SeedCategories 幂等写入系统分类
func SeedCategories(ctx context.Context, db *gorm.DB) error {
	for _, name := range SystemCategories {
		category := models.Category{Name: name}
		err := db.WithContext(ctx).
			Where("name = ? AND created_by IS NULL", name).
			FirstOrCreate(&category).Error
		if err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
	}
	log.L.Info("system categories ready", zap.Int("count", len(SystemCategories)))
	return nil
}
