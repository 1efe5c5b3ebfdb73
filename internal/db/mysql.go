package db

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskmanager/internal/config"
	"taskmanager/internal/model"
)

// DSN returns the MySQL data source name for cfg. cfg.DSN wins when set.
// Connections are opened with charset utf8mb4 so 4-byte characters are stored intact.
func DSN(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// NewMySQL returns a connected GORM DB instance with a bounded connection pool:
// PoolSize idle connections and up to PoolSize+MaxOverflow open ones.
func NewMySQL(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(DSN(cfg)), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.PoolSize)
	sqlDB.SetMaxOpenConns(cfg.PoolSize + cfg.MaxOverflow)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	logger.Info("connected to mysql",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
		zap.Int("max_open_conns", cfg.PoolSize+cfg.MaxOverflow),
	)
	return db, nil
}

// Migrate creates the users and tasks tables when they do not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
