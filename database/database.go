package database

import (
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"expenses/clock"
	"expenses/config"
	"expenses/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接、迁移表结构并写入默认类别
func Init(cfg *config.Config, clk clock.Clock) error {
	loc, err := cfg.Server.Location()
	if err != nil {
		return err
	}
	db, err := Open(cfg.Database, loc, clk)
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	if err := useBinaryNameCollation(db, cfg.Database.Charset); err != nil {
		return err
	}
	if err := SeedCategories(db, cfg.Seed.Categories); err != nil {
		return err
	}

	DB = db
	slog.Info("数据库初始化成功", "driver", cfg.Database.Driver)
	return nil
}

// Open 按驱动打开数据库；created_at/updated_at 使用注入的时钟
// loc 为服务器本地日历时区，驱动按该时区读写时间和日期
func Open(cfg config.DatabaseConfig, loc *time.Location, clk clock.Clock) (*gorm.DB, error) {
	dialector, err := Dialector(cfg, loc)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger: newGormLogger(cfg.LogLevel),
	}
	if clk != nil {
		gormCfg.NowFunc = clk.Now
	}

	if cfg.Driver == "sqlite" {
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "sqlite" {
		// SQLite 单写者
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
	}

	return db, nil
}

// Dialector 根据配置构建 gorm 方言，loc 为空时使用 time.Local
func Dialector(cfg config.DatabaseConfig, loc *time.Location) (gorm.Dialector, error) {
	if loc == nil {
		loc = time.Local
	}
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=%s",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			url.QueryEscape(loc.String()),
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		if loc != time.Local {
			dsn += " TimeZone=" + loc.String()
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(SQLiteDSN(cfg.Path)), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", cfg.Driver)
	}
}

// SQLiteDSN 为路径加上外键约束 pragma
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// ensureDir 创建 SQLite 文件所在目录，内存库跳过
func ensureDir(path string) error {
	if path == "" || strings.HasPrefix(path, "file:") || strings.Contains(path, ":memory:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建数据目录失败: %w", err)
	}
	return nil
}

// Migrate 自动迁移表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Expense{}); err != nil {
		return fmt.Errorf("迁移表结构失败: %w", err)
	}
	return nil
}

// SeedCategories 类别表为空时写入默认类别
func SeedCategories(db *gorm.DB, names []string) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("统计类别失败: %w", err)
	}
	if count > 0 || len(names) == 0 {
		return nil
	}

	cats := make([]models.Category, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cats = append(cats, models.Category{Name: name})
	}
	if err := db.Create(&cats).Error; err != nil {
		return fmt.Errorf("写入默认类别失败: %w", err)
	}
	slog.Info("已写入默认类别", "count", len(cats))
	return nil
}

// useBinaryNameCollation MySQL 上类别名使用 <charset>_bin，唯一索引和排序区分大小写
func useBinaryNameCollation(db *gorm.DB, charset string) error {
	if db.Dialector.Name() != "mysql" {
		return nil
	}
	if charset == "" {
		charset = "utf8mb4"
	}
	sql := fmt.Sprintf("ALTER TABLE `categories` MODIFY `name` varchar(%d) CHARACTER SET %s COLLATE %s_bin NOT NULL",
		models.MaxCategoryNameLength, charset, charset)
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("设置类别名排序规则失败: %w", err)
	}
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}

func newGormLogger(level string) logger.Interface {
	var lvl logger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	default:
		lvl = logger.Warn
	}
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
	})
}
