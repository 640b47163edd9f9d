package database

import (
	"Foodgram/config"
	"Foodgram/models"
	"Foodgram/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), Options())
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	if conf.MySQL.AutoMigrate {
		if err := Migrate(db); err != nil {
			log.L.Fatal("failed to migrate database", zap.Error(err))
		}
	}
	log.L.Info("connect database success")
	return db
}

// Options 唯一约束冲突统一翻译为 gorm.ErrDuplicatedKey
func Options() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// 短链编码区分大小写，MySQL 默认排序规则不区分
const shortLinkCodeBinary = "ALTER TABLE short_links MODIFY code varchar(5) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL"

// Migrate 按依赖顺序建表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	if db.Dialector.Name() == "mysql" {
		return db.Exec(shortLinkCodeBinary).Error
	}
	return nil
}
