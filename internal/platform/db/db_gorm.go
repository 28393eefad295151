// Package db はGORMによるMySQL接続の初期化を提供します。
package db

import (
	"fmt"
	"log/slog"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "stock_analysis/internal/feature/auth/domain/entity"
	favoriteentity "stock_analysis/internal/feature/favorites/domain/entity"
	stockentity "stock_analysis/internal/feature/stocks/domain/entity"
)

// Open はMySQLに接続し、スキーママイグレーションを実行して*gorm.DBを返します。
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// マイグレーション（User, Stock, Favorite）
	if err := gdb.AutoMigrate(
		&authentity.User{},
		&stockentity.Stock{},
		&favoriteentity.Favorite{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	slog.Info("database connection established")
	return gdb, nil
}
