// Package entity defines the domain models for the favorites feature.
package entity

import "time"

// Favorite はユーザーのお気に入り銘柄1件を表します。
// (UserID, Symbol) の組はユニークで、集合としての意味論を持ちます。
type Favorite struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_symbol"`
	Symbol    string `gorm:"size:20;not null;uniqueIndex:idx_user_symbol"`
	CreatedAt time.Time
}
