// Package usecase implements the business logic for the stocks feature.
package usecase

import "errors"

var (
	// ErrStockNotFound is returned when no stock exists for the requested symbol.
	ErrStockNotFound = errors.New("stock not found")
)
