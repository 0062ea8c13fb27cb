// Package store is the persistence layer for accounts, investments and
// expenses. Each entity kind lives in its own insertion-ordered table with
// database-generated, monotonically increasing IDs. Only insert and list
// operations exist.
package store

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/logger"
	"github.com/AlexanderJohnD/WealthWise/internal/models"
)

// Record is any row type the store can hold.
type Record interface {
	models.Account | models.Investment | models.Expense
}

// Repository stores one entity kind.
type Repository[T Record] struct {
	db           *gorm.DB
	kind         models.Kind
	defaultOrder string
}

// NewRepository creates a Repository for kind. defaultOrder is the ORDER BY
// clause used when ListAll is called without one.
func NewRepository[T Record](db *gorm.DB, kind models.Kind, defaultOrder string) *Repository[T] {
	return &Repository[T]{db: db, kind: kind, defaultOrder: defaultOrder}
}

// Accounts returns the account repository. Accounts have no contractual
// ordering; they are returned in insertion order.
func Accounts(db *gorm.DB) *Repository[models.Account] {
	return NewRepository[models.Account](db, models.KindAccount, "id ASC")
}

// Investments returns the investment repository, newest purchase first.
func Investments(db *gorm.DB) *Repository[models.Investment] {
	return NewRepository[models.Investment](db, models.KindInvestment, "purchase_date DESC, id DESC")
}

// Expenses returns the expense repository, newest expense first.
func Expenses(db *gorm.DB) *Repository[models.Expense] {
	return NewRepository[models.Expense](db, models.KindExpense, "date DESC, id DESC")
}

// Insert stores record and fills in its generated ID and timestamps. Missing
// required fields and database failures are reported as StorageError; a
// failed insert leaves no row.
func (r *Repository[T]) Insert(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		logger.Get().Warnw("insert failed", "kind", r.kind, "error", err)
		return apperrors.Storage(err)
	}
	return nil
}

// ListAll returns every record of the kind owned by ownerID. An empty orderBy
// selects the repository's default ordering. No rows yields an empty slice.
func (r *Repository[T]) ListAll(ctx context.Context, ownerID uint, orderBy string) ([]T, error) {
	if orderBy == "" {
		orderBy = r.defaultOrder
	}

	records := []T{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order(orderBy).
		Find(&records).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return records, nil
}
