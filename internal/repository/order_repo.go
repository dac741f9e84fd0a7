package repository

import (
	"context"
	"fmt"

	"backend/internal/model"

	"gorm.io/gorm"
)

// insertBatchSize bounds the multi-row INSERT the importer issues.
const insertBatchSize = 500

// OrderRepository is the engine's read-only view of the order store plus the
// wholesale swap the importer uses. ListAll is a single SELECT, so every
// aggregation request works on one consistent snapshot.
type OrderRepository interface {
	ListAll(ctx context.Context) ([]model.Order, error)
	ReplaceAll(ctx context.Context, orders []model.Order) error
	Count(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := GetDB(ctx, r.db).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// ReplaceAll swaps the entire order set. Callers run it inside
// TransactionManager.RunInTx so readers never observe a half-imported set.
func (r *orderRepository) ReplaceAll(ctx context.Context, orders []model.Order) error {
	db := GetDB(ctx, r.db)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Order{}).Error; err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}
	if len(orders) == 0 {
		return nil
	}
	if err := db.CreateInBatches(orders, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert orders: %w", err)
	}
	return nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&model.Order{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}
