package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Channel constants distinguishing where an order was placed
const (
	ChannelRetail  = "RETAIL"
	ChannelDigital = "DIGITAL"
)

// SubscriptionNone is the sentinel the purchase-history export uses for
// digital items that are not part of a subscription.
const SubscriptionNone = "Not Applicable"

// Order represents one purchase line item. Records are written once by the
// importer and never mutated afterwards; every derived view is computed from
// a full snapshot of this table.
type Order struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID          string          `gorm:"type:varchar(100);index;not null" json:"order_id"`
	OrderDate        *time.Time      `gorm:"index" json:"order_date"`
	ProductName      string          `gorm:"type:text;not null" json:"product_name"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity         int             `gorm:"type:int;not null;default:1" json:"quantity"`
	Category         string          `gorm:"type:varchar(100);index" json:"category"`
	PaymentMethod    string          `gorm:"type:varchar(100)" json:"payment_method"`
	IsDigital        bool            `gorm:"not null;default:false;index" json:"is_digital"`
	IsReturn         bool            `gorm:"not null;default:false" json:"is_return"`
	SubscriptionInfo string          `gorm:"type:text" json:"subscription_info"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns the primary key so the model works on both postgres
// and sqlite without relying on a database-side uuid default.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Spend returns the charged amount of the line: price multiplied by quantity.
func (o *Order) Spend() decimal.Decimal {
	qty := o.Quantity
	if qty < 1 {
		qty = 1
	}
	return o.Price.Mul(decimal.NewFromInt(int64(qty)))
}
