package order

import (
	"errors"
	"math"
	"time"

	"lodge-portal/internal/domain/user"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrForbidden     = errors.New("order belongs to another member")
	ErrEmpty         = errors.New("order must contain at least one item")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOutOfStock    = errors.New("product is out of stock")
	ErrInvalidSize   = errors.New("size not offered for this product")
	ErrInvalidQty    = errors.New("quantity must be at least 1")
	ErrMixedCurrency = errors.New("all items in one order must share a currency")
)

// Checkout pricing. Shipping is a flat fee per order and tax applies to the
// item subtotal only.
const (
	FlatShippingFee = 25.00
	TaxRate         = 0.10
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Table: orders
type Order struct {
	ID       uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OrderID  string  `gorm:"column:order_id;size:32;not null;uniqueIndex:ux_orders_order_id" json:"id"`
	UserID   uint64  `gorm:"column:user_id;not null;index:idx_orders_user_created,priority:1" json:"-"`
	Items    []Item  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal float64 `gorm:"column:subtotal;type:decimal(18,2);not null" json:"subtotal"`
	Shipping float64 `gorm:"column:shipping;type:decimal(18,2);not null" json:"shipping"`
	Tax      float64 `gorm:"column:tax;type:decimal(18,2);not null" json:"tax"`
	Total    float64 `gorm:"column:total_amount;type:decimal(18,2);not null" json:"totalAmount"`
	Currency string  `gorm:"column:currency;size:3;not null;default:USD" json:"currency"`
	Status   Status  `gorm:"column:status;size:16;not null;default:PENDING;index:idx_orders_status" json:"status"`

	ShippingAddress Address   `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`
	Notes           string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime;index:idx_orders_user_created,priority:2" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Customer *user.User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Order) TableName() string { return "orders" }

type Address struct {
	FullName   string `gorm:"column:full_name;size:191" json:"fullName"`
	Address    string `gorm:"column:address;type:text" json:"address"`
	City       string `gorm:"column:city;size:96" json:"city"`
	State      string `gorm:"column:state;size:96" json:"state"`
	PostalCode string `gorm:"column:postal_code;size:32" json:"postalCode"`
	Country    string `gorm:"column:country;size:96" json:"country"`
	Phone      string `gorm:"column:phone;size:64" json:"phone"`
}

// Table: order_items
type Item struct {
	ID          uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OrderID     uint64  `gorm:"column:order_id;not null;index" json:"-"`
	ProductID   string  `gorm:"column:product_id;size:32;not null" json:"productId"`
	ProductName string  `gorm:"column:product_name;size:191;not null" json:"productName"`
	Quantity    int     `gorm:"column:quantity;not null" json:"quantity"`
	Price       float64 `gorm:"column:price;type:decimal(18,2);not null" json:"price"`
	Size        string  `gorm:"column:size;size:32" json:"size,omitempty"`
}

func (Item) TableName() string { return "order_items" }

// Totals fills Subtotal, Shipping, Tax and Total from Items, rounded to cents.
func (o *Order) Totals() {
	var sub float64
	for _, it := range o.Items {
		sub += it.Price * float64(it.Quantity)
	}
	o.Subtotal = cents(sub)
	o.Shipping = FlatShippingFee
	o.Tax = cents(o.Subtotal * TaxRate)
	o.Total = cents(o.Subtotal + o.Shipping + o.Tax)
}

func cents(v float64) float64 { return math.Round(v*100) / 100 }
