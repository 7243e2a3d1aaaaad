package catalog

import (
	"time"

	"lodge-portal/internal/domain/order"
	"lodge-portal/internal/domain/product"
)

type ProductInput struct {
	Name          string   `json:"name" validate:"required,max=191"`
	Description   string   `json:"description"`
	Category      string   `json:"category" validate:"required,oneof=UNIFORM RING BIBLE PERFUME ACCESSORY OTHER"`
	Price         float64  `json:"price" validate:"required,gt=0,money2"`
	Currency      string   `json:"currency" validate:"omitempty,iso4217"`
	ImageURL      string   `json:"imageUrl" validate:"omitempty,url"`
	InStock       *bool    `json:"inStock"`
	StockQuantity int      `json:"stockQuantity" validate:"gte=0"`
	Sizes         []string `json:"sizes" validate:"dive,max=32"`
}

type ProductDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	ImageURL      string    `json:"imageUrl"`
	InStock       bool      `json:"inStock"`
	StockQuantity int       `json:"stockQuantity"`
	Sizes         []string  `json:"sizes"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toProductDTO(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ProductID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		Currency:      p.Currency,
		ImageURL:      p.ImageURL,
		InStock:       p.InStock,
		StockQuantity: p.StockQuantity,
		Sizes:         p.Sizes.List(),
		CreatedAt:     p.CreatedAt,
	}
}

type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1,lte=1000"`
	Size      string `json:"size" validate:"max=32"`
}

type AddressInput struct {
	FullName   string `json:"fullName" validate:"required,max=191"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required,max=96"`
	State      string `json:"state" validate:"max=96"`
	PostalCode string `json:"postalCode" validate:"max=32"`
	Country    string `json:"country" validate:"required,max=96"`
	Phone      string `json:"phone" validate:"required,max=64"`
}

type PlaceOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress AddressInput     `json:"shippingAddress"`
	Notes           string           `json:"notes"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
}

type CustomerDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type OrderDTO struct {
	*order.Order
	Customer *CustomerDTO `json:"customer,omitempty"`
	// HandoffURL is set only on the response to PlaceOrder.
	HandoffURL string `json:"whatsappUrl,omitempty"`
}

func toOrderDTO(o *order.Order) OrderDTO {
	dto := OrderDTO{Order: o}
	if c := o.Customer; c != nil {
		dto.Customer = &CustomerDTO{ID: c.PublicID, FullName: c.FullName, Email: c.Email, Phone: c.Phone}
	}
	return dto
}

func toOrderDTOs(list []order.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(list))
	for i := range list {
		out = append(out, toOrderDTO(&list[i]))
	}
	return out
}
