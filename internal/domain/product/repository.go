package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByProductID(ctx context.Context, productID string) (*Product, error)
	GetManyByProductIDs(ctx context.Context, productIDs []string) (map[string]*Product, error)
	// List orders by category then name; inStockOnly hides sold-out items.
	List(ctx context.Context, inStockOnly bool) ([]Product, error)
	Delete(ctx context.Context, productID string) error
}
