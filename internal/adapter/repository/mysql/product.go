package mysql

import (
	"context"

	productDomain "lodge-portal/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) GetByProductID(ctx context.Context, productID string) (*productDomain.Product, error) {
	var out productDomain.Product
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&out).Error; err != nil {
		return nil, notFound(err, productDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ProductRepository) GetManyByProductIDs(ctx context.Context, productIDs []string) (map[string]*productDomain.Product, error) {
	out := make(map[string]*productDomain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	var rows []productDomain.Product
	if err := r.db.WithContext(ctx).Where("product_id IN ?", productIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ProductID] = &rows[i]
	}
	return out, nil
}

func (r *ProductRepository) List(ctx context.Context, inStockOnly bool) ([]productDomain.Product, error) {
	q := r.db.WithContext(ctx)
	if inStockOnly {
		q = q.Where("in_stock = ?", true)
	}
	var out []productDomain.Product
	err := q.Order("category ASC, name ASC").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) error {
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&productDomain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return productDomain.ErrNotFound
	}
	return nil
}
