package catalog

import (
	"context"
	"strings"

	"lodge-portal/internal/domain/order"
	"lodge-portal/internal/domain/product"
	"lodge-portal/internal/domain/user"
	handoffUC "lodge-portal/internal/usecase/handoff"
	"lodge-portal/pkg/id"

	"github.com/sirupsen/logrus"
)

// OrderLinker builds the chat hand-off for a placed order.
type OrderLinker interface {
	OrderLink(ctx context.Context, customer *user.User, o *order.Order) (*handoffUC.LinkDTO, error)
}

type Usecase struct {
	products product.Repository
	orders   order.Repository
	links    OrderLinker
}

func NewUsecase(products product.Repository, orders order.Repository, links OrderLinker) *Usecase {
	return &Usecase{products: products, orders: orders, links: links}
}

// ListProducts hides sold-out items unless all is set.
func (u *Usecase) ListProducts(ctx context.Context, all bool) ([]ProductDTO, error) {
	list, err := u.products.List(ctx, !all)
	if err != nil {
		return nil, err
	}
	out := make([]ProductDTO, 0, len(list))
	for i := range list {
		out = append(out, toProductDTO(&list[i]))
	}
	return out, nil
}

func (u *Usecase) CreateProduct(ctx context.Context, in ProductInput) (*ProductDTO, error) {
	cat := product.Category(strings.ToUpper(strings.TrimSpace(in.Category)))
	if !cat.Valid() {
		return nil, product.ErrInvalidCategory
	}
	if in.Price <= 0 {
		return nil, product.ErrInvalidPrice
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	p := &product.Product{
		ProductID:     id.NewID32(),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Category:      cat,
		Price:         in.Price,
		Currency:      currency,
		ImageURL:      strings.TrimSpace(in.ImageURL),
		InStock:       inStock,
		StockQuantity: in.StockQuantity,
		Sizes:         product.JoinSizes(in.Sizes),
	}
	if err := u.products.Create(ctx, p); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"product_id": p.ProductID, "name": p.Name}).Info("product created")
	dto := toProductDTO(p)
	return &dto, nil
}

func (u *Usecase) DeleteProduct(ctx context.Context, productID string) error {
	return u.products.Delete(ctx, productID)
}

// PlaceOrder prices every line from the catalog; client supplied prices are
// never trusted. A failure to build the hand-off link does not fail the
// order.
func (u *Usecase) PlaceOrder(ctx context.Context, customer *user.User, in PlaceOrderInput) (*OrderDTO, error) {
	if len(in.Items) == 0 {
		return nil, order.ErrEmpty
	}
	ids := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		ids = append(ids, it.ProductID)
	}
	catalog, err := u.products.GetManyByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		OrderID: id.NewID32(),
		UserID:  customer.ID,
		Status:  order.StatusPending,
		ShippingAddress: order.Address{
			FullName:   strings.TrimSpace(in.ShippingAddress.FullName),
			Address:    strings.TrimSpace(in.ShippingAddress.Address),
			City:       strings.TrimSpace(in.ShippingAddress.City),
			State:      strings.TrimSpace(in.ShippingAddress.State),
			PostalCode: strings.TrimSpace(in.ShippingAddress.PostalCode),
			Country:    strings.TrimSpace(in.ShippingAddress.Country),
			Phone:      strings.TrimSpace(in.ShippingAddress.Phone),
		},
		Notes: in.Notes,
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, order.ErrInvalidQty
		}
		p, ok := catalog[it.ProductID]
		if !ok {
			return nil, product.ErrNotFound
		}
		if !p.InStock {
			return nil, order.ErrOutOfStock
		}
		size, err := pickSize(p, it.Size)
		if err != nil {
			return nil, err
		}
		if o.Currency == "" {
			o.Currency = p.Currency
		} else if o.Currency != p.Currency {
			return nil, order.ErrMixedCurrency
		}
		o.Items = append(o.Items, order.Item{
			ProductID:   p.ProductID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			Price:       p.Price,
			Size:        size,
		})
	}
	o.Totals()

	if err := u.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	log := logrus.WithFields(logrus.Fields{"order_id": o.OrderID, "total": o.Total})
	log.Info("order placed")

	dto := toOrderDTO(o)
	if u.links != nil {
		l, err := u.links.OrderLink(ctx, customer, o)
		if err != nil {
			log.WithError(err).Warn("order hand-off link unavailable")
		} else {
			dto.HandoffURL = l.URL
		}
	}
	return &dto, nil
}

// GetOrder lets members read their own orders; admins read any.
func (u *Usecase) GetOrder(ctx context.Context, requester *user.User, orderID string) (*OrderDTO, error) {
	o, err := u.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != requester.ID && !requester.IsAdmin() {
		return nil, order.ErrForbidden
	}
	dto := toOrderDTO(o)
	return &dto, nil
}

func (u *Usecase) ListOrders(ctx context.Context, userID uint64) ([]OrderDTO, error) {
	list, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(list), nil
}

func (u *Usecase) ListAllOrders(ctx context.Context, status string) ([]OrderDTO, error) {
	st := order.Status(strings.ToUpper(strings.TrimSpace(status)))
	if st != "" && !st.Valid() {
		return nil, order.ErrInvalidStatus
	}
	list, err := u.orders.ListAll(ctx, st)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(list), nil
}

func (u *Usecase) UpdateOrderStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (*OrderDTO, error) {
	st := order.Status(in.Status)
	if !st.Valid() {
		return nil, order.ErrInvalidStatus
	}
	if err := u.orders.UpdateStatus(ctx, orderID, st); err != nil {
		return nil, err
	}
	o, err := u.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"order_id": orderID, "status": st}).Info("order status updated")
	dto := toOrderDTO(o)
	return &dto, nil
}

// pickSize requires a listed size when the product comes in sizes and
// rejects one when it does not.
func pickSize(p *product.Product, want string) (string, error) {
	want = strings.TrimSpace(want)
	sizes := p.Sizes.List()
	if len(sizes) == 0 {
		if want != "" {
			return "", order.ErrInvalidSize
		}
		return "", nil
	}
	for _, s := range sizes {
		if strings.EqualFold(s, want) {
			return s, nil
		}
	}
	return "", order.ErrInvalidSize
}
