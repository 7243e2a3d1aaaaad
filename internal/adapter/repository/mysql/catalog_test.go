package mysql

import (
	"context"
	"errors"
	"testing"

	orderDomain "lodge-portal/internal/domain/order"
	productDomain "lodge-portal/internal/domain/product"
	"lodge-portal/internal/domain/user"
	"lodge-portal/pkg/id"
)

func seedProduct(t *testing.T, repo *ProductRepository, name string, cat productDomain.Category, inStock bool) *productDomain.Product {
	t.Helper()
	p := &productDomain.Product{
		ProductID:   id.NewID32(),
		Name:        name,
		Description: name + " description",
		Category:    cat,
		Price:       19.99,
		Currency:    "USD",
		InStock:     inStock,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func TestProductRepository_ListOrderingAndStock(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	ring := seedProduct(t, repo, "Signet", productDomain.CategoryRing, true)
	apron := seedProduct(t, repo, "Apron", productDomain.CategoryUniform, true)
	bible := seedProduct(t, repo, "Volume", productDomain.CategoryBible, true)
	gloves := seedProduct(t, repo, "Gloves", productDomain.CategoryUniform, false)

	inStock, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{bible.ProductID, ring.ProductID, apron.ProductID}
	if len(inStock) != len(want) {
		t.Fatalf("len = %d, want %d", len(inStock), len(want))
	}
	for i := range want {
		if inStock[i].ProductID != want[i] {
			t.Errorf("[%d] = %s, want %s", i, inStock[i].Name, want[i])
		}
	}

	all, err := repo.List(ctx, false)
	if err != nil || len(all) != 4 {
		t.Fatalf("List(all) = %d, %v", len(all), err)
	}

	byID, err := repo.GetManyByProductIDs(ctx, []string{ring.ProductID, gloves.ProductID, "missing"})
	if err != nil {
		t.Fatalf("GetManyByProductIDs: %v", err)
	}
	if len(byID) != 2 || byID[ring.ProductID] == nil || byID[gloves.ProductID] == nil {
		t.Fatalf("unexpected map: %+v", byID)
	}

	if err := repo.Delete(ctx, gloves.ProductID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByProductID(ctx, gloves.ProductID); !errors.Is(err, productDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, gloves.ProductID); !errors.Is(err, productDomain.ErrNotFound) {
		t.Fatalf("second Delete: expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepository_CreateGetAndStatus(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	member := seedUser(t, db, "m@example.com", user.RoleUser)
	repo := NewOrderRepository(db)

	o := &orderDomain.Order{
		OrderID:  id.NewID32(),
		UserID:   member.ID,
		Currency: "USD",
		Status:   orderDomain.StatusPending,
		Items: []orderDomain.Item{
			{ProductID: "p1", ProductName: "Apron", Quantity: 2, Price: 40},
			{ProductID: "p2", ProductName: "Ring", Quantity: 1, Price: 120, Size: "10"},
		},
		ShippingAddress: orderDomain.Address{FullName: "M", Address: "1 Main", City: "Accra", Country: "Ghana"},
	}
	o.Totals()
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByOrderID(ctx, o.OrderID)
	if err != nil {
		t.Fatalf("GetByOrderID: %v", err)
	}
	if len(got.Items) != 2 || got.Total != 245 || got.ShippingAddress.City != "Accra" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.Customer == nil || got.Customer.Email != member.Email {
		t.Fatalf("customer not loaded")
	}

	if err := repo.UpdateStatus(ctx, o.OrderID, orderDomain.StatusShipped); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	shipped, err := repo.ListAll(ctx, orderDomain.StatusShipped)
	if err != nil || len(shipped) != 1 {
		t.Fatalf("ListAll(shipped) = %d, %v", len(shipped), err)
	}
	pending, err := repo.ListAll(ctx, orderDomain.StatusPending)
	if err != nil || len(pending) != 0 {
		t.Fatalf("ListAll(pending) = %d, %v", len(pending), err)
	}
	mine, err := repo.ListByUser(ctx, member.ID)
	if err != nil || len(mine) != 1 || len(mine[0].Items) != 2 {
		t.Fatalf("ListByUser = %+v, %v", mine, err)
	}

	if err := repo.UpdateStatus(ctx, "missing", orderDomain.StatusShipped); !errors.Is(err, orderDomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
