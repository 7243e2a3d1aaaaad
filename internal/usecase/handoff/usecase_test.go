package handoff

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"lodge-portal/internal/adapter/repository/mysql"
	"lodge-portal/internal/domain/handoff"
	"lodge-portal/internal/domain/order"
	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/domain/voucher"
	"lodge-portal/internal/testutil/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customer = &user.User{FullName: "Ama Owusu", Email: "ama@example.com", Phone: "+233 20 000 0001"}

func newUsecase(t *testing.T) *Usecase {
	t.Helper()
	return NewUsecase(mysql.NewHandoffRepository(testdb.Open(t)), "+1 (555) 010-0000")
}

func decodeText(t *testing.T, raw string) (string, string) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.NotContains(t, u.RawQuery, "+", "spaces must be percent-encoded")
	return strings.TrimPrefix(u.Path, "/"), u.Query().Get("text")
}

func TestGet_DefaultsThenUpdate(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()

	cfg, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+1 (555) 010-0000", cfg.PhoneNumber)
	assert.Equal(t, handoff.DefaultVoucherPrice, cfg.FormVoucherPrice)
	assert.Equal(t, "USD", cfg.FormVoucherCurrency)

	price := 75.5
	cfg, err = uc.Update(ctx, 1, UpdateInput{PhoneNumber: "+233 24 111 2222", Price: &price, Currency: "ghs"})
	require.NoError(t, err)
	assert.Equal(t, "GHS", cfg.FormVoucherCurrency)

	// Price and currency survive an update that only changes the phone.
	cfg, err = uc.Update(ctx, 1, UpdateInput{PhoneNumber: "+233 24 333 4444"})
	require.NoError(t, err)
	assert.Equal(t, 75.5, cfg.FormVoucherPrice)
	assert.Equal(t, "GHS", cfg.FormVoucherCurrency)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+233 24 333 4444", got.PhoneNumber)
}

func TestUpdate_Rejects(t *testing.T) {
	uc := newUsecase(t)
	_, err := uc.Update(context.Background(), 1, UpdateInput{PhoneNumber: " - "})
	assert.ErrorIs(t, err, handoff.ErrPhoneRequired)

	zero := 0.0
	_, err = uc.Update(context.Background(), 1, UpdateInput{PhoneNumber: "+1555", Price: &zero})
	assert.ErrorIs(t, err, voucher.ErrInvalidAmount)
}

func TestVoucherPurchaseLink(t *testing.T) {
	uc := newUsecase(t)

	l, err := uc.VoucherPurchaseLink(context.Background(), customer, PurchaseInput{Amount: 50})
	require.NoError(t, err)
	phone, text := decodeText(t, l.URL)
	assert.Equal(t, "15550100000", phone)
	assert.Equal(t, l.Message, text)
	assert.Contains(t, text, "Name: Ama Owusu\nEmail: ama@example.com\nPhone: +233 20 000 0001")
	assert.Contains(t, text, "Amount: USD 50.00")

	_, err = uc.VoucherPurchaseLink(context.Background(), customer, PurchaseInput{Amount: 0})
	assert.ErrorIs(t, err, voucher.ErrInvalidAmount)
}

func TestOrderLink(t *testing.T) {
	uc := newUsecase(t)
	o := &order.Order{
		OrderID:  "ord-1",
		Currency: "USD",
		Items: []order.Item{
			{ProductName: "Apron", Quantity: 2, Price: 40, Size: "L"},
			{ProductName: "Ring", Quantity: 1, Price: 120},
		},
	}
	o.Totals()

	l, err := uc.OrderLink(context.Background(), customer, o)
	require.NoError(t, err)
	_, text := decodeText(t, l.URL)
	for _, want := range []string{
		"Order ID: ord-1",
		"• Apron (Size: L)\n  Qty: 2 x $40.00 = $80.00",
		"• Ring\n  Qty: 1 x $120.00 = $120.00",
		"Subtotal: $200.00",
		"Shipping: $25.00",
		"Tax (10%): $20.00",
		"*Total: $245.00*",
	} {
		assert.Contains(t, text, want)
	}
}

func TestLink_NoPhoneConfigured(t *testing.T) {
	uc := NewUsecase(mysql.NewHandoffRepository(testdb.Open(t)), "")
	_, err := uc.VoucherPurchaseLink(context.Background(), customer, PurchaseInput{Amount: 10})
	assert.ErrorIs(t, err, handoff.ErrPhoneRequired)
}
