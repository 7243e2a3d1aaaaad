package handoff

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"lodge-portal/internal/domain/handoff"
	"lodge-portal/internal/domain/order"
	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/domain/voucher"

	"github.com/sirupsen/logrus"
)

const chatBaseURL = "https://wa.me/"

type Usecase struct {
	repo          handoff.Repository
	fallbackPhone string
}

// NewUsecase takes the phone number to use until an admin stores one.
func NewUsecase(repo handoff.Repository, fallbackPhone string) *Usecase {
	return &Usecase{repo: repo, fallbackPhone: fallbackPhone}
}

// Get returns the stored config or the defaults when none exists.
func (u *Usecase) Get(ctx context.Context) (*handoff.Config, error) {
	c, err := u.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	return &handoff.Config{
		PhoneNumber:         u.fallbackPhone,
		FormVoucherPrice:    handoff.DefaultVoucherPrice,
		FormVoucherCurrency: handoff.DefaultVoucherCurrency,
	}, nil
}

// Update replaces the single config row. Omitted price and currency keep
// their current values.
func (u *Usecase) Update(ctx context.Context, adminID uint64, in UpdateInput) (*handoff.Config, error) {
	phone := strings.TrimSpace(in.PhoneNumber)
	if digitsOnly(phone) == "" {
		return nil, handoff.ErrPhoneRequired
	}
	cur, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	next := &handoff.Config{
		PhoneNumber:         phone,
		FormVoucherPrice:    cur.FormVoucherPrice,
		FormVoucherCurrency: cur.FormVoucherCurrency,
		UpdatedBy:           adminID,
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, voucher.ErrInvalidAmount
		}
		next.FormVoucherPrice = *in.Price
	}
	if c := strings.ToUpper(strings.TrimSpace(in.Currency)); c != "" {
		next.FormVoucherCurrency = c
	}
	if err := u.repo.Replace(ctx, next); err != nil {
		return nil, err
	}
	logrus.WithField("phone", next.PhoneNumber).Info("hand-off config updated")
	return next, nil
}

func (u *Usecase) VoucherPurchaseLink(ctx context.Context, customer *user.User, in PurchaseInput) (*LinkDTO, error) {
	if in.Amount <= 0 {
		return nil, voucher.ErrInvalidAmount
	}
	cfg, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = cfg.FormVoucherCurrency
	}

	var b strings.Builder
	b.WriteString("*Freemason Recruitment Voucher Request*\n\n")
	writeCustomer(&b, customer)
	b.WriteString("*Voucher Request:*\n")
	fmt.Fprintf(&b, "Amount: %s %.2f\n\n", currency, in.Amount)
	b.WriteString("Please process this voucher purchase and send me the voucher code. Thank you!")

	return link(cfg.PhoneNumber, b.String())
}

// OrderLink renders the order confirmation message for the shop's chat line.
func (u *Usecase) OrderLink(ctx context.Context, customer *user.User, o *order.Order) (*LinkDTO, error) {
	cfg, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("*Freemason Accessories Order Request*\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n\n", o.OrderID)
	writeCustomer(&b, customer)
	b.WriteString("*Items Ordered:*\n")
	for _, it := range o.Items {
		b.WriteString("• " + it.ProductName)
		if it.Size != "" {
			fmt.Fprintf(&b, " (Size: %s)", it.Size)
		}
		fmt.Fprintf(&b, "\n  Qty: %d x %s = %s\n", it.Quantity,
			money(o.Currency, it.Price), money(o.Currency, it.Price*float64(it.Quantity)))
	}
	b.WriteString("\n*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", money(o.Currency, o.Subtotal))
	fmt.Fprintf(&b, "Shipping: %s\n", money(o.Currency, o.Shipping))
	fmt.Fprintf(&b, "Tax (%d%%): %s\n", int(order.TaxRate*100), money(o.Currency, o.Tax))
	fmt.Fprintf(&b, "*Total: %s*\n\n", money(o.Currency, o.Total))
	b.WriteString("Please confirm this order and provide shipping details.")

	return link(cfg.PhoneNumber, b.String())
}

func writeCustomer(b *strings.Builder, c *user.User) {
	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(b, "Name: %s\nEmail: %s\nPhone: %s\n\n", c.FullName, c.Email, c.Phone)
}

func link(phone, message string) (*LinkDTO, error) {
	digits := digitsOnly(phone)
	if digits == "" {
		return nil, handoff.ErrPhoneRequired
	}
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return &LinkDTO{URL: chatBaseURL + digits + "?text=" + text, Message: message}, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func money(currency string, v float64) string {
	if currency == "" || currency == "USD" {
		return fmt.Sprintf("$%.2f", v)
	}
	return fmt.Sprintf("%s %.2f", currency, v)
}
