package http

import (
	"net/http"

	"lodge-portal/internal/adapter/middleware"
	handoffUC "lodge-portal/internal/usecase/handoff"
	voucherUC "lodge-portal/internal/usecase/voucher"

	"github.com/labstack/echo/v4"
)

type VoucherHandler struct {
	uc      *voucherUC.Usecase
	handoff *handoffUC.Usecase
}

func NewVoucherHandler(uc *voucherUC.Usecase, handoff *handoffUC.Usecase) *VoucherHandler {
	return &VoucherHandler{uc: uc, handoff: handoff}
}

// PurchaseRequest builds the chat link a member uses to buy a voucher.
func (h *VoucherHandler) PurchaseRequest(c echo.Context) error {
	var in handoffUC.PurchaseInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	link, err := h.handoff.VoucherPurchaseLink(c.Request().Context(), middleware.CurrentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"whatsappUrl": link.URL, "message": link.Message})
}

func (h *VoucherHandler) Issue(c echo.Context) error {
	var in voucherUC.IssueInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Issue(c.Request().Context(), in, middleware.CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"voucher": dto})
}

func (h *VoucherHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"vouchers": list})
}
