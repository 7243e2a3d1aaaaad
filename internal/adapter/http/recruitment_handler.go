package http

import (
	"errors"
	"net/http"

	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/domain/voucher"
	recruitmentUC "lodge-portal/internal/usecase/recruitment"
	voucherUC "lodge-portal/internal/usecase/voucher"

	"github.com/labstack/echo/v4"
)

type RecruitmentHandler struct{ uc *recruitmentUC.Usecase }

func NewRecruitmentHandler(uc *recruitmentUC.Usecase) *RecruitmentHandler {
	return &RecruitmentHandler{uc: uc}
}

type invalidVoucherResp struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

// ValidateVoucher gates the application form: 404 for an unknown code, 400
// for a used one.
func (h *RecruitmentHandler) ValidateVoucher(c echo.Context) error {
	var in voucherUC.ValidateInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.CheckVoucher(c.Request().Context(), in.Code)
	switch {
	case errors.Is(err, voucher.ErrNotFound):
		return c.JSON(http.StatusNotFound, invalidVoucherResp{Error: err.Error()})
	case errors.Is(err, voucher.ErrAlreadyUsed):
		return c.JSON(http.StatusBadRequest, invalidVoucherResp{Error: err.Error()})
	case err != nil:
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RecruitmentHandler) Submit(c echo.Context) error {
	var in recruitmentUC.SubmitInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Submit(c.Request().Context(), middleware.CurrentUser(c).ID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"applicationId": dto.ApplicationID,
		"application":   dto,
	})
}

func (h *RecruitmentHandler) ListMine(c echo.Context) error {
	list, err := h.uc.ListForUser(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": list})
}

func (h *RecruitmentHandler) ListAll(c echo.Context) error {
	list, err := h.uc.ListAll(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": list})
}

func (h *RecruitmentHandler) UpdateStatus(c echo.Context) error {
	var in recruitmentUC.UpdateStatusInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"application": dto})
}
