package http

import (
	"net/http"

	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/usecase/handoff"

	"github.com/labstack/echo/v4"
)

type HandoffHandler struct{ uc *handoff.Usecase }

func NewHandoffHandler(uc *handoff.Usecase) *HandoffHandler { return &HandoffHandler{uc: uc} }

func (h *HandoffHandler) Get(c echo.Context) error {
	cfg, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"config": cfg})
}

func (h *HandoffHandler) Update(c echo.Context) error {
	var in handoff.UpdateInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	cfg, err := h.uc.Update(c.Request().Context(), middleware.CurrentUser(c).ID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"config": cfg})
}
