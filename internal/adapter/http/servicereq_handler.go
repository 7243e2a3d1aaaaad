package http

import (
	"net/http"

	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/usecase/servicereq"

	"github.com/labstack/echo/v4"
)

type ServiceRequestHandler struct{ uc *servicereq.Usecase }

func NewServiceRequestHandler(uc *servicereq.Usecase) *ServiceRequestHandler {
	return &ServiceRequestHandler{uc: uc}
}

func (h *ServiceRequestHandler) Create(c echo.Context) error {
	var in servicereq.CreateInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	req, err := h.uc.Create(c.Request().Context(), middleware.CurrentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"request": req})
}

func (h *ServiceRequestHandler) ListMine(c echo.Context) error {
	list, err := h.uc.ListForUser(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"requests": list})
}

func (h *ServiceRequestHandler) List(c echo.Context) error {
	var f servicereq.ListFilter
	if err := decode(c, &f); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"requests": list})
}

func (h *ServiceRequestHandler) UpdateStatus(c echo.Context) error {
	var in servicereq.UpdateStatusInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	req, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"request": req})
}
