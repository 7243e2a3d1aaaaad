package http

import (
	"net/http"
	"strconv"

	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{ uc *catalog.Usecase }

func NewCatalogHandler(uc *catalog.Usecase) *CatalogHandler { return &CatalogHandler{uc: uc} }

// ListProducts shows in-stock products; ?all=true includes the rest.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	all, _ := strconv.ParseBool(c.QueryParam("all"))
	list, err := h.uc.ListProducts(c.Request().Context(), all)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"products": list})
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var in catalog.ProductInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"product": dto})
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) PlaceOrder(c echo.Context) error {
	var in catalog.PlaceOrderInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.PlaceOrder(c.Request().Context(), middleware.CurrentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"order": dto})
}

func (h *CatalogHandler) GetOrder(c echo.Context) error {
	dto, err := h.uc.GetOrder(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"order": dto})
}

func (h *CatalogHandler) ListMyOrders(c echo.Context) error {
	list, err := h.uc.ListOrders(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": list})
}

func (h *CatalogHandler) ListAllOrders(c echo.Context) error {
	list, err := h.uc.ListAllOrders(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": list})
}

func (h *CatalogHandler) UpdateOrderStatus(c echo.Context) error {
	var in catalog.UpdateOrderStatusInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"order": dto})
}
