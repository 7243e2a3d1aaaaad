package http

import (
	"io"
	"mime"
	"net/http"

	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

type DocumentHandler struct {
	uc       *document.Usecase
	maxBytes int64
}

func NewDocumentHandler(uc *document.Usecase, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{uc: uc, maxBytes: maxBytes}
}

var errFileTooLarge = echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds the upload limit")

func (h *DocumentHandler) ListMine(c echo.Context) error {
	list, err := h.uc.ListForUser(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": list})
}

func (h *DocumentHandler) ListAll(c echo.Context) error {
	list, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": list})
}

// Issue takes a multipart form: file, userId, category, description.
func (h *DocumentHandler) Issue(c echo.Context) error {
	var in document.IssueInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, &requestError{ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "file", Message: "is required"}},
		}})
	}
	if fh.Size > h.maxBytes {
		return writeError(c, errFileTooLarge)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return writeError(c, err)
	}
	if int64(len(data)) > h.maxBytes {
		return writeError(c, errFileTooLarge)
	}

	dto, err := h.uc.Issue(c.Request().Context(), middleware.CurrentUser(c), in, document.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"document": dto})
}

func (h *DocumentHandler) Download(c echo.Context) error {
	d, f, err := h.uc.Download(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": d.OriginalName}))
	return c.Blob(http.StatusOK, d.FileType, f.Data)
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
