package http

import (
	"errors"
	"net/http"

	"lodge-portal/internal/domain/document"
	"lodge-portal/internal/domain/handoff"
	"lodge-portal/internal/domain/order"
	"lodge-portal/internal/domain/product"
	"lodge-portal/internal/domain/recruitment"
	"lodge-portal/internal/domain/servicereq"
	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/domain/voucher"
	"lodge-portal/internal/infrastructure/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// requestError is a 400 produced while reading the request.
type requestError struct{ resp ErrorResponse }

func (e *requestError) Error() string { return e.resp.Error }

// decode binds the request into dst and runs the struct validator.
func decode(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return &requestError{ErrorResponse{Error: "invalid body"}}
	}
	if err := c.Validate(dst); err != nil {
		return &requestError{ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)}}
	}
	return nil
}

type errorMapping struct {
	status int
	errs   []error
}

// Domain errors → HTTP codes. Anything unlisted is a 500.
var errorTable = []errorMapping{
	{http.StatusBadRequest, []error{
		voucher.ErrNotFound, voucher.ErrAlreadyUsed, voucher.ErrInvalidAmount,
		user.ErrInvalidStatus, user.ErrInvalidType, user.ErrWeakPassword, user.ErrTermsRequired,
		recruitment.ErrInvalidStatus, recruitment.ErrReferenceCount, recruitment.ErrAttestationRequired,
		recruitment.ErrInvalidDateOfBirth, recruitment.ErrMissingDetails, recruitment.ErrInvalidYears,
		product.ErrInvalidCategory, product.ErrInvalidPrice,
		order.ErrEmpty, order.ErrInvalidStatus, order.ErrOutOfStock, order.ErrInvalidSize,
		order.ErrInvalidQty, order.ErrMixedCurrency,
		document.ErrInvalidCategory, document.ErrEmptyFile,
		servicereq.ErrInvalidStatus, servicereq.ErrInvalidServiceType, servicereq.ErrInvalidUrgency,
		handoff.ErrPhoneRequired,
	}},
	{http.StatusUnauthorized, []error{user.ErrInvalidCredentials, auth.ErrInvalidToken}},
	{http.StatusForbidden, []error{order.ErrForbidden, document.ErrForbidden}},
	{http.StatusNotFound, []error{
		user.ErrNotFound, recruitment.ErrNotFound, product.ErrNotFound, order.ErrNotFound,
		document.ErrNotFound, servicereq.ErrNotFound,
	}},
	{http.StatusConflict, []error{user.ErrEmailTaken}},
}

func statusFor(err error) int {
	for _, m := range errorTable {
		for _, target := range m.errs {
			if errors.Is(err, target) {
				return m.status
			}
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as an ErrorResponse. Internal errors are logged and
// answered with a generic message.
func writeError(c echo.Context, err error) error {
	var re *requestError
	if errors.As(err, &re) {
		return c.JSON(http.StatusBadRequest, re.resp)
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return c.JSON(he.Code, ErrorResponse{Error: msg})
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"route":      c.Path(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).Error("request failed")
		return c.JSON(status, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
