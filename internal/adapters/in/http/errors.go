package http

import (
	"errors"
	"net/http"

	"ordersvc/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error is the failure envelope of every endpoint.
type Error struct {
	Code    int       `json:"code"`
	Kind    errs.Kind `json:"kind"`
	Message string    `json:"message"`
}

// NewError converts err into the response envelope. Internal failures keep
// their status but hide the message.
func NewError(err error) Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return Error{
			Code:    httpErr.Code,
			Kind:    errs.KindFromStatus(httpErr.Code),
			Message: http.StatusText(httpErr.Code),
		}
	}

	kind := errs.KindOf(err)
	e := Error{Code: errs.KindStatus(kind), Kind: kind, Message: err.Error()}
	if kind == errs.KindInternal {
		e.Message = "internal error"
	}
	return e
}

// errorHandler renders every failure, including router misses, as an Error.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := NewError(err)
		if body.Code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(body.Code)
		} else {
			err = c.JSON(body.Code, body)
		}
		if err != nil {
			logger.Warn("write error response", zap.Error(err))
		}
	}
}
