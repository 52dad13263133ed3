package http

import (
	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const (
	headerClientID = "X-Client-Id"
	headerActorID  = "X-Actor-Id"
)

func pathID(c echo.Context, name string) (kernel.ID, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.ID(id), nil
}

func queryParam[T any](c echo.Context, name string, required bool, dst *T) error {
	if err := runtime.BindQueryParameter("form", true, required, name, c.QueryParams(), dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

// optionalQueryID binds name into a pointer left nil when the parameter is absent.
func optionalQueryID(c echo.Context, name string) (*int64, error) {
	var id *int64
	if err := queryParam(c, name, false, &id); err != nil {
		return nil, err
	}
	return id, nil
}

func pagination(c echo.Context) (*payload.Pagination, error) {
	var p payload.Pagination
	if err := queryParam(c, "limit", false, &p.Limit); err != nil {
		return nil, err
	}
	if err := queryParam(c, "offset", false, &p.Offset); err != nil {
		return nil, err
	}
	return &p, nil
}

// clientContext reads the tenant headers set by the gateway.
func clientContext(c echo.Context) (kernel.ClientContext, error) {
	raw := c.Request().Header.Get(headerClientID)
	if raw == "" {
		return kernel.ClientContext{}, errs.NewValueIsRequiredError(headerClientID)
	}

	var clientID int64
	err := runtime.BindStyledParameterWithOptions("simple", headerClientID, raw, &clientID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return kernel.ClientContext{}, errs.NewValueIsInvalidErrorWithCause(headerClientID, err)
	}

	return payload.ClientIDs{ClientID: clientID, MongoID: c.Request().Header.Get(headerActorID)}.Context()
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
