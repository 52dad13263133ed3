package http

import (
	"errors"
	"net/http"

	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	var dto payload.CreateOrderDto
	if err = bindBody(c, &dto); err != nil {
		return err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}

	res, err := s.uc.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, queries.NewCreatedOrderResponse(res.Order, res.Detail))
}

// FindOrders handles GET /api/v1/orders.
func (s *Server) FindOrders(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}

	var where payload.OrderWhereInput
	var companyErr, patientErr, treatmentErr error
	where.CompanyID, companyErr = optionalQueryID(c, "company_fk")
	where.PatientID, patientErr = optionalQueryID(c, "patient_fk")
	where.TreatmentID, treatmentErr = optionalQueryID(c, "treatment_fk")
	deletedErr := queryParam(c, "include_deleted", false, &where.IncludeDeleted)
	page, pErr := pagination(c)
	if err = errors.Join(companyErr, patientErr, treatmentErr, deletedErr, pErr); err != nil {
		return err
	}

	query, err := where.Query(cc, page)
	if err != nil {
		return err
	}
	orders, err := s.uc.FindOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// FindOrphanedOrders handles GET /api/v1/orders/orphaned.
func (s *Server) FindOrphanedOrders(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("older_than")
	if raw == "" {
		return errs.NewValueIsRequiredError("older_than")
	}
	olderThan, err := payload.ParseDate(raw)
	if err != nil {
		return err
	}
	p, err := pagination(c)
	if err != nil {
		return err
	}
	page, err := p.Page()
	if err != nil {
		return err
	}

	query, err := queries.NewFindOrphanedOrdersQuery(cc, olderThan, page)
	if err != nil {
		return err
	}
	orders, err := s.uc.FindOrphanedOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// FindOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) FindOrder(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}

	query, err := queries.NewFindOrderQuery(cc, orderID)
	if err != nil {
		return err
	}
	o, err := s.uc.FindOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	var dto payload.UpdateOrderDto
	if err = bindBody(c, &dto); err != nil {
		return err
	}
	dto.OrderID = orderID.Int64()

	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}
	o, err := s.uc.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, queries.NewOrderResponse(o))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	dto := payload.DeleteOrderDto{OrderID: orderID.Int64()}
	if err = queryParam(c, "updated_by", true, &dto.UpdatedBy); err != nil {
		return err
	}

	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}
	o, err := s.uc.DeleteOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, queries.NewOrderResponse(o))
}
