package http

import (
	"errors"
	"net/http"

	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/orderdetail"

	"github.com/labstack/echo/v4"
)

type professionalAction struct {
	ProfessionalID int64 `json:"professional_id"`
}

type finalizeBody struct {
	UpdatedBy int64 `json:"updated_by"`
}

type countResponse struct {
	Total int64 `json:"total"`
}

func detailJSON(c echo.Context, status int, d *orderdetail.OrderDetail, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(status, queries.NewOrderDetailResponse(d))
}

func (s *Server) CreateOrderDetail(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	var dto payload.CreateOrderDetailDto
	if err = bindBody(c, &dto); err != nil {
		return err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}

	d, err := s.uc.CreateOrderDetail.Handle(c.Request().Context(), cmd)
	return detailJSON(c, http.StatusCreated, d, err)
}

func (s *Server) FindOrderDetails(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}

	var where payload.DetailWhereInput
	var orderErr, proErr error
	where.OrderID, orderErr = optionalQueryID(c, "order_fk")
	where.ProfessionalID, proErr = optionalQueryID(c, "professional_fk")
	page, pErr := pagination(c)
	if err = errors.Join(orderErr, proErr, pErr); err != nil {
		return err
	}

	query, err := where.Query(cc, page)
	if err != nil {
		return err
	}
	details, err := s.uc.FindOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

func (s *Server) FindOrderDetail(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	detailID, err := pathID(c, "detailId")
	if err != nil {
		return err
	}

	query, err := queries.NewFindOrderDetailQuery(cc, detailID)
	if err != nil {
		return err
	}
	d, err := s.uc.FindOrderDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) UpdateOrderDetail(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	detailID, err := pathID(c, "detailId")
	if err != nil {
		return err
	}
	var dto payload.UpdateDetailDto
	if err = bindBody(c, &dto); err != nil {
		return err
	}
	dto.DetailID = detailID.Int64()

	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}
	d, err := s.uc.UpdateOrderDetail.Handle(c.Request().Context(), cmd)
	return detailJSON(c, http.StatusOK, d, err)
}

func (s *Server) FinalizeOrderDetail(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	detailID, err := pathID(c, "detailId")
	if err != nil {
		return err
	}
	var body finalizeBody
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := payload.DeleteDetailDto{DetailID: detailID.Int64(), UpdatedBy: body.UpdatedBy}.Command(cc)
	if err != nil {
		return err
	}
	d, err := s.uc.FinalizeOrderDetail.Handle(c.Request().Context(), cmd)
	return detailJSON(c, http.StatusOK, d, err)
}

func (s *Server) AcceptOrderDetail(c echo.Context) error {
	detailID, err := pathID(c, "detailId")
	if err != nil {
		return err
	}
	var body professionalAction
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderDetailCommand(kernel.ID(body.ProfessionalID), detailID)
	if err != nil {
		return err
	}
	d, err := s.uc.AcceptOrderDetail.Handle(c.Request().Context(), cmd)
	return detailJSON(c, http.StatusOK, d, err)
}

func (s *Server) AddSession(c echo.Context) error {
	detailID, err := pathID(c, "detailId")
	if err != nil {
		return err
	}
	var body professionalAction
	if err = bindBody(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddSessionCommand(detailID, kernel.ID(body.ProfessionalID))
	if err != nil {
		return err
	}
	d, err := s.uc.AddSession.Handle(c.Request().Context(), cmd)
	return detailJSON(c, http.StatusOK, d, err)
}

func (s *Server) CountDetailsByCompany(c echo.Context) error {
	companyID, err := pathID(c, "companyId")
	if err != nil {
		return err
	}
	query, err := queries.NewCountDetailsByCompanyQuery(companyID)
	if err != nil {
		return err
	}
	total, err := s.uc.CountDetailsByCompany.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Total: total})
}

func (s *Server) GetProfessionalDetails(c echo.Context) error {
	professionalID, err := pathID(c, "professionalId")
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

	query, err := queries.NewGetProfessionalDetailsQuery(professionalID, page)
	if err != nil {
		return err
	}
	details, err := s.uc.GetProfessionalDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

func (s *Server) GetProfessionalDetail(c echo.Context) error {
	professionalID, pErr := pathID(c, "professionalId")
	detailID, dErr := pathID(c, "detailId")
	if err := errors.Join(pErr, dErr); err != nil {
		return err
	}

	query, err := queries.NewGetProfessionalDetailQuery(detailID, professionalID)
	if err != nil {
		return err
	}
	d, err := s.uc.GetProfessionalDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) FindPendingOrderDetails(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	professionalID, err := pathID(c, "professionalId")
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

	query, err := queries.NewFindPendingOrderDetailsQuery(cc.ClientID(), professionalID, page)
	if err != nil {
		return err
	}
	details, err := s.uc.FindPendingOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}
