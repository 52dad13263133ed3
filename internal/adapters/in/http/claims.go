package http

import (
	"errors"
	"net/http"

	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/claim"

	"github.com/labstack/echo/v4"
)

func claimJSON(c echo.Context, status int, cl *claim.Claim, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(status, queries.NewClaimResponse(cl))
}

func (s *Server) CreateClaim(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	var dto payload.CreateClaimDto
	if err = bindBody(c, &dto); err != nil {
		return err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}

	cl, err := s.uc.CreateClaim.Handle(c.Request().Context(), cmd)
	return claimJSON(c, http.StatusCreated, cl, err)
}

func (s *Server) FindClaims(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}

	var where payload.ClaimWhereInput
	var detailErr error
	where.DetailID, detailErr = optionalQueryID(c, "detail_fk")
	deletedErr := queryParam(c, "include_deleted", false, &where.IncludeDeleted)
	page, pErr := pagination(c)
	if err = errors.Join(detailErr, deletedErr, pErr); err != nil {
		return err
	}

	query, err := where.Query(cc, page)
	if err != nil {
		return err
	}
	claims, err := s.uc.FindClaims.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}

func (s *Server) FindClaim(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	claimID, err := pathID(c, "claimId")
	if err != nil {
		return err
	}

	query, err := queries.NewFindClaimQuery(cc, claimID)
	if err != nil {
		return err
	}
	cl, err := s.uc.FindClaim.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cl)
}

func (s *Server) UpdateClaim(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	claimID, err := pathID(c, "claimId")
	if err != nil {
		return err
	}
	var dto payload.UpdateClaimDto
	if err = bindBody(c, &dto); err != nil {
		return err
	}
	dto.ClaimID = claimID.Int64()

	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}
	cl, err := s.uc.UpdateClaim.Handle(c.Request().Context(), cmd)
	return claimJSON(c, http.StatusOK, cl, err)
}

func (s *Server) DeleteClaim(c echo.Context) error {
	cc, err := clientContext(c)
	if err != nil {
		return err
	}
	claimID, err := pathID(c, "claimId")
	if err != nil {
		return err
	}
	dto := payload.DeleteClaimDto{ClaimID: claimID.Int64()}
	if err = queryParam(c, "updated_by", true, &dto.UpdatedBy); err != nil {
		return err
	}

	cmd, err := dto.Command(cc)
	if err != nil {
		return err
	}
	cl, err := s.uc.DeleteClaim.Handle(c.Request().Context(), cmd)
	return claimJSON(c, http.StatusOK, cl, err)
}
