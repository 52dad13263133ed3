package queries

import (
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
)

func takeDetail(tx *gorm.DB, detailID kernel.ID) (OrderDetailResponse, error) {
	var resp OrderDetailResponse
	err := tx.Take(&resp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("detail_id", detailID)
	}
	if err != nil {
		return OrderDetailResponse{}, err
	}
	return resp, nil
}

func findDetails(tx *gorm.DB, page Page) ([]OrderDetailResponse, error) {
	details := make([]OrderDetailResponse, 0)
	if err := page.apply(tx.Order("detail_id")).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}
