package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/korzh/servicedesk/internal/models"
)

func (r *GormRepo) CreateRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error) {
	if err := r.DB.WithContext(ctx).Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

func (r *GormRepo) GetRequest(ctx context.Context, id uint) (*models.ServiceRequest, error) {
	req := models.ServiceRequest{}
	if err := r.DB.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *GormRepo) GetRequests(ctx context.Context) ([]models.ServiceRequest, error) {
	items := make([]models.ServiceRequest, 0)
	if err := r.DB.WithContext(ctx).
		Model(&models.ServiceRequest{}).
		Order("created_date DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetRequestsByStatus(ctx context.Context, status string) ([]models.ServiceRequest, error) {
	items := make([]models.ServiceRequest, 0)
	if err := r.DB.WithContext(ctx).
		Model(&models.ServiceRequest{}).
		Where("status = ?", status).
		Order("created_date DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) SaveRequest(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error) {
	if err := r.DB.WithContext(ctx).Save(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

func (r *GormRepo) DeleteRequest(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.ServiceRequest{}, id)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
