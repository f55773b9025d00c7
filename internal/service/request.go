package service

import (
	"context"
	"fmt"
	"time"

	"github.com/korzh/servicedesk/internal/models"
	"github.com/korzh/servicedesk/internal/repo"
	"github.com/korzh/servicedesk/internal/transport"
)

const (
	// StatusOpen is forced onto every new request regardless of caller input.
	StatusOpen = "Open"

	// updatedBySentinel marks a request that has never been updated.
	updatedBySentinel = "System"

	maxTitleLen = 100
)

type RequestService struct {
	Repo *repo.GormRepo
}

func (s *RequestService) Create(ctx context.Context, req transport.CreateRequestRequest) (*models.ServiceRequest, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(req.Title) > maxTitleLen {
		return nil, fmt.Errorf("%w: title must be at most %d characters", ErrValidation, maxTitleLen)
	}
	if req.CreatedBy == "" {
		return nil, fmt.Errorf("%w: createdBy is required", ErrValidation)
	}

	record := models.ServiceRequest{
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusOpen,
		CreatedDate: time.Now().UTC(),
		CreatedBy:   req.CreatedBy,
		UpdatedBy:   updatedBySentinel,
	}

	return s.Repo.CreateRequest(ctx, &record)
}

func (s *RequestService) Get(ctx context.Context, id uint) (*models.ServiceRequest, error) {
	return s.Repo.GetRequest(ctx, id)
}

// Update applies a sparse patch: title, description and status overwrite the
// stored values only when the incoming field is non-empty. The audit fields
// are stamped on every call, even when no visible field changed.
func (s *RequestService) Update(ctx context.Context, id uint, patch transport.UpdateRequestRequest, actingUser string) (*models.ServiceRequest, error) {
	record, err := s.Repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != "" {
		record.Title = patch.Title
	}
	if patch.Description != "" {
		record.Description = patch.Description
	}
	if patch.Status != "" {
		record.Status = patch.Status
	}

	now := time.Now().UTC()
	record.UpdatedDate = &now
	record.UpdatedBy = actingUser

	return s.Repo.SaveRequest(ctx, record)
}

func (s *RequestService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteRequest(ctx, id)
}

func (s *RequestService) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	return s.Repo.GetRequests(ctx)
}

func (s *RequestService) ListByStatus(ctx context.Context, status string) ([]models.ServiceRequest, error) {
	return s.Repo.GetRequestsByStatus(ctx, status)
}
