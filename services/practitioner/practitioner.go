package practitioner

import (
	"context"
	"fmt"

	practitionerRepo "dentora/database/repository/practitioner"
	"dentora/models"
)

// PractitionerService manages practitioners and their leave calendar.
type PractitionerService interface {
	Create(ctx context.Context, p *models.Practitioner) (*models.Practitioner, error)
	GetByID(ctx context.Context, id string) (*models.Practitioner, error)
	ListActive(ctx context.Context) ([]models.Practitioner, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	AddLeaveDay(ctx context.Context, practitionerID, date, reason string) error
	RemoveLeaveDay(ctx context.Context, practitionerID, date string) error
}

type DefaultPractitionerService struct {
	Repo practitionerRepo.PractitionerRepository
}

func (s *DefaultPractitionerService) Create(ctx context.Context, p *models.Practitioner) (*models.Practitioner, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("practitioner name is required")
	}
	p.Active = true
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPractitionerService) GetByID(ctx context.Context, id string) (*models.Practitioner, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPractitionerService) ListActive(ctx context.Context) ([]models.Practitioner, error) {
	return s.Repo.ListActive(ctx)
}

func (s *DefaultPractitionerService) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return s.Repo.Update(ctx, id, updates)
}

func (s *DefaultPractitionerService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultPractitionerService) AddLeaveDay(ctx context.Context, practitionerID, date, reason string) error {
	return s.Repo.AddLeaveDay(ctx, practitionerID, models.LeaveDay{Date: date, Reason: reason})
}

func (s *DefaultPractitionerService) RemoveLeaveDay(ctx context.Context, practitionerID, date string) error {
	return s.Repo.RemoveLeaveDay(ctx, practitionerID, date)
}
