package patient

import (
	"context"
	"fmt"

	appointmentRepo "dentora/database/repository/appointment"
	patientRepo "dentora/database/repository/patient"
	"dentora/models"
)

// PatientService manages patient records for the staff portal.
type PatientService interface {
	Create(ctx context.Context, p *models.Patient) (*models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	Search(ctx context.Context, query string) ([]models.Patient, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]models.Appointment, error)
}

type DefaultPatientService struct {
	Repo            patientRepo.PatientRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

func (s *DefaultPatientService) Create(ctx context.Context, p *models.Patient) (*models.Patient, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	return s.Repo.Search(ctx, query)
}

func (s *DefaultPatientService) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	return s.Repo.Update(ctx, id, updates)
}

func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// History returns the patient's appointments, most recent first delegated
// to the repository's date ordering.
func (s *DefaultPatientService) History(ctx context.Context, id string) ([]models.Appointment, error) {
	return s.AppointmentRepo.ListByPatient(ctx, id)
}
