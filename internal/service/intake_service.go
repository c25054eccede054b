package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/healthcare-blog/internal/domain"
	"github.com/spec-kit/healthcare-blog/internal/events"
	"github.com/spec-kit/healthcare-blog/internal/repository"
	apperrors "github.com/spec-kit/healthcare-blog/pkg/util"
)

// DiagnosisInput carries a symptom submission.
type DiagnosisInput struct {
	Name     string
	Email    string
	Age      int
	Symptoms string
}

// IntakeService handles the non-blog form submissions: diagnosis,
// consultation booking, healthcare plans and data uploads.
type IntakeService struct {
	intakes    repository.IntakeRepository
	dispatcher events.Dispatcher
}

// NewIntakeService builds the service. Dispatcher may be nil.
func NewIntakeService(intakes repository.IntakeRepository, dispatcher events.Dispatcher) *IntakeService {
	return &IntakeService{intakes: intakes, dispatcher: dispatcher}
}

// diagnosisRule maps symptom keywords to advisory text. Rules are checked
// in order; the first one whose keywords all appear wins.
type diagnosisRule struct {
	keywords  []string
	diagnosis string
}

var diagnosisRules = []diagnosisRule{
	{[]string{"chest pain"}, "Chest pain can be serious. Please seek medical care immediately."},
	{[]string{"shortness of breath"}, "Breathing difficulties can be serious. Please seek medical care immediately."},
	{[]string{"fever", "cough"}, "Your symptoms are consistent with the flu. Rest, stay hydrated and monitor your temperature."},
	{[]string{"headache", "nausea"}, "You might be experiencing a migraine. Rest in a dark, quiet room."},
	{[]string{"sore throat"}, "You might have a throat infection. Warm fluids help; see a doctor if it persists."},
	{[]string{"rash"}, "You might have a skin irritation or allergy. Avoid scratching and consider an antihistamine."},
}

// Diagnose stores the intake record and returns advisory text derived
// from the submitted symptoms. It is an informational hint, not a
// medical diagnosis.
func (s *IntakeService) Diagnose(ctx context.Context, input DiagnosisInput) (string, error) {
	symptoms := strings.TrimSpace(input.Symptoms)
	if symptoms == "" {
		return "", apperrors.NewValidationError("Please describe your symptoms")
	}

	intake := &domain.PatientIntake{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Age:      input.Age,
		Symptoms: symptoms,
	}
	if err := s.intakes.CreatePatientIntake(ctx, intake); err != nil {
		return "", apperrors.NewInternalError(err)
	}

	return matchDiagnosis(symptoms), nil
}

func matchDiagnosis(symptoms string) string {
	lowered := strings.ToLower(symptoms)
	for _, rule := range diagnosisRules {
		matched := true
		for _, keyword := range rule.keywords {
			if !strings.Contains(lowered, keyword) {
				matched = false
				break
			}
		}
		if matched {
			return rule.diagnosis
		}
	}
	return "You might have a cold"
}

// BookConsultation persists a consultation request.
func (s *IntakeService) BookConsultation(ctx context.Context, name, email, date string) (*domain.Consultation, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	date = strings.TrimSpace(date)
	if name == "" || email == "" || date == "" {
		return nil, apperrors.NewValidationError("Please include all fields")
	}

	consultation := &domain.Consultation{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Date:  date,
	}
	if err := s.intakes.CreateConsultation(ctx, consultation); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventConsultationBooked,
			Timestamp: time.Now(),
			Payload: events.ConsultationBookedPayload{
				ConsultationID: consultation.ID,
				Date:           consultation.Date,
			},
		})
	}
	return consultation, nil
}

// BuildPlan derives a generic healthcare plan from age and stated goals.
// Plans are generated on the fly and not persisted.
func (s *IntakeService) BuildPlan(age int, goals string) (string, error) {
	goals = strings.TrimSpace(goals)
	if age <= 0 || goals == "" {
		return "", apperrors.NewValidationError("Please include all fields")
	}

	var base string
	switch {
	case age < 18:
		base = "Stay active with at least an hour of play or sport daily and keep regular sleep hours."
	case age < 40:
		base = "Exercise regularly and eat a balanced diet."
	case age < 65:
		base = "Combine moderate cardio with strength training twice a week and schedule annual checkups."
	default:
		base = "Prioritize low-impact exercise such as walking or swimming and review medications with your doctor regularly."
	}
	return fmt.Sprintf("%s Keep your goal in focus: %s.", base, goals), nil
}

// AnalyzeData summarizes an uploaded health-data file. The content is not
// retained after the request.
func (s *IntakeService) AnalyzeData(filename string, size int64) (string, error) {
	if strings.TrimSpace(filename) == "" || size <= 0 {
		return "", apperrors.NewValidationError("No file uploaded!")
	}
	return fmt.Sprintf("Data analyzed successfully! Processed %s (%d bytes).", filename, size), nil
}
