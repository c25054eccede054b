package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/healthcare-blog/internal/domain"
)

// IntakeRepository persists form-intake submissions.
type IntakeRepository interface {
	CreatePatientIntake(ctx context.Context, intake *domain.PatientIntake) error
	CreateConsultation(ctx context.Context, consultation *domain.Consultation) error
}

type intakeRepository struct {
	pool *pgxpool.Pool
}

// NewIntakeRepository returns a Postgres-backed implementation.
func NewIntakeRepository(pool *pgxpool.Pool) IntakeRepository {
	return &intakeRepository{pool: pool}
}

func (r *intakeRepository) CreatePatientIntake(ctx context.Context, intake *domain.PatientIntake) error {
	const query = `
        INSERT INTO patients (id, name, email, age, symptoms)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		intake.ID,
		intake.Name,
		intake.Email,
		intake.Age,
		intake.Symptoms,
	).Scan(&intake.CreatedAt)
}

func (r *intakeRepository) CreateConsultation(ctx context.Context, consultation *domain.Consultation) error {
	const query = `
        INSERT INTO consultations (id, name, email, date)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		consultation.ID,
		consultation.Name,
		consultation.Email,
		consultation.Date,
	).Scan(&consultation.CreatedAt)
}
