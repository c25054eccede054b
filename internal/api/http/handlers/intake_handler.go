package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-blog/internal/api/dto"
	"github.com/spec-kit/healthcare-blog/internal/service"
	apperrors "github.com/spec-kit/healthcare-blog/pkg/util"
)

// IntakeHandler exposes the form-intake endpoints used by the site.
type IntakeHandler struct {
	service *service.IntakeService
}

// NewIntakeHandler constructs handler.
func NewIntakeHandler(intakeService *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: intakeService}
}

// Diagnosis POST /api/diagnosis.
func (h *IntakeHandler) Diagnosis(c *fiber.Ctx) error {
	var req dto.DiagnosisRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	diagnosis, err := h.service.Diagnose(c.Context(), service.DiagnosisInput{
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		Symptoms: req.Symptoms,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.DiagnosisResponse{Diagnosis: diagnosis})
}

// Consultation POST /api/consultation.
func (h *IntakeHandler) Consultation(c *fiber.Ctx) error {
	var req dto.ConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if _, err := h.service.BookConsultation(c.Context(), req.Name, req.Email, req.Date); err != nil {
		return err
	}
	return c.JSON(dto.ConsultationResponse{
		Status:  "success",
		Message: "Consultation booked!",
	})
}

// HealthcarePlan POST /api/healthcare-plan.
func (h *IntakeHandler) HealthcarePlan(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	plan, err := h.service.BuildPlan(req.Age, req.Goals)
	if err != nil {
		return err
	}
	return c.JSON(dto.PlanResponse{Plan: plan})
}

// DataAnalysis POST /api/data-analysis.
func (h *IntakeHandler) DataAnalysis(c *fiber.Ctx) error {
	file, err := c.FormFile("dataUpload")
	if err != nil {
		return apperrors.NewValidationError("No file uploaded!")
	}

	analysis, err := h.service.AnalyzeData(file.Filename, file.Size)
	if err != nil {
		return err
	}
	return c.JSON(dto.AnalysisResponse{Analysis: analysis})
}
