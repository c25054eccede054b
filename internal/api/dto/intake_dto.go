package dto

// DiagnosisRequest payload for symptom submissions.
type DiagnosisRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Age      int    `json:"age" form:"age"`
	Symptoms string `json:"symptoms" form:"symptoms"`
}

// DiagnosisResponse carries the advisory text.
type DiagnosisResponse struct {
	Diagnosis string `json:"diagnosis"`
}

// ConsultationRequest payload for booking.
type ConsultationRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Date  string `json:"date" form:"date"`
}

// ConsultationResponse confirms a booking.
type ConsultationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PlanRequest payload for healthcare plan generation.
type PlanRequest struct {
	Age   int    `json:"age" form:"age"`
	Goals string `json:"goals" form:"goals"`
}

// PlanResponse carries the generated plan.
type PlanResponse struct {
	Plan string `json:"plan"`
}

// AnalysisResponse summarizes an uploaded data file.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
