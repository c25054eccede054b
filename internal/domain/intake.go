package domain

import "time"

// PatientIntake captures a symptom submission from the diagnosis form.
type PatientIntake struct {
	ID        string
	Name      string
	Email     string
	Age       int
	Symptoms  string
	CreatedAt time.Time
}

// Consultation is a booked consultation slot.
type Consultation struct {
	ID        string
	Name      string
	Email     string
	Date      string
	CreatedAt time.Time
}
