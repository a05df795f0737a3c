package dtos

import (
	"fmt"

	"patient-record-service/internal/domain/entities"
)

// PatientDTO represents patient data in JSON documents.
type PatientDTO struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"` // Formatted as YYYY-MM-DD, empty when unset
	Gender      string `json:"gender"`        // unspecified | male | female | other
}

// NewPatientDTO builds the JSON view of a patient record.
func NewPatientDTO(p entities.PatientRecord) PatientDTO {
	return PatientDTO{
		ID:          p.ID(),
		FirstName:   p.FirstName(),
		LastName:    p.LastName(),
		DateOfBirth: p.DateOfBirth().String(),
		Gender:      p.Gender().String(),
	}
}

// ToRecord converts the DTO back into a patient record.
// An empty gender is read as unspecified.
func (d PatientDTO) ToRecord() (entities.PatientRecord, error) {
	dob, err := entities.ParseDate(d.DateOfBirth)
	if err != nil {
		return entities.PatientRecord{}, fmt.Errorf("date_of_birth: %w", err)
	}
	gender, err := entities.ParseGender(d.Gender)
	if err != nil {
		return entities.PatientRecord{}, fmt.Errorf("gender: %w", err)
	}
	return entities.NewPatientRecord(d.ID, d.FirstName, d.LastName, dob, gender), nil
}
