package dtos

import (
	"fmt"

	"patient-record-service/internal/domain/entities"
)

// UpdatePatientRequest is a partial update of a patient record.
// Nil fields are left untouched.
type UpdatePatientRequest struct {
	ID          *string `json:"id,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

// ApplyTo writes the non-nil fields into p. Text fields are decoded before
// anything is written, so p is unchanged when an error is returned.
func (r UpdatePatientRequest) ApplyTo(p *entities.PatientRecord) error {
	var (
		dob    entities.Date
		gender entities.Gender
		err    error
	)
	if r.DateOfBirth != nil {
		if dob, err = entities.ParseDate(*r.DateOfBirth); err != nil {
			return fmt.Errorf("date_of_birth: %w", err)
		}
	}
	if r.Gender != nil {
		if gender, err = entities.ParseGender(*r.Gender); err != nil {
			return fmt.Errorf("gender: %w", err)
		}
	}

	if r.ID != nil {
		p.SetID(*r.ID)
	}
	if r.FirstName != nil {
		p.SetFirstName(*r.FirstName)
	}
	if r.LastName != nil {
		p.SetLastName(*r.LastName)
	}
	if r.DateOfBirth != nil {
		p.SetDateOfBirth(dob)
	}
	if r.Gender != nil {
		p.SetGender(gender)
	}
	return nil
}
