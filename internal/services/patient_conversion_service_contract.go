package services

import (
	"context"
	"encoding/json"

	"patient-record-service/internal/domain/dtos"
)

// PatientConversionServiceContract defines the conversions between the JSON
// view of a patient record and its FHIR Patient resource.
type PatientConversionServiceContract interface {
	// ExportFHIR maps a patient to a FHIR Patient resource. An empty
	// fhirVersion selects the service default.
	ExportFHIR(ctx context.Context, patient dtos.PatientDTO, fhirVersion string) (json.RawMessage, error)
	// ImportFHIR maps a FHIR Patient resource back to a patient.
	ImportFHIR(ctx context.Context, resource json.RawMessage) (dtos.PatientDTO, error)
	// ApplyUpdate applies a partial update to a patient and returns the result.
	ApplyUpdate(ctx context.Context, patient dtos.PatientDTO, update dtos.UpdatePatientRequest) (dtos.PatientDTO, error)
}
