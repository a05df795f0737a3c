package services

import (
	"context"
	"encoding/json"
	"fmt"

	"patient-record-service/internal/domain/dtos"
	"patient-record-service/internal/fhir/mappers"

	"go.uber.org/zap"
)

// PatientConversionServiceImpl implements PatientConversionServiceContract.
type PatientConversionServiceImpl struct {
	defaultFHIRVersion string
	logger             *zap.Logger
}

// NewPatientConversionService creates a new PatientConversionServiceImpl.
func NewPatientConversionService(defaultFHIRVersion string, logger *zap.Logger) PatientConversionServiceContract {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatientConversionServiceImpl{
		defaultFHIRVersion: defaultFHIRVersion,
		logger:             logger.Named("patient_conversion"),
	}
}

// ExportFHIR converts the patient to a record and maps it to FHIR.
func (s *PatientConversionServiceImpl) ExportFHIR(ctx context.Context, patient dtos.PatientDTO, fhirVersion string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fhirVersion == "" {
		fhirVersion = s.defaultFHIRVersion
	}
	log := s.logger.With(zap.String("patient_id", patient.ID), zap.String("fhir_version", fhirVersion))

	record, err := patient.ToRecord()
	if err != nil {
		log.Warn("Invalid patient document", zap.Error(err))
		return nil, fmt.Errorf("patient %q: %w", patient.ID, err)
	}

	raw, err := mappers.MapPatientToFHIR(record, fhirVersion)
	if err != nil {
		log.Error("Failed to map patient to FHIR", zap.Error(err))
		return nil, fmt.Errorf("FHIR mapping for patient %q: %w", patient.ID, err)
	}

	log.Info("Patient exported to FHIR", zap.Int("bytes", len(raw)))
	return raw, nil
}

// ImportFHIR maps a FHIR Patient resource to a record and returns its JSON view.
func (s *PatientConversionServiceImpl) ImportFHIR(ctx context.Context, resource json.RawMessage) (dtos.PatientDTO, error) {
	if err := ctx.Err(); err != nil {
		return dtos.PatientDTO{}, err
	}

	record, err := mappers.MapFHIRToPatient(resource)
	if err != nil {
		s.logger.Warn("Failed to map FHIR resource to patient", zap.Int("bytes", len(resource)), zap.Error(err))
		return dtos.PatientDTO{}, fmt.Errorf("FHIR import: %w", err)
	}

	s.logger.Info("Patient imported from FHIR", zap.String("patient_id", record.ID()))
	return dtos.NewPatientDTO(record), nil
}

// ApplyUpdate applies the non-nil fields of update to patient.
func (s *PatientConversionServiceImpl) ApplyUpdate(ctx context.Context, patient dtos.PatientDTO, update dtos.UpdatePatientRequest) (dtos.PatientDTO, error) {
	if err := ctx.Err(); err != nil {
		return dtos.PatientDTO{}, err
	}
	log := s.logger.With(zap.String("patient_id", patient.ID))

	record, err := patient.ToRecord()
	if err != nil {
		log.Warn("Invalid patient document", zap.Error(err))
		return dtos.PatientDTO{}, fmt.Errorf("patient %q: %w", patient.ID, err)
	}
	if err := update.ApplyTo(&record); err != nil {
		log.Warn("Invalid patient update", zap.Error(err))
		return dtos.PatientDTO{}, fmt.Errorf("update for patient %q: %w", patient.ID, err)
	}

	log.Debug("Patient updated", zap.String("new_patient_id", record.ID()))
	return dtos.NewPatientDTO(record), nil
}
