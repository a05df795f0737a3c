package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"patient-record-service/internal/domain/dtos"
	"patient-record-service/internal/domain/entities"
	"patient-record-service/internal/fhir/mappers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedService(t *testing.T) (*PatientConversionServiceImpl, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewPatientConversionService("STU3", zap.New(core)).(*PatientConversionServiceImpl)
	return svc, logs
}

func TestNewPatientConversionService(t *testing.T) {
	svc := NewPatientConversionService("STU3", nil)
	assert.NotNil(t, svc, "NewPatientConversionService should not return nil")
}

func TestPatientConversionService_ExportFHIR_Success(t *testing.T) {
	svc, logs := newObservedService(t)
	patientID := uuid.NewString()
	patient := dtos.PatientDTO{
		ID:          patientID,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1815-12-10",
		Gender:      "female",
	}

	raw, err := svc.ExportFHIR(context.Background(), patient, "")
	require.NoError(t, err)

	var fhirPatient mappers.FHIRPatientResource
	require.NoError(t, json.Unmarshal(raw, &fhirPatient))
	assert.Equal(t, "Patient", fhirPatient.ResourceType)
	assert.Equal(t, patientID, fhirPatient.ID)
	assert.Equal(t, "1815-12-10", fhirPatient.BirthDate)
	assert.Equal(t, mappers.GenderFemale, fhirPatient.Gender)

	entries := logs.FilterMessage("Patient exported to FHIR").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, patientID, fields["patient_id"])
	assert.Equal(t, "STU3", fields["fhir_version"], "empty version should fall back to the default")
}

func TestPatientConversionService_ExportFHIR_Errors(t *testing.T) {
	svc, logs := newObservedService(t)

	_, err := svc.ExportFHIR(context.Background(), dtos.PatientDTO{ID: "P-1"}, "R4")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mappers.ErrUnsupportedFHIRVersion))
	assert.Equal(t, 1, logs.FilterMessage("Failed to map patient to FHIR").Len())

	_, err = svc.ExportFHIR(context.Background(), dtos.PatientDTO{ID: "P-2", Gender: "robot"}, "STU3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrUnknownGender))
	assert.Contains(t, err.Error(), `patient "P-2"`)
}

func TestPatientConversionService_ImportFHIR(t *testing.T) {
	svc, logs := newObservedService(t)
	raw := json.RawMessage(`{"resourceType":"Patient","id":"P-100","name":[{"use":"official","family":"Lovelace","given":["Ada"]}],"birthDate":"1815-12-10","gender":"female"}`)

	patient, err := svc.ImportFHIR(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, dtos.PatientDTO{
		ID:          "P-100",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1815-12-10",
		Gender:      "female",
	}, patient)
	assert.Equal(t, 1, logs.FilterMessage("Patient imported from FHIR").Len())

	_, err = svc.ImportFHIR(context.Background(), json.RawMessage(`{"resourceType":"Observation"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, mappers.ErrNotPatientResource))
}

func TestPatientConversionService_ExportImportRoundTrip(t *testing.T) {
	svc, _ := newObservedService(t)
	for _, gender := range []string{"unspecified", "male", "female", "other"} {
		patient := dtos.PatientDTO{ID: uuid.NewString(), FirstName: "Test", LastName: "Patient", DateOfBirth: "2000-01-01", Gender: gender}

		raw, err := svc.ExportFHIR(context.Background(), patient, "DSTU2")
		require.NoError(t, err)
		back, err := svc.ImportFHIR(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, patient, back)
	}
}

func TestPatientConversionService_ApplyUpdate(t *testing.T) {
	svc, _ := newObservedService(t)
	patient := dtos.PatientDTO{ID: "P-1", FirstName: "Ada", Gender: "female"}
	dob := "1815-12-10"

	updated, err := svc.ApplyUpdate(context.Background(), patient, dtos.UpdatePatientRequest{DateOfBirth: &dob})
	require.NoError(t, err)
	assert.Equal(t, "1815-12-10", updated.DateOfBirth)
	assert.Equal(t, "P-1", updated.ID)
	assert.Equal(t, "female", updated.Gender)

	bad := "someday"
	_, err = svc.ApplyUpdate(context.Background(), patient, dtos.UpdatePatientRequest{DateOfBirth: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entities.ErrInvalidDate))
}

func TestPatientConversionService_CancelledContext(t *testing.T) {
	svc, logs := newObservedService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ExportFHIR(ctx, dtos.PatientDTO{}, "")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.ImportFHIR(ctx, json.RawMessage(`{"resourceType":"Patient"}`))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.ApplyUpdate(ctx, dtos.PatientDTO{}, dtos.UpdatePatientRequest{})
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 0, logs.Len(), "nothing should be logged for a cancelled context")
}
