package mappers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"patient-record-service/internal/domain/entities"
)

const patientResourceType = "Patient"

var (
	ErrUnsupportedFHIRVersion = errors.New("unsupported FHIR version")
	ErrNotPatientResource     = errors.New("resource is not a FHIR Patient")
	ErrUnknownFHIRGender      = errors.New("unknown FHIR gender code")
)

// SupportedFHIRVersions lists the FHIR releases the mappers produce and accept.
var SupportedFHIRVersions = []string{"STU3", "DSTU2"}

// FHIRHumanName represents a FHIR HumanName data type.
type FHIRHumanName struct {
	Use    string   `json:"use,omitempty"`    // usual | official | temp | nickname | anonymous | old | maiden
	Family string   `json:"family,omitempty"` // Family name (often surname)
	Given  []string `json:"given,omitempty"`  // Given names (not including surname)
}

// FHIRPatientGender represents the administrative gender of a patient.
// FHIR values: male | female | other | unknown
type FHIRPatientGender string

const (
	GenderMale    FHIRPatientGender = "male"
	GenderFemale  FHIRPatientGender = "female"
	GenderOther   FHIRPatientGender = "other"
	GenderUnknown FHIRPatientGender = "unknown"
)

// FHIRPatientResource represents a simplified FHIR Patient resource.
// Core demographics only; the shape is the same in DSTU2 and STU3.
type FHIRPatientResource struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Name         []FHIRHumanName   `json:"name,omitempty"`
	BirthDate    string            `json:"birthDate,omitempty"` // YYYY-MM-DD
	Gender       FHIRPatientGender `json:"gender,omitempty"`
}

// ValidateFHIRVersion returns ErrUnsupportedFHIRVersion unless version is one of SupportedFHIRVersions.
func ValidateFHIRVersion(version string) error {
	for _, v := range SupportedFHIRVersions {
		if v == version {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFHIRVersion, version)
}

// MapPatientToFHIR converts a patient record to a FHIR Patient resource (json.RawMessage).
func MapPatientToFHIR(patient entities.PatientRecord, fhirVersion string) (json.RawMessage, error) {
	if err := ValidateFHIRVersion(fhirVersion); err != nil {
		return nil, err
	}

	fhirPatient := FHIRPatientResource{
		ResourceType: patientResourceType,
		ID:           patient.ID(),
		BirthDate:    patient.DateOfBirth().String(),
		Gender:       genderToFHIR(patient.Gender()),
	}
	if patient.FirstName() != "" || patient.LastName() != "" {
		humanName := FHIRHumanName{Use: "official", Family: patient.LastName()}
		if patient.FirstName() != "" {
			humanName.Given = []string{patient.FirstName()}
		}
		fhirPatient.Name = []FHIRHumanName{humanName}
	}

	rawJSON, err := json.MarshalIndent(fhirPatient, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling FHIR patient resource to JSON: %w", err)
	}
	return rawJSON, nil
}

// MapFHIRToPatient converts a FHIR Patient resource back to a patient record.
// The first official name is preferred, falling back to the first name listed;
// multiple given names are joined with a space.
func MapFHIRToPatient(raw json.RawMessage) (entities.PatientRecord, error) {
	var fhirPatient FHIRPatientResource
	if err := json.Unmarshal(raw, &fhirPatient); err != nil {
		return entities.PatientRecord{}, fmt.Errorf("error unmarshalling FHIR patient resource: %w", err)
	}
	if fhirPatient.ResourceType != patientResourceType {
		return entities.PatientRecord{}, fmt.Errorf("%w: got resourceType %q", ErrNotPatientResource, fhirPatient.ResourceType)
	}

	dob, err := entities.ParseDate(fhirPatient.BirthDate)
	if err != nil {
		return entities.PatientRecord{}, fmt.Errorf("birthDate: %w", err)
	}
	gender, err := genderFromFHIR(fhirPatient.Gender)
	if err != nil {
		return entities.PatientRecord{}, err
	}

	var first, last string
	if name, ok := primaryName(fhirPatient.Name); ok {
		first, last = strings.Join(name.Given, " "), name.Family
	}
	return entities.NewPatientRecord(fhirPatient.ID, first, last, dob, gender), nil
}

func primaryName(names []FHIRHumanName) (FHIRHumanName, bool) {
	if len(names) == 0 {
		return FHIRHumanName{}, false
	}
	for _, n := range names {
		if n.Use == "official" {
			return n, true
		}
	}
	return names[0], true
}

// Unspecified has no FHIR counterpart and is left out of the resource.
func genderToFHIR(g entities.Gender) FHIRPatientGender {
	switch g {
	case entities.GenderMale:
		return GenderMale
	case entities.GenderFemale:
		return GenderFemale
	case entities.GenderOther:
		return GenderOther
	default:
		return ""
	}
}

func genderFromFHIR(g FHIRPatientGender) (entities.Gender, error) {
	switch g {
	case GenderMale:
		return entities.GenderMale, nil
	case GenderFemale:
		return entities.GenderFemale, nil
	case GenderOther:
		return entities.GenderOther, nil
	case GenderUnknown, "":
		return entities.GenderUnspecified, nil
	default:
		return entities.GenderUnspecified, fmt.Errorf("%w: %q", ErrUnknownFHIRGender, string(g))
	}
}
