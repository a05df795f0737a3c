package entities

// PatientRecord holds the demographic data of a single patient.
//
// The zero value is ready to use: empty identifier and names, a null date of
// birth and GenderUnspecified. Setters replace values unconditionally; no
// field is validated. A PatientRecord is not safe for concurrent mutation.
type PatientRecord struct {
	id          string
	firstName   string
	lastName    string
	dateOfBirth Date
	gender      Gender
}

// NewPatientRecord creates a PatientRecord with every field set from the arguments.
func NewPatientRecord(id, firstName, lastName string, dateOfBirth Date, gender Gender) PatientRecord {
	return PatientRecord{
		id:          id,
		firstName:   firstName,
		lastName:    lastName,
		dateOfBirth: dateOfBirth,
		gender:      gender,
	}
}

func (p PatientRecord) ID() string { return p.id }
func (p PatientRecord) FirstName() string { return p.firstName }
func (p PatientRecord) LastName() string { return p.lastName }
func (p PatientRecord) DateOfBirth() Date { return p.dateOfBirth }
func (p PatientRecord) Gender() Gender { return p.gender }

func (p *PatientRecord) SetID(id string) { p.id = id }
func (p *PatientRecord) SetFirstName(firstName string) { p.firstName = firstName }
func (p *PatientRecord) SetLastName(lastName string) { p.lastName = lastName }
func (p *PatientRecord) SetDateOfBirth(dob Date) { p.dateOfBirth = dob }
func (p *PatientRecord) SetGender(gender Gender) { p.gender = gender }
