package models

// Gender is the grammatical agreement category of a person
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	// GenderCouple is only valid for hosts
	GenderCouple Gender = "couple"
)

// Speaker is the visiting speaker linked to a visit
type Speaker struct {
	ID           string `json:"id" yaml:"id"`
	VisitID      string `json:"visit_id" yaml:"-"`
	Name         string `json:"name" yaml:"name"`
	Gender       Gender `json:"gender" yaml:"gender"`
	Phone        string `json:"phone,omitempty" yaml:"phone"`
	Congregation string `json:"congregation,omitempty" yaml:"congregation"`
	Notes        string `json:"notes,omitempty" yaml:"notes"`
}

// Host is the person or couple hosting the speaker for a visit
type Host struct {
	ID      string `json:"id" yaml:"id"`
	VisitID string `json:"visit_id" yaml:"-"`
	Name    string `json:"name" yaml:"name"`
	Gender  Gender `json:"gender" yaml:"gender"`
	Phone   string `json:"phone,omitempty" yaml:"phone"`
	Address string `json:"address,omitempty" yaml:"address"`
	Notes   string `json:"notes,omitempty" yaml:"notes"`
}
