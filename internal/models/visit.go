package models

import "time"

// NoHost is the host name stored on a visit that has no hosting arrangement yet
const NoHost = "none assigned"

// Visit represents a scheduled appearance by a speaker
type Visit struct {
	ID               string              `json:"id" yaml:"id"`
	SpeakerName      string              `json:"speaker_name" yaml:"speaker_name"`
	HostName         string              `json:"host_name" yaml:"host_name"`
	CongregationName string              `json:"congregation_name" yaml:"congregation_name"`
	Date             time.Time           `json:"date" yaml:"-"`
	Time             string              `json:"time" yaml:"time"`
	LocationType     LocationType        `json:"location_type" yaml:"location_type"`
	Accommodation    string              `json:"accommodation,omitempty" yaml:"accommodation"`
	Meals            string              `json:"meals,omitempty" yaml:"meals"`
	Status           VisitStatus         `json:"status" yaml:"status"`
	Communications   CommunicationStatus `json:"communications,omitempty" yaml:"-"`
	CreatedAt        time.Time           `json:"created_at" yaml:"-"`
}

// HasHost reports whether a host is assigned to the visit
func (v *Visit) HasHost() bool {
	return v.HostName != "" && v.HostName != NoHost
}

// LocationType describes how the talk is delivered
type LocationType string

const (
	LocationInPerson  LocationType = "in-person"
	LocationVideo     LocationType = "remote-video"
	LocationStreaming LocationType = "remote-streaming"
)

// VisitStatus represents the lifecycle of a visit
type VisitStatus string

const (
	VisitScheduled VisitStatus = "scheduled"
	VisitCancelled VisitStatus = "cancelled"
	VisitCompleted VisitStatus = "completed"
)

// CongregationProfile holds the sender-side details used in every message
type CongregationProfile struct {
	Name                     string `json:"name"`
	HospitalityOverseer      string `json:"hospitality_overseer"`
	HospitalityOverseerPhone string `json:"hospitality_overseer_phone"`
}
