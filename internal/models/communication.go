package models

import "time"

// MessageType is the purpose of a communication
type MessageType string

const (
	MessageConfirmation MessageType = "confirmation"
	MessagePreparation  MessageType = "preparation"
	MessageReminder7    MessageType = "reminder-7"
	MessageReminder2    MessageType = "reminder-2"
	MessageThanks       MessageType = "thanks"
	// MessageHostRequest is the grouped request sent to the hospitality overseer
	MessageHostRequest MessageType = "host-request"
)

// MessageTypes lists the per-visit communications in sending order
var MessageTypes = []MessageType{
	MessageConfirmation,
	MessagePreparation,
	MessageReminder7,
	MessageReminder2,
	MessageThanks,
}

// Role is the addressee of a communication
type Role string

const (
	RoleSpeaker Role = "speaker"
	RoleHost    Role = "host"
)

// Language is a supported message locale
type Language string

const (
	LanguageFR Language = "fr"
	LanguageCV Language = "cv"
)

// Languages lists the supported locales
var Languages = []Language{LanguageFR, LanguageCV}

// ParseLanguage returns the language for s and whether it is supported
func ParseLanguage(s string) (Language, bool) {
	for _, l := range Languages {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// TemplateKey identifies one template
type TemplateKey struct {
	Language Language    `json:"language"`
	Type     MessageType `json:"type"`
	Role     Role        `json:"role"`
}

// String returns the key as "lang/type/role"
func (k TemplateKey) String() string {
	return string(k.Language) + "/" + string(k.Type) + "/" + string(k.Role)
}

// CommunicationStatus records when each (type, role) message was sent.
// A present entry means sent.
type CommunicationStatus map[MessageType]map[Role]time.Time

// IsEmpty reports whether nothing was ever sent for the visit
func (c CommunicationStatus) IsEmpty() bool {
	for _, roles := range c {
		if len(roles) > 0 {
			return false
		}
	}
	return true
}

// SentAt returns the send time of the entry, if any
func (c CommunicationStatus) SentAt(mt MessageType, role Role) (time.Time, bool) {
	roles, ok := c[mt]
	if !ok {
		return time.Time{}, false
	}
	at, ok := roles[role]
	return at, ok
}

// Set records the entry as sent at the given time
func (c CommunicationStatus) Set(mt MessageType, role Role, at time.Time) {
	roles, ok := c[mt]
	if !ok {
		roles = make(map[Role]time.Time)
		c[mt] = roles
	}
	roles[role] = at
}
