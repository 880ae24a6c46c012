// Package status tracks which communications were sent for each visit and
// derives the per-role progress shown next to a visit.
package status

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"visit-assistant/internal/models"
)

// Store persists sent entries
type Store interface {
	SetCommunication(visitID string, mt models.MessageType, role models.Role, at time.Time) error
}

// Step is one logical stage of the communication sequence
type Step string

const (
	StepConfirmation Step = "confirmation"
	StepPreparation  Step = "preparation"
	// StepReminder is done when either reminder was sent
	StepReminder Step = "reminder"
	StepThanks   Step = "thanks"
)

// Steps lists the stages in order
var Steps = []Step{StepConfirmation, StepPreparation, StepReminder, StepThanks}

var stepTypes = map[Step][]models.MessageType{
	StepConfirmation: {models.MessageConfirmation},
	StepPreparation:  {models.MessagePreparation},
	StepReminder:     {models.MessageReminder7, models.MessageReminder2},
	StepThanks:       {models.MessageThanks},
}

type Tracker struct {
	store Store
	now   func() time.Time
	log   zerolog.Logger
}

// NewTracker creates a tracker writing to store
func NewTracker(store Store, log zerolog.Logger) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
		log:   log,
	}
}

// IsSent reports whether the (type, role) message was sent for the visit
func IsSent(visit *models.Visit, mt models.MessageType, role models.Role) bool {
	_, ok := visit.Communications.SentAt(mt, role)
	return ok
}

// IsSent reports whether the (type, role) message was sent for the visit
func (t *Tracker) IsSent(visit *models.Visit, mt models.MessageType, role models.Role) bool {
	return IsSent(visit, mt, role)
}

// MarkSent records the message as sent now. Marking it again only moves the timestamp.
func (t *Tracker) MarkSent(visitID string, mt models.MessageType, role models.Role) error {
	at := t.now()
	if err := t.store.SetCommunication(visitID, mt, role, at); err != nil {
		return fmt.Errorf("failed to mark %s/%s sent: %w", mt, role, err)
	}
	t.log.Info().
		Str("visit", visitID).
		Str("type", string(mt)).
		Str("role", string(role)).
		Time("at", at).
		Msg("Communication marked sent")
	return nil
}

// StepDone reports whether any message of the step was sent to role
func StepDone(visit *models.Visit, step Step, role models.Role) bool {
	for _, mt := range stepTypes[step] {
		if IsSent(visit, mt, role) {
			return true
		}
	}
	return false
}

// Progress returns how many steps are done for role out of the applicable total.
// A visit without host has no host steps.
func Progress(visit *models.Visit, role models.Role) (done, total int) {
	if role == models.RoleHost && !visit.HasHost() {
		return 0, 0
	}
	for _, step := range Steps {
		total++
		if StepDone(visit, step, role) {
			done++
		}
	}
	return done, total
}

// NextStep returns the first step not yet done for role
func NextStep(visit *models.Visit, role models.Role) (Step, bool) {
	if role == models.RoleHost && !visit.HasHost() {
		return "", false
	}
	for _, step := range Steps {
		if !StepDone(visit, step, role) {
			return step, true
		}
	}
	return "", false
}
