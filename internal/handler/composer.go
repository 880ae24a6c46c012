package handler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"visit-assistant/internal/handoff"
	"visit-assistant/internal/models"
	"visit-assistant/internal/render"
	"visit-assistant/internal/rewrite"
)

var (
	ErrNotOpen        = errors.New("no message is open")
	ErrRewritePending = errors.New("a rewrite is already in progress")
	ErrNotEditing     = errors.New("template editor is not open")
	// ErrClosed is returned by a rewrite whose dialog was closed or reopened meanwhile
	ErrClosed   = errors.New("dialog closed, result discarded")
	ErrNoSender = errors.New("direct WhatsApp sending is not enabled")
)

// State of the compose dialog
type State string

const (
	StateIdle            State = "idle"
	StatePreviewing      State = "previewing"
	StateEditingTemplate State = "editing-template"
	StateRewritePending  State = "rewrite-pending"
)

// Registry is the read side of the visit data
type Registry interface {
	GetVisit(id string) (*models.Visit, error)
	GetSpeaker(visitID string) (*models.Speaker, error)
	GetHost(visitID string) (*models.Host, error)
	GetProfile() (models.CongregationProfile, bool)
}

type TemplateStore interface {
	Get(lang models.Language, mt models.MessageType, role models.Role) (string, bool)
	Save(lang models.Language, mt models.MessageType, role models.Role, text string) error
	Delete(lang models.Language, mt models.MessageType, role models.Role) error
}

type StatusTracker interface {
	MarkSent(visitID string, mt models.MessageType, role models.Role) error
}

// Sender delivers a message directly to a phone number
type Sender interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

// Composer is the dialog in which one message for one visit is previewed,
// edited, rewritten and finally copied or sent.
type Composer struct {
	registry  Registry
	templates TemplateStore
	tracker   StatusTracker
	clipboard handoff.Clipboard
	rewriter  rewrite.Rewriter
	sender    Sender
	log       zerolog.Logger

	mu      sync.Mutex
	state   State
	session uint64
	key     models.TemplateKey
	visit   models.Visit
	speaker *models.Speaker
	host    *models.Host
	profile models.CongregationProfile
	custom  bool
	text    string
}

// NewComposer creates a new compose dialog
func NewComposer(registry Registry, templates TemplateStore, tracker StatusTracker, clipboard handoff.Clipboard, log zerolog.Logger) *Composer {
	return &Composer{
		registry:  registry,
		templates: templates,
		tracker:   tracker,
		clipboard: clipboard,
		log:       log,
		state:     StateIdle,
	}
}

// SetRewriter enables generative rewriting
func (c *Composer) SetRewriter(r rewrite.Rewriter) {
	c.rewriter = r
}

// SetSender enables direct sending
func (c *Composer) SetSender(s Sender) {
	c.sender = s
}

// Open loads the visit and renders the template for (mt, role, lang)
func (c *Composer) Open(visitID string, mt models.MessageType, role models.Role, lang models.Language) error {
	visit, err := c.registry.GetVisit(visitID)
	if err != nil {
		return fmt.Errorf("failed to open message: %w", err)
	}

	speaker, err := c.registry.GetSpeaker(visitID)
	if err != nil {
		c.log.Debug().Err(err).Str("visit", visitID).Msg("No speaker record")
		speaker = nil
	}
	host, err := c.registry.GetHost(visitID)
	if err != nil {
		c.log.Debug().Err(err).Str("visit", visitID).Msg("No host record")
		host = nil
	}
	profile, _ := c.registry.GetProfile()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.session++
	c.key = models.TemplateKey{Language: lang, Type: mt, Role: role}
	c.visit = *visit
	c.speaker = speaker
	c.host = host
	c.profile = profile
	c.renderLocked()
	c.state = StatePreviewing
	return nil
}

// Close dismisses the dialog; a pending rewrite result will be dropped
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session++
	c.state = StateIdle
	c.text = ""
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Text returns the message as currently shown
func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Key returns the template key of the open message
func (c *Composer) Key() models.TemplateKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.key
}

// IsCustomTemplate reports whether the open message uses a saved override
func (c *Composer) IsCustomTemplate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.custom
}

// IsFirstContact reports whether the open message carries the introduction
func (c *Composer) IsFirstContact() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		return false
	}
	return render.IsFirstContact(render.Request{
		Visit: c.visit,
		Type:  c.key.Type,
		Role:  c.key.Role,
	})
}

// SetText replaces the shown message with a manual edit
func (c *Composer) SetText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkPreviewingLocked(); err != nil {
		return err
	}
	c.text = text
	return nil
}

// EditTemplate opens the template editor and returns the template text
func (c *Composer) EditTemplate() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkPreviewingLocked(); err != nil {
		return "", err
	}
	c.state = StateEditingTemplate
	text, _ := c.templates.Get(c.key.Language, c.key.Type, c.key.Role)
	return text, nil
}

// CancelEdit closes the template editor without saving
func (c *Composer) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateEditingTemplate {
		c.state = StatePreviewing
	}
}

// SaveTemplate stores text as the override for the open key and re-renders
func (c *Composer) SaveTemplate(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditingTemplate {
		return ErrNotEditing
	}
	if err := c.templates.Save(c.key.Language, c.key.Type, c.key.Role, text); err != nil {
		return err
	}
	c.renderLocked()
	c.state = StatePreviewing
	return nil
}

// ResetTemplate removes the override for the open key and re-renders with the default
func (c *Composer) ResetTemplate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditingTemplate && c.state != StatePreviewing {
		return c.checkPreviewingLocked()
	}
	if err := c.templates.Delete(c.key.Language, c.key.Type, c.key.Role); err != nil {
		return err
	}
	c.renderLocked()
	c.state = StatePreviewing
	return nil
}

// Rewrite asks the rewriter to rework the shown text. Only one rewrite runs at a
// time; the text stays unchanged until it returns and is kept on failure.
func (c *Composer) Rewrite(ctx context.Context, instruction string) error {
	if c.rewriter == nil {
		return rewrite.ErrAuth
	}

	c.mu.Lock()
	if err := c.checkPreviewingLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	session := c.session
	text := c.text
	c.state = StateRewritePending
	c.mu.Unlock()

	out, err := c.rewriter.Rewrite(ctx, instruction, text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != session {
		c.log.Debug().Msg("Rewrite finished after dialog closed")
		return ErrClosed
	}
	c.state = StatePreviewing
	if err != nil {
		return err
	}
	c.text = out
	return nil
}

// Copy writes the shown text to the clipboard
func (c *Composer) Copy() error {
	text, err := c.openText()
	if err != nil {
		return err
	}
	return c.clipboard.WriteAll(text)
}

// CopyAndMarkSent copies the text, then records the message as sent.
// Nothing is recorded when the copy fails.
func (c *Composer) CopyAndMarkSent() error {
	if err := c.Copy(); err != nil {
		return err
	}
	return c.MarkSent()
}

// MarkSent records the open message as sent
func (c *Composer) MarkSent() error {
	c.mu.Lock()
	if c.state == StateIdle {
		c.mu.Unlock()
		return ErrNotOpen
	}
	key := c.key
	visitID := c.visit.ID
	c.mu.Unlock()

	if err := c.tracker.MarkSent(visitID, key.Type, key.Role); err != nil {
		return err
	}

	visit, err := c.registry.GetVisit(visitID)
	if err != nil {
		return fmt.Errorf("failed to reload visit: %w", err)
	}
	c.mu.Lock()
	if c.visit.ID == visitID {
		c.visit = *visit
	}
	c.mu.Unlock()
	return nil
}

// RecipientPhone returns the phone number of the addressee
func (c *Composer) RecipientPhone() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.key.Role {
	case models.RoleSpeaker:
		if c.speaker != nil {
			return c.speaker.Phone
		}
	case models.RoleHost:
		if c.host != nil {
			return c.host.Phone
		}
	}
	return ""
}

// Handoff returns the messaging-app link of the addressee
func (c *Composer) Handoff() (string, error) {
	if _, err := c.openText(); err != nil {
		return "", err
	}
	return handoff.WhatsAppLink(c.RecipientPhone())
}

// SendDirect sends the text to the addressee through the Sender, then records it as sent
func (c *Composer) SendDirect(ctx context.Context) error {
	if c.sender == nil {
		return ErrNoSender
	}
	text, err := c.openText()
	if err != nil {
		return err
	}
	phone := c.RecipientPhone()
	if handoff.Digits(phone) == "" {
		return handoff.ErrNoPhone
	}
	if err := c.sender.SendMessage(ctx, phone, text); err != nil {
		return err
	}
	return c.MarkSent()
}

func (c *Composer) openText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		return "", ErrNotOpen
	}
	return c.text, nil
}

func (c *Composer) checkPreviewingLocked() error {
	switch c.state {
	case StatePreviewing:
		return nil
	case StateIdle:
		return ErrNotOpen
	case StateRewritePending:
		return ErrRewritePending
	default:
		return fmt.Errorf("cannot do this while in state %s", c.state)
	}
}

func (c *Composer) renderLocked() {
	tmpl, custom := c.templates.Get(c.key.Language, c.key.Type, c.key.Role)
	c.custom = custom
	c.text = render.Render(render.Request{
		Template: tmpl,
		Visit:    c.visit,
		Speaker:  c.speaker,
		Host:     c.host,
		Type:     c.key.Type,
		Role:     c.key.Role,
		Language: c.key.Language,
		Profile:  c.profile,
	})
	c.log.Debug().Str("key", c.key.String()).Bool("custom", custom).Msg("Message rendered")
}
