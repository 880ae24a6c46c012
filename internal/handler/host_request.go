package handler

import (
	"visit-assistant/internal/handoff"
	"visit-assistant/internal/models"
	"visit-assistant/internal/render"
)

// HostRequest is the grouped message asking the hospitality overseer to find
// hosts for several visits.
type HostRequest struct {
	templates TemplateStore
	profile   models.CongregationProfile
	clipboard handoff.Clipboard

	visits []models.Visit
	lang   models.Language
	text   string
}

// NewHostRequest renders the request right away, even for an empty list
func NewHostRequest(templates TemplateStore, profile models.CongregationProfile, clipboard handoff.Clipboard, visits []models.Visit, lang models.Language) *HostRequest {
	h := &HostRequest{
		templates: templates,
		profile:   profile,
		clipboard: clipboard,
	}
	h.render(visits, lang)
	return h
}

// Update re-renders when the language or the visit list changed and the list
// is not empty. It reports whether the text was re-rendered.
func (h *HostRequest) Update(visits []models.Visit, lang models.Language) bool {
	if len(visits) == 0 {
		return false
	}
	if lang == h.lang && sameVisits(visits, h.visits) {
		return false
	}
	h.render(visits, lang)
	return true
}

func (h *HostRequest) Text() string {
	return h.text
}

// SetText replaces the text with a manual edit
func (h *HostRequest) SetText(text string) {
	h.text = text
}

// Copy writes the text to the clipboard
func (h *HostRequest) Copy() error {
	return h.clipboard.WriteAll(h.text)
}

// Handoff returns the messaging-app link of the hospitality overseer
func (h *HostRequest) Handoff() (string, error) {
	return handoff.WhatsAppLink(h.profile.HospitalityOverseerPhone)
}

func (h *HostRequest) render(visits []models.Visit, lang models.Language) {
	h.visits = append([]models.Visit(nil), visits...)
	h.lang = lang
	tmpl, _ := h.templates.Get(lang, models.MessageHostRequest, models.RoleHost)
	h.text = render.RenderHostRequest(tmpl, h.visits, lang, h.profile)
}

func sameVisits(a, b []models.Visit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || !a[i].Date.Equal(b[i].Date) || a[i].SpeakerName != b[i].SpeakerName {
			return false
		}
	}
	return true
}
