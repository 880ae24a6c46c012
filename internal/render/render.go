// Package render turns message templates into final texts for a visit.
//
// Rendering runs in a fixed order: the first-contact introduction is inserted,
// speaker then host gender agreement rewrite literal phrases around the still
// unresolved tokens, and only then are tokens replaced with their values. Values
// are never passed through the agreement tables.
package render

import (
	"strings"

	"visit-assistant/internal/i18n"
	"visit-assistant/internal/models"
)

// Tokens understood by the renderer
const (
	TokenFirstContact     = "{firstTimeIntroduction}"
	TokenSpeakerName      = "{speakerName}"
	TokenHostName         = "{hostName}"
	TokenVisitDate        = "{visitDate}"
	TokenVisitTime        = "{visitTime}"
	TokenSpeakerPhone     = "{speakerPhone}"
	TokenHostPhone        = "{hostPhone}"
	TokenHostAddress      = "{hostAddress}"
	TokenCongregationName = "{congregationName}"
	TokenOverseer         = "{hospitalityOverseer}"
	TokenOverseerPhone    = "{hospitalityOverseerPhone}"
	TokenVisitList        = "{visitList}"
)

// Request carries everything a message is rendered from.
// Speaker and Host may be nil.
type Request struct {
	Template string
	Visit    models.Visit
	Speaker  *models.Speaker
	Host     *models.Host
	Type     models.MessageType
	Role     models.Role
	Language models.Language
	Profile  models.CongregationProfile
}

// Render produces the final message text. It never fails: missing values are
// replaced with the locale's "not provided" placeholder.
func Render(req Request) string {
	loc := i18n.For(req.Language)
	text := req.Template

	text = firstContact(text, req, loc)
	text = speakerAgreement(text, req)
	text = hostAgreement(text, req)

	return substitute(text, req, loc)
}

// IsFirstContact reports whether the request is the first message ever sent for its visit
func IsFirstContact(req Request) bool {
	return req.Type == models.MessageConfirmation &&
		req.Role == models.RoleSpeaker &&
		req.Visit.Communications.IsEmpty()
}

func firstContact(text string, req Request, loc i18n.Locale) string {
	if IsFirstContact(req) {
		return strings.ReplaceAll(text, TokenFirstContact, loc.FirstContact)
	}
	// drop the paragraph break the introduction would have used
	text = strings.ReplaceAll(text, TokenFirstContact+"\n\n", "")
	return strings.ReplaceAll(text, TokenFirstContact, "")
}

func speakerAgreement(text string, req Request) string {
	if req.Speaker == nil || req.Speaker.Gender != models.GenderFemale {
		return text
	}
	a, ok := speakerFemale[req.Language]
	if !ok {
		return text
	}
	// address rules only when the message is written to the speaker
	return a.apply(text, req.Role == models.RoleSpeaker)
}

func hostAgreement(text string, req Request) string {
	if req.Host == nil || req.Visit.HostName == models.NoHost {
		return text
	}

	var tables map[models.Language]agreement
	switch req.Host.Gender {
	case models.GenderFemale:
		tables = hostFemale
	case models.GenderCouple:
		tables = hostCouple
	default:
		return text
	}

	a, ok := tables[req.Language]
	if !ok {
		return text
	}
	// Pronouns and verbs ("tu vas" -> "vous allez") follow the host only in
	// messages written to the host. A speaker message naming the hosts keeps
	// addressing the speaker in the singular.
	return a.apply(text, req.Role == models.RoleHost)
}

func substitute(text string, req Request, loc i18n.Locale) string {
	r := strings.NewReplacer(
		TokenSpeakerName, orNotProvided(speakerName(req), loc),
		TokenHostName, orNotProvided(hostName(req), loc),
		TokenVisitDate, visitDate(req, loc),
		TokenVisitTime, orNotProvided(req.Visit.Time, loc),
		TokenSpeakerPhone, orNotProvided(speakerPhone(req), loc),
		TokenHostPhone, orNotProvided(hostPhone(req), loc),
		TokenHostAddress, orNotProvided(hostAddress(req), loc),
		TokenCongregationName, orNotProvided(req.Visit.CongregationName, loc),
		TokenOverseer, orNotProvided(req.Profile.HospitalityOverseer, loc),
		TokenOverseerPhone, orNotProvided(req.Profile.HospitalityOverseerPhone, loc),
	)
	return r.Replace(text)
}

func substituteOverseer(text string, profile models.CongregationProfile, loc i18n.Locale) string {
	r := strings.NewReplacer(
		TokenOverseer, orNotProvided(profile.HospitalityOverseer, loc),
		TokenOverseerPhone, orNotProvided(profile.HospitalityOverseerPhone, loc),
	)
	return r.Replace(text)
}

func speakerName(req Request) string {
	if req.Speaker != nil && req.Speaker.Name != "" {
		return req.Speaker.Name
	}
	return req.Visit.SpeakerName
}

func hostName(req Request) string {
	if req.Host != nil && req.Host.Name != "" {
		return req.Host.Name
	}
	if req.Visit.HasHost() {
		return req.Visit.HostName
	}
	return ""
}

func speakerPhone(req Request) string {
	if req.Speaker == nil {
		return ""
	}
	return req.Speaker.Phone
}

func hostPhone(req Request) string {
	if req.Host == nil {
		return ""
	}
	return req.Host.Phone
}

func hostAddress(req Request) string {
	if req.Host == nil {
		return ""
	}
	return req.Host.Address
}

func visitDate(req Request, loc i18n.Locale) string {
	if req.Visit.Date.IsZero() {
		return loc.NotProvided
	}
	return loc.LongDate(req.Visit.Date)
}

func orNotProvided(value string, loc i18n.Locale) string {
	if strings.TrimSpace(value) == "" {
		return loc.NotProvided
	}
	return value
}
