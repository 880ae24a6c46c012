// Package i18n holds the fixed per-language strings and date formats used in messages.
package i18n

import (
	"fmt"
	"time"

	"visit-assistant/internal/models"
)

// Locale is the set of fixed phrases and calendar names of one language
type Locale struct {
	Language models.Language

	// NotProvided replaces a token whose value is missing
	NotProvided string
	// TemplateUnavailable is rendered when no template exists for a key
	TemplateUnavailable string
	// FirstContact introduces the sender in the first message sent for a visit.
	// It contains tokens resolved afterwards.
	FirstContact string
	// SpeakerLabel prefixes speaker names in the grouped host request
	SpeakerLabel string

	weekdays [7]string
	months   [12]string
	// longFormat receives weekday, day, month, year
	longFormat string
	// shortFormat receives day, month
	shortFormat string
}

var locales = map[models.Language]Locale{
	models.LanguageFR: {
		Language:            models.LanguageFR,
		NotProvided:         "(non renseigné)",
		TemplateUnavailable: "[Modèle indisponible]",
		FirstContact:        "Je me présente : je suis {hospitalityOverseer}, responsable de l'hospitalité dans notre assemblée, et c'est moi qui m'occupe de ta venue.",
		SpeakerLabel:        "Frère",
		weekdays:            [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		longFormat:  "%s %d %s %d",
		shortFormat: "%d %s",
	},
	models.LanguageCV: {
		Language:            models.LanguageCV,
		NotProvided:         "(ka sta indikadu)",
		TemplateUnavailable: "[Modelu ka sta disponível]",
		FirstContact:        "N ta aprezenta: mi e {hospitalityOverseer}, rosponsavel pa ospitalidadi na nos kongregason, y e mi ki sta trata di bu vinda.",
		SpeakerLabel:        "Irmon",
		weekdays:            [7]string{"dumingu", "sigunda-fera", "tersa-fera", "kuarta-fera", "kinta-fera", "sesta-fera", "sabadu"},
		months: [12]string{
			"janeru", "fevereru", "marsu", "abril", "maiu", "junhu",
			"julhu", "agostu", "setenbru", "otubru", "novenbru", "dezenbru",
		},
		longFormat:  "%s, %d di %s di %d",
		shortFormat: "%d di %s",
	},
}

// For returns the locale of lang. Unknown languages get French.
func For(lang models.Language) Locale {
	if l, ok := locales[lang]; ok {
		return l
	}
	return locales[models.LanguageFR]
}

// LongDate formats t with weekday, day, month and year
func (l Locale) LongDate(t time.Time) string {
	return fmt.Sprintf(l.longFormat, l.weekdays[t.Weekday()], t.Day(), l.months[t.Month()-1], t.Year())
}

// DayMonth formats t with day and month only
func (l Locale) DayMonth(t time.Time) string {
	return fmt.Sprintf(l.shortFormat, t.Day(), l.months[t.Month()-1])
}
