package render

import (
	"fmt"
	"strings"

	"visit-assistant/internal/i18n"
	"visit-assistant/internal/models"
)

// VisitList formats one "- <day> <month> : <label> <speaker>" line per visit
func VisitList(visits []models.Visit, lang models.Language) string {
	loc := i18n.For(lang)

	lines := make([]string, 0, len(visits))
	for _, v := range visits {
		lines = append(lines, fmt.Sprintf("- %s : %s %s", loc.DayMonth(v.Date), loc.SpeakerLabel, v.SpeakerName))
	}
	return strings.Join(lines, "\n")
}

// RenderHostRequest merges visits into the single request sent to the
// hospitality overseer. No gender agreement is applied.
func RenderHostRequest(template string, visits []models.Visit, lang models.Language, profile models.CongregationProfile) string {
	text := strings.ReplaceAll(template, TokenVisitList, VisitList(visits, lang))
	return substituteOverseer(text, profile, i18n.For(lang))
}
