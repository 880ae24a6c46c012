package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"visit-assistant/internal/models"
)

func TestVisitList(t *testing.T) {
	visits := []models.Visit{
		{SpeakerName: "Paul", Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{SpeakerName: "Jean", Date: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
	}

	assert.Equal(t, "- 3 mai : Frère Paul\n- 10 mai : Frère Jean", VisitList(visits, models.LanguageFR))
	assert.Equal(t, "- 3 di maiu : Irmon Paul\n- 10 di maiu : Irmon Jean", VisitList(visits, models.LanguageCV))
}

func TestRenderHostRequest(t *testing.T) {
	visits := []models.Visit{
		{SpeakerName: "Paul", Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{SpeakerName: "Jean", Date: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
	}

	out := RenderHostRequest("Bonjour {hospitalityOverseer} ({hospitalityOverseerPhone}),\n{visitList}\nFrère {hostName}", visits, models.LanguageFR, profile)

	// gender agreement and per-visit tokens are not touched
	assert.Equal(t, "Bonjour Pierre Martin (06 11 22 33 44),\n- 3 mai : Frère Paul\n- 10 mai : Frère Jean\nFrère {hostName}", out)
}

func TestRenderHostRequest_EmptyList(t *testing.T) {
	out := RenderHostRequest("{hospitalityOverseer}:[{visitList}]", nil, models.LanguageFR, profile)
	assert.Equal(t, "Pierre Martin:[]", out)
}
