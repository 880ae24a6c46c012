package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visit-assistant/internal/models"
)

func TestParseKey(t *testing.T) {
	key, err := parseKey([]string{"cv", "host-request", "host"})
	require.NoError(t, err)
	assert.Equal(t, models.TemplateKey{Language: models.LanguageCV, Type: models.MessageHostRequest, Role: models.RoleHost}, key)

	_, err = parseKey([]string{"de", "thanks", "host"})
	assert.Error(t, err)
	_, err = parseKey([]string{"fr", "birthday", "host"})
	assert.Error(t, err)
	_, err = parseKey([]string{"fr", "thanks", "guest"})
	assert.Error(t, err)
	// the grouped request is only written to the host side
	_, err = parseKey([]string{"fr", "host-request", "speaker"})
	assert.Error(t, err)
}

func TestParseGender(t *testing.T) {
	g, err := parseGender("couple")
	require.NoError(t, err)
	assert.Equal(t, models.GenderCouple, g)

	_, err = parseGender("family")
	assert.Error(t, err)
}

func TestNextLanguage(t *testing.T) {
	assert.Equal(t, models.LanguageCV, nextLanguage(models.LanguageFR))
	assert.Equal(t, models.LanguageFR, nextLanguage(models.LanguageCV))
}

func TestReadBlock(t *testing.T) {
	scanner := bufio.NewScanner(strings.NewReader("Bonjour,\n\nà bientôt\n.\nrest"))
	assert.Equal(t, "Bonjour,\n\nà bientôt", readBlock(scanner, "text"))
	require.True(t, scanner.Scan())
	assert.Equal(t, "rest", scanner.Text())
}

func TestPrintVisits(t *testing.T) {
	visit := models.Visit{
		ID:          "v1",
		SpeakerName: "Paul",
		HostName:    models.NoHost,
		Date:        time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
		Status:      models.VisitScheduled,
		Communications: models.CommunicationStatus{
			models.MessageConfirmation: {models.RoleSpeaker: time.Now()},
		},
	}

	var buf bytes.Buffer
	printVisits(&buf, []models.Visit{visit}, models.LanguageFR)
	out := buf.String()

	assert.Contains(t, out, "Date: vendredi 3 mai 2024 10:00")
	assert.Contains(t, out, "Speaker messages: 1/4 (next: preparation)")
	assert.NotContains(t, out, "Host messages")

	buf.Reset()
	printVisits(&buf, nil, models.LanguageFR)
	assert.Contains(t, buf.String(), "No visits found.")
}
