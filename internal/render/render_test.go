package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visit-assistant/internal/i18n"
	"visit-assistant/internal/models"
	"visit-assistant/internal/templates"
)

var profile = models.CongregationProfile{
	Name:                     "Lyon Centre",
	HospitalityOverseer:      "Pierre Martin",
	HospitalityOverseerPhone: "06 11 22 33 44",
}

func testVisit() models.Visit {
	return models.Visit{
		ID:               "v1",
		SpeakerName:      "Paul",
		HostName:         "Luc",
		CongregationName: "Villeurbanne",
		Date:             time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
		Time:             "10:00",
		LocationType:     models.LocationInPerson,
		Status:           models.VisitScheduled,
	}
}

func defaultTemplate(t *testing.T, lang models.Language, mt models.MessageType, role models.Role) string {
	t.Helper()
	text, ok := templates.Default(models.TemplateKey{Language: lang, Type: mt, Role: role})
	require.True(t, ok)
	return text
}

func TestRender_CoupleHostPluralization(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Jean et Marie"

	out := Render(Request{
		Template: "Bonjour Frère {hostName}, j'espère que tu vas bien.",
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Paul", Gender: models.GenderMale},
		Host:     &models.Host{Name: "Jean et Marie", Gender: models.GenderCouple},
		Type:     models.MessageConfirmation,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Equal(t, "Bonjour Jean et Marie, j'espère que vous allez bien.", out)
}

func TestRender_CoupleHostNamedInSpeakerMessage(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Jean et Marie"

	out := Render(Request{
		Template: "Bonjour Frère {hostName}, j'espère que tu vas bien.",
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Paul", Gender: models.GenderMale},
		Host:     &models.Host{Name: "Jean et Marie", Gender: models.GenderCouple},
		Type:     models.MessageConfirmation,
		Role:     models.RoleSpeaker,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	// the name loses its title, the pronoun still addresses the speaker
	assert.Equal(t, "Bonjour Jean et Marie, j'espère que tu vas bien.", out)
}

func TestRender_AgreementDoesNotCompoundOnAgreedText(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Jon y Maria"

	out := Render(Request{
		Template: "Fika prontus pa resebe-l. Fika prontu pa resebe-l.",
		Visit:    visit,
		Host:     &models.Host{Name: "Jon y Maria", Gender: models.GenderCouple},
		Type:     models.MessageReminder7,
		Role:     models.RoleHost,
		Language: models.LanguageCV,
	})
	assert.Equal(t, "Nhos fika prontus pa resebe-l. Nhos fika prontus pa resebe-l.", out)

	out = Render(Request{
		Template: "Tu seras hébergée chez nous. J'espère que tu es bien rentrée.",
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Anne", Gender: models.GenderFemale},
		Type:     models.MessageThanks,
		Role:     models.RoleSpeaker,
		Language: models.LanguageFR,
	})
	assert.Equal(t, "Tu seras hébergée chez nous. J'espère que tu es bien rentrée.", out)
}

func TestRender_CoupleHostFullTemplate(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Jean et Marie"

	out := Render(Request{
		Template: defaultTemplate(t, models.LanguageFR, models.MessageConfirmation, models.RoleHost),
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Paul", Gender: models.GenderMale},
		Host:     &models.Host{Name: "Jean et Marie", Gender: models.GenderCouple},
		Type:     models.MessageConfirmation,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Contains(t, out, "Bonjour Jean et Marie,")
	assert.Contains(t, out, "J'espère que vous allez bien.")
	assert.Contains(t, out, "Pouvez-vous me confirmer que vous êtes toujours disponibles pour le recevoir ?")
	assert.NotContains(t, out, "Frère Jean")
}

func TestRender_CoupleHostInSpeakerMessage(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Jean et Marie"

	out := Render(Request{
		Template: defaultTemplate(t, models.LanguageFR, models.MessagePreparation, models.RoleSpeaker),
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Paul", Gender: models.GenderMale, Phone: "0600000000"},
		Host:     &models.Host{Name: "Jean et Marie", Gender: models.GenderCouple, Phone: "04 78 00 00 00", Address: "3 rue Neuve, Lyon"},
		Type:     models.MessagePreparation,
		Role:     models.RoleSpeaker,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Contains(t, out, "Tu seras hébergé chez Jean et Marie.")
	assert.Contains(t, out, "Adresse : 3 rue Neuve, Lyon")
	// pronouns addressing the speaker stay singular
	assert.Contains(t, out, "si tu as besoin")
}

func TestRender_FirstContact(t *testing.T) {
	tmpl := defaultTemplate(t, models.LanguageFR, models.MessageConfirmation, models.RoleSpeaker)
	intro := strings.ReplaceAll(i18n.For(models.LanguageFR).FirstContact, "{hospitalityOverseer}", "Pierre Martin")

	req := Request{
		Template: tmpl,
		Visit:    testVisit(),
		Speaker:  &models.Speaker{Name: "Paul", Gender: models.GenderMale},
		Type:     models.MessageConfirmation,
		Role:     models.RoleSpeaker,
		Language: models.LanguageFR,
		Profile:  profile,
	}

	out := Render(req)
	assert.Equal(t, 1, strings.Count(out, intro))
	assert.NotContains(t, out, TokenFirstContact)

	req.Visit.Communications = models.CommunicationStatus{}
	req.Visit.Communications.Set(models.MessageConfirmation, models.RoleHost, time.Now())

	out = Render(req)
	assert.NotContains(t, out, intro)
	assert.NotContains(t, out, TokenFirstContact)
	assert.True(t, strings.HasPrefix(out, "Bonjour Frère Paul,\n\nJe t'écris pour confirmer"), out)
}

func TestRender_FirstContactOnlyForSpeakerConfirmation(t *testing.T) {
	req := Request{
		Template: "{firstTimeIntroduction}Bonjour",
		Visit:    testVisit(),
		Type:     models.MessageConfirmation,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	}
	assert.Equal(t, "Bonjour", Render(req))

	req.Role = models.RoleSpeaker
	req.Type = models.MessagePreparation
	assert.Equal(t, "Bonjour", Render(req))
}

func TestRender_FirstContactCV(t *testing.T) {
	out := Render(Request{
		Template: defaultTemplate(t, models.LanguageCV, models.MessageConfirmation, models.RoleSpeaker),
		Visit:    testVisit(),
		Type:     models.MessageConfirmation,
		Role:     models.RoleSpeaker,
		Language: models.LanguageCV,
		Profile:  profile,
	})

	assert.Contains(t, out, "N ta aprezenta: mi e Pierre Martin,")
	assert.Contains(t, out, "dia sesta-fera, 3 di maiu di 2024 pa 10:00")
}

func TestRender_FemaleSpeaker(t *testing.T) {
	visit := testVisit()
	visit.SpeakerName = "Anne"

	out := Render(Request{
		Template: defaultTemplate(t, models.LanguageFR, models.MessagePreparation, models.RoleHost),
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Anne", Gender: models.GenderFemale, Phone: "06 12 34 56 78"},
		Host:     &models.Host{Name: "Luc", Gender: models.GenderMale},
		Type:     models.MessagePreparation,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	want := "Bonjour Frère Luc,\n\n" +
		"La visite de notre sœur Anne approche : elle arrivera le vendredi 3 mai 2024 pour la réunion de 10:00.\n\n" +
		"Voici son numéro pour que tu puisses la contacter : 06 12 34 56 78\n\n" +
		"Merci encore pour ton hospitalité, elle est très appréciée.\n\n" +
		"Fraternellement,\nPierre Martin"
	assert.Equal(t, want, out)
}

func TestRender_FemaleSpeakerRuleOrder(t *testing.T) {
	out := Render(Request{
		Template: "Cher Frère {speakerName}, tu seras hébergé chez nous, cher frère.",
		Visit:    testVisit(),
		Speaker:  &models.Speaker{Name: "Anne", Gender: models.GenderFemale},
		Type:     models.MessagePreparation,
		Role:     models.RoleSpeaker,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Equal(t, "Chère Sœur Anne, tu seras hébergée chez nous, chère sœur.", out)
}

func TestRender_FemaleHost(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Marie"

	out := Render(Request{
		Template: defaultTemplate(t, models.LanguageFR, models.MessageReminder7, models.RoleHost),
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Paul", Gender: models.GenderMale},
		Host:     &models.Host{Name: "Marie", Gender: models.GenderFemale},
		Type:     models.MessageReminder7,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	want := "Bonjour Sœur Marie,\n\n" +
		"Petit rappel : notre frère Paul arrive dans une semaine, le vendredi 3 mai 2024. Merci de te tenir prête à le recevoir.\n\n" +
		"À très bientôt,\nPierre Martin"
	assert.Equal(t, want, out)
}

func TestRender_CoupleHostCV(t *testing.T) {
	visit := testVisit()
	visit.SpeakerName = "Paulo"
	visit.HostName = "Jon y Maria"

	out := Render(Request{
		Template: defaultTemplate(t, models.LanguageCV, models.MessageConfirmation, models.RoleHost),
		Visit:    visit,
		Host:     &models.Host{Name: "Jon y Maria", Gender: models.GenderCouple},
		Type:     models.MessageConfirmation,
		Role:     models.RoleHost,
		Language: models.LanguageCV,
		Profile:  models.CongregationProfile{HospitalityOverseer: "Pedro"},
	})

	assert.True(t, strings.HasPrefix(out, "Bon dia Jon y Maria,\n\n"), out)
	assert.Contains(t, out, "N ta spera ma nhos sta bon.")
	assert.Contains(t, out, "Obrigadu pa nhos aseita resebe nos irmon Paulo,")
	assert.Contains(t, out, "Nhos pode konfirma-m si nhos inda sta prontus pa resebe-l?")
	assert.True(t, strings.HasSuffix(out, "Pedro\n(ka sta indikadu)"), out)
}

func TestRender_MaleHostUnchanged(t *testing.T) {
	out := Render(Request{
		Template: "Bonjour Frère {hostName}, j'espère que tu vas bien.",
		Visit:    testVisit(),
		Host:     &models.Host{Name: "Luc", Gender: models.GenderMale},
		Type:     models.MessageConfirmation,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Equal(t, "Bonjour Frère Luc, j'espère que tu vas bien.", out)
}

func TestRender_NoHostAssignedSkipsHostAgreement(t *testing.T) {
	visit := testVisit()
	visit.HostName = models.NoHost

	out := Render(Request{
		Template: "Bonjour Frère {hostName}, j'espère que tu vas bien. {hostPhone}",
		Visit:    visit,
		Host:     &models.Host{Gender: models.GenderCouple},
		Type:     models.MessageConfirmation,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Equal(t, "Bonjour Frère (non renseigné), j'espère que tu vas bien. (non renseigné)", out)
}

func TestRender_MissingDataPlaceholder(t *testing.T) {
	out := Render(Request{
		Template: "Tel: {hostPhone} / {speakerPhone} / {hostAddress}",
		Visit:    testVisit(),
		Host:     &models.Host{Name: "Luc", Gender: models.GenderMale},
		Type:     models.MessagePreparation,
		Role:     models.RoleSpeaker,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Equal(t, "Tel: (non renseigné) / (non renseigné) / (non renseigné)", out)
	assert.NotContains(t, out, "{hostPhone}")
}

func TestRender_AllTokensReplaced(t *testing.T) {
	tmpl := strings.Join([]string{
		TokenSpeakerName, TokenHostName, TokenVisitDate, TokenVisitTime, TokenSpeakerPhone,
		TokenHostPhone, TokenHostAddress, TokenCongregationName, TokenOverseer, TokenOverseerPhone,
	}, "|")

	out := Render(Request{
		Template: tmpl + "|" + tmpl,
		Visit:    testVisit(),
		Speaker:  &models.Speaker{Name: "Paul", Phone: "1"},
		Host:     &models.Host{Name: "Luc", Phone: "2", Address: "Lyon"},
		Type:     models.MessageThanks,
		Role:     models.RoleSpeaker,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	line := "Paul|Luc|vendredi 3 mai 2024|10:00|1|2|Lyon|Villeurbanne|Pierre Martin|06 11 22 33 44"
	assert.Equal(t, line+"|"+line, out)
}

func TestRender_ValuesAreNotReprocessed(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Jean et Marie"

	out := Render(Request{
		Template: "{speakerName}",
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Frère {hostName} tu vas", Gender: models.GenderFemale},
		Host:     &models.Host{Name: "Jean et Marie", Gender: models.GenderCouple},
		Type:     models.MessageConfirmation,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	})

	assert.Equal(t, "Frère {hostName} tu vas", out)
}

func TestRender_Deterministic(t *testing.T) {
	visit := testVisit()
	visit.HostName = "Jean et Marie"
	req := Request{
		Template: defaultTemplate(t, models.LanguageFR, models.MessageThanks, models.RoleHost),
		Visit:    visit,
		Speaker:  &models.Speaker{Name: "Anne", Gender: models.GenderFemale},
		Host:     &models.Host{Name: "Jean et Marie", Gender: models.GenderCouple},
		Type:     models.MessageThanks,
		Role:     models.RoleHost,
		Language: models.LanguageFR,
		Profile:  profile,
	}

	first := Render(req)
	assert.Equal(t, first, Render(req))
	assert.Contains(t, first, "Merci à vous pour votre accueil chaleureux de notre sœur Anne. Votre générosité")
}
