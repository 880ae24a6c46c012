package render

import (
	"strings"

	"visit-assistant/internal/models"
)

// Rule replaces every occurrence of From with To
type Rule struct {
	From string
	To   string
}

// agreement holds the ordered phrase tables for one person category.
// mention rules apply to any message naming the person; address rules
// apply only when the person is the one the message is written to.
type agreement struct {
	mention []Rule
	address []Rule
}

func (a agreement) apply(text string, addressee bool) string {
	text = applyRules(text, a.mention)
	if addressee {
		text = applyRules(text, a.address)
	}
	return text
}

func applyRules(text string, rules []Rule) string {
	for _, r := range rules {
		text = strings.ReplaceAll(text, r.From, r.To)
	}
	return text
}

var speakerFemale = map[models.Language]agreement{
	models.LanguageFR: {
		mention: []Rule{
			{"Cher Frère {speakerName}", "Chère Sœur {speakerName}"},
			{"Frère {speakerName}", "Sœur {speakerName}"},
			{"frère {speakerName}", "sœur {speakerName}"},
			{"il arrivera", "elle arrivera"},
			{"le contacter", "la contacter"},
			{"le recevoir", "la recevoir"},
		},
		address: []Rule{
			{"Cher frère", "Chère sœur"},
			{"cher frère", "chère sœur"},
			{"hébergé chez", "hébergée chez"},
			{"le bienvenu", "la bienvenue"},
			{"bien rentré.", "bien rentrée."},
		},
	},
	models.LanguageCV: {
		mention: []Rule{
			{"Kiridu Irmon {speakerName}", "Kirida Irmã {speakerName}"},
			{"Irmon {speakerName}", "Irmã {speakerName}"},
			{"irmon {speakerName}", "irmã {speakerName}"},
		},
		address: []Rule{
			{"kiridu irmon", "kirida irmã"},
			{"bemvindu", "bemvinda"},
		},
	},
}

var hostFemale = map[models.Language]agreement{
	models.LanguageFR: {
		mention: []Rule{
			{"Cher Frère {hostName}", "Chère Sœur {hostName}"},
			{"Frère {hostName}", "Sœur {hostName}"},
			{"frère {hostName}", "sœur {hostName}"},
		},
		address: []Rule{
			{"cher frère", "chère sœur"},
			{"prêt à", "prête à"},
		},
	},
	models.LanguageCV: {
		mention: []Rule{
			{"Kiridu Irmon {hostName}", "Kirida Irmã {hostName}"},
			{"Irmon {hostName}", "Irmã {hostName}"},
			{"irmon {hostName}", "irmã {hostName}"},
		},
		address: []Rule{
			{"kiridu irmon", "kirida irmã"},
			{"prontu", "pronta"},
		},
	},
}

var hostCouple = map[models.Language]agreement{
	models.LanguageFR: {
		mention: []Rule{
			{"Cher Frère {hostName}", "Chers {hostName}"},
			{"Frère {hostName}", "{hostName}"},
			{"frère {hostName}", "{hostName}"},
		},
		address: []Rule{
			{"un frère", "des frères"},
			{"cher frère", "chers frères"},
			{"prêt à", "prêts à"},
			{"tu es toujours disponible", "vous êtes toujours disponibles"},
			{"tu vas", "vous allez"},
			{"tu peux", "vous pouvez"},
			{"tu puisses", "vous puissiez"},
			{"Peux-tu", "Pouvez-vous"},
			{"peux-tu", "pouvez-vous"},
			{"tu as", "vous avez"},
			{"tu es", "vous êtes"},
			{"tu seras", "vous serez"},
			{"te convient", "vous convient"},
			{"te remercie", "vous remercie"},
			{"te tenir", "vous tenir"},
			{"t'écris", "vous écris"},
			{"Merci à toi", "Merci à vous"},
			{"pour toi", "pour vous"},
			{"avec toi", "avec vous"},
			{"chez toi", "chez vous"},
			{"ton accueil", "votre accueil"},
			{"ton hospitalité", "votre hospitalité"},
			{"ta disponibilité", "votre disponibilité"},
			{"Ta générosité", "Votre générosité"},
			{"ta générosité", "votre générosité"},
			{"tes coordonnées", "vos coordonnées"},
		},
	},
	models.LanguageCV: {
		mention: []Rule{
			{"Kiridu Irmon {hostName}", "Kiridus {hostName}"},
			{"Irmon {hostName}", "{hostName}"},
			{"irmon {hostName}", "{hostName}"},
		},
		address: []Rule{
			{"un irmon", "irmons"},
			{"kiridu irmon", "kiridus irmons"},
			{"prontu ", "prontus "},
			{"Fika prontus", "Nhos fika prontus"},
			{"Bu generozidadi", "Nhos generozidadi"},
			{"Bu pode", "Nhos pode"},
			{"bu akolhimentu", "nhos akolhimentu"},
			{"bu disponibilidadi", "nhos disponibilidadi"},
			{"pa bo", "pa nhos"},
			{"ku bo", "ku nhos"},
			{"di bo", "di nhos"},
			{" bu ", " nhos "},
		},
	},
}
