package templates

import "visit-assistant/internal/models"

var defaultsCV = map[models.MessageType]map[models.Role]string{
	models.MessageConfirmation: {
		models.RoleSpeaker: `Bon dia Irmon {speakerName},

{firstTimeIntroduction}

N sta skrebe pa konfirma bu vizita na nos kongregason dia {visitDate} pa {visitTime}. Nu sta kontenti di obi-u, kiridu irmon.

Bu pode konfirma-m si data inda ta dá pa bo?

Ku amor fraternal,
{hospitalityOverseer}
{hospitalityOverseerPhone}`,
		models.RoleHost: `Bon dia Irmon {hostName},

N ta spera ma bu sta bon. Obrigadu pa bu aseita resebe nos irmon {speakerName}, ki ta ben vizita-nu dia {visitDate} pa {visitTime}.

Bu pode konfirma-m si bu inda sta prontu pa resebe-l?

Ku amor fraternal,
{hospitalityOverseer}
{hospitalityOverseerPhone}`,
	},
	models.MessagePreparation: {
		models.RoleSpeaker: `Bon dia Irmon {speakerName},

Bu vizita sta txiga: nu sta spera-u dia {visitDate} pa {visitTime}.

Bu ta fika na kaza di Irmon {hostName}.
Enderesu: {hostAddress}
Telefoni: {hostPhone}

Si bu mesti kualker kuza, liga-m.

Ku amor fraternal,
{hospitalityOverseer}
{hospitalityOverseerPhone}`,
		models.RoleHost: `Bon dia Irmon {hostName},

Vizita di nos irmon {speakerName} sta txiga: el ta txiga dia {visitDate} pa runion di {visitTime}.

Li e se numeru pa bu pode kontakta-l: {speakerPhone}

Obrigadu más un bes pa bu akolhimentu.

Ku amor fraternal,
{hospitalityOverseer}`,
	},
	models.MessageReminder7: {
		models.RoleSpeaker: `Bon dia Irmon {speakerName},

Un pikenu lembransa: nu sta spera-u dentu di un simana, dia {visitDate} pa {visitTime}.

Te breve,
{hospitalityOverseer}`,
		models.RoleHost: `Bon dia Irmon {hostName},

Un pikenu lembransa: nos irmon {speakerName} ta txiga dentu di un simana, dia {visitDate}. Fika prontu pa resebe-l.

Te breve,
{hospitalityOverseer}`,
	},
	models.MessageReminder2: {
		models.RoleSpeaker: `Bon dia Irmon {speakerName},

Só más dos dia pa bu vizita di {visitDate} pa {visitTime}! Nu sta ansiozu pa resebe-u, bu ta ser bemvindu.

Nha numeru si bu mesti: {hospitalityOverseerPhone}

Te lógu,
{hospitalityOverseer}`,
		models.RoleHost: `Bon dia Irmon {hostName},

Nos irmon {speakerName} ta txiga dentu di dos dia, dia {visitDate}. Se numeru: {speakerPhone}

Obrigadu más un bes pa bu disponibilidadi.

Te lógu,
{hospitalityOverseer}`,
	},
	models.MessageThanks: {
		models.RoleSpeaker: `Bon dia Irmon {speakerName},

Obrigadu txeu pa bu vizita y pa diskursu ki bu fazi pa nos. Bu foi bemvindu na nos meiu, kiridu irmon.

N ta spera ma bu txiga kaza dretu.

Ku amor fraternal,
{hospitalityOverseer}`,
		models.RoleHost: `Bon dia Irmon {hostName},

Obrigadu pa bu akolhimentu kenti di nos irmon {speakerName}. Bu generozidadi e un bon izenplu pa kongregason.

Ku amor fraternal,
{hospitalityOverseer}`,
	},
	models.MessageHostRequest: {
		models.RoleHost: `Bon dia Irmon {hospitalityOverseer},

Li e prósimu vizitas ki nu mesti un kaza pa es:

{visitList}

Bu pode fla-m kenha ki pode resebe es oradoris?

Ku amor fraternal`,
	},
}
