package templates

import "visit-assistant/internal/models"

var defaultsFR = map[models.MessageType]map[models.Role]string{
	models.MessageConfirmation: {
		models.RoleSpeaker: `Bonjour Frère {speakerName},

{firstTimeIntroduction}

Je t'écris pour confirmer ta visite dans notre assemblée le {visitDate} à {visitTime}. Nous nous réjouissons de t'entendre, cher frère.

Peux-tu me confirmer que cette date te convient toujours ?

Fraternellement,
{hospitalityOverseer}
{hospitalityOverseerPhone}`,
		models.RoleHost: `Bonjour Frère {hostName},

J'espère que tu vas bien. Merci d'avoir accepté d'accueillir notre frère {speakerName}, qui nous rendra visite le {visitDate} à {visitTime}.

Peux-tu me confirmer que tu es toujours disponible pour le recevoir ?

Fraternellement,
{hospitalityOverseer}
{hospitalityOverseerPhone}`,
	},
	models.MessagePreparation: {
		models.RoleSpeaker: `Bonjour Frère {speakerName},

Ta visite approche : nous t'attendons le {visitDate} à {visitTime}.

Tu seras hébergé chez Frère {hostName}.
Adresse : {hostAddress}
Téléphone : {hostPhone}

N'hésite pas à me contacter si tu as besoin de quoi que ce soit.

Fraternellement,
{hospitalityOverseer}
{hospitalityOverseerPhone}`,
		models.RoleHost: `Bonjour Frère {hostName},

La visite de notre frère {speakerName} approche : il arrivera le {visitDate} pour la réunion de {visitTime}.

Voici son numéro pour que tu puisses le contacter : {speakerPhone}

Merci encore pour ton hospitalité, elle est très appréciée.

Fraternellement,
{hospitalityOverseer}`,
	},
	models.MessageReminder7: {
		models.RoleSpeaker: `Bonjour Frère {speakerName},

Petit rappel : nous t'attendons dans une semaine, le {visitDate} à {visitTime}.

À très bientôt,
{hospitalityOverseer}`,
		models.RoleHost: `Bonjour Frère {hostName},

Petit rappel : notre frère {speakerName} arrive dans une semaine, le {visitDate}. Merci de te tenir prêt à le recevoir.

À très bientôt,
{hospitalityOverseer}`,
	},
	models.MessageReminder2: {
		models.RoleSpeaker: `Bonjour Frère {speakerName},

Plus que deux jours avant ta visite du {visitDate} à {visitTime} ! Nous avons hâte de t'accueillir.

Mon numéro en cas de besoin : {hospitalityOverseerPhone}

À très vite,
{hospitalityOverseer}`,
		models.RoleHost: `Bonjour Frère {hostName},

Notre frère {speakerName} arrive dans deux jours, le {visitDate}. Son numéro : {speakerPhone}

Merci encore pour ta disponibilité.

À très vite,
{hospitalityOverseer}`,
	},
	models.MessageThanks: {
		models.RoleSpeaker: `Bonjour Frère {speakerName},

Merci beaucoup pour ta visite et pour le discours encourageant que tu nous as présenté. Tu as été le bienvenu parmi nous, cher frère.

J'espère que tu es bien rentré.

Fraternellement,
{hospitalityOverseer}`,
		models.RoleHost: `Bonjour Frère {hostName},

Merci à toi pour ton accueil chaleureux de notre frère {speakerName}. Ta générosité est un bel exemple pour l'assemblée.

Fraternellement,
{hospitalityOverseer}`,
	},
	models.MessageHostRequest: {
		models.RoleHost: `Bonjour Frère {hospitalityOverseer},

Voici les prochaines visites pour lesquelles nous cherchons un hébergement :

{visitList}

Peux-tu me dire qui pourra accueillir ces orateurs ?

Fraternellement`,
	},
}
