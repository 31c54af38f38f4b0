package contact

import (
	"strconv"
	"strings"

	"housing_finder/internal/domain"
)

// fallbackLanguage is used whenever the requested template language has no
// translation yet.
const fallbackLanguage = "English"

// Call-script greetings per language. Placeholders are filled by render().
var greetings = map[string]string{
	"English": "Hello, my name is Alex, a virtual housing assistant. " +
		"I am calling on behalf of {user_name} who is looking for affordable housing. " +
		"They are interested in the property at {address} listed at ${rent}/month. " +
		"Could you please provide more information or schedule a viewing? " +
		"Their contact number is {user_phone}. Thank you.",
	"Spanish": "Hola, me llamo Alex, soy un asistente virtual de vivienda. " +
		"Llamo en nombre de {user_name}, quien busca vivienda asequible. " +
		"Está interesado/a en la propiedad en {address} listada a ${rent}/mes. " +
		"¿Podría proporcionarme más información o programar una visita? " +
		"Su número de contacto es {user_phone}. Gracias.",
	"French": "Bonjour, je m'appelle Alex, assistant virtuel en immobilier. " +
		"J'appelle au nom de {user_name} qui recherche un logement abordable. " +
		"Il/Elle est intéressé(e) par le bien au {address} affiché à ${rent}/mois. " +
		"Pourriez-vous fournir plus d'informations ou planifier une visite? " +
		"Son numéro de contact est {user_phone}. Merci.",
	"Amharic": "ሰላም፣ ስሜ አሌክስ ነው፣ ምናባዊ የቤቶች ረዳት ነኝ። " +
		"በ{user_name} ስም እደውልሃለሁ፣ ተመጣጣኝ ቤት እየፈለጉ ነው። " +
		"በ{address} ያለውን ቤት ${rent}/ወር ፍላጎት አላቸው። " +
		"ተጨማሪ መረጃ ወይም ጉብኝት ማዘጋጀት ይችላሉ? " +
		"የእርሳቸው ስልክ ቁጥር {user_phone} ነው። አስቀድሜ አመሰግናለሁ።",
}

var emailSubjects = map[string]string{
	"English": "Affordable Housing Inquiry: {address}",
	"Spanish": "Consulta sobre vivienda asequible: {address}",
	"French":  "Demande de logement abordable: {address}",
	"Amharic": "ተመጣጣኝ ቤት ጥያቄ: {address}",
}

var emailBodies = map[string]string{
	"English": "Dear {agent_name},\n\n" +
		"My name is {user_name} and I am looking for affordable housing. " +
		"I found your listing at {address}, {city}, {state} for ${rent}/month " +
		"and I am very interested.\n\n" +
		"Could you please contact me at {user_phone} or {user_email} to discuss " +
		"availability and schedule a viewing?\n\n" +
		"Thank you for your time.\n\n" +
		"Best regards,\n{user_name}",
	"Spanish": "Estimado/a {agent_name},\n\n" +
		"Me llamo {user_name} y estoy buscando vivienda asequible. " +
		"Encontré su propiedad en {address}, {city}, {state} por ${rent}/mes " +
		"y estoy muy interesado/a.\n\n" +
		"¿Podría contactarme en {user_phone} o {user_email} para hablar sobre " +
		"disponibilidad y coordinar una visita?\n\n" +
		"Gracias por su tiempo.\n\n" +
		"Atentamente,\n{user_name}",
}

// Email is a rendered subject + body pair ready for a Mailer.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// BuildCallScript renders the voice/SMS greeting for a listing in the
// preferred language, falling back to English.
func BuildCallScript(l domain.Listing, req domain.ContactRequest) string {
	tpl, ok := greetings[req.Language]
	if !ok {
		tpl = greetings[fallbackLanguage]
	}
	return render(tpl, l, req)
}

// BuildEmail renders the localized inquiry email.
func BuildEmail(l domain.Listing, req domain.ContactRequest) Email {
	subject, ok := emailSubjects[req.Language]
	if !ok {
		subject = emailSubjects[fallbackLanguage]
	}
	body, ok := emailBodies[req.Language]
	if !ok {
		body = emailBodies[fallbackLanguage]
	}
	return Email{
		Subject: render(subject, l, req),
		Body:    render(body, l, req),
	}
}

func render(tpl string, l domain.Listing, req domain.ContactRequest) string {
	address := l.Address
	if address == "" {
		address = "the listed property"
	}
	agent := l.AgentName
	if agent == "" {
		agent = "Agent"
	}
	rent := "N/A"
	if l.MonthlyRent != nil {
		rent = strconv.FormatFloat(*l.MonthlyRent, 'f', -1, 64)
	}
	return strings.NewReplacer(
		"{user_name}", req.UserName,
		"{user_phone}", req.UserPhone,
		"{user_email}", req.UserEmail,
		"{agent_name}", agent,
		"{address}", address,
		"{city}", l.City,
		"{state}", l.State,
		"{rent}", rent,
	).Replace(tpl)
}
