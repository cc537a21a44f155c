package quiz

import "fmt"

// The quiz voice is a kind tutor for French middle and high schoolers.
// Questions come back in French regardless of the topic's language.
const systemPrompt = `Tu es une IA qui crée des quiz pédagogiques pour des collégien·nes/lycéen·nes. Utilise un ton bienveillant, simple et clair. Toutes les questions sont en français.`

func buildUserMessage(topic string, numQuestions int) string {
	return fmt.Sprintf(`Sujet de travail de l'élève : %q.

Génère %d questions à choix multiples pour vérifier qu'il ou elle a bien compris le sujet. Chaque question a exactement 4 options et une seule bonne réponse.`, topic, numQuestions)
}
