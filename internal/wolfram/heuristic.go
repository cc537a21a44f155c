package wolfram

import "strings"

// heuristicInput recognizes a couple of common French task phrasings
// and maps them to Wolfram queries. It is the offline fallback when no
// LLM provider is configured.
func heuristicInput(task string) string {
	lower := strings.ToLower(strings.TrimSpace(task))

	for _, prefix := range []string{"calcule ", "calculer ", "combien fait "} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(task[len(prefix):])
		}
	}

	for _, prefix := range []string{"trace ", "tracer ", "dessine "} {
		if strings.HasPrefix(lower, prefix) {
			expr := strings.TrimSpace(task[len(prefix):])
			for _, article := range []string{"la courbe de ", "la courbe ", "le graphe de ", "la fonction "} {
				if strings.HasPrefix(strings.ToLower(expr), article) {
					expr = strings.TrimSpace(expr[len(article):])
					break
				}
			}
			if expr != "" {
				return "plot " + expr
			}
			return ""
		}
	}

	return ""
}
