package quiz

// Theme is a curated quiz subject with a pre-written generation prompt.
type Theme struct {
	ID          string `json:"id"`
	Theme       string `json:"theme"`
	SubTheme    string `json:"subTheme"`
	Difficulty  string `json:"difficulty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"-"`
}

// ThemeSummary is the client-facing slice of a Theme, without the
// prompt.
type ThemeSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ThemeByID returns the theme for id, or nil if unknown.
func ThemeByID(id string) *Theme {
	for i := range themes {
		if themes[i].ID == id {
			return &themes[i]
		}
	}
	return nil
}

// ThemesByCategory groups the catalog as theme -> subTheme ->
// difficulty -> summary, the shape the client's theme picker expects.
func ThemesByCategory() map[string]map[string]map[string]ThemeSummary {
	out := make(map[string]map[string]map[string]ThemeSummary)
	for _, t := range themes {
		sub, ok := out[t.Theme]
		if !ok {
			sub = make(map[string]map[string]ThemeSummary)
			out[t.Theme] = sub
		}
		diff, ok := sub[t.SubTheme]
		if !ok {
			diff = make(map[string]ThemeSummary)
			sub[t.SubTheme] = diff
		}
		diff[t.Difficulty] = ThemeSummary{ID: t.ID, Title: t.Title, Description: t.Description}
	}
	return out
}

var themes = []Theme{
	{
		ID:          "math-algebra-beginner",
		Theme:       "Mathématiques",
		SubTheme:    "Algèbre",
		Difficulty:  "beginner",
		Title:       "Les bases de l'algèbre",
		Description: "Résoudre des équations simples, comprendre les variables et les termes algébriques",
		Prompt:      "Génère un quiz sur les bases de l'algèbre pour collège : équations simples, variables, coefficients, termes algébriques.",
	},
	{
		ID:          "math-algebra-intermediate",
		Theme:       "Mathématiques",
		SubTheme:    "Algèbre",
		Difficulty:  "intermediate",
		Title:       "Équations du premier degré",
		Description: "Équations avec parenthèses, fractions et inéquations",
		Prompt:      "Génère un quiz sur les équations du premier degré : résolutions d'équations avec parenthèses, fractions et inéquations.",
	},
	{
		ID:          "math-algebra-advanced",
		Theme:       "Mathématiques",
		SubTheme:    "Algèbre",
		Difficulty:  "advanced",
		Title:       "Équations du second degré",
		Description: "Factorisation, discriminant et résolution d'équations quadratiques",
		Prompt:      "Génère un quiz sur les équations du second degré : factorisation, calcul du discriminant et résolution complète.",
	},
	{
		ID:          "math-geometry-beginner",
		Theme:       "Mathématiques",
		SubTheme:    "Géométrie",
		Difficulty:  "beginner",
		Title:       "Figures géométriques de base",
		Description: "Noms et propriétés des formes planes et solides",
		Prompt:      "Génère un quiz sur les figures géométriques de base : carrés, triangles, cercles, cubes, pyramides et leurs propriétés.",
	},
	{
		ID:          "math-geometry-intermediate",
		Theme:       "Mathématiques",
		SubTheme:    "Géométrie",
		Difficulty:  "intermediate",
		Title:       "Calculs géométriques",
		Description: "Théorème de Pythagore et calcul d'aires et volumes",
		Prompt:      "Génère un quiz sur les calculs géométriques : théorème de Pythagore, aires des figures planes, volumes des solides.",
	},
	{
		ID:          "math-geometry-advanced",
		Theme:       "Mathématiques",
		SubTheme:    "Géométrie",
		Difficulty:  "advanced",
		Title:       "Trigonométrie",
		Description: "Sinus, cosinus, tangente et leurs applications",
		Prompt:      "Génère un quiz sur la trigonométrie : définition et calcul des sinus, cosinus, tangente dans le triangle rectangle.",
	},
	{
		ID:          "math-calculation-beginner",
		Theme:       "Mathématiques",
		SubTheme:    "Calcul",
		Difficulty:  "beginner",
		Title:       "Opérations de base",
		Description: "Addition, soustraction, multiplication et division",
		Prompt:      "Génère un quiz sur les opérations de base : additions, soustractions, multiplications et divisions avec nombres entiers.",
	},
	{
		ID:          "math-calculation-intermediate",
		Theme:       "Mathématiques",
		SubTheme:    "Calcul",
		Difficulty:  "intermediate",
		Title:       "Fractions et décimaux",
		Description: "Calcul avec fractions, nombres décimaux et pourcentages",
		Prompt:      "Génère un quiz sur les fractions et décimaux : calculs avec fractions, conversions décimales et pourcentages.",
	},
	{
		ID:          "math-calculation-advanced",
		Theme:       "Mathématiques",
		SubTheme:    "Calcul",
		Difficulty:  "advanced",
		Title:       "Puissances et racines",
		Description: "Calculs avec exposants, puissances et racines carrées",
		Prompt:      "Génère un quiz sur les puissances et racines : propriétés des exposants, calculs avec puissances et racines carrées.",
	},
	{
		ID:          "sciences-biology-beginner",
		Theme:       "Sciences",
		SubTheme:    "Biologie",
		Difficulty:  "beginner",
		Title:       "Le monde du vivant",
		Description: "Découvrez les bases de la biologie et l'organisation du vivant",
		Prompt:      "Génère un quiz sur les bases de la biologie : cellules, tissus, organes, systèmes et photosynthèse.",
	},
	{
		ID:          "sciences-biology-intermediate",
		Theme:       "Sciences",
		SubTheme:    "Biologie",
		Difficulty:  "intermediate",
		Title:       "Le corps humain",
		Description: "Anatomie et physiologie du corps humain",
		Prompt:      "Génère un quiz sur le corps humain : systèmes digestif, respiratoire, cardiovasculaire et fonctions de chaque organe.",
	},
	{
		ID:          "sciences-biology-advanced",
		Theme:       "Sciences",
		SubTheme:    "Biologie",
		Difficulty:  "advanced",
		Title:       "Évolution et génétique",
		Description: "La théorie de l'évolution et les mécanismes de l'hérédité",
		Prompt:      "Génère un quiz sur l'évolution et la génétique : sélection naturelle, mutations, ADN et transmission des caractères.",
	},
	{
		ID:          "sciences-chemistry-beginner",
		Theme:       "Sciences",
		SubTheme:    "Chimie",
		Difficulty:  "beginner",
		Title:       "Éléments et atomes",
		Description: "Comprends la composition de la matière",
		Prompt:      "Génère un quiz sur les atomes et les éléments : structure atomique, tableau périodique, liaisons chimiques.",
	},
	{
		ID:          "sciences-chemistry-intermediate",
		Theme:       "Sciences",
		SubTheme:    "Chimie",
		Difficulty:  "intermediate",
		Title:       "Réactions chimiques",
		Description: "Équilibres, acides/bases et réactions d'oxydoréduction",
		Prompt:      "Génère un quiz sur les réactions chimiques : équations chimiques, acides et bases, réactions de combustion.",
	},
	{
		ID:          "sciences-chemistry-advanced",
		Theme:       "Sciences",
		SubTheme:    "Chimie",
		Difficulty:  "advanced",
		Title:       "Chimie organique",
		Description: "Molécules carbonées et fonction chimiques",
		Prompt:      "Génère un quiz sur la chimie organique : chaînes carbonées, alcools, acides carboxyliques et leurs réactions.",
	},
	{
		ID:          "sciences-physics-beginner",
		Theme:       "Sciences",
		SubTheme:    "Physique",
		Difficulty:  "beginner",
		Title:       "Les lois de Newton",
		Description: "Comprends les principes fondamentaux de la physique",
		Prompt:      "Génère un quiz sur les lois de Newton : première, deuxième et troisième loi, force, masse et accélération.",
	},
	{
		ID:          "sciences-physics-intermediate",
		Theme:       "Sciences",
		SubTheme:    "Physique",
		Difficulty:  "intermediate",
		Title:       "Énergie et mouvement",
		Description: "Travail, puissance, énergie cinétique et potentielle",
		Prompt:      "Génère un quiz sur l'énergie et le mouvement : travail mécanique, puissance, types d'énergie et conservation.",
	},
	{
		ID:          "sciences-physics-advanced",
		Theme:       "Sciences",
		SubTheme:    "Physique",
		Difficulty:  "advanced",
		Title:       "Électricité",
		Description: "Courant électrique, tension et résistance",
		Prompt:      "Génère un quiz sur l'électricité : courant électrique, tension, résistance, loi d'Ohm et circuits.",
	},
	{
		ID:          "history-ancient-beginner",
		Theme:       "Histoire",
		SubTheme:    "Antiquité",
		Difficulty:  "beginner",
		Title:       "Les civilisations anciennes",
		Description: "Voyage dans le temps vers l'Antiquité",
		Prompt:      "Génère un quiz sur les civilisations antiques : Égypte pharaonique, Grèce antique, Rome antique et leurs inventions.",
	},
	{
		ID:          "history-ancient-intermediate",
		Theme:       "Histoire",
		SubTheme:    "Antiquité",
		Difficulty:  "intermediate",
		Title:       "La démocratie athénienne",
		Description: "L'organisation politique et sociale de la Grèce antique",
		Prompt:      "Génère un quiz sur la démocratie athénienne : assemblée, tribunaux, esclavage et organisation sociale grecque.",
	},
	{
		ID:          "history-ancient-advanced",
		Theme:       "Histoire",
		SubTheme:    "Antiquité",
		Difficulty:  "advanced",
		Title:       "L'Empire romain",
		Description: "Gouvernement, armée et administration romaine",
		Prompt:      "Génère un quiz sur l'Empire romain : républiques, empereurs, conquêtes militaires et organisation administrative.",
	},
	{
		ID:          "history-medieval-beginner",
		Theme:       "Histoire",
		SubTheme:    "Moyen Âge",
		Difficulty:  "beginner",
		Title:       "Le Moyen Âge européen",
		Description: "La vie au Moyen Âge en Europe",
		Prompt:      "Génère un quiz sur le Moyen Âge : châteaux forts, chevaliers, manoirs, seigneurs et paysans.",
	},
	{
		ID:          "history-medieval-intermediate",
		Theme:       "Histoire",
		SubTheme:    "Moyen Âge",
		Difficulty:  "intermediate",
		Title:       "Les croisades",
		Description: "Les guerres saintes et leurs conséquences",
		Prompt:      "Génère un quiz sur les croisades : causes des croisades, principales batailles et conséquences culturelles.",
	},
	{
		ID:          "history-medieval-advanced",
		Theme:       "Histoire",
		SubTheme:    "Moyen Âge",
		Difficulty:  "advanced",
		Title:       "La Renaissance",
		Description: "Transition entre Moyen Âge et Temps modernes",
		Prompt:      "Génère un quiz sur la Renaissance : humanisme, invention de l'imprimerie, grands artistes et scientifiques.",
	},
	{
		ID:          "history-modern-beginner",
		Theme:       "Histoire",
		SubTheme:    "Époque moderne",
		Difficulty:  "beginner",
		Title:       "Les grandes découvertes",
		Description: "Exploration et conquêtes européennes",
		Prompt:      "Génère un quiz sur les grandes découvertes : Christophe Colomb, Vasco de Gama, conquistadors et conséquences.",
	},
	{
		ID:          "history-modern-intermediate",
		Theme:       "Histoire",
		SubTheme:    "Époque moderne",
		Difficulty:  "intermediate",
		Title:       "La Révolution française",
		Description: "Causes et déroulement de la Révolution",
		Prompt:      "Génère un quiz sur la Révolution française : états généraux, prise de la Bastille, révolution et empire napoléonien.",
	},
	{
		ID:          "history-modern-advanced",
		Theme:       "Histoire",
		SubTheme:    "Époque moderne",
		Difficulty:  "advanced",
		Title:       "Les deux guerres mondiales",
		Description: "Causes, déroulement et conséquences des conflits mondiaux",
		Prompt:      "Génère un quiz sur les deux guerres mondiales : Première Guerre mondiale, Seconde Guerre mondiale, leurs causes et conséquences.",
	},
	{
		ID:          "geography-maps-beginner",
		Theme:       "Géographie",
		SubTheme:    "Cartes",
		Difficulty:  "beginner",
		Title:       "Lire une carte",
		Description: "Apprends à t'orienter avec les cartes",
		Prompt:      "Génère un quiz sur la lecture de cartes : points cardinaux, échelle, légendes et courbes de niveau.",
	},
	{
		ID:          "geography-maps-intermediate",
		Theme:       "Géographie",
		SubTheme:    "Cartes",
		Difficulty:  "intermediate",
		Title:       "Cartes thématiques",
		Description: "Population, climat et relief à travers les cartes",
		Prompt:      "Génère un quiz sur les cartes thématiques : cartes de population, climatiques, physiques et économiques.",
	},
	{
		ID:          "geography-maps-advanced",
		Theme:       "Géographie",
		SubTheme:    "Cartes",
		Difficulty:  "advanced",
		Title:       "Géolocalisation",
		Description: "GPS, coordonnées et systèmes de projection",
		Prompt:      "Génère un quiz sur la géolocalisation : système GPS, latitude/longitude, fuseaux horaires et projections cartographiques.",
	},
	{
		ID:          "geography-capitals-beginner",
		Theme:       "Géographie",
		SubTheme:    "Capitales",
		Difficulty:  "beginner",
		Title:       "Capitales européennes",
		Description: "Les capitales des pays européens",
		Prompt:      "Génère un quiz sur les capitales européennes : localise et nomme les capitales des principaux pays d'Europe.",
	},
	{
		ID:          "geography-capitals-intermediate",
		Theme:       "Géographie",
		SubTheme:    "Capitales",
		Difficulty:  "intermediate",
		Title:       "Capitales du monde",
		Description: "Capitales des continents et pays importants",
		Prompt:      "Génère un quiz sur les capitales mondiales : Asie, Afrique, Amérique, Océanie et principales capitales politiques.",
	},
	{
		ID:          "geography-capitals-advanced",
		Theme:       "Géographie",
		SubTheme:    "Capitales",
		Difficulty:  "advanced",
		Title:       "Capitales et géopolitique",
		Description: "Histoire et rôle géopolitique des capitales",
		Prompt:      "Génère un quiz sur les capitales et leur rôle géopolitique : capitales anciennes, nouvelles capitales et enjeux territoriaux.",
	},
	{
		ID:          "geography-demography-beginner",
		Theme:       "Géographie",
		SubTheme:    "Démographie",
		Difficulty:  "beginner",
		Title:       "Population mondiale",
		Description: "Comprendre les nombres et la répartition des populations",
		Prompt:      "Génère un quiz sur la démographie mondiale : population par continents, pays les plus peuplés et croissance démographique.",
	},
	{
		ID:          "geography-demography-intermediate",
		Theme:       "Géographie",
		SubTheme:    "Démographie",
		Difficulty:  "intermediate",
		Title:       "Pyramides des âges",
		Description: "Analyse des populations par âge et sexe",
		Prompt:      "Génère un quiz sur les pyramides des âges : interprétation des pyramides, vieillissement, fécondité et espérance de vie.",
	},
	{
		ID:          "geography-demography-advanced",
		Theme:       "Géographie",
		SubTheme:    "Démographie",
		Difficulty:  "advanced",
		Title:       "Migrations",
		Description: "Flux migratoires et conséquences démographiques",
		Prompt:      "Génère un quiz sur les migrations : causes des migrations, flux migratoires mondiaux et conséquences sociales.",
	},
	{
		ID:          "languages-vocabulary-beginner",
		Theme:       "Langues",
		SubTheme:    "Vocabulaire",
		Difficulty:  "beginner",
		Title:       "Enrichis ton vocabulaire",
		Description: "Apprends de nouveaux mots en français",
		Prompt:      "Génère un quiz de vocabulaire français niveau collège : synonymes, antonymes, familles de mots et orthographe.",
	},
	{
		ID:          "languages-vocabulary-intermediate",
		Theme:       "Langues",
		SubTheme:    "Vocabulaire",
		Difficulty:  "intermediate",
		Title:       "Expressions et idiomes",
		Description: "Expressions courantes et figures de style",
		Prompt:      "Génère un quiz sur les expressions françaises : locutions, proverbes courants et sens figuré des expressions.",
	},
	{
		ID:          "languages-vocabulary-advanced",
		Theme:       "Langues",
		SubTheme:    "Vocabulaire",
		Difficulty:  "advanced",
		Title:       "Vocabulaire littéraire",
		Description: "Mots savants et vocabulaire littéraire",
		Prompt:      "Génère un quiz sur le vocabulaire littéraire français : mots d'origine grecque/latine, champs lexicaux et figures de rhétorique.",
	},
	{
		ID:          "languages-grammar-beginner",
		Theme:       "Langues",
		SubTheme:    "Grammaire",
		Difficulty:  "beginner",
		Title:       "Les bases de la grammaire",
		Description: "Sujets, verbes et compléments",
		Prompt:      "Génère un quiz sur les bases de la grammaire française : sujet/verbe, compléments d'objet, adjectifs qualificatifs.",
	},
	{
		ID:          "languages-grammar-intermediate",
		Theme:       "Langues",
		SubTheme:    "Grammaire",
		Difficulty:  "intermediate",
		Title:       "Conjugaison",
		Description: "Temps et modes des verbes",
		Prompt:      "Génère un quiz sur la conjugaison française : présent, passé composé, imparfait, futur et conditionnel.",
	},
	{
		ID:          "languages-grammar-advanced",
		Theme:       "Langues",
		SubTheme:    "Grammaire",
		Difficulty:  "advanced",
		Title:       "Subordonnées et discours",
		Description: "Phrases complexes et discours indirect",
		Prompt:      "Génère un quiz sur les subordonnées et le discours indirect : propositions relatives, causales, consécutives.",
	},
	{
		ID:          "languages-conjugation-beginner",
		Theme:       "Langues",
		SubTheme:    "Conjugaison",
		Difficulty:  "beginner",
		Title:       "Verbes en -er",
		Description: "Conjugaison des verbes du premier groupe",
		Prompt:      "Génère un quiz sur les verbes en -er : conjugaison au présent, futur et passé composé des verbes réguliers.",
	},
	{
		ID:          "languages-conjugation-intermediate",
		Theme:       "Langues",
		SubTheme:    "Conjugaison",
		Difficulty:  "intermediate",
		Title:       "Verbes irréguliers",
		Description: "Conjugaison des verbes du deuxième et troisième groupe",
		Prompt:      "Génère un quiz sur les verbes irréguliers : être, avoir, aller, faire, prendre et verbes en -ir/-re irréguliers.",
	},
	{
		ID:          "languages-conjugation-advanced",
		Theme:       "Langues",
		SubTheme:    "Conjugaison",
		Difficulty:  "advanced",
		Title:       "Tous les temps",
		Description: "Maîtrise complète de la conjugaison française",
		Prompt:      "Génère un quiz complet de conjugaison : subjonctif, formes passives, impératif et temps composés.",
	},
}
