package quiz

import "testing"

func TestThemeCatalogIsWellFormed(t *testing.T) {
	seen := make(map[string]bool, len(themes))
	for _, th := range themes {
		if seen[th.ID] {
			t.Errorf("duplicate theme id %q", th.ID)
		}
		seen[th.ID] = true
		if th.Theme == "" || th.SubTheme == "" || th.Title == "" || th.Prompt == "" {
			t.Errorf("theme %q has empty fields", th.ID)
		}
		switch th.Difficulty {
		case "beginner", "intermediate", "advanced":
		default:
			t.Errorf("theme %q has difficulty %q", th.ID, th.Difficulty)
		}
	}
}

func TestThemeByID(t *testing.T) {
	th := ThemeByID("history-modern-intermediate")
	if th == nil {
		t.Fatal("expected theme")
	}
	if th.Title != "La Révolution française" {
		t.Errorf("title = %q", th.Title)
	}
	if ThemeByID("unknown") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestThemesByCategory(t *testing.T) {
	cats := ThemesByCategory()

	for _, want := range []string{"Mathématiques", "Sciences", "Histoire", "Géographie", "Langues"} {
		if _, ok := cats[want]; !ok {
			t.Errorf("missing category %q", want)
		}
	}

	algebra := cats["Mathématiques"]["Algèbre"]
	if len(algebra) != 3 {
		t.Fatalf("got %d algebra difficulties, want 3", len(algebra))
	}
	if algebra["beginner"].ID != "math-algebra-beginner" {
		t.Errorf("beginner algebra id = %q", algebra["beginner"].ID)
	}
	if algebra["beginner"].Description == "" {
		t.Error("summary missing description")
	}
}
