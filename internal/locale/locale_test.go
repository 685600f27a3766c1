package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestEmbeddedTranslationsLoad(t *testing.T) {
	if err := Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    language.Tag
		wantErr bool
	}{
		{"", language.English, false},
		{"en", language.English, false},
		{"en-GB", language.English, false},
		{" fr ", language.French, false},
		{"fr-CA", language.French, false},
		{"de", language.Und, true},
		{"not a locale!", language.Und, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrinters(t *testing.T) {
	en := PrinterFor("en")
	if got := en.Sprintf("Please enter a number between %d and %d", 1, 5); got != "Please enter a number between 1 and 5" {
		t.Errorf("English = %q", got)
	}

	fr := PrinterFor("fr")
	if got := fr.Sprintf("Please enter a number between %d and %d", 1, 5); got != "Veuillez entrer un nombre entre 1 et 5" {
		t.Errorf("French = %q", got)
	}
	if got := fr.Sprintf("%s created", "README.md"); got != "README.md créé" {
		t.Errorf("French = %q", got)
	}

	// Keys without a translation come back as-is.
	if got := fr.Sprintf("Untranslated %d", 7); got != "Untranslated 7" {
		t.Errorf("fallback = %q", got)
	}

	// Unknown names fall back to English.
	if got := PrinterFor("xx").Sprintf("Project setup"); got != "Project setup" {
		t.Errorf("PrinterFor(xx) = %q", got)
	}
}
