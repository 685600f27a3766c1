package project

import (
	"errors"
	"testing"
)

func TestNewKind(t *testing.T) {
	tests := []struct {
		name      string
		category  Category
		style     int
		framework int
		wantWeb   bool
		wantErr   bool
	}{
		{"web", CategoryWeb, 1, 2, true, false},
		{"desktop", CategoryDesktop, 0, 0, false, false},
		{"api", CategoryAPI, 0, 0, false, false},
		{"library", CategoryLibrary, 0, 0, false, false},
		{"other", CategoryOther, 0, 0, false, false},
		{"api ignores ids", CategoryAPI, 3, 3, false, false},
		{"web bad style", CategoryWeb, 0, 2, false, true},
		{"web bad framework", CategoryWeb, 1, 9, false, true},
		{"category zero", 0, 0, 0, false, true},
		{"category six", 6, 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := NewKind(tt.category, tt.style, tt.framework)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind.Category() != tt.category {
				t.Errorf("Category() = %d, want %d", kind.Category(), tt.category)
			}

			cfg := ProjectConfig{Name: "x", Kind: kind}
			_, isWeb := cfg.Web()
			if isWeb != tt.wantWeb {
				t.Errorf("Web() present = %v, want %v", isWeb, tt.wantWeb)
			}
			if isWeb != (cfg.Category() == CategoryWeb) {
				t.Errorf("web section present = %v but category = %d", isWeb, cfg.Category())
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	want := map[Category]string{
		CategoryWeb:     "Web Application",
		CategoryDesktop: "Desktop Application",
		CategoryAPI:     "API",
		CategoryLibrary: "Library",
		CategoryOther:   "Other",
	}
	for c, label := range want {
		if got := c.Label(); got != label {
			t.Errorf("Category(%d).Label() = %q, want %q", c, got, label)
		}
		if !c.Valid() {
			t.Errorf("Category(%d).Valid() = false", c)
		}
	}
	if Category(0).Valid() || Category(6).Valid() {
		t.Error("out-of-range categories must not be valid")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProjectConfig
		wantErr bool
	}{
		{"ok", ProjectConfig{Name: "App", Kind: API{}}, false},
		{"blank name", ProjectConfig{Name: "   ", Kind: API{}}, true},
		{"no kind", ProjectConfig{Name: "App"}, true},
		{"bad web ids", ProjectConfig{Name: "App", Kind: Web{StyleID: 9, FrameworkID: 1}}, true},
		{"self-test", SelfTestConfig(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWebCatalogEntries(t *testing.T) {
	w := Web{StyleID: 6, FrameworkID: 3}
	if w.Style().Name != "Glassmorphism" {
		t.Errorf("Style() = %q, want Glassmorphism", w.Style().Name)
	}
	if w.Framework().Name != "Bulma" {
		t.Errorf("Framework() = %q, want Bulma", w.Framework().Name)
	}
}
