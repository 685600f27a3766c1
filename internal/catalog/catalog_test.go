package catalog

import "testing"

func TestCatalogIDs(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"styles", Styles()},
		{"frameworks", Frameworks()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.entries) != 8 {
				t.Fatalf("expected 8 entries, got %d", len(tt.entries))
			}
			for i, e := range tt.entries {
				if e.ID != i+1 {
					t.Errorf("entry %d has ID %d, want %d", i, e.ID, i+1)
				}
				if e.Name == "" || e.Description == "" {
					t.Errorf("entry %d is missing name or description: %+v", e.ID, e)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id     int
		wantOK bool
		want   string
	}{
		{1, true, "Material Design"},
		{8, true, "Cyberpunk"},
		{0, false, ""},
		{9, false, ""},
	}

	for _, tt := range tests {
		got, ok := Style(tt.id)
		if ok != tt.wantOK || got.Name != tt.want {
			t.Errorf("Style(%d) = %q, %v, want %q, %v", tt.id, got.Name, ok, tt.want, tt.wantOK)
		}
	}

	fw, ok := Framework(2)
	if !ok || fw.Name != "Bootstrap 5" {
		t.Errorf("Framework(2) = %q, %v, want %q, true", fw.Name, ok, "Bootstrap 5")
	}
}

func TestStylesReturnsCopy(t *testing.T) {
	s := Styles()
	s[0].Name = "changed"
	if Styles()[0].Name != "Material Design" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestSearch(t *testing.T) {
	results := Search(Styles(), "glassmorph")
	if len(results) == 0 {
		t.Fatal("expected at least one match")
	}
	if results[0].Name != "Glassmorphism" {
		t.Errorf("best match = %q, want %q", results[0].Name, "Glassmorphism")
	}

	if got := Search(Frameworks(), "  "); len(got) != 8 {
		t.Errorf("empty query returned %d entries, want 8", len(got))
	}

	if got := Search(Frameworks(), "zzzzqqq"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}
