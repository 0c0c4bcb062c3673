package pairing

import "testing"

func TestSideID(t *testing.T) {
	if got := SideID("SMV-S1-0007", SideA); got != "SMV-S1-0007a" {
		t.Errorf("SideID = %q", got)
	}
	if got := SideID("SMV-S1-0007", SideB); got != "SMV-S1-0007b" {
		t.Errorf("SideID = %q", got)
	}
}

func TestSiblingSide(t *testing.T) {
	tests := []struct {
		side    string
		sibling string
		ok      bool
	}{
		{side: SideA, sibling: SideB, ok: true},
		{side: SideB, sibling: SideA, ok: true},
		{side: "", ok: false},
		{side: "c", ok: false},
	}
	for _, tt := range tests {
		sibling, ok := SiblingSide(tt.side)
		if sibling != tt.sibling || ok != tt.ok {
			t.Errorf("SiblingSide(%q) = (%q, %v), want (%q, %v)", tt.side, sibling, ok, tt.sibling, tt.ok)
		}
	}
}

func TestSiblingSymmetric(t *testing.T) {
	for _, side := range Sides() {
		sibling, ok := SiblingSide(side)
		if !ok {
			t.Fatalf("SiblingSide(%q) failed", side)
		}
		back, ok := SiblingSide(sibling)
		if !ok || back != side {
			t.Errorf("SiblingSide(SiblingSide(%q)) = %q", side, back)
		}
	}
}

func TestIndexLookup(t *testing.T) {
	idx := Index{
		"http://calmview.example/Record.aspx?src=CalmView.Catalog&id=1": "Old upload.tif",
		"http://calmview.example/empty":                                 "",
	}

	title, ok := idx.Lookup("http://calmview.example/Record.aspx?src=CalmView.Catalog&id=1")
	if !ok || title != "Old upload.tif" {
		t.Errorf("Lookup = (%q, %v)", title, ok)
	}
	if _, ok := idx.Lookup("http://calmview.example/unseen"); ok {
		t.Error("unseen URL matched")
	}
	// An empty stored title is treated as no match.
	if _, ok := idx.Lookup("http://calmview.example/empty"); ok {
		t.Error("empty title matched")
	}
}
