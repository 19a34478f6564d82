package catalog

import (
	"testing"
)

func TestLoadBuildsIndexes(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(s.Products()) == 0 || len(s.Styles()) == 0 || len(s.Rooms()) == 0 || len(s.FamilySizes()) == 0 {
		t.Fatal("expected every catalog collection to be non-empty")
	}

	if s.FindRoom("living-room") == nil {
		t.Error("FindRoom(living-room) = nil")
	}
	if s.FindStyle("scandinavian") == nil {
		t.Error("FindStyle(scandinavian) = nil")
	}
	if s.FindFamilySize("couple") == nil {
		t.Error("FindFamilySize(couple) = nil")
	}
}

func TestFindUnknownIdsReturnNil(t *testing.T) {
	s := MustLoad()

	if got := s.FindRoom("garage"); got != nil {
		t.Errorf("FindRoom(garage) = %v, want nil", got)
	}
	if got := s.FindStyle("brutalist"); got != nil {
		t.Errorf("FindStyle(brutalist) = %v, want nil", got)
	}
	if got := s.FindProduct("nonexistent"); got != nil {
		t.Errorf("FindProduct(nonexistent) = %v, want nil", got)
	}
	if got := s.ProductsForRoom("garage"); len(got) != 0 {
		t.Errorf("ProductsForRoom(garage) returned %d products, want 0", len(got))
	}
}

func TestProductsForRoomMembership(t *testing.T) {
	s := MustLoad()

	for _, room := range s.Rooms() {
		for _, p := range s.ProductsForRoom(room.Id) {
			if !p.InRoom(room.Id) {
				t.Errorf("product %s returned for room %s it is not eligible for", p.Id, room.Id)
			}
		}
	}
}

func TestProductsForBudgetInclusiveCeiling(t *testing.T) {
	s := MustLoad()
	products := s.ProductsForRoom("living-room")
	if len(products) == 0 {
		t.Fatal("no living-room products in catalog")
	}

	ceiling := float64(products[0].Price)
	filtered := ProductsForBudget(products, ceiling)

	found := false
	for _, p := range filtered {
		if float64(p.Price) > ceiling {
			t.Errorf("product %s priced %d above ceiling %.0f", p.Id, p.Price, ceiling)
		}
		if p.Id == products[0].Id {
			found = true
		}
	}
	if !found {
		t.Error("ceiling should be inclusive: product priced exactly at the ceiling was dropped")
	}
}

// The catalog is authored by hand; cross-check that every reference in it
// resolves.
func TestCatalogReferentialIntegrity(t *testing.T) {
	s := MustLoad()

	for _, p := range s.Products() {
		if p.Price <= 0 {
			t.Errorf("product %s has non-positive price %d", p.Id, p.Price)
		}
		for _, roomId := range p.Rooms {
			if s.FindRoom(roomId) == nil {
				t.Errorf("product %s references unknown room %s", p.Id, roomId)
			}
		}
		for _, styleId := range p.Styles {
			if s.FindStyle(styleId) == nil {
				t.Errorf("product %s references unknown style %s", p.Id, styleId)
			}
		}
	}

	for _, room := range s.Rooms() {
		for _, cat := range room.EssentialCategories {
			if _, ok := room.BudgetAllocation[cat]; !ok {
				t.Errorf("room %s essential category %s missing from budgetAllocation", room.Id, cat)
			}
		}
	}
}
