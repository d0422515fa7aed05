package studio

import (
	"reflect"
	"testing"
)

func art(id string, category Category, variant string) Artifact {
	return Artifact{ID: id, ImageURL: "data:image/png;base64,aW1n", Category: category, Variant: variant}
}

func TestMerge_ReplacesCategoryBatch(t *testing.T) {
	existing := []Artifact{
		art("m1", CategoryModel, "model-front"),
		art("f1", CategoryFlatlay, "flatlay-gym"),
		art("f2", CategoryFlatlay, "flatlay-street"),
	}
	incoming := []Artifact{
		art("f3", CategoryFlatlay, "flatlay-gym"),
	}

	merged := Merge(existing, CategoryFlatlay, incoming)

	ids := make([]string, 0, len(merged))
	for _, a := range merged {
		ids = append(ids, a.ID)
	}
	if want := []string{"m1", "f3"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("merged ids = %v, want %v", ids, want)
	}
}

func TestMerge_RegenerationIsIdempotent(t *testing.T) {
	var collection []Artifact
	collection = Merge(collection, CategoryModel, []Artifact{art("m1", CategoryModel, "model-front")})
	collection = Merge(collection, CategoryFlatlay, []Artifact{art("f1", CategoryFlatlay, "flatlay-gym")})
	collection = Merge(collection, CategoryFlatlay, []Artifact{art("f2", CategoryFlatlay, "flatlay-street")})
	collection = Merge(collection, CategoryFlatlay, []Artifact{art("f3", CategoryFlatlay, "flatlay-cold")})

	var flatlays, models int
	for _, a := range collection {
		switch a.Category {
		case CategoryFlatlay:
			flatlays++
			if a.ID != "f3" {
				t.Fatalf("stale flatlay artifact %q survived the merge", a.ID)
			}
		case CategoryModel:
			models++
		}
	}
	if flatlays != 1 || models != 1 {
		t.Fatalf("got %d flatlay and %d model artifacts, want 1 and 1", flatlays, models)
	}
}

func TestMerge_DropsCorrectedVariantsOfTheCategory(t *testing.T) {
	// A corrected artifact keeps its variant tag. Replacing the category must
	// sweep corrections of that category too.
	existing := []Artifact{
		{ID: "c1", Category: CategoryFlatlay, Variant: "flatlay-gym", CorrectionCount: 2},
		art("m1", CategoryModel, "model-front"),
	}

	merged := Merge(existing, CategoryFlatlay, []Artifact{art("f1", CategoryFlatlay, "flatlay-gym")})
	for _, a := range merged {
		if a.ID == "c1" {
			t.Fatalf("corrected artifact of the replaced category survived")
		}
	}
	if len(merged) != 2 {
		t.Fatalf("got %d artifacts, want 2", len(merged))
	}
}

func TestMerge_ReturnsFreshSnapshot(t *testing.T) {
	existing := []Artifact{art("m1", CategoryModel, "model-front")}
	merged := Merge(existing, CategoryFlatlay, []Artifact{art("f1", CategoryFlatlay, "flatlay-gym")})

	merged[0].ID = "mutated"
	if existing[0].ID != "m1" {
		t.Fatalf("merge aliased the existing snapshot")
	}
}

func TestMerge_EmptyIncomingClearsCategory(t *testing.T) {
	existing := []Artifact{
		art("f1", CategoryFlatlay, "flatlay-gym"),
		art("m1", CategoryModel, "model-front"),
	}
	merged := Merge(existing, CategoryFlatlay, nil)
	if len(merged) != 1 || merged[0].ID != "m1" {
		t.Fatalf("merged = %+v, want only the model artifact", merged)
	}
}

func TestGroupForDisplay_FixedOrderAndOmitsEmpty(t *testing.T) {
	collection := []Artifact{
		art("r1", CategoryReview, "review"),
		art("f1", CategoryFlatlay, "flatlay-gym"),
		art("m1", CategoryModel, "model-front"),
		art("f2", CategoryFlatlay, "flatlay-street"),
	}

	groups := GroupForDisplay(collection)

	order := make([]Category, 0, len(groups))
	for _, g := range groups {
		order = append(order, g.Category)
	}
	if want := []Category{CategoryModel, CategoryFlatlay, CategoryReview}; !reflect.DeepEqual(order, want) {
		t.Fatalf("group order = %v, want %v", order, want)
	}

	if len(groups[1].Artifacts) != 2 {
		t.Fatalf("flatlay group has %d artifacts, want 2", len(groups[1].Artifacts))
	}
}

func TestGroupForDisplay_EmptyCollection(t *testing.T) {
	if groups := GroupForDisplay(nil); len(groups) != 0 {
		t.Fatalf("empty collection produced %d groups", len(groups))
	}
}
