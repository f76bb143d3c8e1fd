package recipe

import (
	"strings"
	"testing"
)

func goodRecipe() Recipe {
	return Recipe{
		Name:        "Garlic Butter Chicken",
		Ingredients: []string{"2 chicken breasts", "3 tbsp butter", "4 cloves garlic"},
		Steps:       []string{"Melt butter in a skillet.", "Cook chicken 6 minutes per side."},
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete recipe", func(t *testing.T) {
		if !Valid(goodRecipe()) {
			t.Fatalf("expected recipe to pass the quality gate")
		}
	})

	t.Run("rejects short and oversized names", func(t *testing.T) {
		r := goodRecipe()
		r.Name = "ab"
		if Valid(r) {
			t.Fatalf("two-character name should fail")
		}
		r.Name = strings.Repeat("x", 201)
		if Valid(r) {
			t.Fatalf("201-character name should fail")
		}
	})

	t.Run("rejects collection names", func(t *testing.T) {
		r := goodRecipe()
		r.Name = "25 Best Chicken Dinners for Busy Weeknights"
		if Valid(r) {
			t.Fatalf("roundup name should fail")
		}
	})

	t.Run("requires two ingredients", func(t *testing.T) {
		r := goodRecipe()
		r.Ingredients = []string{"1 chicken breast"}
		if Valid(r) {
			t.Fatalf("single-ingredient recipe should fail")
		}
	})

	t.Run("requires a non-placeholder step", func(t *testing.T) {
		r := goodRecipe()
		r.Steps = []string{"  ", "N/A", "See website"}
		if Valid(r) {
			t.Fatalf("placeholder-only steps should fail")
		}
		r.Steps = append(r.Steps, "Simmer for 10 minutes.")
		if !Valid(r) {
			t.Fatalf("one real step should be enough")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	r := goodRecipe()
	if got := Validate(&r); got != &r {
		t.Fatalf("valid recipe should be returned unchanged")
	}
	bad := goodRecipe()
	bad.Ingredients = nil
	if got := Validate(&bad); got != nil {
		t.Fatalf("invalid recipe should return nil, got %+v", got)
	}
	if got := Validate(nil); got != nil {
		t.Fatalf("nil input should return nil")
	}
}
