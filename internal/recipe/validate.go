package recipe

import "strings"

const (
	minNameLen     = 3
	maxNameLen     = 200
	minIngredients = 2
)

// collectionKeywords mark roundup/listicle pages masquerading as recipes.
var collectionKeywords = []string{
	"recipes",
	"best of",
	"roundup",
	"round-up",
	"collection",
	"ideas",
	"dinners",
	"desserts",
	"meals for",
	"dishes",
	"favorites",
	"ways to",
	"things to make",
}

// placeholderSteps are instruction values sources emit when they have
// nothing real to say.
var placeholderSteps = map[string]struct{}{
	"":                          {},
	"n/a":                       {},
	"none":                      {},
	"see website":               {},
	"see original recipe":       {},
	"instructions unavailable":  {},
	"visit site for directions": {},
}

// Valid reports whether r clears the quality gate: a real name, at least
// two ingredients, and at least one non-placeholder step.
func Valid(r Recipe) bool {
	name := strings.TrimSpace(r.Name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		return false
	}
	if IsCollectionName(name) {
		return false
	}
	if len(r.Ingredients) < minIngredients {
		return false
	}
	return hasRealStep(r.Steps)
}

// Validate returns the recipe unchanged when it passes the quality gate,
// nil otherwise. Applied per-adapter right after extraction and again at
// the aggregate level.
func Validate(r *Recipe) *Recipe {
	if r == nil || !Valid(*r) {
		return nil
	}
	return r
}

// IsCollectionName reports whether a name reads like a roundup page
// ("25 Best Chicken Dinners") rather than a single recipe.
func IsCollectionName(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range collectionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasRealStep(steps []string) bool {
	return RealStepCount(steps) > 0
}

// RealStepCount returns how many steps are not known placeholder values.
func RealStepCount(steps []string) int {
	n := 0
	for _, s := range steps {
		if _, placeholder := placeholderSteps[strings.ToLower(strings.TrimSpace(s))]; !placeholder {
			n++
		}
	}
	return n
}
