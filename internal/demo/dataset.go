// Package demo ships a small static recipe set served when live
// scraping yields nothing usable.
package demo

import "github.com/mealscout/recipe-scout/internal/recipe"

// Recipes returns a fresh copy of the fallback dataset so callers can
// rank and trim without mutating the originals.
func Recipes() []recipe.Recipe {
	out := make([]recipe.Recipe, len(dataset))
	copy(out, dataset)
	return out
}

var dataset = []recipe.Recipe{
	{
		Name:        "Garlic Butter Chicken Thighs",
		Description: "Pan-seared chicken thighs basted in a garlic butter sauce, finished with fresh parsley.",
		PrepTime:    "10 min",
		CookTime:    "25 min",
		Ingredients: []string{
			"6 bone-in chicken thighs",
			"4 tbsp butter",
			"6 cloves garlic, minced",
			"1 tsp smoked paprika",
			"2 tbsp chopped parsley",
		},
		Steps: []string{
			"Pat the thighs dry and season with salt, pepper, and paprika.",
			"Sear skin-side down in a hot skillet until deeply browned, about 7 minutes.",
			"Flip, add butter and garlic, and baste until cooked through.",
			"Rest 5 minutes, then finish with parsley.",
		},
		Nutrition:  recipe.Nutrition{Calories: 410, Protein: "32g", Carbs: "3g", Fat: "30g"},
		ImageURL:   "https://static.recipescout.dev/demo/garlic-butter-chicken.jpg",
		SourceSite: "demo",
	},
	{
		Name:        "One-Pot Lemon Spaghetti",
		Description: "Bright weeknight pasta cooked in a single pot with lemon, parmesan, and black pepper.",
		PrepTime:    "5 min",
		CookTime:    "15 min",
		Ingredients: []string{
			"12 oz spaghetti",
			"2 lemons, zested and juiced",
			"1/2 cup grated parmesan",
			"3 tbsp olive oil",
			"2 cloves garlic, sliced",
		},
		Steps: []string{
			"Boil the spaghetti in salted water until just shy of al dente.",
			"Reserve a cup of pasta water and drain.",
			"Toss the pasta with oil, garlic, lemon, and parmesan, loosening with pasta water.",
		},
		Nutrition:  recipe.Nutrition{Calories: 520, Protein: "17g", Carbs: "78g", Fat: "16g"},
		ImageURL:   "https://static.recipescout.dev/demo/lemon-spaghetti.jpg",
		SourceSite: "demo",
	},
	{
		Name:        "Thai-Style Coconut Curry Noodles",
		Description: "Rice noodles in a gently spiced coconut curry broth with lime and cilantro.",
		PrepTime:    "15 min",
		CookTime:    "20 min",
		Ingredients: []string{
			"8 oz rice noodles",
			"1 can coconut milk",
			"2 tbsp red curry paste",
			"1 red bell pepper, sliced",
			"1 lime",
			"fresh cilantro",
		},
		Steps: []string{
			"Soak the noodles per package directions.",
			"Simmer curry paste in a splash of coconut milk until fragrant.",
			"Add the rest of the coconut milk and the pepper; simmer 10 minutes.",
			"Fold in the noodles and finish with lime and cilantro.",
		},
		Nutrition:  recipe.Nutrition{Calories: 480, Protein: "9g", Carbs: "62g", Fat: "22g"},
		ImageURL:   "https://static.recipescout.dev/demo/coconut-curry-noodles.jpg",
		SourceSite: "demo",
	},
	{
		Name:        "Sheet Pan Salmon and Asparagus",
		Description: "Salmon fillets and asparagus roasted together with a honey mustard glaze.",
		PrepTime:    "10 min",
		CookTime:    "15 min",
		Ingredients: []string{
			"4 salmon fillets",
			"1 lb asparagus, trimmed",
			"2 tbsp honey",
			"1 tbsp dijon mustard",
			"1 tbsp olive oil",
		},
		Steps: []string{
			"Heat the oven to 425F and line a sheet pan.",
			"Whisk honey, mustard, and oil; brush over the salmon.",
			"Roast salmon and asparagus together for 12 to 14 minutes.",
		},
		Nutrition:  recipe.Nutrition{Calories: 360, Protein: "34g", Carbs: "12g", Fat: "20g"},
		ImageURL:   "https://static.recipescout.dev/demo/sheet-pan-salmon.jpg",
		SourceSite: "demo",
	},
	{
		Name:        "Smoky Black Bean Tacos",
		Description: "Ten-minute vegetarian tacos with chipotle black beans, quick-pickled onion, and feta.",
		PrepTime:    "10 min",
		CookTime:    "10 min",
		Ingredients: []string{
			"2 cans black beans, drained",
			"1 chipotle in adobo, minced",
			"8 corn tortillas",
			"1/2 red onion, thinly sliced",
			"2 oz crumbled feta",
			"1 lime",
		},
		Steps: []string{
			"Toss the onion with lime juice and a pinch of salt to pickle.",
			"Warm the beans with the chipotle, mashing a few for texture.",
			"Char the tortillas and fill with beans, onion, and feta.",
		},
		Nutrition:  recipe.Nutrition{Calories: 390, Protein: "16g", Carbs: "64g", Fat: "9g"},
		ImageURL:   "https://static.recipescout.dev/demo/black-bean-tacos.jpg",
		SourceSite: "demo",
	},
	{
		Name:        "Mushroom Fried Rice",
		Description: "Day-old rice stir-fried hard with mushrooms, scallions, and a soy-sesame glaze.",
		PrepTime:    "10 min",
		CookTime:    "12 min",
		Ingredients: []string{
			"3 cups cooked day-old rice",
			"8 oz cremini mushrooms, sliced",
			"2 eggs, beaten",
			"3 scallions, sliced",
			"2 tbsp soy sauce",
			"1 tsp sesame oil",
		},
		Steps: []string{
			"Sear the mushrooms in a ripping-hot wok until browned.",
			"Push aside, scramble the eggs, then add the rice.",
			"Stir-fry with soy sauce and sesame oil; finish with scallions.",
		},
		Nutrition:  recipe.Nutrition{Calories: 430, Protein: "14g", Carbs: "66g", Fat: "12g"},
		ImageURL:   "https://static.recipescout.dev/demo/mushroom-fried-rice.jpg",
		SourceSite: "demo",
	},
}
