package tracker

import "github.com/IcodeAlpha/profoodie/internal/model"

// Seed recipe ids. Recipes with these ids ship with the binary and are never
// written to storage, so the persisted recipe set stays user-authored only.
var seedRecipeIDs = map[string]bool{
	"builtin-grain-bowl":         true,
	"builtin-beef-stew":          true,
	"builtin-grain-bean-bowl":    true,
	"builtin-chicken-fried-rice": true,
	"builtin-carbonara":          true,
	"builtin-salmon-quinoa":      true,
}

// IsSeedRecipe reports whether id belongs to the built-in seed set.
func IsSeedRecipe(id string) bool {
	return seedRecipeIDs[id]
}

// SeedRecipes returns a fresh copy of the built-in recipe set.
func SeedRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:   "builtin-grain-bowl",
			Name: "Grain Bowl with Greens",
			Ingredients: []string{
				"2 cups grain flour",
				"1 bunch collard greens, chopped",
				"2 medium onions, diced",
				"3 tomatoes, chopped",
				"3 tbsp cooking oil",
				"2 cloves garlic, minced",
			},
			Instructions: []string{
				"Boil salted water and whisk in the grain flour until thick.",
				"Saute onions and garlic, add tomatoes and cook down to a sauce.",
				"Add the greens, season and cook until tender.",
				"Serve the porridge hot with the greens alongside.",
			},
			Calories: 450,
			Protein:  12,
			Carbs:    65,
			Fat:      8,
			CookTime: 25,
			Servings: 2,
			Cuisine:  "Healthy",
			Tags:     []string{"Nutritious", "Vegetarian", "Gluten-Free", "High-Fiber"},
		},
		{
			ID:   "builtin-beef-stew",
			Name: "Spiced Beef Stew",
			Ingredients: []string{
				"1 kg beef chuck, cut into chunks",
				"4 medium potatoes, cubed",
				"3 large carrots, sliced",
				"4 tomatoes, chopped",
				"2 tsp curry powder",
				"3 cups beef stock",
			},
			Instructions: []string{
				"Brown the seasoned beef in a heavy pot, then set aside.",
				"Cook onions, garlic, ginger and spices until fragrant.",
				"Return the beef with tomatoes and stock; simmer for an hour.",
				"Add potatoes and carrots and cook until tender.",
			},
			Calories: 380,
			Protein:  28,
			Carbs:    22,
			Fat:      18,
			CookTime: 45,
			Servings: 4,
			Cuisine:  "Healthy",
			Tags:     []string{"Nutritious", "High-Protein", "Comfort Food", "Family Meal"},
		},
		{
			ID:   "builtin-grain-bean-bowl",
			Name: "Grain & Bean Bowl",
			Ingredients: []string{
				"1 cup dried grain kernels",
				"1 cup dried kidney beans",
				"2 large carrots, diced",
				"3 tomatoes, chopped",
				"1 green bell pepper, chopped",
				"1 tsp cumin",
			},
			Instructions: []string{
				"Soak and boil the grains and beans separately until tender.",
				"Saute onions with cumin and paprika, add tomatoes and pepper.",
				"Combine grains, beans and carrots with enough stock to cover.",
				"Simmer until the carrots are tender and season to taste.",
			},
			Calories: 320,
			Protein:  15,
			Carbs:    58,
			Fat:      4,
			CookTime: 60,
			Servings: 3,
		},
		{
			ID:   "builtin-chicken-fried-rice",
			Name: "Chicken Fried Rice",
			Ingredients: []string{
				"2 cups cooked jasmine rice",
				"300g chicken breast, diced",
				"3 eggs, beaten",
				"1 cup mixed vegetables",
				"2 tbsp soy sauce",
				"1 tsp sesame oil",
			},
			Instructions: []string{
				"Scramble the eggs in a hot wok and set aside.",
				"Cook the chicken until golden, then add garlic and vegetables.",
				"Stir-fry the rice, breaking up clumps, and season with the sauces.",
				"Return the eggs, add spring onions and serve immediately.",
			},
			Calories: 420,
			Protein:  28,
			Carbs:    45,
			Fat:      12,
			CookTime: 20,
			Servings: 4,
		},
		{
			ID:   "builtin-carbonara",
			Name: "Spaghetti Carbonara",
			Ingredients: []string{
				"400g spaghetti",
				"200g pancetta, diced",
				"4 large eggs",
				"100g Parmesan cheese, grated",
				"2 tbsp olive oil",
			},
			Instructions: []string{
				"Cook the spaghetti until al dente, reserving a cup of pasta water.",
				"Crisp the pancetta with garlic in olive oil.",
				"Whisk eggs with Parmesan and pepper.",
				"Toss hot pasta with pancetta off the heat, then the egg mixture.",
			},
			Calories: 520,
			Protein:  22,
			Carbs:    65,
			Fat:      18,
			CookTime: 25,
			Servings: 4,
		},
		{
			ID:   "builtin-salmon-quinoa",
			Name: "Grilled Salmon with Quinoa",
			Ingredients: []string{
				"4 salmon fillets (150g each)",
				"1 cup quinoa",
				"2 cups vegetable broth",
				"1 lemon, juiced",
				"2 cups mixed vegetables",
			},
			Instructions: []string{
				"Cook the quinoa in vegetable broth for 15 minutes.",
				"Season the salmon and pan-sear 4-5 minutes per side.",
				"Steam the vegetables until tender.",
				"Serve salmon over quinoa with lemon and garlic.",
			},
			Calories: 420,
			Protein:  35,
			Carbs:    30,
			Fat:      18,
			CookTime: 25,
			Servings: 4,
		},
	}
}
