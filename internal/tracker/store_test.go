package tracker_test

import (
	"encoding/json"
	"testing"

	"github.com/IcodeAlpha/profoodie/internal/goals"
	"github.com/IcodeAlpha/profoodie/internal/model"
	"github.com/IcodeAlpha/profoodie/internal/storage"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

func TestAddRemoveMealRoundTrip(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	before := store.Meals()
	added, err := store.AddMeal(model.Meal{
		Name: "Oatmeal", Calories: 300, Protein: 10, Carbs: 50, Fat: 5,
		Time: "breakfast", Date: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected assigned meal id")
	}
	if len(store.Meals()) != len(before)+1 {
		t.Fatalf("expected %d meals, got %d", len(before)+1, len(store.Meals()))
	}

	if err := store.RemoveMeal(added.ID); err != nil {
		t.Fatalf("remove meal: %v", err)
	}
	if len(store.Meals()) != len(before) {
		t.Fatalf("expected meals restored to %d, got %d", len(before), len(store.Meals()))
	}
}

func TestRemoveUnknownMealIsNoop(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	if _, err := store.AddMeal(model.Meal{Name: "Toast", Date: "2024-01-01"}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if err := store.RemoveMeal("missing-id"); err != nil {
		t.Fatalf("remove unknown meal should be a no-op, got %v", err)
	}
	if len(store.Meals()) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(store.Meals()))
	}
}

func TestAddMealRequiresName(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	if _, err := store.AddMeal(model.Meal{Name: "  ", Date: "2024-01-01"}); err == nil {
		t.Fatal("expected error for blank meal name")
	}
}

func TestMealsPersistAcrossReload(t *testing.T) {
	t.Parallel()
	path := testDBPath(t)
	store, kv := openTracker(t, path)
	if _, err := store.AddMeal(model.Meal{Name: "Lunch bowl", Calories: 520, Date: "2024-03-05"}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close storage: %v", err)
	}

	reloaded, kv2 := openTracker(t, path)
	defer kv2.Close()
	meals := reloaded.Meals()
	if len(meals) != 1 || meals[0].Name != "Lunch bowl" {
		t.Fatalf("expected persisted meal after reload, got %+v", meals)
	}
}

func TestSeedRecipesNeverPersisted(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	added, err := store.AddRecipe(model.Recipe{Name: "Avocado Toast", Calories: 280, Servings: 1})
	if err != nil {
		t.Fatalf("add recipe: %v", err)
	}

	raw, ok, err := kv.Get(storage.KeyRecipes)
	if err != nil || !ok {
		t.Fatalf("read persisted recipes: ok=%v err=%v", ok, err)
	}
	var persisted []model.Recipe
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("decode persisted recipes: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != added.ID {
		t.Fatalf("expected only the user recipe persisted, got %+v", persisted)
	}
	for _, r := range persisted {
		if tracker.IsSeedRecipe(r.ID) {
			t.Fatalf("seed recipe %s leaked into persisted set", r.ID)
		}
	}
}

func TestRemoveRecipeKeepsSeedExclusion(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	first, err := store.AddRecipe(model.Recipe{Name: "Smoothie", Servings: 1})
	if err != nil {
		t.Fatalf("add first recipe: %v", err)
	}
	second, err := store.AddRecipe(model.Recipe{Name: "Soup", Servings: 2})
	if err != nil {
		t.Fatalf("add second recipe: %v", err)
	}
	if err := store.RemoveRecipe(first.ID); err != nil {
		t.Fatalf("remove recipe: %v", err)
	}

	raw, _, err := kv.Get(storage.KeyRecipes)
	if err != nil {
		t.Fatalf("read persisted recipes: %v", err)
	}
	var persisted []model.Recipe
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("decode persisted recipes: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != second.ID {
		t.Fatalf("expected only %s persisted, got %+v", second.ID, persisted)
	}
}

func TestUserRecipesReloadAlongsideSeeds(t *testing.T) {
	t.Parallel()
	path := testDBPath(t)
	store, kv := openTracker(t, path)
	seedCount := len(tracker.SeedRecipes())
	if _, err := store.AddRecipe(model.Recipe{Name: "Chili", Servings: 4}); err != nil {
		t.Fatalf("add recipe: %v", err)
	}
	kv.Close()

	reloaded, kv2 := openTracker(t, path)
	defer kv2.Close()
	if len(reloaded.Recipes()) != seedCount+1 {
		t.Fatalf("expected %d recipes after reload, got %d", seedCount+1, len(reloaded.Recipes()))
	}
}

func TestPlanSlotLifecycle(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	recipe := store.Recipes()[0]
	if err := store.SetPlanSlot("2024-02-01", "lunch", &recipe); err != nil {
		t.Fatalf("set plan slot: %v", err)
	}
	got := store.PlanSlot("2024-02-01", "lunch")
	if got == nil || got.ID != recipe.ID {
		t.Fatalf("expected planned recipe %s, got %+v", recipe.ID, got)
	}

	if err := store.SetPlanSlot("2024-02-01", "lunch", nil); err != nil {
		t.Fatalf("clear plan slot: %v", err)
	}
	if store.PlanSlot("2024-02-01", "lunch") != nil {
		t.Fatal("expected cleared slot to be absent")
	}
	if _, ok := store.Plan()["2024-02-01"]; ok {
		t.Fatal("expected empty date entry removed from plan")
	}
}

func TestPlanSlotValidatesDate(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	recipe := store.Recipes()[0]
	if err := store.SetPlanSlot("02/01/2024", "lunch", &recipe); err == nil {
		t.Fatal("expected error for invalid plan date")
	}
	if err := store.SetPlanSlot("2024-02-01", "  ", &recipe); err == nil {
		t.Fatal("expected error for blank slot")
	}
}

func TestMalformedStateFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	path := testDBPath(t)
	kv, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	defer kv.Close()
	for _, key := range []string{storage.KeyMeals, storage.KeyMealPlan, storage.KeyRecipes, storage.KeyGoals} {
		if err := kv.Put(key, []byte(`{not json`)); err != nil {
			t.Fatalf("seed corrupt %s: %v", key, err)
		}
	}

	store, err := tracker.New(kv, nil)
	if err != nil {
		t.Fatalf("tracker must recover from corrupt state, got %v", err)
	}
	if len(store.Meals()) != 0 {
		t.Fatalf("expected empty meals, got %d", len(store.Meals()))
	}
	if len(store.Recipes()) != len(tracker.SeedRecipes()) {
		t.Fatalf("expected seed recipes only, got %d", len(store.Recipes()))
	}
	if store.Goals() != goals.Default() {
		t.Fatalf("expected default goals, got %+v", store.Goals())
	}
}

func TestDefaultGoalsWhenUnset(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	want := model.PersonalizedGoals{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65, Fiber: 25, Water: 2.5}
	if store.Goals() != want {
		t.Fatalf("expected default goals %+v, got %+v", want, store.Goals())
	}
}

func TestProfileChangedRecomputesAndPersistsGoals(t *testing.T) {
	t.Parallel()
	path := testDBPath(t)
	store, kv := openTracker(t, path)

	user := &model.User{
		ID:                  "u1",
		Email:               "jo@example.com",
		OnboardingCompleted: true,
		Profile: &model.Profile{
			Age: 30, Gender: model.GenderMale, HeightCm: 175, WeightKg: 70,
			ActivityLevel: model.ActivityModerate, Goal: model.GoalMaintain,
		},
	}
	store.ProfileChanged(user)

	want, ok := goals.Calculate(user.Profile)
	if !ok {
		t.Fatal("expected complete profile")
	}
	if store.Goals() != want {
		t.Fatalf("expected recomputed goals %+v, got %+v", want, store.Goals())
	}
	kv.Close()

	reloaded, kv2 := openTracker(t, path)
	defer kv2.Close()
	if reloaded.Goals() != want {
		t.Fatalf("expected persisted goals %+v after reload, got %+v", want, reloaded.Goals())
	}
}

func TestProfileChangedBeforeOnboardingKeepsGoals(t *testing.T) {
	t.Parallel()
	store, kv := openTracker(t, testDBPath(t))
	defer kv.Close()

	before := store.Goals()
	store.ProfileChanged(&model.User{
		ID: "u1", OnboardingCompleted: false,
		Profile: &model.Profile{
			Age: 30, Gender: model.GenderMale, HeightCm: 175, WeightKg: 70,
			ActivityLevel: model.ActivityModerate, Goal: model.GoalMaintain,
		},
	})
	if store.Goals() != before {
		t.Fatalf("goals changed before onboarding: %+v", store.Goals())
	}

	store.ProfileChanged(&model.User{ID: "u1", OnboardingCompleted: true})
	if store.Goals() != before {
		t.Fatalf("goals changed without a profile: %+v", store.Goals())
	}
}
