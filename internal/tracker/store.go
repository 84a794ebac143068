// Package tracker owns the user's nutrition state: logged meals, recipes, the
// weekly meal plan and the active personalized goals. Every mutation is
// written through to the storage port immediately; aggregates are derived
// fresh on each read.
package tracker

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IcodeAlpha/profoodie/internal/goals"
	"github.com/IcodeAlpha/profoodie/internal/model"
	"github.com/IcodeAlpha/profoodie/internal/storage"
)

const dateLayout = "2006-01-02"

// Store is the single source of truth for nutrition data. It is not safe for
// concurrent use; the application model is single-user, single-process.
type Store struct {
	kv     storage.Store
	logger *slog.Logger

	meals   []model.Meal
	recipes []model.Recipe
	plan    model.MealPlan
	goals   model.PersonalizedGoals
	user    *model.User

	fasting []model.FastingSession
}

// New builds a store from the persisted snapshot under kv. Missing keys fall
// back to defaults: no meals, no plan, the built-in seed recipes and the
// default goals. Malformed persisted JSON is logged and discarded, never
// surfaced as an error.
func New(kv storage.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kv:      kv,
		logger:  logger,
		meals:   make([]model.Meal, 0),
		recipes: SeedRecipes(),
		plan:    make(model.MealPlan),
		goals:   goals.Default(),
	}

	var meals []model.Meal
	if ok, err := s.loadJSON(storage.KeyMeals, &meals); err != nil {
		return nil, err
	} else if ok {
		s.meals = meals
	}

	var plan model.MealPlan
	if ok, err := s.loadJSON(storage.KeyMealPlan, &plan); err != nil {
		return nil, err
	} else if ok && plan != nil {
		s.plan = plan
	}

	var userRecipes []model.Recipe
	if ok, err := s.loadJSON(storage.KeyRecipes, &userRecipes); err != nil {
		return nil, err
	} else if ok {
		for _, r := range userRecipes {
			if !s.hasRecipe(r.ID) {
				s.recipes = append(s.recipes, r)
			}
		}
	}

	var g model.PersonalizedGoals
	if ok, err := s.loadJSON(storage.KeyGoals, &g); err != nil {
		return nil, err
	} else if ok {
		s.goals = g
	}

	return s, nil
}

// loadJSON reads and decodes one persisted key. Decode failures are recovered
// locally: the stale value is logged and ignored. Storage I/O failures are
// returned.
func (s *Store) loadJSON(key string, dst any) (bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("discarding malformed persisted state",
			slog.String("key", key), slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

func (s *Store) persistJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Meals returns the logged meals in insertion order.
func (s *Store) Meals() []model.Meal {
	out := make([]model.Meal, len(s.meals))
	copy(out, s.meals)
	return out
}

// AddMeal assigns a fresh id, appends the meal and persists the full
// collection. Nutrition values are accepted as given; only the name is
// required. A missing date defaults to today.
func (s *Store) AddMeal(in model.Meal) (model.Meal, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.Meal{}, fmt.Errorf("meal name is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		in.Date = time.Now().Format(dateLayout)
	}
	in.ID = uuid.NewString()

	s.meals = append(s.meals, in)
	if err := s.persistJSON(storage.KeyMeals, s.meals); err != nil {
		return model.Meal{}, err
	}
	return in, nil
}

// RemoveMeal filters the meal out and persists. An unknown id is a no-op,
// not an error.
func (s *Store) RemoveMeal(id string) error {
	kept := s.meals[:0]
	for _, m := range s.meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.meals = kept
	return s.persistJSON(storage.KeyMeals, s.meals)
}

// Recipes returns seed and user recipes in insertion order.
func (s *Store) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// RecipeByID returns the recipe or nil.
func (s *Store) RecipeByID(id string) *model.Recipe {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			r := s.recipes[i]
			return &r
		}
	}
	return nil
}

func (s *Store) hasRecipe(id string) bool {
	return s.RecipeByID(id) != nil
}

// AddRecipe assigns a fresh id and appends. Only user-authored recipes are
// persisted; the seed set always comes from the binary, so storing it would
// duplicate defaults across sessions.
func (s *Store) AddRecipe(in model.Recipe) (model.Recipe, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.Recipe{}, fmt.Errorf("recipe name is required")
	}
	if in.Servings <= 0 {
		return model.Recipe{}, fmt.Errorf("servings must be > 0")
	}
	in.ID = uuid.NewString()

	s.recipes = append(s.recipes, in)
	if err := s.persistUserRecipes(); err != nil {
		return model.Recipe{}, err
	}
	return in, nil
}

// RemoveRecipe filters the recipe out and persists the user-authored subset.
func (s *Store) RemoveRecipe(id string) error {
	kept := s.recipes[:0]
	for _, r := range s.recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.recipes = kept
	return s.persistUserRecipes()
}

func (s *Store) persistUserRecipes() error {
	user := make([]model.Recipe, 0)
	for _, r := range s.recipes {
		if !IsSeedRecipe(r.ID) {
			user = append(user, r)
		}
	}
	return s.persistJSON(storage.KeyRecipes, user)
}

// Plan returns the full meal plan grid.
func (s *Store) Plan() model.MealPlan {
	out := make(model.MealPlan, len(s.plan))
	for date, slots := range s.plan {
		copied := make(map[string]model.Recipe, len(slots))
		for slot, r := range slots {
			copied[slot] = r
		}
		out[date] = copied
	}
	return out
}

// SetPlanSlot assigns a recipe to the date/slot cell, or clears it when
// recipe is nil. A date whose last slot is cleared is dropped entirely so the
// plan never holds empty date entries.
func (s *Store) SetPlanSlot(date, slot string, recipe *model.Recipe) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid plan date %q (expected YYYY-MM-DD)", date)
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return fmt.Errorf("meal slot is required")
	}

	if recipe != nil {
		if s.plan[date] == nil {
			s.plan[date] = make(map[string]model.Recipe)
		}
		s.plan[date][slot] = *recipe
	} else if slots, ok := s.plan[date]; ok {
		delete(slots, slot)
		if len(slots) == 0 {
			delete(s.plan, date)
		}
	}
	return s.persistJSON(storage.KeyMealPlan, s.plan)
}

// PlanSlot returns the recipe planned at date/slot, or nil. Pure read.
func (s *Store) PlanSlot(date, slot string) *model.Recipe {
	slots, ok := s.plan[date]
	if !ok {
		return nil
	}
	r, ok := slots[slot]
	if !ok {
		return nil
	}
	return &r
}

// Goals returns the active personalized goals.
func (s *Store) Goals() model.PersonalizedGoals {
	return s.goals
}

// ProfileChanged is the session subscription callback. The store recomputes
// goals synchronously whenever the governing user changes.
func (s *Store) ProfileChanged(u *model.User) {
	s.user = u
	if err := s.RecalculateGoals(); err != nil {
		s.logger.Warn("persisting recalculated goals failed", slog.String("error", err.Error()))
	}
}

// RecalculateGoals runs the goal engine against the current profile and
// persists the result. It is a no-op while there is no signed-in user with a
// complete profile and finished onboarding; previous goals stay in place.
func (s *Store) RecalculateGoals() error {
	if s.user == nil || !s.user.OnboardingCompleted {
		return nil
	}
	g, ok := goals.Calculate(s.user.Profile)
	if !ok {
		return nil
	}
	s.goals = g
	return s.persistJSON(storage.KeyGoals, s.goals)
}
