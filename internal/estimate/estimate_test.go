package estimate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IcodeAlpha/profoodie/internal/estimate"
)

func TestPortionMultiplierTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.7, estimate.PortionMultiplier("small"))
	assert.Equal(t, 1.0, estimate.PortionMultiplier("medium"))
	assert.Equal(t, 1.3, estimate.PortionMultiplier("large"))
	assert.Equal(t, 1.6, estimate.PortionMultiplier("extra-large"))
	assert.Equal(t, 1.0, estimate.PortionMultiplier("gigantic"))
	assert.Equal(t, 1.0, estimate.PortionMultiplier(""))
}

func TestScaledRoundsEachField(t *testing.T) {
	t.Parallel()

	n := estimate.Nutrition{Calories: 520, Protein: 28, Carbs: 45, Fat: 22, Fiber: 8, Sodium: 680}
	scaled := n.Scaled(1.3)
	assert.Equal(t, 676.0, scaled.Calories)
	assert.Equal(t, 36.0, scaled.Protein) // 36.4 rounds down
	assert.Equal(t, 59.0, scaled.Carbs)   // 58.5 rounds up
	assert.Equal(t, 29.0, scaled.Fat)     // 28.6 rounds up
	assert.Equal(t, 10.0, scaled.Fiber)   // 10.4 rounds down
	assert.Equal(t, 884.0, scaled.Sodium)
}

func TestMockScalesByPortion(t *testing.T) {
	t.Parallel()

	mock := &estimate.Mock{}
	medium, err := mock.Estimate(context.Background(), estimate.Request{Mode: estimate.ModePhoto, PortionSize: "medium"})
	require.NoError(t, err)
	small, err := mock.Estimate(context.Background(), estimate.Request{Mode: estimate.ModePhoto, PortionSize: "small"})
	require.NoError(t, err)

	assert.Equal(t, medium.FoodName, small.FoodName)
	assert.Equal(t, medium.Nutrition.Scaled(0.7), small.Nutrition)
}

func TestMockIsDeterministicPerMode(t *testing.T) {
	t.Parallel()

	mock := &estimate.Mock{}
	req := estimate.Request{Mode: estimate.ModeDescription, Payload: "bowl of rice with beans", PortionSize: "medium"}
	first, err := mock.Estimate(context.Background(), req)
	require.NoError(t, err)
	second, err := mock.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Mentioning a grain staple picks the grain payload.
	assert.Equal(t, "Grain-based meal", first.FoodName)

	other, err := mock.Estimate(context.Background(), estimate.Request{Mode: estimate.ModeDescription, Payload: "beef stew"})
	require.NoError(t, err)
	assert.Equal(t, "Mixed meal", other.FoodName)
}

func TestMockIngredientsEchoedBack(t *testing.T) {
	t.Parallel()

	mock := &estimate.Mock{}
	res, err := mock.Estimate(context.Background(), estimate.Request{
		Mode:    estimate.ModeIngredients,
		Payload: "chicken, rice , peas",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken", "rice", "peas"}, res.Ingredients)
	assert.True(t, res.Confidence >= 0 && res.Confidence <= 100)
}

func TestMockHonorsCancellation(t *testing.T) {
	t.Parallel()

	mock := &estimate.Mock{Delay: 5 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := mock.Estimate(ctx, estimate.Request{Mode: estimate.ModePhoto})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResultMealConversion(t *testing.T) {
	t.Parallel()

	mock := &estimate.Mock{}
	res, err := mock.Estimate(context.Background(), estimate.Request{Mode: estimate.ModePhoto, PortionSize: "large"})
	require.NoError(t, err)

	meal := res.Meal("lunch", "2024-06-01")
	assert.Equal(t, res.FoodName, meal.Name)
	assert.Equal(t, res.Nutrition.Calories, meal.Calories)
	assert.Equal(t, "lunch", meal.Time)
	assert.Equal(t, "2024-06-01", meal.Date)
}
