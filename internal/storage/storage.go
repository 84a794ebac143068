// Package storage provides the durable local key-value port the tracker and
// session persist through. Each key holds one JSON document and is rewritten
// wholesale on every mutation.
package storage

// Fixed keys for persisted application state.
const (
	KeyMeals    = "meals"
	KeyMealPlan = "meal_plan"
	KeyRecipes  = "recipes"
	KeyGoals    = "goals"
	KeyUser     = "user"
)

// Store is the persistence port. Implementations are not safe for use from
// multiple processes; the last writer wins.
type Store interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Put writes value under key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists all stored keys in lexical order.
	Keys() ([]string, error)
	Close() error
}
