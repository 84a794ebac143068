package profoodie

import (
	"fmt"
	"strings"
	"time"

	"github.com/IcodeAlpha/profoodie/internal/app"
	"github.com/IcodeAlpha/profoodie/internal/config"
	"github.com/IcodeAlpha/profoodie/internal/session"
	"github.com/IcodeAlpha/profoodie/internal/storage"
	"github.com/IcodeAlpha/profoodie/internal/tracker"
)

func loadConfig() (config.Config, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		defaultPath, err := app.DefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
		path = defaultPath
	}
	return config.Load(path)
}

func resolveDataPath(cfg config.Config) (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	if cfg.DataPath != "" {
		return cfg.DataPath, nil
	}
	return app.DefaultDataPath()
}

func withStorage(run func(cfg config.Config, kv storage.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := resolveDataPath(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDataDir(path); err != nil {
		return err
	}
	kv, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer kv.Close()
	return run(cfg, kv)
}

// withApp wires the session and tracker over one opened store. The tracker
// subscribes to profile changes and is seeded with the current user, matching
// the recompute-on-startup behavior of the app.
func withApp(run func(cfg config.Config, store *tracker.Store, sess *session.Session) error) error {
	return withStorage(func(cfg config.Config, kv storage.Store) error {
		sess, err := session.New(kv, nil)
		if err != nil {
			return err
		}
		store, err := tracker.New(kv, nil)
		if err != nil {
			return err
		}
		sess.Subscribe(store.ProfileChanged)
		store.ProfileChanged(sess.Current())
		return run(cfg, store, sess)
	})
}

func validateNonNegative(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

// normalizeDate validates a YYYY-MM-DD flag value, defaulting to today.
func normalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}
