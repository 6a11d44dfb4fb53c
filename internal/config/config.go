// Package config loads runtime settings from an optional .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/spacehole-rogue/liftoff/internal/game"
)

// Defaults.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultTitle  = "Liftoff"
	DefaultKey    = "space"
	DefaultTPS    = 30
)

// Config is everything the hosts read at startup.
type Config struct {
	Width  int
	Height int
	Title  string
	Seed   int64  // sky generation seed
	Key    string // advance key name, lower case
	Debug  bool   // FPS overlay
	TPS    int    // terminal frame rate

	PowerStep float64
	ShakeStep float64
	ShakeMax  float64
}

// GetEnv returns the value of the environment variable named by key, or
// fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load reads path (usually ".env") if it exists, then builds a Config from
// the environment. Variables already set in the environment win over the
// file. A seed of 0 is replaced with the current time.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	t := game.DefaultTuning()
	cfg := Config{
		Title: GetEnv("LIFTOFF_TITLE", DefaultTitle),
		Key:   strings.ToLower(strings.TrimSpace(GetEnv("LIFTOFF_KEY", DefaultKey))),
	}

	var err error
	if cfg.Width, err = envInt("LIFTOFF_WIDTH", DefaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = envInt("LIFTOFF_HEIGHT", DefaultHeight); err != nil {
		return Config{}, err
	}
	if cfg.TPS, err = envInt("LIFTOFF_TPS", DefaultTPS); err != nil {
		return Config{}, err
	}
	seed, err := envInt("LIFTOFF_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if cfg.Debug, err = envBool("LIFTOFF_DEBUG", false); err != nil {
		return Config{}, err
	}
	if cfg.PowerStep, err = envFloat("LIFTOFF_POWER_STEP", t.PowerStep); err != nil {
		return Config{}, err
	}
	if cfg.ShakeStep, err = envFloat("LIFTOFF_SHAKE_STEP", t.ShakeStep); err != nil {
		return Config{}, err
	}
	if cfg.ShakeMax, err = envFloat("LIFTOFF_SHAKE_MAX", t.ShakeMax); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func (c Config) validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"LIFTOFF_POWER_STEP", c.PowerStep},
		{"LIFTOFF_SHAKE_STEP", c.ShakeStep},
		{"LIFTOFF_SHAKE_MAX", c.ShakeMax},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s %v must be a finite number", f.name, f.v)
		}
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("LIFTOFF_TPS %d must be positive", c.TPS)
	case c.PowerStep <= 0:
		return fmt.Errorf("LIFTOFF_POWER_STEP %v must be positive", c.PowerStep)
	case c.ShakeStep <= 0:
		return fmt.Errorf("LIFTOFF_SHAKE_STEP %v must be positive", c.ShakeStep)
	case c.ShakeMax <= 0:
		return fmt.Errorf("LIFTOFF_SHAKE_MAX %v must be positive", c.ShakeMax)
	}
	if !ValidKey(c.Key) {
		return fmt.Errorf("LIFTOFF_KEY %q: want space, enter, up or a single letter", c.Key)
	}
	return nil
}

// ValidKey reports whether name is an advance key both hosts understand.
func ValidKey(name string) bool {
	switch name {
	case "space", "enter", "up":
		return true
	}
	return len(name) == 1 && name[0] >= 'a' && name[0] <= 'z'
}

// KeyLabel is the on-screen name of the advance key.
func (c Config) KeyLabel() string {
	return strings.ToUpper(c.Key)
}

// Tuning returns the game constants with this config's overrides applied.
func (c Config) Tuning() game.Tuning {
	t := game.DefaultTuning()
	t.PowerStep = c.PowerStep
	t.ShakeStep = c.ShakeStep
	t.ShakeMax = c.ShakeMax
	return t
}

// FrameInterval is the terminal host's tick period.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

func envInt(key string, fallback int) (int, error) {
	v := GetEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := GetEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := GetEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
