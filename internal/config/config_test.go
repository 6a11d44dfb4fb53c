package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"LIFTOFF_WIDTH", "LIFTOFF_HEIGHT", "LIFTOFF_TITLE", "LIFTOFF_SEED",
	"LIFTOFF_KEY", "LIFTOFF_DEBUG", "LIFTOFF_TPS",
	"LIFTOFF_POWER_STEP", "LIFTOFF_SHAKE_STEP", "LIFTOFF_SHAKE_MAX",
}

// clearEnv unsets every LIFTOFF_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight || cfg.Title != DefaultTitle {
		t.Errorf("window = %dx%d %q", cfg.Width, cfg.Height, cfg.Title)
	}
	if cfg.Key != "space" || cfg.KeyLabel() != "SPACE" {
		t.Errorf("key = %q label %q", cfg.Key, cfg.KeyLabel())
	}
	if cfg.Seed == 0 {
		t.Error("seed 0 was not replaced")
	}
	if cfg.Debug {
		t.Error("debug on by default")
	}
	tu := cfg.Tuning()
	if tu.PowerStep != 2 || tu.ShakeStep != 0.2 || tu.ShakeMax != 8 {
		t.Errorf("tuning = %+v", tu)
	}
	if got := cfg.FrameInterval(); got != time.Second/30 {
		t.Errorf("FrameInterval = %v", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIFTOFF_WIDTH", "640")
	t.Setenv("LIFTOFF_HEIGHT", " 480 ")
	t.Setenv("LIFTOFF_SEED", "77")
	t.Setenv("LIFTOFF_KEY", "Enter")
	t.Setenv("LIFTOFF_DEBUG", "true")
	t.Setenv("LIFTOFF_SHAKE_MAX", "4")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 || cfg.Seed != 77 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Key != "enter" || !cfg.Debug {
		t.Errorf("key=%q debug=%v", cfg.Key, cfg.Debug)
	}
	if cfg.Tuning().ShakeMax != 4 {
		t.Errorf("ShakeMax = %v", cfg.Tuning().ShakeMax)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LIFTOFF_TITLE=Pad 39A\nLIFTOFF_TPS=20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Process env beats the file.
	t.Setenv("LIFTOFF_TPS", "60")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Pad 39A" {
		t.Errorf("title = %q", cfg.Title)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want 60 from the environment", cfg.TPS)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"LIFTOFF_WIDTH":      "wide",
		"LIFTOFF_HEIGHT":     "0",
		"LIFTOFF_TPS":        "-1",
		"LIFTOFF_DEBUG":      "maybe",
		"LIFTOFF_KEY":        "f12",
		"LIFTOFF_POWER_STEP": "0",
		"LIFTOFF_SHAKE_STEP": "x",
		"LIFTOFF_SHAKE_MAX":  "-8",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			if _, err := Load(""); err == nil {
				t.Errorf("%s=%q accepted", k, v)
			}
		})
	}
}

func TestLoadRejectsNonFinite(t *testing.T) {
	cases := []struct{ key, value string }{
		{"LIFTOFF_POWER_STEP", "NaN"},
		{"LIFTOFF_POWER_STEP", "Inf"},
		{"LIFTOFF_SHAKE_STEP", "nan"},
		{"LIFTOFF_SHAKE_STEP", "+Inf"},
		{"LIFTOFF_SHAKE_MAX", "Inf"},
		{"LIFTOFF_SHAKE_MAX", "-Inf"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if cfg, err := Load(""); err == nil {
				t.Errorf("%s=%q accepted, tuning %+v", tc.key, tc.value, cfg.Tuning())
			}
		})
	}
}

func TestValidKey(t *testing.T) {
	for _, k := range []string{"space", "enter", "up", "a", "z"} {
		if !ValidKey(k) {
			t.Errorf("ValidKey(%q) = false", k)
		}
	}
	for _, k := range []string{"", "SPACE", "1", "ab", "down"} {
		if ValidKey(k) {
			t.Errorf("ValidKey(%q) = true", k)
		}
	}
}
