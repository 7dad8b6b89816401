package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DatabasePath string
	Muted        bool
	UIDensity    int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath: ".drilld.db",
		Muted:        false,
		UIDensity:    1,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("DRILLD_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvBool("DRILLD_MUTED"); ok {
		cfg.Muted = v
	}
	if v, ok := getEnvInt("DRILLD_UI_DENSITY"); ok && v >= 1 && v <= 3 {
		cfg.UIDensity = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
