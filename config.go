package main

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds the generator settings. The icon design itself is fixed.
type Config struct {
	OutputDir    string `json:"output_dir"`
	IconutilPath string `json:"iconutil_path"`
	ICNSFallback *bool  `json:"icns_fallback"`
	LogLevel     string `json:"log_level"`
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	fallback := true
	return Config{
		OutputDir:    "src-tauri/icons",
		IconutilPath: "iconutil",
		ICNSFallback: &fallback,
		LogLevel:     "info",
	}
}

// configICNSFallback dereferences ICNSFallback with a default of true.
func configICNSFallback(cfg Config) bool {
	if cfg.ICNSFallback == nil {
		return true
	}
	return *cfg.ICNSFallback
}

// validLogLevel reports whether s is a level name logrus understands.
func validLogLevel(s string) bool {
	_, err := logrus.ParseLevel(s)
	return err == nil
}

// loadConfig reads the JSON config at path. An empty path, a missing file
// or an unparsable file yields the defaults. Missing fields keep their
// defaults via json.Unmarshal into a pre-populated struct.
func loadConfig(path string) Config {
	cfg := defaultConfig()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Warnf("Config %s not found, using defaults", path)
		} else {
			logrus.Warnf("Failed to read config %s: %v", path, err)
		}
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		logrus.Warnf("Failed to parse config %s: %v", path, err)
		return defaultConfig()
	}

	defaults := defaultConfig()
	if cfg.OutputDir == "" {
		logrus.Warnf("Empty output_dir in config, using default %q", defaults.OutputDir)
		cfg.OutputDir = defaults.OutputDir
	}
	if cfg.IconutilPath == "" {
		logrus.Warnf("Empty iconutil_path in config, using default %q", defaults.IconutilPath)
		cfg.IconutilPath = defaults.IconutilPath
	}
	if cfg.ICNSFallback == nil {
		cfg.ICNSFallback = defaults.ICNSFallback
	}
	if !validLogLevel(cfg.LogLevel) {
		logrus.Warnf("Unknown log_level %q in config, using default %q", cfg.LogLevel, defaults.LogLevel)
		cfg.LogLevel = defaults.LogLevel
	}

	return cfg
}

// overrides holds CLI flag values for config overrides.
type overrides struct {
	OutputDir    string
	IconutilPath string
	ICNSFallback *bool
	LogLevel     string
}

// applyStringOverride applies a string override from env var and flag.
// Non-empty values are accepted only if valid returns true.
func applyStringOverride(target *string, envKey, flagName, flagVal string, valid func(string) bool) {
	if v := os.Getenv(envKey); v != "" {
		if !valid(v) {
			logrus.Warnf("Ignoring invalid %s=%q", envKey, v)
		} else {
			*target = v
		}
	}
	if flagVal != "" {
		if !valid(flagVal) {
			logrus.Warnf("Ignoring invalid -%s=%q", flagName, flagVal)
		} else {
			*target = flagVal
		}
	}
}

// anyValue accepts every non-empty value.
func anyValue(string) bool { return true }

// applyOverrides applies env vars and flags to config. Priority: flag > env > config file.
func applyOverrides(cfg *Config, o overrides) {
	applyStringOverride(&cfg.OutputDir, "GENICONS_OUTPUT_DIR", "out", o.OutputDir, anyValue)
	applyStringOverride(&cfg.IconutilPath, "GENICONS_ICONUTIL", "iconutil", o.IconutilPath, anyValue)
	applyStringOverride(&cfg.LogLevel, "GENICONS_LOG_LEVEL", "log-level", o.LogLevel, validLogLevel)

	// ICNSFallback: tri-state parsing (true/1, false/0).
	if v := os.Getenv("GENICONS_ICNS_FALLBACK"); v != "" {
		switch v {
		case "true", "1":
			b := true
			cfg.ICNSFallback = &b
		case "false", "0":
			b := false
			cfg.ICNSFallback = &b
		default:
			logrus.Warnf("Ignoring invalid GENICONS_ICNS_FALLBACK=%q", v)
		}
	}
	if o.ICNSFallback != nil {
		cfg.ICNSFallback = o.ICNSFallback
	}
}
