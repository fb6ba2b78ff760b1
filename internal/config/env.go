// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns the value of EnvPrefix+key and whether it is non-empty.
func lookupEnv(key string) (string, bool) {
	val := os.Getenv(EnvPrefix + key)
	return val, val != ""
}

// parseBool accepts "true", "1", "yes" and "false", "0", "no" (case-insensitive).
func parseBool(val string) (bool, bool) {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride maps an env key (without the ERRTREE_ prefix) to the flag it
// overrides and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// Values that fail to parse are ignored and the flag default stays in place.
var envOverrides = []envOverride{
	{"INDENT", "indent", func(c *AppConfig, v string) {
		c.Report.Indent = v
	}},
	{"MAX_DEPTH", "max-depth", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Report.MaxDepth = parsed
		}
	}},
	{"COLOR", "color", func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.Report.Color = parsed
		}
	}},
	{"LOG_LEVEL", "log-level", func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"JSON", "json", func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.JSONLogs = parsed
		}
	}},
}

// applyEnvOverrides applies every environment override whose flag was not
// given explicitly. CLI flags always win.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val, ok := lookupEnv(o.envKey); ok {
			o.apply(cfg, val)
		}
	}
}
