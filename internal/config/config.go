// Package config resolves host settings from flags, the environment and an
// optional .env file. Precedence, highest first: flags, environment, .env,
// built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvWidth  = "BACKDROP_WIDTH"
	EnvHeight = "BACKDROP_HEIGHT"
	EnvSeed   = "BACKDROP_SEED"
	EnvDebug  = "BACKDROP_DEBUG"
)

// Config holds the settings shared by the backdrop hosts.
type Config struct {
	Width  int
	Height int
	// Seed of zero means seed from the wall clock.
	Seed  uint64
	Debug bool
}

func Defaults() Config {
	return Config{Width: 1280, Height: 720}
}

// Load returns the defaults overridden by values from the given .env files
// and then by the process environment. Missing files are skipped.
func Load(files ...string) (Config, error) {
	fromFiles := make(map[string]string)
	for _, f := range files {
		values, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", f, err)
		}
		for k, v := range values {
			fromFiles[k] = v
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFiles[key]
		return v, ok
	})
}

// FromLookup returns the defaults overridden by whatever lookup reports.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Defaults()

	var err error
	if v, ok := lookup(EnvWidth); ok {
		if c.Width, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvWidth, err)
		}
	}
	if v, ok := lookup(EnvHeight); ok {
		if c.Height, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvHeight, err)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
	}
	if v, ok := lookup(EnvDebug); ok {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvDebug, err)
		}
	}
	return c, c.Validate()
}

// Validate reports a non-positive window size.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	return nil
}

// RegisterFlags binds c's fields to flags on fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Scene seed; 0 seeds from the clock.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug overlay.")
}
