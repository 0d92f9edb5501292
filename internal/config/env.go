package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvConfig = "CAMERAWALK_CONFIG" // Config file path, used when -config is not given
	EnvAudio  = "CAMERAWALK_AUDIO"  // Boolean, enables or disables audio
	EnvVolume = "CAMERAWALK_VOLUME" // Master volume (0-1)
)

// LoadEnvFile loads KEY=value pairs from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides audio settings from the environment
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvAudio); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = enabled
	}

	if v, ok := os.LookupEnv(EnvVolume); ok && v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVolume, err)
		}
		if vol < 0 || vol > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %g", EnvVolume, vol)
		}
		c.Audio.Volume = vol
	}

	return nil
}
