package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"stopwatch/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	CountdownSeconds *int    `yaml:"countdown_seconds"`
	SoundEnabled     *bool   `yaml:"sound_enabled"`
	IdlePauseEnabled bool    `yaml:"idle_pause_enabled"`
	IdlePauseSeconds int     `yaml:"idle_pause_seconds"`
	CardOpacity      float64 `yaml:"card_opacity"`
	Fullscreen       bool    `yaml:"fullscreen"`
}

// SettingsPath returns the default settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the YAML file at path.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := MarshalSettings(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// MarshalSettings renders settings in the file format.
func MarshalSettings(settings preferences.Settings) ([]byte, error) {
	countdown := settings.CountdownSeconds
	sound := settings.SoundEnabled
	fileData := yamlSettings{
		CountdownSeconds: &countdown,
		SoundEnabled:     &sound,
		IdlePauseEnabled: settings.IdlePauseEnabled,
		IdlePauseSeconds: int(settings.IdlePauseAfter / time.Second),
		CardOpacity:      settings.CardOpacity,
		Fullscreen:       settings.Fullscreen,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.CountdownSeconds != nil && preferences.ValidCountdown(*fileData.CountdownSeconds) {
		settings.CountdownSeconds = *fileData.CountdownSeconds
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.IdlePauseSeconds > 0 {
		settings.IdlePauseAfter = time.Duration(fileData.IdlePauseSeconds) * time.Second
	}
	if preferences.ValidOpacity(fileData.CardOpacity) {
		settings.CardOpacity = fileData.CardOpacity
	}

	settings.IdlePauseEnabled = fileData.IdlePauseEnabled
	settings.Fullscreen = fileData.Fullscreen
}
