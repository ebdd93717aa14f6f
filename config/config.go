package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"termsweep/board"
)

var (
	cfgFile = "termsweep/config.json"
	logFile = "termsweep/termsweep.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are xterm-256 palette indices.
type ConfigColors struct {
	Hidden     int    `json:"hidden"`
	Revealed   int    `json:"revealed"`
	Flag       int    `json:"flag"`
	Numbers    [8]int `json:"numbers"`
	Mine       int    `json:"mine"`
	HiddenMine int    `json:"hidden_mine"`
	Bracket    int    `json:"bracket"`
	CursorBG   int    `json:"cursor_bg"`
}

type ConfigSymbols struct {
	Hidden     rune `json:"hidden"`
	Flag       rune `json:"flag"`
	Empty      rune `json:"empty"`
	Mine       rune `json:"mine"`
	HiddenMine rune `json:"hidden_mine"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// GameDefaults holds what the setup screen starts with.
type GameDefaults struct {
	Preset string `json:"preset"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

// InitConfig loads the user's config file on top of the defaults. A missing
// file is not an error.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.Hidden, s.Flag, s.Empty, s.Mine, s.HiddenMine} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	cl := c.Theme.Colors
	colors := append([]int{cl.Hidden, cl.Revealed, cl.Flag, cl.Mine, cl.HiddenMine, cl.Bracket, cl.CursorBG}, cl.Numbers[:]...)
	for _, v := range colors {
		if v < 0 || v > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256-color palette", v)}
		}
	}
	if _, ok := board.PresetByName(c.Game.Preset); !ok {
		return &InvalidConfig{fmt.Sprintf("unknown preset %q", c.Game.Preset)}
	}
	return nil
}

// Preset returns the configured default preset.
func (c *Config) Preset() board.Preset {
	p, ok := board.PresetByName(c.Game.Preset)
	if !ok {
		return board.Beginner
	}
	return p
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogPath returns the log file location, creating its directory.
func LogPath() (string, error) {
	absPath, err := xdg.StateFile(logFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate log file: %w", err)
	}
	return absPath, nil
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
