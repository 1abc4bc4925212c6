package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termtris/config.json"
	logFile = "termtris/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds a 256-colour palette index per piece kind.
type ConfigColors struct {
	I      int `json:"i"`
	O      int `json:"o"`
	T      int `json:"t"`
	S      int `json:"s"`
	Z      int `json:"z"`
	J      int `json:"j"`
	L      int `json:"l"`
	Ghost  int `json:"ghost"`
	Wall   int `json:"wall"`
	Hidden int `json:"hidden"`
}

type ConfigSymbols struct {
	Block rune `json:"block"`
	Ghost rune `json:"ghost"`
	Empty rune `json:"empty"`
}

type Theme struct {
	DrawGhost      bool          `json:"draw_ghost"`
	ShowHiddenRows bool          `json:"show_hidden_rows"`
	Colors         ConfigColors  `json:"colors"`
	Symbols        ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings a new game starts with.
type GameDefaults struct {
	BagSize   int `json:"bag_size"`
	QueueSize int `json:"queue_size"`
	LineGoal  int `json:"line_goal"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

// MaxQueueSize is the longest preview the side panel can show.
const MaxQueueSize = 6

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
	for _, r := range []rune{c.Theme.Symbols.Block, c.Theme.Symbols.Ghost, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.BagSize < 1 {
		return &InvalidConfig{fmt.Sprintf("bag size must be at least 1, got %d", c.Game.BagSize)}
	}
	if c.Game.QueueSize < 1 || c.Game.QueueSize > MaxQueueSize {
		return &InvalidConfig{fmt.Sprintf("queue size must be between 1 and %d, got %d", MaxQueueSize, c.Game.QueueSize)}
	}
	if c.Game.LineGoal < 0 {
		return &InvalidConfig{fmt.Sprintf("line goal must not be negative, got %d", c.Game.LineGoal)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogPath returns the debug log location, creating its directory.
func LogPath() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return nil
}
