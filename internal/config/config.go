package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the arena simulator.
type Simulator struct {
	LogLevel string `yaml:"log_level"`
	Seed     uint64 `yaml:"seed"`

	// Journal
	Journal JournalConfig `yaml:"journal"`

	// Scenario
	Turns   int           `yaml:"turns"`
	Player  PlayerConfig  `yaml:"player"`
	Monster MonsterConfig `yaml:"monster"`
}

// JournalConfig controls the optional battle journal.
type JournalConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// PlayerConfig describes the defender.
type PlayerConfig struct {
	Name      string `yaml:"name"`
	Level     int    `yaml:"level"`
	HP        int    `yaml:"hp"`
	Gold      int    `yaml:"gold"`
	SaveSkill int    `yaml:"save_skill"`
}

// MonsterConfig describes the attacker and its blow routine.
type MonsterConfig struct {
	Name  string       `yaml:"name"`
	Level int          `yaml:"level"`
	HP    int          `yaml:"hp"`
	Blows []BlowConfig `yaml:"blows"`
}

// BlowConfig is one blow in the attacker's routine: a delivery method,
// an effect kind and a damage dice roll.
type BlowConfig struct {
	Method    string `yaml:"method"`
	Effect    string `yaml:"effect"`
	DiceNum   int    `yaml:"dice_num"`
	DiceSides int    `yaml:"dice_sides"`
}

// DefaultSimulator returns Simulator config with a sample encounter.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel: "info",
		Seed:     1,
		Turns:    20,
		Player: PlayerConfig{
			Name:      "Adventurer",
			Level:     10,
			HP:        80,
			Gold:      250,
			SaveSkill: 35,
		},
		Monster: MonsterConfig{
			Name:  "cutpurse",
			Level: 8,
			HP:    40,
			Blows: []BlowConfig{
				{Method: "HIT", Effect: "HURT", DiceNum: 1, DiceSides: 6},
				{Method: "TOUCH", Effect: "EAT_GOLD", DiceNum: 0, DiceSides: 0},
			},
		},
		Journal: JournalConfig{
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "grimdelve",
				Password: "grimdelve",
				DBName:   "grimdelve",
				SSLMode:  "disable",
			},
		},
	}
}

// LoadSimulator reads a Simulator config from a YAML file, applying
// defaults for missing fields.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
