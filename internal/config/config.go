package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

const (
	DefaultSourceDir   = "docs/themes"
	DefaultOutputDir   = "themes"
	DefaultPaletteName = "default"
)

type Config struct {
	SourceDir   string `mapstructure:"source_dir"`
	OutputDir   string `mapstructure:"output_dir"`
	DBPath      string `mapstructure:"db_path"`
	PaletteName string `mapstructure:"palette"`
}

var (
	configDir  string
	configFile string
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".thememigrate")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	def := GetDefaultConfig()
	v.SetDefault("source_dir", def.SourceDir)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("palette", def.PaletteName)
	return v
}

// loads config from file, falling back to defaults for missing keys
func LoadConfig() (*Config, error) {
	if !ConfigExists() {
		return GetDefaultConfig(), nil
	}

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("source_dir", cfg.SourceDir)
	v.Set("output_dir", cfg.OutputDir)
	v.Set("db_path", cfg.DBPath)
	v.Set("palette", cfg.PaletteName)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func GetDefaultConfig() *Config {
	return &Config{
		SourceDir:   DefaultSourceDir,
		OutputDir:   DefaultOutputDir,
		DBPath:      filepath.Join(configDir, "history.db"),
		PaletteName: DefaultPaletteName,
	}
}

// Keys lists the settable config keys.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var setters = map[string]func(*Config, string){
	"source_dir": func(c *Config, v string) { c.SourceDir = v },
	"output_dir": func(c *Config, v string) { c.OutputDir = v },
	"db_path":    func(c *Config, v string) { c.DBPath = v },
	"palette":    func(c *Config, v string) { c.PaletteName = v },
}

// Set updates a single key and persists the config.
func Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, Keys())
	}
	if value == "" {
		return fmt.Errorf("config key %q cannot be empty", key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	set(cfg, value)
	return SaveConfig(cfg)
}

// updates palette in config file
func UpdatePalette(name string) error {
	return Set("palette", name)
}
