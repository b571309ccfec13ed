/*
Package config manages TOML config for the backro CLI.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/backrodev/backro/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Wordlist WordlistConfig `toml:"wordlist"`
	Output   OutputConfig   `toml:"output"`
	Sampler  SamplerConfig  `toml:"sampler"`
	CLI      CliConfig      `toml:"cli"`
}

// WordlistConfig has wordlist source options.
type WordlistConfig struct {
	// Path overrides the system wordlist. Empty falls through to the
	// BACKRO_WORDLIST env var and then /usr/share/dict/words.
	Path string `toml:"path"`
}

// OutputConfig holds formatting options.
type OutputConfig struct {
	PlaceholderOpen  string `toml:"placeholder_open"`
	PlaceholderClose string `toml:"placeholder_close"`
}

// SamplerConfig holds randomness options.
type SamplerConfig struct {
	// Seed fixes the generator when non-zero; zero seeds from time.
	Seed int64 `toml:"seed"`
}

// CliConfig holds interactive interface options.
type CliConfig struct {
	MaxInputLen int `toml:"max_input_len"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/backro
// 2. ~/Library/Application Support/backro (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "backro")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "backro")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/backro/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Wordlist: WordlistConfig{
			Path: "",
		},
		Output: OutputConfig{
			PlaceholderOpen:  "[",
			PlaceholderClose: "?]",
		},
		Sampler: SamplerConfig{
			Seed: 0,
		},
		CLI: CliConfig{
			MaxInputLen: 256,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if wordlistSection, ok := utils.ExtractSection(tempConfig, "wordlist"); ok {
		extractWordlistConfig(wordlistSection, &config.Wordlist)
	}
	if outputSection, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(outputSection, &config.Output)
	}
	if samplerSection, ok := utils.ExtractSection(tempConfig, "sampler"); ok {
		extractSamplerConfig(samplerSection, &config.Sampler)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractWordlistConfig extracts wordlist configuration from a map
func extractWordlistConfig(data map[string]any, wordlist *WordlistConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		wordlist.Path = val
	}
}

// extractOutputConfig extracts output configuration from a map
func extractOutputConfig(data map[string]any, output *OutputConfig) {
	if val, ok := utils.ExtractString(data, "placeholder_open"); ok {
		output.PlaceholderOpen = val
	}
	if val, ok := utils.ExtractString(data, "placeholder_close"); ok {
		output.PlaceholderClose = val
	}
}

// extractSamplerConfig extracts sampler configuration from a map
func extractSamplerConfig(data map[string]any, sampler *SamplerConfig) {
	if val, ok := utils.ExtractInt64(data, "seed"); ok {
		sampler.Seed = int64(val)
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "max_input_len"); ok {
		cli.MaxInputLen = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
