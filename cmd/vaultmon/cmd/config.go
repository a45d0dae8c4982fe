package cmd

import (
	"github.com/oneconcern/vaultmon/pkg/dlogger"
	"github.com/spf13/viper"
)

// configuration keys, also accepted as VAULTMON_* environment variables (e.g. VAULTMON_DEFAULT_PROGRAM)
const (
	keyVault          = "vault"
	keyProgram        = "program"
	keyLogLevel       = "log-level"
	keyLogFormat      = "log-format"
	keyExtensions     = "extensions"
	keySkipSegments   = "skip-segments"
	keyDefaultProgram = "default-program"
	keyCacheSize      = "cache-size"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	Vault          string   `json:"vault" yaml:"vault" mapstructure:"vault"`                               // Root directory of the vault
	Program        string   `json:"program" yaml:"program" mapstructure:"program"`                         // Program forced on every note
	LogLevel       string   `json:"log-level" yaml:"log-level" mapstructure:"log-level"`                   // Logging level
	LogFormat      string   `json:"log-format" yaml:"log-format" mapstructure:"log-format"`                // Encoding of log entries: console or json
	Extensions     []string `json:"extensions" yaml:"extensions" mapstructure:"extensions"`                // Extensions of notes
	SkipSegments   []string `json:"skip-segments" yaml:"skip-segments" mapstructure:"skip-segments"`       // Directory names ignored when inferring the hierarchy
	DefaultProgram string   `json:"default-program" yaml:"default-program" mapstructure:"default-program"` // Program of notes with no program resolved
	CacheSize      int      `json:"cache-size" yaml:"cache-size" mapstructure:"cache-size"`                // Number of directories with markers cached during a walk
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setVaultParams fills in flags left unset on the command line
func (c *CLIConfig) setVaultParams(flags *flagsT) {
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.LogLevel
	}
	if flags.root.logLevel == "" {
		flags.root.logLevel = defaultLogLevel
	}
	if flags.root.logFormat == "" {
		flags.root.logFormat = c.LogFormat
	}
	if flags.root.logFormat == "" {
		flags.root.logFormat = dlogger.FormatConsole
	}
	if flags.vault.path == "" {
		flags.vault.path = c.Vault
	}
	if flags.vault.path == "" {
		flags.vault.path = "."
	}
	if flags.vault.program == "" {
		flags.vault.program = c.Program
	}
	if len(flags.vault.extensions) == 0 {
		flags.vault.extensions = c.Extensions
	}
	if len(flags.vault.skipSegments) == 0 {
		flags.vault.skipSegments = c.SkipSegments
	}
	if flags.vault.defaultProgram == "" {
		flags.vault.defaultProgram = c.DefaultProgram
	}
	if flags.vault.cacheSize == 0 {
		flags.vault.cacheSize = c.CacheSize
	}
}
