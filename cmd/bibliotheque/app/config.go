package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bibliotheque/internal/cmd/globals"
	"github.com/agentstation/bibliotheque/pkg/constants"
	"github.com/agentstation/bibliotheque/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Catalog configuration
	File   string
	Strict bool

	// Logging configuration. LogLevel comes from --log-level or the config
	// file; EnvLogLevel from LOG_LEVEL, which ranks below -v and -q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (BIBLIOTHEQUE_FILE, BIBLIOTHEQUE_STRICT, LOG_*)
// 3. .env files
// 4. Config file (~/.bibliotheque.yaml or ./.bibliotheque.yaml)
// 5. Defaults
//
// An explicit configFile must exist and parse; the default locations are
// optional.
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first so they are visible to viper's env lookup
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", constants.DefaultCatalogFile)
	v.SetDefault("strict", false)
	v.SetDefault("output", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot parse config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Output:  v.GetString("output"),

		ConfigFile: v.ConfigFileUsed(),

		File:   v.GetString("file"),
		Strict: v.GetBool("strict"),

		LogLevel:    v.GetString("log-level"),
		EnvLogLevel: os.Getenv(constants.EnvLogLevel),
		LogFormat:   getEnvOrDefault(constants.EnvLogFormat, "auto"),
		LogOutput:   getEnvOrDefault(constants.EnvLogOutput, "stderr"),
	}
	if config.File == "" {
		config.File = constants.DefaultCatalogFile
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags. Only
// flags the user set override values from other sources.
func (c *Config) UpdateFromFlags(flags *globals.Flags, changed func(name string) bool) {
	if changed("verbose") {
		c.Verbose = flags.Verbose
	}
	if changed("quiet") {
		c.Quiet = flags.Quiet
	}
	if changed("no-color") {
		c.NoColor = flags.NoColor
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.File != "" {
		c.File = flags.File
	}
	if changed("strict") {
		c.Strict = flags.Strict
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// loadEnvFiles loads environment variables from .env files. Variables
// already set in the environment win.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
