package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// Loader assembles a Config from defaults, an optional .env file, an optional
// YAML file and SHOWCASE_* environment variables, in increasing precedence.
type Loader struct {
	viper     *viper.Viper
	validator *validator.Validate

	envFile    string
	configFile string
	searchPath string
}

// Option customizes a Loader.
type Option func(*Loader)

// WithEnvFile sets the dotenv file read before the environment is consulted.
// An empty path disables it.
func WithEnvFile(path string) Option {
	return func(l *Loader) { l.envFile = path }
}

// WithConfigFile loads path instead of looking at CONFIG_FILE and ./config.yaml.
func WithConfigFile(path string) Option {
	return func(l *Loader) { l.configFile = path }
}

// WithSearchPath changes the directory searched for config.yaml.
func WithSearchPath(dir string) Option {
	return func(l *Loader) { l.searchPath = dir }
}

func NewLoader(opts ...Option) *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l := &Loader{
		viper:      v,
		validator:  validator.New(),
		envFile:    DefaultEnvFile,
		configFile: os.Getenv(ConfigFileEnv),
		searchPath: ".",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load is shorthand for NewLoader().Load().
func Load() (*Config, error) {
	return NewLoader().Load()
}

func (l *Loader) Load() (*Config, error) {
	// godotenv never overrides variables that are already set.
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", l.envFile, err)
		}
	}

	for key, value := range defaults {
		l.viper.SetDefault(key, value)
	}

	if err := l.readConfigFile(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if d, err := vectordb.ParseDistance(string(cfg.Server.Demo.Distance)); err == nil {
		cfg.Server.Demo.Distance = d
	}

	if err := l.validator.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (l *Loader) readConfigFile() error {
	if l.configFile != "" {
		l.viper.SetConfigFile(l.configFile)
		if err := l.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", l.configFile, err)
		}
		return nil
	}

	l.viper.SetConfigName("config")
	l.viper.SetConfigType("yaml")
	l.viper.AddConfigPath(l.searchPath)
	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config.yaml: %w", err)
	}
	return nil
}

// ConfigFileUsed reports the file the last Load read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}
