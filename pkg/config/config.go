package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations/funtranslations"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
)

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "POKEDEX_"

// DefaultEnvFile is read when [Options.EnvFile] is empty. A missing file is
// not an error.
const DefaultEnvFile = ".env"

// Config holds all settings for the pokedex server and CLI.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Upstream UpstreamConfig `toml:"upstream"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig contains the HTTP API settings.
type ServerConfig struct {
	Addr            string        `toml:"addr" validate:"required"`
	ReadTimeout     time.Duration `toml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `toml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" validate:"gte=0"`
	// RequestTimeout bounds each API request; zero disables the bound.
	RequestTimeout time.Duration `toml:"request_timeout" validate:"gte=0"`
}

// UpstreamConfig contains the base URLs of the two external APIs.
type UpstreamConfig struct {
	SpeciesURL     string `toml:"species_url" validate:"required,httpurl"`
	TranslationURL string `toml:"translation_url" validate:"required,httpurl"`
	UserAgent      string `toml:"user_agent"`
	// TranslationAPISecret is sent as the FunTranslations API secret when set.
	TranslationAPISecret string `toml:"translation_api_secret,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

// Options selects the optional files consulted by [Load].
type Options struct {
	// File is a TOML config file. Empty means no file.
	File string
	// EnvFile is a dotenv file. Empty means [DefaultEnvFile] if it exists.
	EnvFile string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Upstream: UpstreamConfig{
			SpeciesURL:     pokeapi.DefaultBaseURL,
			TranslationURL: funtranslations.DefaultBaseURL,
			UserAgent:      buildinfo.UserAgent(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from, in increasing precedence: defaults, the TOML
// file, the dotenv file and POKEDEX_* environment variables. The result is
// validated before it is returned.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	if opts.File != "" {
		if _, err := toml.DecodeFile(opts.File, cfg); err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read config file %s", opts.File)
		}
	}

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(func(key string) (string, bool) {
		v, ok := dotenv[key]
		return v, ok
	}); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read env file %s", path)
	}
	return values, nil
}

// binding ties an environment variable suffix to a config field.
type binding struct {
	key string
	set func(c *Config, v string) error
}

var bindings = []binding{
	{"SERVER_ADDR", func(c *Config, v string) error { c.Server.Addr = v; return nil }},
	{"SERVER_READ_TIMEOUT", durationSetter(func(c *Config) *time.Duration { return &c.Server.ReadTimeout })},
	{"SERVER_WRITE_TIMEOUT", durationSetter(func(c *Config) *time.Duration { return &c.Server.WriteTimeout })},
	{"SERVER_SHUTDOWN_TIMEOUT", durationSetter(func(c *Config) *time.Duration { return &c.Server.ShutdownTimeout })},
	{"SERVER_REQUEST_TIMEOUT", durationSetter(func(c *Config) *time.Duration { return &c.Server.RequestTimeout })},
	{"UPSTREAM_SPECIES_URL", func(c *Config, v string) error { c.Upstream.SpeciesURL = v; return nil }},
	{"UPSTREAM_TRANSLATION_URL", func(c *Config, v string) error { c.Upstream.TranslationURL = v; return nil }},
	{"UPSTREAM_USER_AGENT", func(c *Config, v string) error { c.Upstream.UserAgent = v; return nil }},
	{"UPSTREAM_TRANSLATION_API_SECRET", func(c *Config, v string) error { c.Upstream.TranslationAPISecret = v; return nil }},
	{"LOG_LEVEL", func(c *Config, v string) error { c.Log.Level = strings.ToLower(v); return nil }},
}

func durationSetter(field func(*Config) *time.Duration) func(*Config, string) error {
	return func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*field(c) = d
		return nil
	}
}

// applyEnv overrides fields whose POKEDEX_* variable is set and non-empty.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, b := range bindings {
		name := EnvPrefix + b.key
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		if err := b.set(c, v); err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidInput, err, "invalid %s", name)
		}
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return perrors.ValidateURL(fl.Field().String()) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("config: register httpurl validation: %v", err))
	}
	return v
}

// Validate checks every field constraint and reports the first violation
// as an INVALID_INPUT error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perrors.New(perrors.ErrCodeInvalidInput, "config %s fails %q (value %v)", fieldKey(fe.Namespace()), fe.Tag(), fe.Value())
	}
	return perrors.Wrap(perrors.ErrCodeInvalidInput, err, "validate config")
}

// fieldKey turns "Config.Upstream.SpeciesURL" into "Upstream.SpeciesURL".
func fieldKey(ns string) string {
	return strings.TrimPrefix(ns, "Config.")
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
