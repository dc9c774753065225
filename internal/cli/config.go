package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
	"github.com/matzehuels/zbxmap/pkg/graph"
	"github.com/matzehuels/zbxmap/pkg/sysmap"
	"github.com/matzehuels/zbxmap/pkg/zabbix"
)

// =============================================================================
// Config - Layered Settings
// =============================================================================

// Config holds everything a run needs besides the input file and map name.
//
// Values are layered, later layers winning:
//  1. built-in defaults
//  2. the TOML config file
//  3. environment variables (a .env file in the working directory counts)
//  4. command-line flags
type Config struct {
	Zabbix ZabbixConfig        `toml:"zabbix"`
	Icons  sysmap.DefaultIcons `toml:"icons"`
	Colors map[string]string   `toml:"colors"`
	Layout LayoutConfig        `toml:"layout"`
}

// ZabbixConfig holds the API connection settings.
type ZabbixConfig struct {
	Username string `toml:"username" validate:"required"`
	Password string `toml:"password"`
	Host     string `toml:"host" validate:"required"`
	Path     string `toml:"path" validate:"required"`
	Scheme   string `toml:"scheme" validate:"oneof=http https"`
}

// LayoutConfig selects the Graphviz engine.
type LayoutConfig struct {
	Engine string `toml:"engine" validate:"required"`
}

// defaultConfig returns the built-in defaults, which match a stock Zabbix
// frontend on the local machine.
func defaultConfig() Config {
	return Config{
		Zabbix: ZabbixConfig{
			Username: "admin",
			Password: "zabbix",
			Host:     "localhost",
			Path:     "/zabbix/",
			Scheme:   "http",
		},
		Icons:  sysmap.StockIcons(),
		Layout: LayoutConfig{Engine: string(graph.DefaultEngine)},
	}
}

// Endpoint returns the JSON-RPC URL for the configured server.
func (c Config) Endpoint() string {
	return zabbix.Endpoint(c.Zabbix.Scheme, c.Zabbix.Host, c.Zabbix.Path)
}

// =============================================================================
// Loading
// =============================================================================

// envPrefix prefixes every environment variable zbxmap reads.
const envPrefix = "ZBXMAP_"

// envBindings maps environment variable suffixes to config fields.
var envBindings = []struct {
	name  string
	field func(*Config) *string
}{
	{"USERNAME", func(c *Config) *string { return &c.Zabbix.Username }},
	{"PASSWORD", func(c *Config) *string { return &c.Zabbix.Password }},
	{"HOST", func(c *Config) *string { return &c.Zabbix.Host }},
	{"PATH", func(c *Config) *string { return &c.Zabbix.Path }},
	{"SCHEME", func(c *Config) *string { return &c.Zabbix.Scheme }},
	{"ENGINE", func(c *Config) *string { return &c.Layout.Engine }},
}

// lookupFunc has the signature of os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// envLookup returns a lookup that consults the process environment first and
// the dotenv file second, so real environment variables win as with
// godotenv.Load. A missing dotenv file is not an error.
func envLookup(dotenvPath string) lookupFunc {
	dot, _ := godotenv.Read(dotenvPath)
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dot[key]
		return v, ok
	}
}

// loadConfig layers defaults, the TOML file at path, and the environment.
// A missing file is only an error when explicit is set.
func loadConfig(path string, explicit bool, lookup lookupFunc) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist) && !explicit:
		case errors.Is(err, os.ErrNotExist):
			return Config{}, zerr.Wrap(zerr.ErrCodeInvalidPath, err, "config file %s", path)
		default:
			return Config{}, zerr.Wrap(zerr.ErrCodeInvalidInput, err, "parse config %s", path)
		}
	}

	for _, b := range envBindings {
		if v, ok := lookup(envPrefix + b.name); ok && v != "" {
			*b.field(&cfg) = v
		}
	}

	return cfg, nil
}

// =============================================================================
// Validation
// =============================================================================

var validate = validator.New()

// Validate checks the config for values that would fail later in the run.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if err := zerr.ValidateAPIPath(c.Zabbix.Path); err != nil {
		return err
	}
	if err := zerr.ValidateURL(c.Endpoint()); err != nil {
		return err
	}
	if err := graph.ValidateEngine(graph.Engine(c.Layout.Engine)); err != nil {
		return err
	}
	if _, err := sysmap.NewColorTable(c.Colors); err != nil {
		return err
	}
	return nil
}

// formatValidationError turns validator errors into one INVALID_INPUT error
// naming every offending field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return zerr.Wrap(zerr.ErrCodeInvalidInput, err, "invalid config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}
	return zerr.New(zerr.ErrCodeInvalidInput, "invalid config: %s", strings.Join(msgs, "; "))
}

// =============================================================================
// Paths
// =============================================================================

// defaultConfigPath returns the config file location using the XDG standard
// (~/.config/zbxmap/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
