package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/zbxmap/pkg/buildinfo"
	"github.com/matzehuels/zbxmap/pkg/graph"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "zbxmap"

	// defaultMapFile is the DOT file read when --mapfile is not given.
	defaultMapFile = "data.dot"

	// dotenvFile is read from the working directory on every run.
	dotenvFile = ".env"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// lookup reads environment variables; tests replace it.
	lookup lookupFunc
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// connFlags are the connection flags shared by every command that talks to
// Zabbix. Only config is read directly; the rest are applied by
// [CLI.config] when set on the command line.
type connFlags struct {
	username string
	password string
	host     string
	path     string
	scheme   string
	config   string
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself converts a DOT file into a Zabbix map.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		conn connFlags
		opts createOptions
	)

	root := &cobra.Command{
		Use:   "zbxmap --mapname NAME [--mapfile FILE]",
		Short: "zbxmap turns Graphviz DOT graphs into Zabbix network maps",
		Long: `zbxmap reads a Graphviz DOT file, lays it out, and publishes it as a
Zabbix network map through the JSON-RPC API.

Nodes with a "hostname" attribute become host elements bound to the Zabbix
host of that name. Other nodes become images, using the icon named by their
"zbximage" attribute. Edge "color" attributes select the link color and
"label" attributes are copied onto elements and links.

An existing map with the same name is deleted before the new one is created.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := c.Logger.With("run", uuid.NewString()[:8])
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd, conn)
			if err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runCreate(cmd, cfg, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Connection flags
	pf := root.PersistentFlags()
	pf.StringVar(&conn.username, "username", "admin", "Zabbix user name")
	pf.StringVar(&conn.password, "password", "zabbix", "Zabbix password")
	pf.StringVar(&conn.host, "host", "localhost", "Zabbix frontend host")
	pf.StringVar(&conn.path, "path", "/zabbix/", "Zabbix frontend path")
	pf.StringVar(&conn.scheme, "scheme", "http", "URL scheme: http, https")
	pf.StringVar(&conn.config, "config", "", "config file (default $XDG_CONFIG_HOME/zbxmap/config.toml)")

	// Map flags
	f := root.Flags()
	f.StringVar(&opts.mapFile, "mapfile", defaultMapFile, "Graphviz DOT input file")
	f.StringVar(&opts.mapName, "mapname", "", "name of the Zabbix map to create (required)")
	f.String("engine", string(graph.DefaultEngine), "Graphviz layout engine")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the map as JSON instead of publishing it")
	f.StringVar(&opts.svg, "svg", "", "also write the laid-out graph as SVG to this file")
	_ = root.MarkFlagRequired("mapname")
	_ = root.RegisterFlagCompletionFunc("engine", completeEngines)

	root.AddCommand(c.iconsCommand(&conn))
	root.AddCommand(c.completionCommand())

	return root
}

// config resolves the layered configuration for cmd.
func (c *CLI) config(cmd *cobra.Command, conn connFlags) (Config, error) {
	path, explicit := conn.config, conn.config != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err == nil {
			path = p
		}
	}

	lookup := c.lookup
	if lookup == nil {
		lookup = envLookup(dotenvFile)
	}

	cfg, err := loadConfig(path, explicit, lookup)
	if err != nil {
		return Config{}, err
	}

	// Flags win only when given explicitly; their defaults mirror defaultConfig.
	overrides := map[string]*string{
		"username": &cfg.Zabbix.Username,
		"password": &cfg.Zabbix.Password,
		"host":     &cfg.Zabbix.Host,
		"path":     &cfg.Zabbix.Path,
		"scheme":   &cfg.Zabbix.Scheme,
		"engine":   &cfg.Layout.Engine,
	}
	for name, field := range overrides {
		if fl := cmd.Flags().Lookup(name); fl != nil && fl.Changed {
			*field = fl.Value.String()
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	loggerFromContext(cmd.Context()).Debug("Configuration",
		"endpoint", cfg.Endpoint(), "user", cfg.Zabbix.Username, "engine", cfg.Layout.Engine, "file", path)
	return cfg, nil
}

func completeEngines(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(graph.Engines))
	for i, e := range graph.Engines {
		names[i] = string(e)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
