package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	zerr "github.com/matzehuels/zbxmap/pkg/errors"
	"github.com/matzehuels/zbxmap/pkg/graph"
	"github.com/matzehuels/zbxmap/pkg/observability"
	"github.com/matzehuels/zbxmap/pkg/sysmap"
	"github.com/matzehuels/zbxmap/pkg/zabbix"
)

// createOptions holds the map flags of the root command.
type createOptions struct {
	mapFile string
	mapName string
	dryRun  bool
	svg     string
}

func (o createOptions) validate() error {
	if err := zerr.ValidateMapName(o.mapName); err != nil {
		return err
	}
	if o.mapFile == "" {
		return zerr.New(zerr.ErrCodeInvalidInput, "map file is required")
	}
	return nil
}

// runCreate lays out the DOT file, builds the map, and publishes it.
// With dryRun the map is written to stdout as JSON instead.
func (c *CLI) runCreate(cmd *cobra.Command, cfg Config, opts createOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	engine := graph.Engine(cfg.Layout.Engine)

	// Layout
	prog := newProgress(logger)
	done := observability.Stage(ctx, observability.StageLayout)
	g, err := graph.ReadFile(ctx, opts.mapFile, engine)
	done(err)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d nodes and %d edges with %s", len(g.Nodes), len(g.Edges), engine))

	if opts.svg != "" {
		if err := writeSVG(ctx, opts.mapFile, opts.svg, engine); err != nil {
			return err
		}
		logger.Info("Wrote preview", "file", opts.svg)
	}

	colors, err := sysmap.NewColorTable(cfg.Colors)
	if err != nil {
		return err
	}

	// Session
	client := zabbix.NewClient(cfg.Endpoint())
	prog = newProgress(logger)
	if err := client.Login(ctx, cfg.Zabbix.Username, cfg.Zabbix.Password); err != nil {
		return err
	}
	defer func() {
		// The parent context may already be cancelled.
		if err := client.Logout(context.WithoutCancel(ctx)); err != nil {
			logger.Debug("Logout failed", "err", err)
		}
	}()
	// Cached by Login, so this does not hit the server again.
	version, err := client.Version(ctx)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Logged in to Zabbix %s as %s", version, cfg.Zabbix.Username))

	icons, err := client.Icons(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Loaded icon catalog", "icons", len(icons))

	// Build
	prog = newProgress(logger)
	builder := sysmap.NewBuilder(sysmap.Options{
		Icons:    icons,
		Colors:   colors,
		Defaults: cfg.Icons,
		Hosts:    client,
	})
	done = observability.Stage(ctx, observability.StageBuild)
	m, err := builder.Build(ctx, opts.mapName, g)
	done(err)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built map with %d elements (%d hosts) and %d links",
		len(m.Elements), m.Hosts(), len(m.Links)))

	if opts.dryRun {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return zerr.Wrap(zerr.ErrCodeInternal, err, "encode map")
		}
		return nil
	}

	// Publish
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Publishing map %q...", m.Name))
	spinner.Start()
	done = observability.Stage(ctx, observability.StagePublish)
	res, err := sysmap.Replace(ctx, client, m)
	done(err)
	if err != nil {
		spinner.StopWithError("Publishing failed")
		return err
	}
	spinner.Stop()

	if res.Deleted != "" {
		logger.Info("Deleted existing map", "name", m.Name, "id", res.Deleted)
	}
	printSuccess("Created map %s", StyleHighlight.Render(m.Name))
	printKeyValue("Map ID", res.Created)
	printKeyValue("Elements", fmt.Sprintf("%d", len(m.Elements)))
	printKeyValue("Links", fmt.Sprintf("%d", len(m.Links)))
	printKeyValue("Server", client.URL())
	return nil
}

// writeSVG renders the DOT file at src to an SVG file at dst.
func writeSVG(ctx context.Context, src, dst string, engine graph.Engine) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return zerr.Wrap(zerr.ErrCodeInvalidPath, err, "read %s", src)
	}
	svg, err := graph.RenderSVG(ctx, data, engine)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, svg, 0o644); err != nil {
		return zerr.Wrap(zerr.ErrCodeInvalidPath, err, "write %s", dst)
	}
	return nil
}
