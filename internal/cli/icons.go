package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/matzehuels/zbxmap/pkg/zabbix"
)

// iconsCommand creates the icons command, which lists the names usable in
// zbximage attributes.
func (c *CLI) iconsCommand(conn *connFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List the icons available on the Zabbix server",
		Long: `List the icons available on the Zabbix server.

Any name printed here may be used as the "zbximage" attribute of a DOT node,
or as a default icon in the [icons] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd, *conn)
			if err != nil {
				return err
			}
			return runIcons(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
}

func runIcons(ctx context.Context, w io.Writer, cfg Config) error {
	logger := loggerFromContext(ctx)

	client := zabbix.NewClient(cfg.Endpoint())
	if err := client.Login(ctx, cfg.Zabbix.Username, cfg.Zabbix.Password); err != nil {
		return err
	}
	defer func() {
		if err := client.Logout(context.WithoutCancel(ctx)); err != nil {
			logger.Debug("Logout failed", "err", err)
		}
	}()

	icons, err := client.Icons(ctx)
	if err != nil {
		return err
	}

	names := lo.Keys(map[string]string(icons))
	sort.Strings(names)
	width := lo.Max(lo.Map(names, func(n string, _ int) int { return lipgloss.Width(n) }))

	nameStyle := lipgloss.NewStyle().Width(width)
	for _, name := range names {
		marker := ""
		if name == cfg.Icons.Host || name == cfg.Icons.Image {
			marker = " " + StyleDim.Render("(default)")
		}
		fmt.Fprintf(w, "%s  %s%s\n", nameStyle.Render(name), StyleNumber.Render(icons[name]), marker)
	}
	logger.Debug("Listed icons", "count", len(names))
	return nil
}
