package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// labelsCommand creates the labels command, which prints the placements
// without drawing the chart.
func (c *CLI) labelsCommand() *cobra.Command {
	var (
		flags  chartFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "labels <hierarchy.json>",
		Short: "Print the label placements of the visible ring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.placeLabels(cmd.Context(), args[0], &flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				_, err := out.Write(result.Artifacts[pipeline.FormatJSON])
				return err
			}
			fmt.Fprintln(out, placementTable(result))
			fmt.Fprintln(out, statsLine(result.Stats.Nodes, result.Stats.Labels, result.CacheInfo.LabelsHit))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print placements as JSON")
	return cmd
}

// placeLabels runs the pipeline up to the JSON placement export.
func (c *CLI) placeLabels(ctx context.Context, input string, flags *chartFlags) (*pipeline.Result, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	opts := pipeline.OptionsFromConfig(cfg)
	if err := flags.apply(&opts); err != nil {
		return nil, err
	}
	opts.Formats = []string{pipeline.FormatJSON}
	opts.Logger = c.Logger

	in, err := loadInput(input, flags.features)
	if err != nil {
		return nil, err
	}

	runner, err := c.newRunner(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	return runner.Execute(ctx, in, opts)
}

// placementTable renders one row per placement.
func placementTable(result *pipeline.Result) string {
	rows := make([][]string, len(result.Placements))
	for i, p := range result.Placements {
		fill := result.Registry.Color(p.Token)
		rows[i] = []string{
			fmt.Sprint(p.Index),
			p.Name,
			p.Mode.String(),
			displayText(p),
			swatch(fill) + " " + fill,
			placementFlags(p),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Feature", "Mode", "Text", "Fill", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(result.Placements) && result.Placements[row].Suppressed {
				return base.Foreground(colorDim)
			}
			if col == 0 || col == 5 {
				return base.Foreground(colorGray)
			}
			return base
		})
	return t.Render()
}

// displayText shows empty labels as a dash.
func displayText(p label.Placement) string {
	if p.Text == "" {
		return "-"
	}
	return p.Text
}

func placementFlags(p label.Placement) string {
	var flags []string
	if p.Truncated {
		flags = append(flags, "shortened")
	}
	if p.Suppressed {
		flags = append(flags, "empty")
	}
	return strings.Join(flags, ", ")
}

// writePlacementPaths prints the path data of p, one attribute per line.
func writePlacementPaths(w io.Writer, p label.Placement) {
	fmt.Fprintf(w, "%s %s\n", StyleDim.Render("arc "), p.ArcPath)
	fmt.Fprintf(w, "%s %s\n", StyleDim.Render("line"), p.LinePath)
}
