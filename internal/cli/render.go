package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chart   chartFlags
	output  string   // output file (single format) or base path
	formats []string // "svg", "json", "png", "pdf"
	title   string
	scale   float64
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <hierarchy.json>",
		Short: "Render a labelled sunburst chart",
		Long: `Render lays out the labels of the visible text ring and draws the chart.

Several formats can be written at once; the output path then acts as a base
name (chart.svg, chart.png, ...). PNG and PDF need rsvg-convert on PATH.`,
		Example: `  sunburst render tree.json
  sunburst render tree.json --features features.toml -f svg,png -o out/chart
  sunburst render tree.json --window 0.25,0.5 --depth 1,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.ErrOrStderr(), args[0], &opts)
		},
	}

	opts.chart.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default 2)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stderr io.Writer, input string, opts *renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	popts := pipeline.OptionsFromConfig(cfg)
	if err := opts.chart.apply(&popts); err != nil {
		return err
	}
	popts.Formats = opts.formats
	popts.Title = opts.title
	popts.Scale = opts.scale
	popts.Logger = c.Logger

	paths := outputPaths(opts.output, input, opts.formats)
	for _, p := range paths {
		if err := errors.ValidateOutputPath(p); err != nil {
			return err
		}
	}

	in, err := loadInput(input, opts.chart.features)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	var spin *spinner
	if raster := rasterFormats(opts.formats); len(raster) > 0 {
		spin = startSpinner(ctx, stderr, "Rasterizing "+strings.Join(raster, ", "))
	}
	result, err := runner.Execute(ctx, in, popts)
	if spin != nil {
		if err != nil && !spin.interrupted() {
			spin.fail("Rasterizing failed")
		} else {
			spin.stop()
		}
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", input))

	for _, format := range opts.formats {
		if err := writeOutput(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", input)
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	printStats(result.Stats.Nodes, result.Stats.Labels, result.CacheInfo.LabelsHit && result.CacheInfo.RenderHit)
	if result.Stats.Labels.Sectors == 0 {
		printWarning("No labelled sectors on ring %d", label.TextRing(popts.View()))
	}
	return nil
}

// rasterFormats returns the requested formats that need the external
// rasterizer, in request order.
func rasterFormats(formats []string) []string {
	var out []string
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			out = append(out, f)
		}
	}
	return out
}

// outputPaths maps each format to the file it is written to. A single
// format goes to output as given; several formats share a base path.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
