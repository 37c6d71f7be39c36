package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/errors"
	sio "github.com/matzehuels/sunburst/pkg/io"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// loadInput reads the hierarchy file and the optional feature registry.
// The registry format follows the file extension.
func loadInput(hierarchyPath, featuresPath string) (pipeline.Input, error) {
	var in pipeline.Input

	data, err := readFile(hierarchyPath)
	if err != nil {
		return in, err
	}
	in.Hierarchy = data

	if featuresPath == "" {
		return in, nil
	}
	format, err := sio.FormatFromPath(featuresPath)
	if err != nil {
		return in, err
	}
	if in.Features, err = readFile(featuresPath); err != nil {
		return in, err
	}
	in.FeaturesFormat = format
	return in, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// =============================================================================
// Chart Flags
// =============================================================================

// chartFlags are the view flags shared by render, labels and inspect.
// Unset flags keep the configured values.
type chartFlags struct {
	features string
	window   string
	depth    string
	width    int
	height   int
	refresh  bool
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.features, "features", "", "feature registry (.toml or .json)")
	cmd.Flags().StringVar(&f.window, "window", "", "angular window as min,max in [0,1] (zooms the chart)")
	cmd.Flags().StringVar(&f.depth, "depth", "", "displayed ring range as low,high")
	cmd.Flags().IntVar(&f.width, "width", 0, "drawing width in px")
	cmd.Flags().IntVar(&f.height, "height", 0, "drawing height in px")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

// apply overlays the flags onto opts.
func (f *chartFlags) apply(opts *pipeline.Options) error {
	if f.window != "" {
		lo, hi, err := parsePair(f.window, "window")
		if err != nil {
			return err
		}
		opts.Chart.Window = [2]float64{lo, hi}
	}
	if f.depth != "" {
		lo, hi, err := parsePair(f.depth, "depth")
		if err != nil {
			return err
		}
		if lo != float64(int(lo)) || hi != float64(int(hi)) {
			return errors.New(errors.ErrCodeInvalidInput, "depth bounds must be integers, got %q", f.depth)
		}
		opts.Chart.DepthLow, opts.Chart.DepthHigh = int(lo), int(hi)
	}
	if f.width > 0 {
		opts.Chart.Width = f.width
	}
	if f.height > 0 {
		opts.Chart.Height = f.height
	}
	opts.Refresh = f.refresh
	return opts.Chart.Validate()
}

// parsePair parses "a,b" into two numbers.
func parsePair(s, flag string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "--%s wants two comma-separated numbers, got %q", flag, s)
	}
	var out [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, errors.New(errors.ErrCodeInvalidInput, "--%s: %q is not a number", flag, p)
		}
		out[i] = v
	}
	return out[0], out[1], nil
}
