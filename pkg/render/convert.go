package render

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/sunburst/pkg/errors"
)

// Converter is the external tool used for PNG and PDF output.
const Converter = "rsvg-convert"

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Available reports whether [Converter] can be found on PATH.
func Available() bool {
	_, err := lookPath(Converter)
	return err == nil
}

// ToPNG rasterizes svg at the given scale. A scale <= 0 means 1.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	z := strconv.FormatFloat(scale, 'f', -1, 64)
	return convert(svg, "-f", "png", "-z", z)
}

// ToPDF converts svg to a single-page PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "-f", "pdf")
}

func convert(svg []byte, args ...string) ([]byte, error) {
	bin, err := lookPath(Converter)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s not found (brew install librsvg, apt install librsvg2-bin)", Converter)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s %s: %s", Converter, args[1], msg)
	}
	if stdout.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "%s produced no output", Converter)
	}
	return stdout.Bytes(), nil
}
