package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sunburst/pkg/colorutil"
	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/feature"
)

// Registry file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

type registryFile struct {
	Feature []feature.Entry `toml:"feature"`
}

// FormatFromPath infers the registry format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown feature file extension %q (want .toml or .json)", ext)
	}
}

// ReadFeatures decodes a feature registry in the given format from r.
// Every entry needs a valid token; colours must parse as CSS colours.
func ReadFeatures(r io.Reader, format string) (*feature.Registry, error) {
	entries, err := readEntries(r, format)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if err := errors.ValidateToken(e.Token); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "feature[%d]", i)
		}
		if e.Color != "" {
			if _, ok := colorutil.Parse(e.Color); !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "feature[%d] %q: invalid color %q", i, e.Token, e.Color)
			}
		}
	}
	return feature.NewRegistry(entries...), nil
}

func readEntries(r io.Reader, format string) ([]feature.Entry, error) {
	switch format {
	case FormatTOML:
		var f registryFile
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode features")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown feature key %q", undecoded[0].String())
		}
		return f.Feature, nil
	case FormatJSON:
		var entries []feature.Entry
		if err := json.NewDecoder(r).Decode(&entries); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode features")
		}
		return entries, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported feature format %q", format)
	}
}

// ImportFeatures reads the registry file at path, choosing the format from
// its extension.
func ImportFeatures(path string) (*feature.Registry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "feature file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFeatures(f, format)
}
