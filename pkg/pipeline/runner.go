package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sunburst/pkg/cache"
	"github.com/matzehuels/sunburst/pkg/feature"
	"github.com/matzehuels/sunburst/pkg/hierarchy"
	"github.com/matzehuels/sunburst/pkg/label"
	"github.com/matzehuels/sunburst/pkg/observability"
)

// Cache key types reported to [observability.CacheHooks].
const (
	keyTypeLabels   = "labels"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so caching behaves the same everywhere.
//
// The Runner keeps no per-run state, so multiple goroutines can share one
// Runner with different inputs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL applies to every cache write. Zero means [cache.DefaultTTL].
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Execute runs the complete parse → label → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, in Input, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{InputHash: in.Hash()}

	// Stage 1: Parse
	parseStart := time.Now()
	root, reg, err := Parse(in)
	if err != nil {
		return nil, err
	}
	result.Root = root
	result.Registry = reg
	result.Stats.Nodes = root.Len()
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Debug("parsed hierarchy",
		"nodes", result.Stats.Nodes,
		"depth", root.MaxDepth(),
		"features", reg.Len())

	// Stage 2: Labels
	labelStart := time.Now()
	labelsKey := r.Keyer.LabelsKey(result.InputHash, opts.LabelKeyOpts())
	placements, hit := r.labels(ctx, labelsKey, root, reg, opts)
	result.Placements = placements
	result.Stats.Labels = Summarize(placements)
	result.Stats.LabelTime = time.Since(labelStart)
	result.CacheInfo.LabelsHit = hit

	r.Logger.Info("placed labels",
		"sectors", result.Stats.Labels.Sectors,
		"arcs", result.Stats.Labels.Arcs,
		"truncated", result.Stats.Labels.Truncated,
		"cached", hit,
		"duration", result.Stats.LabelTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, hit, err := r.render(ctx, labelsKey, root, reg, placements, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// labels returns cached placements for key or lays them out and stores
// them. Undecodable cache entries are recomputed.
func (r *Runner) labels(ctx context.Context, key string, root *hierarchy.Node, reg *feature.Registry, opts Options) ([]label.Placement, bool) {
	if !opts.Refresh {
		if data, ok := r.get(ctx, keyTypeLabels, key); ok {
			var ps []label.Placement
			if err := json.Unmarshal(data, &ps); err == nil {
				return ps, true
			}
			r.Logger.Warn("discarding corrupt cached labels", "key", key)
		}
	}

	hooks := observability.Pipeline()
	sectors := len(label.VisibleSectors(root, opts.View()))
	hooks.OnLayoutStart(ctx, sectors)
	start := time.Now()
	placements := Labels(root, reg, opts)
	hooks.OnLayoutComplete(ctx, Summarize(placements), time.Since(start))

	if data, err := json.Marshal(placements); err == nil {
		r.set(ctx, keyTypeLabels, key, data)
	}
	return placements, false
}

// render returns the artifacts of every requested format, from cache when
// all of them are present.
func (r *Runner) render(ctx context.Context, labelsKey string, root *hierarchy.Node, reg *feature.Registry, placements []label.Placement, opts Options) (map[string][]byte, bool, error) {
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok := r.get(ctx, keyTypeArtifact, r.Keyer.ArtifactKey(labelsKey, opts.ArtifactKeyOpts(format)))
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(root, reg, placements, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		r.set(ctx, keyTypeArtifact, r.Keyer.ArtifactKey(labelsKey, opts.ArtifactKeyOpts(format)), data)
	}
	return rendered, false, nil
}

func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte) {
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

