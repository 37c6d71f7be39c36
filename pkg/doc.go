// Package pkg provides the core libraries for sunburst label placement.
//
// # Overview
//
// A sunburst chart draws a partitioned hierarchy as concentric rings: each
// node is an annular sector whose angular span is its share of the parent
// and whose ring is its depth. Sunburst decides, for every sector on the
// visible text ring, whether its label curves along the sector or runs
// radially through it, shortens labels that do not fit and leaves slivers
// empty. The pkg directory is organized into four areas:
//
//  1. Geometry - [polar] scales and text paths, [fonts] metrics
//  2. Domain - [hierarchy] nodes, [feature] tokens and registries, [label] layout
//  3. Output - [render/sunburst] SVG documents, [render] PNG/PDF conversion, [io]
//  4. Infrastructure - [pipeline], [cache], [config], [errors], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	hierarchy JSON + feature registry (TOML/JSON)
//	         ↓
//	    [io] package (decode and validate)
//	         ↓
//	    [label] package (choose arc or line, fit text)
//	         ↓
//	    [render/sunburst] package (sectors + text paths)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Place labels and render an SVG:
//
//	root, _ := io.ImportHierarchy("tree.json")
//	reg, _ := io.ImportFeatures("features.toml")
//
//	view := label.NewView(1, 4, 0, 290)
//	layer := label.NewLayer(label.Context{Lookup: reg, Fill: reg.Color})
//	placements := layer.RenderText(root, view)
//
//	svg := sunburst.RenderSVG(root, view, placements, sunburst.WithRegistry(reg))
//
// Or run the cached pipeline the CLI and server share:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Input{Hierarchy: data}, pipeline.Options{})
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./...      # Include integration tests
//
// [polar]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/polar
// [fonts]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/fonts
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/hierarchy
// [feature]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/feature
// [label]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/label
// [render]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/render
// [render/sunburst]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/render/sunburst
// [io]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sunburst/pkg/observability
package pkg
