// Package io reads and writes the files the sunburst tools exchange.
//
// # Hierarchy JSON
//
// A hierarchy is a nested object per node. Geometry comes from the
// partition layout that produced the file and is taken as is:
//
//	{
//	  "f": "_", "x0": 0, "x1": 1, "y0": 0, "y1": 1,
//	  "children": [
//	    {"f": "age:>30", "x0": 0, "x1": 0.4, "y0": 1, "y1": 2},
//	    {"f": "age:<=30", "x0": 0.4, "x1": 1, "y0": 1, "y1": 2}
//	  ]
//	}
//
// The token may also be nested as {"data": {"f": "..."}}, the shape d3
// hierarchies serialize to. Depths are assigned from nesting and the
// partition invariants are checked with [hierarchy.Node.Validate].
//
// # Feature registries
//
// Registries list explicit labels and colours for feature tokens, either
// as TOML:
//
//	[[feature]]
//	token = "f3"
//	name = "Petal width"
//	value = "<= 1.75"
//	short = "PW"
//	color = "#4e79a7"
//
// or as a JSON array of the same objects. Tokens not listed fall back to
// "name:value" parsing.
//
// # Placements
//
// [WritePlacements] emits the layout decisions as an indented JSON array,
// one object per labelled sector.
package io
