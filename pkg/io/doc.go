// Package io reads and writes graphs and dominating sets in the PACE 2025
// text formats, plus a JSON form of solutions for the HTTP API and the
// best-known cache.
//
// # Graph Format
//
// A graph file starts with a problem line and lists one edge per line, with
// vertices numbered from 1:
//
//	c an optional comment
//	p ds 4 3
//	1 2
//	2 3
//	3 4
//
// Lines starting with 'c' and blank lines are ignored anywhere in the file.
// Vertices are converted to the 0-based ids used by [graph.Graph] on read
// and back to 1-based on write.
//
// # Solution Format
//
// A solution lists its size followed by one 1-based vertex per line:
//
//	2
//	2
//	3
//
// # JSON
//
// [Solution] is the JSON shape shared by the HTTP API and the cache:
//
//	{"size": 2, "vertices": [1, 2], "graph_hash": "…"}
//
// JSON vertices are 0-based, matching the Go API.
//
// # Errors
//
// Malformed input yields an INVALID_FORMAT error naming the offending line;
// structurally invalid graphs (out-of-range endpoints, self-loops) yield
// INVALID_GRAPH; missing files yield FILE_NOT_FOUND. All codes come from
// pkg/errors.
//
// [graph.Graph]: github.com/matzehuels/domsearch/pkg/graph.Graph
package io
