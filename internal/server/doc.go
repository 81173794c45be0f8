// Package server implements the MCP (Model Context Protocol) server for colour analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colours package
// through the MCP protocol, so MCP clients can ask for the average colour and
// colour composition of image files.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Colour Analysis:
//   - image_average_colour: Mean colour of the sampled pixels
//   - image_colour_area: Colour buckets with averaged colour and area fraction
//   - image_colour_swatch: Colour buckets rendered as a PNG strip
//
// Test Images:
//   - image_generate_pattern: Write a solid, half or quarters PNG
//
// The analysis tools accept resolution, black_threshold, white_threshold,
// palette and normalise arguments. Omitted settings take the defaults of
// colours.DefaultReader.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls. Writing a pattern to a path
// evicts that path from the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "invalid parameter: resolution 1.5 outside (0, 1]"
//
// # Usage
//
//	srv := server.New(server.WithDebug(true))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
