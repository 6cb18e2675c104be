// Package server implements the MCP (Model Context Protocol) server that
// exposes pointillism sampling as tools.
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
//   - pointillism_load: Load image and get metadata
//   - pointillism_sample_adaptive: Multi-radius point packing, largest first
//   - pointillism_sample_sizable: One pass at a fixed radius
//   - pointillism_sample_grid: Fixed stride grid sampling
//   - pointillism_exclude_color: Remove a color and report the result
//
// Every pixel tool accepts the same source block: path, optional resize
// (width/height), smooth, region, exclude colors and include_residual.
//
// # Buffers and Caching
//
// Decoded images are cached by path for the lifetime of the process and are
// never modified. Each tool call builds its own buffer from the cached image,
// so destructive sampling runs are isolated per call.
//
// # Configuration
//
// Defaults for tolerance, step and the point cap come from Config, usually
// loaded with ConfigFromEnv. Per-call arguments override them.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Invalid radius parameters are not errors: they produce an empty point list.
package server
