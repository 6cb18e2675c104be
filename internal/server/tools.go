package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// sourceProperties returns the schema of the arguments shared by every tool
// that samples pixels, merged with the tool's own properties.
func sourceProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Optional sub-rectangle to sample (after resizing). Parts outside the image are treated as transparent.",
			"properties": map[string]interface{}{
				"x":      map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
				"y":      map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
				"width":  map[string]interface{}{"type": "integer", "description": "Region width in pixels"},
				"height": map[string]interface{}{"type": "integer", "description": "Region height in pixels"},
			},
			"required": []string{"x", "y", "width", "height"},
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Optional resize width before sampling. If only one of width/height is set the aspect ratio is kept.",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Optional resize height before sampling.",
		},
		"smooth": map[string]interface{}{
			"type":        "number",
			"description": "Optional Gaussian blur radius applied before sampling to even out noise. Default 0 (off)",
			"default":     0,
		},
		"exclude": map[string]interface{}{
			"type":        "array",
			"description": "Colors to make transparent before sampling (e.g. a background)",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color":     map[string]interface{}{"type": "string", "description": "Hex color (#RRGGBB)"},
					"tolerance": map[string]interface{}{"type": "number", "description": "Euclidean RGB distance. Default from server config (1)"},
				},
				"required": []string{"color"},
			},
		},
		"include_residual": map[string]interface{}{
			"type":        "boolean",
			"description": "Return the buffer after sampling as base64 PNG; consumed pixels are transparent",
			"default":     false,
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

var toleranceProperty = map[string]interface{}{
	"type":        "number",
	"description": "Maximum Euclidean RGB distance for two colors to count as equal. Default 1",
	"default":     1,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "pointillism_load",
			Description: "Load an image file and return its dimensions, format and how many opaque pixels are available for sampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "pointillism_sample_adaptive",
			Description: "Convert an image into colored circular points, largest first. Each pass places every circle whose boundary ring " +
				"matches its center color, removes the covered disk, then shrinks the radius by step until min_radius. " +
				"Points are ordered by descending radius, then row by row.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sourceProperties(map[string]interface{}{
					"min_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Smallest radius to try (inclusive, >= 1)",
					},
					"max_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Largest radius, tried first",
					},
					"step": map[string]interface{}{
						"type":        "integer",
						"description": "Radius decrement between passes. Default 1",
						"default":     1,
					},
					"tolerance": toleranceProperty,
				}),
				"required": []string{"path", "min_radius", "max_radius"},
			},
		},
		{
			Name:        "pointillism_sample_sizable",
			Description: "Run a single sampling pass at one radius. Every pixel whose ring at that radius is uniform becomes a point of diameter 2*radius.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sourceProperties(map[string]interface{}{
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Test radius. Default 1",
						"default":     1,
					},
					"consume": map[string]interface{}{
						"type":        "boolean",
						"description": "Remove the disk covered by each accepted point so overlapping points are not emitted. Default false",
						"default":     false,
					},
					"tolerance": toleranceProperty,
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "pointillism_sample_grid",
			Description: "Sample every opaque pixel on a fixed grid with the given stride, without any uniformity test.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sourceProperties(map[string]interface{}{
					"weight": map[string]interface{}{
						"type":        "integer",
						"description": "Grid stride and point size in pixels. Default 1",
						"default":     1,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "pointillism_exclude_color",
			Description: "Make every pixel within tolerance of a color transparent and report how many were removed. Useful to preview a background removal before sampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": sourceProperties(map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color to remove (#RRGGBB or #RGB)",
					},
					"tolerance": toleranceProperty,
				}),
				"required": []string{"path", "color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
