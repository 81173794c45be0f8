package server

import "github.com/ironsheep/colour-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// analysisProperties are the colour-area settings shared by several tools
func analysisProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"resolution": map[string]interface{}{
			"type":        "number",
			"description": "Sampling density in (0, 1]. 1 reads every pixel, 0.5 every second column and row. Default 1.0",
			"default":     1.0,
		},
		"black_threshold": map[string]interface{}{
			"type":        "number",
			"description": "Brightness (0-1) at or below which a pixel counts as black. Default 0.1",
			"default":     0.1,
		},
		"white_threshold": map[string]interface{}{
			"type":        "number",
			"description": "Saturation (0-1) at or below which bright pixels count as white and mid pixels as grey. Default 0.1",
			"default":     0.1,
		},
		"palette": map[string]interface{}{
			"type":        "string",
			"enum":        []string{paletteBase, paletteFine},
			"description": "Hue buckets: 'base' (6 buckets, 60 degrees wide) or 'fine' (12 buckets, 30 degrees wide). Default base",
			"default":     paletteBase,
		},
		"normalise": map[string]interface{}{
			"type":        "boolean",
			"description": "Report areas as fractions of classified pixels only. Default false",
			"default":     false,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	swatchProps := analysisProperties()
	swatchProps["width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Swatch width in pixels. Default 400",
		"default":     imaging.DefaultSwatchWidth,
	}
	swatchProps["height"] = map[string]interface{}{
		"type":        "integer",
		"description": "Swatch height in pixels. Default 40",
		"default":     imaging.DefaultSwatchHeight,
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Colour Analysis
		{
			Name:        "image_average_colour",
			Description: "Compute the average colour of an image, returned as hex, RGB and HSB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"resolution": map[string]interface{}{
						"type":        "number",
						"description": "Sampling density in (0, 1]. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_colour_area",
			Description: "Break an image into colour buckets (black, white, grey and hue ranges) with the average colour and area fraction of each, largest first.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": analysisProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_colour_swatch",
			Description: "Render the colour buckets of an image as a PNG strip, each band as wide as its area. Returned as base64.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": swatchProps,
				"required":   []string{"path"},
			},
		},

		// Test Images
		{
			Name:        "image_generate_pattern",
			Description: "Write a PNG test image: a solid colour, two halves, or four quadrants.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the PNG file to write",
					},
					"pattern": map[string]interface{}{
						"type":        "string",
						"enum":        []string{imaging.PatternSolid, imaging.PatternHalf, imaging.PatternQuarters},
						"description": "solid (1 colour), half (2: left, right) or quarters (4: top-left, top-right, bottom-left, bottom-right)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Image width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Image height in pixels",
					},
					"colours": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Hex colours such as #ff0000, one per region",
					},
				},
				"required": []string{"path", "pattern", "width", "height", "colours"},
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
