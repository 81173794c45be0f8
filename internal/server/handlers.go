package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/colour-tools-mcp/internal/colours"
	"github.com/ironsheep/colour-tools-mcp/internal/imaging"
)

// Hue palettes selectable through the palette argument.
const (
	paletteBase = "base"
	paletteFine = "fine"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_colour_area").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Builds a colours.Reader, applying defaults for omitted settings
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Colour Analysis
	case "image_average_colour":
		return s.handleImageAverageColour(args)
	case "image_colour_area":
		return s.handleImageColourArea(args)
	case "image_colour_swatch":
		return s.handleImageColourSwatch(args)

	// Test Images
	case "image_generate_pattern":
		return s.handleImageGeneratePattern(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Colour Analysis Handlers ===

// analysisArgs holds the optional reader settings. Pointers distinguish an
// omitted setting from an explicit zero.
type analysisArgs struct {
	Path           string   `json:"path"`
	Resolution     *float64 `json:"resolution"`
	BlackThreshold *float64 `json:"black_threshold"`
	WhiteThreshold *float64 `json:"white_threshold"`
	Palette        string   `json:"palette"`
	Normalise      bool     `json:"normalise"`
}

// reader builds a colours.Reader from the arguments on top of the defaults.
func (a analysisArgs) reader() (colours.Reader, error) {
	opts := []colours.Option{colours.WithNormalisedAreasOption(a.Normalise)}
	if a.Resolution != nil {
		opts = append(opts, colours.WithResolutionOption(*a.Resolution))
	}

	black, white := colours.DefaultBlackThreshold, colours.DefaultWhiteThreshold
	if a.BlackThreshold != nil {
		black = *a.BlackThreshold
	}
	if a.WhiteThreshold != nil {
		white = *a.WhiteThreshold
	}
	opts = append(opts, colours.WithThresholdsOption(black, white))

	switch a.Palette {
	case "", paletteBase:
	case paletteFine:
		opts = append(opts, colours.WithHuesOption(colours.FineHues()))
	default:
		return colours.Reader{}, fmt.Errorf("unknown palette: %s", a.Palette)
	}

	return colours.NewReader(opts...)
}

func (s *Server) handleImageAverageColour(args json.RawMessage) (interface{}, error) {
	var a analysisArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	reader, err := a.reader()
	if err != nil {
		return nil, err
	}
	return imaging.AverageColour(s.cache, a.Path, reader)
}

func (s *Server) handleImageColourArea(args json.RawMessage) (interface{}, error) {
	var a analysisArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	reader, err := a.reader()
	if err != nil {
		return nil, err
	}
	result, _, err := imaging.ColourArea(s.cache, a.Path, reader)
	if err != nil {
		return nil, err
	}
	return result, nil
}

type imageColourSwatchArgs struct {
	analysisArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageColourSwatch(args json.RawMessage) (interface{}, error) {
	var a imageColourSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = imaging.DefaultSwatchWidth
	}
	if a.Height == 0 {
		a.Height = imaging.DefaultSwatchHeight
	}
	reader, err := a.reader()
	if err != nil {
		return nil, err
	}
	_, areas, err := imaging.ColourArea(s.cache, a.Path, reader)
	if err != nil {
		return nil, err
	}
	return imaging.RenderSwatch(areas, a.Width, a.Height)
}

// === Test Image Handlers ===

type imageGeneratePatternArgs struct {
	Path    string   `json:"path"`
	Pattern string   `json:"pattern"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Colours []string `json:"colours"`
}

func (s *Server) handleImageGeneratePattern(args json.RawMessage) (interface{}, error) {
	var a imageGeneratePatternArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return imaging.SavePattern(s.cache, a.Path, a.Pattern, a.Width, a.Height, a.Colours)
}
