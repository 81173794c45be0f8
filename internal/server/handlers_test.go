package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}


// callTool issues a tools/call request for name with the given arguments.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleToolsCall returned nil")
	}
	return resp
}

// decodeToolResult unmarshals the text content of a successful tool response into v.
func decodeToolResult(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("unexpected error: %s (%s)", resp.Error.Message, resp.Error.Data)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("expected a single content entry, got %v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	text, _ := content[0]["text"].(string)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("failed to decode tool result %q: %v", text, err)
	}
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	path := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})
	defer os.Remove(path)

	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	decodeToolResult(t, callTool(t, New(), "image_load", map[string]interface{}{"path": path}), &info)

	if info.Width != 100 || info.Height != 80 {
		t.Errorf("size: got %dx%d, want 100x80", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	path := createTestImageFile(t, 64, 32, color.RGBA{0, 0, 255, 255})
	defer os.Remove(path)

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	decodeToolResult(t, callTool(t, New(), "image_dimensions", map[string]interface{}{"path": path}), &dims)

	if dims.Width != 64 || dims.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_AverageColour(t *testing.T) {
	path := createTestImageFile(t, 20, 20, color.RGBA{0, 255, 0, 255})
	defer os.Remove(path)

	var result struct {
		Color struct {
			Hex        string  `json:"hex"`
			HueDegrees float64 `json:"hue_degrees"`
		} `json:"color"`
		Resolution float64 `json:"resolution"`
		Samples    int     `json:"samples"`
	}
	args := map[string]interface{}{"path": path, "resolution": 0.5}
	decodeToolResult(t, callTool(t, New(), "image_average_colour", args), &result)

	if result.Color.Hex != "#00ff00" {
		t.Errorf("hex: got %s, want #00ff00", result.Color.Hex)
	}
	if result.Color.HueDegrees < 119.9 || result.Color.HueDegrees > 120.1 {
		t.Errorf("hue: got %f, want 120", result.Color.HueDegrees)
	}
	if result.Resolution != 0.5 {
		t.Errorf("resolution: got %f, want 0.5", result.Resolution)
	}
	if result.Samples != 100 {
		t.Errorf("samples: got %d, want 100", result.Samples)
	}
}

type colourAreaResponse struct {
	Buckets []struct {
		Bucket string  `json:"bucket"`
		Area   float64 `json:"area"`
	} `json:"buckets"`
	TotalArea    float64 `json:"total_area"`
	Samples      int     `json:"samples"`
	Unclassified float64 `json:"unclassified"`
	Normalised   bool    `json:"normalised"`
}

func TestHandleToolsCall_GeneratePatternThenColourArea(t *testing.T) {
	s := New()
	path := filepath.Join(t.TempDir(), "quarters.png")

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	decodeToolResult(t, callTool(t, s, "image_generate_pattern", map[string]interface{}{
		"path":    path,
		"pattern": "solid",
		"width":   10,
		"height":  10,
		"colours": []string{"#ffffff"},
	}), &dims)
	if dims.Width != 10 || dims.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 10x10", dims.Width, dims.Height)
	}

	var areas colourAreaResponse
	decodeToolResult(t, callTool(t, s, "image_colour_area", map[string]interface{}{"path": path}), &areas)
	if len(areas.Buckets) != 1 || areas.Buckets[0].Bucket != "white" {
		t.Fatalf("expected a single white bucket, got %+v", areas.Buckets)
	}

	// Overwriting the same path must not serve the cached solid image
	decodeToolResult(t, callTool(t, s, "image_generate_pattern", map[string]interface{}{
		"path":    path,
		"pattern": "quarters",
		"width":   40,
		"height":  40,
		"colours": []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"},
	}), &dims)

	decodeToolResult(t, callTool(t, s, "image_colour_area", map[string]interface{}{"path": path}), &areas)
	if len(areas.Buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d: %+v", len(areas.Buckets), areas.Buckets)
	}
	seen := map[string]bool{}
	for _, b := range areas.Buckets {
		seen[b.Bucket] = true
		if b.Area < 0.2499 || b.Area > 0.2501 {
			t.Errorf("bucket %s: area got %f, want 0.25", b.Bucket, b.Area)
		}
	}
	for _, want := range []string{"red", "green", "blue", "white"} {
		if !seen[want] {
			t.Errorf("missing bucket %s", want)
		}
	}
	if areas.Samples != 1600 {
		t.Errorf("samples: got %d, want 1600", areas.Samples)
	}
	if areas.TotalArea < 0.9999 || areas.TotalArea > 1.0001 {
		t.Errorf("total area: got %f, want 1", areas.TotalArea)
	}
}

func TestHandleToolsCall_ColourAreaNormalised(t *testing.T) {
	s := New()
	path := filepath.Join(t.TempDir(), "half.png")

	// Red and orange land in separate buckets of the fine palette
	var dims struct{}
	decodeToolResult(t, callTool(t, s, "image_generate_pattern", map[string]interface{}{
		"path":    path,
		"pattern": "half",
		"width":   20,
		"height":  20,
		"colours": []string{"#ff0000", "#ff8000"},
	}), &dims)

	var areas colourAreaResponse
	decodeToolResult(t, callTool(t, s, "image_colour_area", map[string]interface{}{
		"path":    path,
		"palette": "fine",
	}), &areas)
	if len(areas.Buckets) != 2 {
		t.Fatalf("fine palette: expected 2 buckets, got %+v", areas.Buckets)
	}

	decodeToolResult(t, callTool(t, s, "image_colour_area", map[string]interface{}{
		"path":      path,
		"normalise": true,
	}), &areas)
	if !areas.Normalised {
		t.Error("expected normalised result")
	}
	if areas.Unclassified != 0 {
		t.Errorf("unclassified: got %f, want 0", areas.Unclassified)
	}
}

func TestHandleToolsCall_ColourSwatch(t *testing.T) {
	path := createTestImageFile(t, 10, 10, color.RGBA{0, 0, 255, 255})
	defer os.Remove(path)

	var swatch struct {
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		ImageBase64 string `json:"image_base64"`
		MimeType    string `json:"mime_type"`
		Bands       int    `json:"bands"`
	}
	decodeToolResult(t, callTool(t, New(), "image_colour_swatch", map[string]interface{}{"path": path}), &swatch)

	if swatch.Width != 400 || swatch.Height != 40 {
		t.Errorf("size: got %dx%d, want 400x40 defaults", swatch.Width, swatch.Height)
	}
	if swatch.MimeType != "image/png" {
		t.Errorf("mime type: got %s, want image/png", swatch.MimeType)
	}
	if swatch.Bands != 1 {
		t.Errorf("bands: got %d, want 1", swatch.Bands)
	}
	if swatch.ImageBase64 == "" {
		t.Error("expected base64 image data")
	}
}

func TestHandleToolsCall_InvalidSettings(t *testing.T) {
	path := createTestImageFile(t, 10, 10, color.RGBA{255, 0, 0, 255})
	defer os.Remove(path)

	tests := []struct {
		name     string
		args     map[string]interface{}
		wantData string
	}{
		{"zero resolution", map[string]interface{}{"path": path, "resolution": 0}, "invalid parameter"},
		{"resolution above one", map[string]interface{}{"path": path, "resolution": 1.5}, "invalid parameter"},
		{"negative black threshold", map[string]interface{}{"path": path, "black_threshold": -0.1}, "invalid parameter"},
		{"unknown palette", map[string]interface{}{"path": path, "palette": "pastel"}, "unknown palette"},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, "image_colour_area", tt.args)
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("error code: got %d, want -32000", resp.Error.Code)
			}
			if !strings.Contains(resp.Error.Data, tt.wantData) {
				t.Errorf("error data %q should contain %q", resp.Error.Data, tt.wantData)
			}
		})
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	resp := callTool(t, New(), "image_average_colour", map[string]interface{}{
		"path": "/nonexistent/image.png",
	})

	if resp.Error == nil {
		t.Fatal("expected error for non-existent file")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	resp := callTool(t, New(), "nonexistent_tool", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
	if !strings.Contains(resp.Error.Data, "unknown tool") {
		t.Errorf("error data: got %q", resp.Error.Data)
	}
}

func TestHandleToolsCall_MissingArguments(t *testing.T) {
	s := New()

	for _, name := range []string{"image_load", "image_colour_area", "image_generate_pattern"} {
		t.Run(name, func(t *testing.T) {
			// Missing "path" argument
			resp := callTool(t, s, name, map[string]interface{}{})
			if resp.Error == nil {
				t.Error("expected error for missing path")
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	resp := New().handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`{invalid`),
	})

	if resp.Error == nil {
		t.Fatal("expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code: got %d, want -32602", resp.Error.Code)
	}
}
