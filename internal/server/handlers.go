package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/pointillism-mcp/internal/imaging"
	"github.com/ironsheep/pointillism-mcp/internal/pointillism"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pointillism_sample_adaptive").
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
		s.debugf("tool %s failed: %v", params.Name, err)
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
// Every sampling handler builds a fresh buffer from the cached image, so the
// destructive passes of one call never leak into the next.
func (s *Server) executeTool(name string, args json.RawMessage) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tool %s panicked: %v", name, r)
			result, err = nil, fmt.Errorf("internal error in %s: %v", name, r)
		}
	}()

	switch name {
	case "pointillism_load":
		return s.handleLoad(args)
	case "pointillism_sample_adaptive":
		return s.handleSampleAdaptive(args)
	case "pointillism_sample_sizable":
		return s.handleSampleSizable(args)
	case "pointillism_sample_grid":
		return s.handleSampleGrid(args)
	case "pointillism_exclude_color":
		return s.handleExcludeColor(args)
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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared source handling ===

// sourceArgs are accepted by every tool that reads pixels.
type sourceArgs struct {
	Path            string          `json:"path"`
	Region          *imaging.Region `json:"region,omitempty"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	Smooth          float64         `json:"smooth"`
	Exclude         []excludeArgs   `json:"exclude,omitempty"`
	IncludeResidual bool            `json:"include_residual"`
}

type excludeArgs struct {
	Color     string   `json:"color"`
	Tolerance *float64 `json:"tolerance,omitempty"`
}

// tolerance resolves an optional per-call tolerance against the config.
// A pointer is used so an explicit 0 is honoured.
func (s *Server) tolerance(t *float64) (float64, error) {
	if t == nil {
		return s.cfg.Tolerance, nil
	}
	if *t < 0 {
		return 0, fmt.Errorf("tolerance must be >= 0, got %g", *t)
	}
	return *t, nil
}

// prepare loads the source image and builds a fresh sampling buffer.
func (s *Server) prepare(a sourceArgs) (*imaging.PrepareResult, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	opts := imaging.PrepareOptions{
		Width:  a.Width,
		Height: a.Height,
		Smooth: a.Smooth,
		Region: a.Region,
	}
	for _, ex := range a.Exclude {
		c, err := pointillism.ParseColor(ex.Color)
		if err != nil {
			return nil, err
		}
		t, err := s.tolerance(ex.Tolerance)
		if err != nil {
			return nil, err
		}
		opts.Exclude = append(opts.Exclude, imaging.ExcludeSpec{Color: c, Tolerance: t})
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.PrepareWithExclusions(img, opts)
}

// SampleResult is returned by every sampling tool.
type SampleResult struct {
	Width           int                     `json:"width"`
	Height          int                     `json:"height"`
	PointCount      int                     `json:"point_count"`
	ExcludedPixels  int                     `json:"excluded_pixels"`
	RemainingPixels int                     `json:"remaining_pixels"`
	Passes          []pointillism.PassCount `json:"passes"`
	Points          []pointillism.Point     `json:"points"`
	Truncated       bool                    `json:"truncated"`
	Residual        *imaging.EncodedImage   `json:"residual,omitempty"`
}

// sampleResult assembles a SampleResult, applying the MaxPoints cap and
// encoding the residual buffer when asked to.
func (s *Server) sampleResult(prep *imaging.PrepareResult, points []pointillism.Point, includeResidual bool) (*SampleResult, error) {
	buf := prep.Buffer
	res := &SampleResult{
		Width:           buf.Width(),
		Height:          buf.Height(),
		PointCount:      len(points),
		ExcludedPixels:  prep.Excluded,
		RemainingPixels: buf.OpaqueCount(),
		Passes:          pointillism.CountByRadius(points),
		Points:          points,
	}

	if s.cfg.MaxPoints > 0 && len(points) > s.cfg.MaxPoints {
		res.Points = points[:s.cfg.MaxPoints]
		res.Truncated = true
	}

	if includeResidual && !buf.Empty() {
		enc, err := imaging.EncodeBuffer(buf)
		if err != nil {
			return nil, err
		}
		res.Residual = enc
	}

	return res, nil
}

// === Tool handlers ===

type loadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleLoad(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	s.debugf("loaded %s (%dx%d), %d images cached", a.Path, info.Width, info.Height, s.cache.Len())
	return info, nil
}

type sampleAdaptiveArgs struct {
	sourceArgs
	MinRadius int      `json:"min_radius"`
	MaxRadius int      `json:"max_radius"`
	Step      int      `json:"step"`
	Tolerance *float64 `json:"tolerance,omitempty"`
}

func (s *Server) handleSampleAdaptive(args json.RawMessage) (interface{}, error) {
	var a sampleAdaptiveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Step == 0 {
		a.Step = s.cfg.Step
	}
	tol, err := s.tolerance(a.Tolerance)
	if err != nil {
		return nil, err
	}

	prep, err := s.prepare(a.sourceArgs)
	if err != nil {
		return nil, err
	}

	opts := pointillism.Options{
		MinRadius: a.MinRadius,
		MaxRadius: a.MaxRadius,
		Step:      a.Step,
		Tolerance: tol,
	}
	if !opts.Valid() {
		s.debugf("adaptive options %+v attempt no radius", opts)
	}

	points := pointillism.SampleAdaptive(prep.Buffer, opts)
	s.debugf("adaptive %s: radii %v -> %d points", a.Path, opts.Radii(), len(points))

	return s.sampleResult(prep, points, a.IncludeResidual)
}

type sampleSizableArgs struct {
	sourceArgs
	Radius    int      `json:"radius"`
	Consume   bool     `json:"consume"`
	Tolerance *float64 `json:"tolerance,omitempty"`
}

func (s *Server) handleSampleSizable(args json.RawMessage) (interface{}, error) {
	var a sampleSizableArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = pointillism.DefaultRadius
	}
	tol, err := s.tolerance(a.Tolerance)
	if err != nil {
		return nil, err
	}

	prep, err := s.prepare(a.sourceArgs)
	if err != nil {
		return nil, err
	}

	points := pointillism.SampleSizable(prep.Buffer, a.Radius, tol, a.Consume)
	s.debugf("sizable %s: radius %d consume %v -> %d points", a.Path, a.Radius, a.Consume, len(points))

	return s.sampleResult(prep, points, a.IncludeResidual)
}

type sampleGridArgs struct {
	sourceArgs
	Weight int `json:"weight"`
}

func (s *Server) handleSampleGrid(args json.RawMessage) (interface{}, error) {
	var a sampleGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Weight == 0 {
		a.Weight = pointillism.DefaultGridWeight
	}

	prep, err := s.prepare(a.sourceArgs)
	if err != nil {
		return nil, err
	}

	points := pointillism.SampleGrid(prep.Buffer, a.Weight)
	return s.sampleResult(prep, points, a.IncludeResidual)
}

type excludeColorArgs struct {
	sourceArgs
	Color     string   `json:"color"`
	Tolerance *float64 `json:"tolerance,omitempty"`
}

// ExcludeResult reports the effect of the exclude-color pre-pass alone.
type ExcludeResult struct {
	Width           int                   `json:"width"`
	Height          int                   `json:"height"`
	ExcludedPixels  int                   `json:"excluded_pixels"`
	RemainingPixels int                   `json:"remaining_pixels"`
	Residual        *imaging.EncodedImage `json:"residual,omitempty"`
}

func (s *Server) handleExcludeColor(args json.RawMessage) (interface{}, error) {
	var a excludeColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		return nil, fmt.Errorf("color is required")
	}
	a.Exclude = append(a.Exclude, excludeArgs{Color: a.Color, Tolerance: a.Tolerance})

	prep, err := s.prepare(a.sourceArgs)
	if err != nil {
		return nil, err
	}

	res := &ExcludeResult{
		Width:           prep.Buffer.Width(),
		Height:          prep.Buffer.Height(),
		ExcludedPixels:  prep.Excluded,
		RemainingPixels: prep.Buffer.OpaqueCount(),
	}
	if a.IncludeResidual && !prep.Buffer.Empty() {
		enc, err := imaging.EncodeBuffer(prep.Buffer)
		if err != nil {
			return nil, err
		}
		res.Residual = enc
	}
	return res, nil
}
