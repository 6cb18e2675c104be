package server

import (
	"log"
	"math"
	"os"
	"strconv"

	"github.com/ironsheep/pointillism-mcp/internal/pointillism"
)

// Identity reported in the initialize handshake.
const (
	ServerName    = "pointillism-mcp"
	ServerVersion = "0.1.0"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "POINTILLISM_MCP_LOG_LEVEL"
	EnvTolerance = "POINTILLISM_MCP_TOLERANCE"
	EnvStep      = "POINTILLISM_MCP_STEP"
	EnvMaxPoints = "POINTILLISM_MCP_MAX_POINTS"
)

// Config holds server-wide defaults. Tool arguments override them per call.
type Config struct {
	// Debug enables request and pass logging on stderr.
	Debug bool

	// Tolerance is used when a tool call does not pass one.
	Tolerance float64

	// Step is the adaptive radius decrement used when a call passes 0.
	Step int

	// MaxPoints caps the number of points returned per call. 0 means no cap.
	// The full count is still reported.
	MaxPoints int
}

// DefaultConfig returns the built-in defaults: tolerance 1, step 1, no cap.
func DefaultConfig() Config {
	return Config{
		Tolerance: pointillism.DefaultTolerance,
		Step:      pointillism.DefaultStep,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies the POINTILLISM_MCP_*
// environment variables. Malformed or out-of-range values are logged and
// ignored.
func ConfigFromEnv() Config {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvLogLevel); ok && v == "debug" {
		cfg.Debug = true
	}

	if v, ok := lookup(EnvTolerance); ok {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			log.Printf("Ignoring %s=%q: want a finite non-negative number", EnvTolerance, v)
		} else {
			cfg.Tolerance = t
		}
	}

	if v, ok := lookup(EnvStep); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Printf("Ignoring %s=%q: want an integer >= 1", EnvStep, v)
		} else {
			cfg.Step = n
		}
	}

	if v, ok := lookup(EnvMaxPoints); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("Ignoring %s=%q: want an integer >= 0", EnvMaxPoints, v)
		} else {
			cfg.MaxPoints = n
		}
	}

	return cfg
}
