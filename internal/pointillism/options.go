package pointillism

// Defaults applied when a caller does not choose a value.
const (
	// DefaultTolerance is the Euclidean RGB distance under which two colors
	// are considered equal.
	DefaultTolerance = 1.0

	// DefaultStep is the radius decrement between adaptive passes.
	DefaultStep = 1

	// DefaultRadius is the radius used by a single sizable pass.
	DefaultRadius = 1

	// DefaultGridWeight is the stride of the fixed grid sampler.
	DefaultGridWeight = 1
)

// Options configures an adaptive run.
type Options struct {
	// MinRadius is the smallest radius attempted (inclusive). Must be >= 1.
	MinRadius int `json:"min_radius"`

	// MaxRadius is the first radius attempted. Must be >= MinRadius.
	MaxRadius int `json:"max_radius"`

	// Step is subtracted from the radius after each pass. Must be >= 1.
	// MinRadius is only attempted if the step sequence lands on it.
	Step int `json:"step"`

	// Tolerance is the color-match looseness of the ring test.
	Tolerance float64 `json:"tolerance"`
}

// DefaultOptions returns options for a run between minRadius and maxRadius
// with the default step and tolerance.
func DefaultOptions(minRadius, maxRadius int) Options {
	return Options{
		MinRadius: minRadius,
		MaxRadius: maxRadius,
		Step:      DefaultStep,
		Tolerance: DefaultTolerance,
	}
}

// Valid reports whether a run with these options would attempt any radius.
func (o Options) Valid() bool {
	return o.MinRadius >= 1 && o.MaxRadius >= o.MinRadius && o.Step >= 1
}

// Radii lists the radii an adaptive run visits, largest first. It is empty
// for invalid options.
func (o Options) Radii() []int {
	if !o.Valid() {
		return nil
	}
	radii := make([]int, 0, (o.MaxRadius-o.MinRadius)/o.Step+1)
	for r := o.MaxRadius; r >= o.MinRadius; r -= o.Step {
		radii = append(radii, r)
	}
	return radii
}
