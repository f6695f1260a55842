package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// DisplayConfig contains client display options. None of it affects the
// simulation.
type DisplayConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	PixelsPerUnit          float64 // top-down render scale
	CameraSmoothing        float64 // per-60Hz-frame follow lerp
}

// Display is the global display configuration
var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		PixelsPerUnit:          16,
		CameraSmoothing:        0.15,
	}
}
