package capture

const (
	FacingModeUser        = "user"
	FacingModeEnvironment = "environment"
)

// Constraints are the preferred capture settings. The device may deliver
// larger frames; they are scaled down to fit Width x Height. Images whose
// declared size exceeds MaxPixels are rejected before decoding.
type Constraints struct {
	FacingMode  string
	Width       int
	Height      int
	JPEGQuality int
	MaxPixels   int
}

// maxPixelsFactor bounds decoded images relative to the target frame size.
const maxPixelsFactor = 16

func DefaultConstraints() Constraints {
	return Constraints{
		FacingMode:  FacingModeUser,
		Width:       1280,
		Height:      720,
		JPEGQuality: 80,
	}
}

func (c Constraints) withDefaults() Constraints {
	defaults := DefaultConstraints()
	if c.FacingMode == "" {
		c.FacingMode = defaults.FacingMode
	}
	if c.Width <= 0 {
		c.Width = defaults.Width
	}
	if c.Height <= 0 {
		c.Height = defaults.Height
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = defaults.JPEGQuality
	}
	if c.MaxPixels <= 0 {
		c.MaxPixels = maxPixelsFactor * c.Width * c.Height
	}
	return c
}
