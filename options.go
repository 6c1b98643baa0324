package canvas

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default ARGB canvas
//	c, err := canvas.New(800, 600)
//
//	// Half-transparent layer
//	layer, err := canvas.New(200, 100, canvas.WithOpacity(0.5))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	colorType ColorType
	opacity   float32
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		colorType: ColorARGB8888,
		opacity:   1,
	}
}

// WithColorType sets the pixel format. Formats other than ColorARGB8888
// can be allocated, copied and resampled, but not composited.
func WithColorType(t ColorType) Option {
	return func(o *options) {
		o.colorType = t
	}
}

// WithOpacity sets the opacity applied when the canvas is composited.
// Values are clamped to [0, 1].
func WithOpacity(opacity float32) Option {
	return func(o *options) {
		o.opacity = opacity
	}
}
