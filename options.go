package canvas

// Option configures a Canvas during Init.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Double-buffered canvas (default): transforms available
//	cv, err := canvas.Init(320, 240, 2)
//
//	// Single buffer: half the memory, no rotate/flip
//	cv, err := canvas.Init(320, 240, 2, canvas.WithSingleBuffer())
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	singleBuffer bool
	legacyLines  bool
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		singleBuffer: false, // transforms need the secondary half
		legacyLines:  false, // corrected Bresenham
	}
}

// WithSingleBuffer sizes the canvas for a single buffer.
//
// AllocSize drops to BufferSize, and the whole-buffer transforms,
// SwapBuffers and SyncBuffers return ErrNotDoubleBuffered.
func WithSingleBuffer() Option {
	return func(o *options) {
		o.singleBuffer = true
	}
}

// WithLegacyLines makes DrawLine reproduce the historical firmware line
// rasterization bit for bit, including its known defects (see
// raster.LegacyLine).
//
// Use this only when output must match existing images. The default
// rasterizer draws both endpoints and is independent of endpoint order.
//
// Example:
//
//	cv, _ := canvas.Init(128, 64, 1, canvas.WithLegacyLines())
func WithLegacyLines() Option {
	return func(o *options) {
		o.legacyLines = true
	}
}
