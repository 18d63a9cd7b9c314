package renderer

// RayTraceObserver receives completed ray-trace buffers: three equal-length
// row-major channel arrays clamped to [0, 255], keyed by request number.
type RayTraceObserver interface {
	AcceptResult(red, green, blue []uint8, requestNo uint64)
}

// FractalObserver receives a completed fractal buffer: one row-major array
// of palette indices (0 means the pixel did not converge) plus the palette
// size, keyed by request number.
type FractalObserver interface {
	AcceptResult(data []int16, paletteSize int, requestNo uint64)
}
