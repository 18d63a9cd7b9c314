package renderer

import (
	"github.com/anovak/go-parallel-render/pkg/algebra"
)

const (
	// maxIterations caps the Newton iteration per pixel
	maxIterations = 16 * 16 * 16

	// convergenceThreshold is the per-step displacement below which the
	// iteration is considered converged
	convergenceThreshold = 1e-3

	// rootThreshold is the maximum distance from a converged value to a
	// root for that root to be credited
	rootThreshold = 2e-3

	// stripsPerWorker scales the static strip count with the pool size
	stripsPerWorker = 8
)

// FractalProducer renders Newton-Raphson basin-of-attraction images for a
// root-form complex polynomial supplied by the external caller. Rows are
// partitioned a priori into strips submitted to a fixed worker pool.
type FractalProducer struct {
	polynomial algebra.ComplexRootedPolynomial
	pool       *WorkerPool
	logger     Logger
}

// NewFractalProducer creates a producer for the given polynomial with a
// worker pool sized to the CPU count
func NewFractalProducer(polynomial algebra.ComplexRootedPolynomial, logger Logger) *FractalProducer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &FractalProducer{
		polynomial: polynomial,
		pool:       NewWorkerPool(0),
		logger:     logger,
	}
}

// Produce renders the viewport over the given complex-plane bounds and
// delivers the palette-index buffer to the observer, keyed by requestNo.
// Each strip writes only its own disjoint rows of the shared buffer. A
// failed strip is discarded at the join point: its rows keep whatever was
// written before the failure, and nothing is surfaced to the caller.
func (fp *FractalProducer) Produce(reMin, reMax, imMin, imMax float64,
	width, height int, requestNo uint64, observer FractalObserver) {

	fp.logger.Printf("Starting fractal computation for request %d...\n", requestNo)
	data := make([]int16, width*height)

	numStrips := stripsPerWorker * fp.pool.NumWorkers()
	rowsPerStrip := height / numStrips
	results := make(chan error, numStrips)

	for i := 0; i < numStrips; i++ {
		yMin := i * rowsPerStrip
		yMax := (i+1)*rowsPerStrip - 1
		if i == numStrips-1 {
			// the last strip absorbs the remainder
			yMax = height - 1
		}
		fp.pool.Submit(func() error {
			return fp.computeRows(reMin, reMax, imMin, imMax, width, height, yMin, yMax, data)
		}, results)
	}
	for i := 0; i < numStrips; i++ {
		<-results
	}

	fp.logger.Printf("Computation for request %d done, notifying observer...\n", requestNo)
	observer.AcceptResult(data, fp.polynomial.RootCount()+1, requestNo)
}

// computeRows runs the Newton iteration for every pixel in the rows
// [yMin, yMax] and writes the resulting palette indices into the row-major
// data buffer. Row 0 maps to the maximum imaginary value.
func (fp *FractalProducer) computeRows(reMin, reMax, imMin, imMax float64,
	width, height, yMin, yMax int, data []int16) error {

	derived := fp.polynomial.ToPolynomial().Derive()
	offset := yMin * width
	for y := yMin; y <= yMax; y++ {
		for x := 0; x < width; x++ {
			re := float64(x)/float64(width-1)*(reMax-reMin) + reMin
			im := float64(height-1-y)/float64(height-1)*(imMax-imMin) + imMin

			zn := algebra.NewComplex(re, im)
			var zn1 algebra.Complex
			iters := 0
			for {
				fraction, err := fp.polynomial.Apply(zn).Div(derived.Apply(zn))
				if err != nil {
					return err
				}
				zn1 = zn.Sub(fraction)
				module := zn1.Sub(zn).Abs()
				zn = zn1
				iters++
				if iters >= maxIterations || module <= convergenceThreshold {
					break
				}
			}

			// index -1 (no credited root) maps to palette entry 0
			index := fp.polynomial.IndexOfClosestRoot(zn1, rootThreshold)
			data[offset] = int16(index + 1)
			offset++
		}
	}
	return nil
}
