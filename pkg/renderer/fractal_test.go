package renderer

import (
	"errors"
	"testing"

	"github.com/anovak/go-parallel-render/pkg/algebra"
)

// captureFractalObserver records the delivered palette buffer
type captureFractalObserver struct {
	data        []int16
	paletteSize int
	requestNo   uint64
}

func (o *captureFractalObserver) AcceptResult(data []int16, paletteSize int, requestNo uint64) {
	o.data = data
	o.paletteSize = paletteSize
	o.requestNo = requestNo
}

func unitRootsPolynomial() algebra.ComplexRootedPolynomial {
	// z⁴ - 1
	return algebra.NewComplexRootedPolynomial(
		algebra.One, algebra.OneNeg, algebra.I, algebra.INeg)
}

func TestFractalProducer_ParallelMatchesSerial(t *testing.T) {
	producer := NewFractalProducer(unitRootsPolynomial(), nopLogger{})

	const width, height = 64, 64
	serial := make([]int16, width*height)
	if err := producer.computeRows(-2, 2, -2, 2, width, height, 0, height-1, serial); err != nil {
		t.Fatalf("Unexpected serial error: %v", err)
	}

	observer := &captureFractalObserver{}
	producer.Produce(-2, 2, -2, 2, width, height, 3, observer)

	if observer.requestNo != 3 {
		t.Fatalf("Expected request number 3, got %d", observer.requestNo)
	}
	if observer.paletteSize != 5 {
		t.Errorf("Expected palette size 5 for four roots, got %d", observer.paletteSize)
	}
	if len(observer.data) != width*height {
		t.Fatalf("Expected %d pixels, got %d", width*height, len(observer.data))
	}
	for i := range serial {
		if observer.data[i] != serial[i] {
			t.Fatalf("Pixel %d differs: serial %d, parallel %d", i, serial[i], observer.data[i])
		}
	}
}

func TestFractalProducer_Deterministic(t *testing.T) {
	producer := NewFractalProducer(unitRootsPolynomial(), nopLogger{})

	first := &captureFractalObserver{}
	second := &captureFractalObserver{}
	producer.Produce(-2, 2, -2, 2, 64, 64, 1, first)
	producer.Produce(-2, 2, -2, 2, 64, 64, 2, second)

	for i := range first.data {
		if first.data[i] != second.data[i] {
			t.Fatalf("Pixel %d differs between repeated renders", i)
		}
	}
}

func TestFractalProducer_BasinsCoverAllRoots(t *testing.T) {
	producer := NewFractalProducer(unitRootsPolynomial(), nopLogger{})

	observer := &captureFractalObserver{}
	producer.Produce(-2, 2, -2, 2, 64, 64, 1, observer)

	seen := make(map[int16]bool)
	for _, index := range observer.data {
		if index < 0 || int(index) >= observer.paletteSize {
			t.Fatalf("Palette index %d outside [0, %d)", index, observer.paletteSize)
		}
		seen[index] = true
	}
	for index := int16(1); index < 5; index++ {
		if !seen[index] {
			t.Errorf("Expected some pixel to converge to root %d", index-1)
		}
	}
}

func TestWorkerPool_RunsTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	if pool.NumWorkers() != 4 {
		t.Fatalf("Expected 4 workers, got %d", pool.NumWorkers())
	}

	results := make(chan error, 8)
	hits := make(chan int, 8)
	for i := 0; i < 8; i++ {
		i := i
		pool.Submit(func() error {
			hits <- i
			return nil
		}, results)
	}

	seen := make(map[int]bool)
	for i := 0; i < 8; i++ {
		if err := <-results; err != nil {
			t.Errorf("Unexpected task error: %v", err)
		}
		seen[<-hits] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected all 8 tasks to run, saw %d", len(seen))
	}
}

func TestWorkerPool_CapturesFailures(t *testing.T) {
	pool := NewWorkerPool(1)
	results := make(chan error, 2)

	boom := errors.New("boom")
	pool.Submit(func() error { return boom }, results)
	pool.Submit(func() error { panic("blown up") }, results)

	if err := <-results; !errors.Is(err, boom) {
		t.Errorf("Expected the task error back, got %v", err)
	}
	if err := <-results; err == nil {
		t.Errorf("Expected a panicking task to yield an error")
	}
}
