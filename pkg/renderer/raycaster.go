package renderer

import (
	"sync"

	"github.com/anovak/go-parallel-render/pkg/core"
	"github.com/anovak/go-parallel-render/pkg/shading"
)

// leafRows is the largest row range a single task computes serially;
// larger ranges are split in half and forked
const leafRows = 16

// RayCaster renders a scene of intersectable objects by evaluating one view
// ray per pixel through the Phong shading evaluator. The scene is supplied
// by the external caller and held read-only for the duration of a request.
type RayCaster struct {
	scene  *core.Scene
	logger Logger
}

// NewRayCaster creates a ray caster for the given scene
func NewRayCaster(scene *core.Scene, logger Logger) *RayCaster {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &RayCaster{scene: scene, logger: logger}
}

// Produce renders the requested view in parallel and delivers the completed
// red/green/blue buffers to the observer, keyed by requestNo. The row range
// is split recursively; every leaf writes only its own disjoint rows of the
// pre-allocated buffers, so the split/join barrier is the only
// synchronization.
func (rc *RayCaster) Produce(eye, view, viewUp core.Vec3, horizontal, vertical float64,
	width, height int, requestNo uint64, observer RayTraceObserver) {

	rc.logger.Printf("Starting ray-trace computation for request %d...\n", requestNo)
	red := make([]uint8, width*height)
	green := make([]uint8, width*height)
	blue := make([]uint8, width*height)

	camera := NewCamera(eye, view, viewUp, horizontal, vertical, width, height)
	rc.traceRange(camera, 0, height-1, red, green, blue)

	rc.logger.Printf("Computation for request %d done, notifying observer...\n", requestNo)
	observer.AcceptResult(red, green, blue, requestNo)
}

// ProduceSerial renders the same image as Produce without any parallel
// decomposition and delivers it to the observer
func (rc *RayCaster) ProduceSerial(eye, view, viewUp core.Vec3, horizontal, vertical float64,
	width, height int, requestNo uint64, observer RayTraceObserver) {

	rc.logger.Printf("Starting serial ray-trace computation for request %d...\n", requestNo)
	red := make([]uint8, width*height)
	green := make([]uint8, width*height)
	blue := make([]uint8, width*height)

	camera := NewCamera(eye, view, viewUp, horizontal, vertical, width, height)
	rc.traceRows(camera, 0, height-1, red, green, blue)

	rc.logger.Printf("Computation for request %d done, notifying observer...\n", requestNo)
	observer.AcceptResult(red, green, blue, requestNo)
}

// traceRange recursively halves the row range [yMin, yMax] until a span is
// at most leafRows tall, forking both halves and joining before returning.
// The goroutine scheduler plays the role of the shared work-stealing pool.
func (rc *RayCaster) traceRange(camera *Camera, yMin, yMax int, red, green, blue []uint8) {
	if yMax-yMin+1 <= leafRows {
		rc.traceRows(camera, yMin, yMax, red, green, blue)
		return
	}

	mid := yMin + (yMax-yMin)/2
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		rc.traceRange(camera, yMin, mid, red, green, blue)
	}()
	go func() {
		defer wg.Done()
		rc.traceRange(camera, mid+1, yMax, red, green, blue)
	}()
	wg.Wait()
}

// traceRows computes the rows [yMin, yMax] serially, writing clamped
// channel values into row-major offsets of the output buffers
func (rc *RayCaster) traceRows(camera *Camera, yMin, yMax int, red, green, blue []uint8) {
	offset := yMin * camera.width
	for y := yMin; y <= yMax; y++ {
		for x := 0; x < camera.width; x++ {
			ray := camera.RayThrough(x, y)
			r, g, b := shading.TraceRay(rc.scene, ray)

			red[offset] = clampChannel(r)
			green[offset] = clampChannel(g)
			blue[offset] = clampChannel(b)
			offset++
		}
	}
}

// clampChannel clamps an accumulated channel intensity to [0, 255]
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
