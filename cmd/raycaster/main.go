package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/anovak/go-parallel-render/pkg/core"
	"github.com/anovak/go-parallel-render/pkg/renderer"
	"github.com/anovak/go-parallel-render/pkg/scene"
)

// pngObserver writes the delivered channel buffers to a PNG file
type pngObserver struct {
	width, height int
	output        string
}

func (o *pngObserver) AcceptResult(red, green, blue []uint8, requestNo uint64) {
	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	for y := 0; y < o.height; y++ {
		for x := 0; x < o.width; x++ {
			offset := y*o.width + x
			img.SetRGBA(x, y, color.RGBA{R: red[offset], G: green[offset], B: blue[offset], A: 255})
		}
	}

	file, err := os.Create(o.output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render for request %d saved as %s\n", requestNo, o.output)
}

func main() {
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 800, "Image height in pixels")
	output := flag.String("output", "raycast.png", "Output PNG path")
	serial := flag.Bool("serial", false, "Render without parallel decomposition")
	flag.Parse()

	caster := renderer.NewRayCaster(scene.NewPredefinedScene(), nil)
	observer := &pngObserver{width: *width, height: *height, output: *output}

	eye := core.NewVec3(10, 0, 0)
	view := core.NewVec3(0, 0, 0)
	viewUp := core.NewVec3(0, 0, 10)

	startTime := time.Now()
	if *serial {
		caster.ProduceSerial(eye, view, viewUp, 20, 20, *width, *height, 1, observer)
	} else {
		caster.Produce(eye, view, viewUp, 20, 20, *width, *height, 1, observer)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))
}
