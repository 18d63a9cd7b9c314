package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"time"

	"github.com/anovak/go-parallel-render/pkg/algebra"
	"github.com/anovak/go-parallel-render/pkg/renderer"
)

// paletteObserver maps delivered palette indices to colors and writes the
// image to a PNG file
type paletteObserver struct {
	width, height int
	output        string
}

func (o *paletteObserver) AcceptResult(data []int16, paletteSize int, requestNo uint64) {
	palette := buildPalette(paletteSize)
	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	for y := 0; y < o.height; y++ {
		for x := 0; x < o.width; x++ {
			img.SetRGBA(x, y, palette[data[y*o.width+x]])
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
	fmt.Printf("Fractal for request %d saved as %s\n", requestNo, o.output)
}

// buildPalette assigns index 0 (unconverged) black and spreads the root
// indices evenly around the hue circle
func buildPalette(size int) []color.RGBA {
	palette := make([]color.RGBA, size)
	palette[0] = color.RGBA{A: 255}
	for i := 1; i < size; i++ {
		hue := 2 * math.Pi * float64(i-1) / float64(size-1)
		r := uint8(127.5 * (1 + math.Cos(hue)))
		g := uint8(127.5 * (1 + math.Cos(hue-2*math.Pi/3)))
		b := uint8(127.5 * (1 + math.Cos(hue+2*math.Pi/3)))
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// readRoots prompts for complex roots, one per line, until "done" is read.
// Malformed lines are reported and reprompted.
func readRoots() []algebra.Complex {
	fmt.Println("Welcome to Newton-Raphson iteration-based fractal renderer.")
	fmt.Println("Please enter at least two roots, one root per line. Enter 'done' when done.")

	var roots []algebra.Complex
	scanner := bufio.NewScanner(os.Stdin)
	for i := 1; ; {
		fmt.Printf("Root %d> ", i)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "done" {
			if len(roots) < 2 {
				fmt.Println("Please enter at least two roots.")
				continue
			}
			break
		}
		root, err := algebra.ParseComplex(line)
		if err != nil {
			fmt.Println("Couldn't parse root. Please try again.")
			continue
		}
		roots = append(roots, root)
		i++
	}
	return roots
}

func main() {
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 800, "Image height in pixels")
	output := flag.String("output", "newton.png", "Output PNG path")
	reMin := flag.Float64("remin", -2, "Minimum real bound")
	reMax := flag.Float64("remax", 2, "Maximum real bound")
	imMin := flag.Float64("immin", -2, "Minimum imaginary bound")
	imMax := flag.Float64("immax", 2, "Maximum imaginary bound")
	flag.Parse()

	roots := readRoots()
	if len(roots) < 2 {
		fmt.Println("Not enough roots entered.")
		os.Exit(1)
	}
	polynomial := algebra.NewComplexRootedPolynomial(roots...)
	fmt.Println(polynomial)
	fmt.Println("Image of fractal will appear shortly. Thank you.")

	producer := renderer.NewFractalProducer(polynomial, nil)
	observer := &paletteObserver{width: *width, height: *height, output: *output}

	startTime := time.Now()
	producer.Produce(*reMin, *reMax, *imMin, *imMax, *width, *height, 1, observer)
	fmt.Printf("Render completed in %v\n", time.Since(startTime))
}
