// mandelppm renders the Mandelbrot set over the [-1.5,1.5]x[-1.5,1.5] window
// of the complex plane and saves it as a binary PPM (P6) file.

package main

import (
	"flag"
	"log"

	mandel "github.com/marben/mandelppm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Uint("width", 1000, "image width in pixels")
	height := flag.Uint("height", 1000, "image height in pixels")
	maxIter := flag.Uint("max-iter", 1000, "iteration budget per pixel")
	output := flag.String("output", "fractal.ppm", "output PPM file path")
	workers := flag.Uint("workers", 1, "number of parallel render workers")
	listen := flag.String("listen", "", "serve a live progress page on this address (e.g. :8080); empty disables it")
	flag.Parse()

	progress := logProgress()
	if *listen != "" {
		ps := serveProgress(*listen)
		logp := progress
		progress = func(done, total int) {
			logp(done, total)
			ps.publish(done, total)
		}
	}

	log.Printf("rendering %dx%d, max %d iterations, %d worker(s)", *width, *height, *maxIter, *workers)
	pix, err := mandel.RenderParallel(int(*width), int(*height), int(*maxIter), int(*workers), progress)
	if err != nil {
		return err
	}

	if err := mandel.WritePPM(*output, int(*width), int(*height), pix); err != nil {
		return err
	}
	log.Printf("image saved to %q", *output)

	return nil
}

// logProgress logs the completed fraction whenever it crosses another 10%.
func logProgress() mandel.ProgressFunc {
	next := 10
	return func(done, total int) {
		pct := 100 * done / total
		if pct >= next {
			log.Printf("finished: %f", float64(done)/float64(total))
			next = pct/10*10 + 10
		}
	}
}
