package mandel

import (
	"fmt"
	"sync"
)

// ProgressFunc receives the number of pixels completed so far and the total
// pixel count. It is a reporting side channel only: implementations must not
// block for long and cannot influence the rendered result. A nil ProgressFunc
// disables reporting.
type ProgressFunc func(done, total int)

// Render computes the escape-time image for a width x height pixel grid,
// iterating each point at most maxIter times. Pixels are enumerated row-major
// (y outer, x inner) and the returned buffer holds exactly width*height
// colors in that order. Points inside the set are Black; escaping points are
// colored from their smoothed escape time.
//
// progress, if non-nil, is invoked after every completed row.
func Render(width, height, maxIter int, progress ProgressFunc) ([]Color, error) {
	if err := validate(width, height, maxIter); err != nil {
		return nil, err
	}

	pix := make([]Color, 0, width*height)
	total := width * height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pix = append(pix, renderPixel(x, y, width, height, maxIter))
		}
		if progress != nil {
			progress((y+1)*width, total)
		}
	}
	return pix, nil
}

// RenderParallel is Render with rows distributed across workers goroutines.
// Each worker writes its rows into a preallocated buffer by index, so the
// result is byte-identical to Render for any worker count. Progress is
// reported per finished row and invoked serially (under the internal lock);
// done counts are monotonic but rows complete in scheduler order, not top
// to bottom.
func RenderParallel(width, height, maxIter, workers int, progress ProgressFunc) ([]Color, error) {
	if err := validate(width, height, maxIter); err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be >= 1, got %d", workers)
	}
	if workers == 1 {
		return Render(width, height, maxIter, progress)
	}

	pix := make([]Color, width*height)
	total := width * height

	var m sync.Mutex
	donePixels := 0

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				row := pix[y*width : (y+1)*width]
				for x := 0; x < width; x++ {
					row[x] = renderPixel(x, y, width, height, maxIter)
				}
				if progress != nil {
					m.Lock()
					donePixels += width
					progress(donePixels, total)
					m.Unlock()
				}
			}
		}()
	}

	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return pix, nil
}

func renderPixel(x, y, width, height, maxIter int) Color {
	c := MapPixel(x, y, width, height)
	mu, escaped := EscapeTime(c, maxIter)
	if !escaped {
		return Black
	}
	return ColorFor(mu)
}

func validate(width, height, maxIter int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("image dimensions must be >= 1, got %dx%d", width, height)
	}
	if maxIter < 1 {
		return fmt.Errorf("max iterations must be >= 1, got %d", maxIter)
	}
	return nil
}
