package mandel

import (
	"bytes"
	"fmt"
	"os"
)

// EncodePPM serializes a row-major pixel buffer into the binary PPM (P6)
// format: the ASCII header "P6\n<width> <height>\n255\n" followed by three
// raw bytes (R, G, B) per pixel with no padding or row alignment.
//
// The buffer must hold exactly width*height colors; anything else means the
// caller assembled the image incorrectly, so EncodePPM panics.
func EncodePPM(width, height int, pix []Color) []byte {
	if len(pix) != width*height {
		panic(fmt.Sprintf("ppm: buffer holds %d pixels, want %d (%dx%d)", len(pix), width*height, width, height))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P6\n%d %d\n255\n", width, height)
	for _, p := range pix {
		buf.Write([]byte{p.R, p.G, p.B})
	}
	return buf.Bytes()
}

// WritePPM encodes pix as P6 and writes it to filename in a single write.
// There is no partial-file cleanup on failure.
func WritePPM(filename string, width, height int, pix []Color) error {
	if err := os.WriteFile(filename, EncodePPM(width, height, pix), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", filename, err)
	}
	return nil
}
