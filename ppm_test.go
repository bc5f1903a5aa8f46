package mandel

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodePPM_SinglePixel(t *testing.T) {
	got := EncodePPM(1, 1, []Color{{10, 20, 30}})
	want := append([]byte("P6\n1 1\n255\n"), 10, 20, 30)
	if !bytes.Equal(got, want) {
		t.Errorf("EncodePPM = %q, want %q", got, want)
	}
}

func TestEncodePPM_HeaderAndLength(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantHeader    string
	}{
		{"3x2", 3, 2, "P6\n3 2\n255\n"},
		{"1x1", 1, 1, "P6\n1 1\n255\n"},
		{"wide", 1000, 1, "P6\n1000 1\n255\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := make([]Color, tt.width*tt.height)
			got := EncodePPM(tt.width, tt.height, pix)

			if !strings.HasPrefix(string(got), tt.wantHeader) {
				t.Errorf("header = %q, want prefix %q", got[:min(len(got), len(tt.wantHeader))], tt.wantHeader)
			}
			wantLen := len(tt.wantHeader) + 3*tt.width*tt.height
			if len(got) != wantLen {
				t.Errorf("encoded length = %d, want %d", len(got), wantLen)
			}
		})
	}
}

func TestEncodePPM_PixelOrder(t *testing.T) {
	pix := []Color{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}}
	got := EncodePPM(2, 2, pix)
	wantBody := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	body := got[len("P6\n2 2\n255\n"):]
	if !bytes.Equal(body, wantBody) {
		t.Errorf("pixel bytes = %v, want %v", body, wantBody)
	}
}

func TestEncodePPM_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EncodePPM accepted a short buffer, want panic")
		}
	}()
	EncodePPM(2, 2, make([]Color, 3))
}

func TestWritePPM_RoundTrip(t *testing.T) {
	pix, err := Render(8, 8, 20, nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := WritePPM(path, 8, 8, pix); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, EncodePPM(8, 8, pix)) {
		t.Error("file contents differ from encoded bytes")
	}
}

func TestWritePPM_Idempotent(t *testing.T) {
	// The full pipeline is deterministic: two identical runs produce
	// byte-identical files.
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.ppm"), filepath.Join(dir, "b.ppm")}

	for _, path := range paths {
		pix, err := Render(10, 10, 30, nil)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if err := WritePPM(path, 10, 10, pix); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}
	}

	a, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical runs produced different files")
	}
}

func TestWritePPM_BadPath(t *testing.T) {
	err := WritePPM(filepath.Join(t.TempDir(), "missing", "out.ppm"), 1, 1, []Color{{}})
	if err == nil {
		t.Error("write into a missing directory succeeded, want error")
	}
}
