package imgio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mgeist/pixelveil/pkg/steg"
)

func TestValidExtension(t *testing.T) {
	for _, tc := range []struct {
		name string
		want bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"photo.jpeg", true},
		{"photo.jpg", true},
		{"photo.gif", true},
		{"photo.bmp", true},
		{"photo.wpng", true},
		{"photo.tiff", false},
		{"photo", false},
		{"archive.png.zip", false},
	} {
		if got := ValidExtension(tc.name); got != tc.want {
			t.Errorf("ValidExtension(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLoadBadExtension(t *testing.T) {
	_, err := Load("input.tiff")
	if !errors.Is(err, ErrBadExtension) {
		t.Fatalf("Load(input.tiff) error = %v, want ErrBadExtension", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil || errors.Is(err, ErrBadExtension) {
		t.Fatalf("Load(missing.png) error = %v, want I/O error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing.png) error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestSaveEncodedRequiresPNG(t *testing.T) {
	buf := steg.NewBuffer(2, 2)
	err := SaveEncoded(filepath.Join(t.TempDir(), "out.jpg"), buf)
	if !errors.Is(err, ErrLossyOutput) {
		t.Fatalf("SaveEncoded(out.jpg) error = %v, want ErrLossyOutput", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	buf := steg.NewBuffer(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			buf.Set(x, y, steg.Pixel{A: 255, R: uint8(x * 40), G: uint8(y * 50), B: uint8(x ^ y)})
		}
	}

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := SaveEncoded(path, buf); err != nil {
		t.Fatalf("SaveEncoded: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Width() != 6 || got.Height() != 4 {
		t.Fatalf("loaded %dx%d, want 6x4", got.Width(), got.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if got.At(x, y) != buf.At(x, y) {
				t.Fatalf("(%d,%d): got %+v, want %+v (PNG must be bit-exact)", x, y, got.At(x, y), buf.At(x, y))
			}
		}
	}
}

func TestEncodeDecodeBMP(t *testing.T) {
	buf := steg.NewBuffer(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			buf.Set(x, y, steg.Pixel{A: 255, R: 10, G: 20, B: 30})
		}
	}

	var b bytes.Buffer
	if err := Encode(&b, "bmp", buf); err != nil {
		t.Fatalf("Encode bmp: %v", err)
	}
	got, err := Decode(&b)
	if err != nil {
		t.Fatalf("Decode bmp: %v", err)
	}
	if got.Width() != 3 || got.Height() != 3 {
		t.Fatalf("decoded %dx%d, want 3x3", got.Width(), got.Height())
	}
	if p := got.At(1, 1); p.R != 10 || p.G != 20 || p.B != 30 {
		t.Fatalf("decoded pixel = %+v", p)
	}
}

func TestEncodeUnknownExtension(t *testing.T) {
	var b bytes.Buffer
	if err := Encode(&b, "webp", steg.NewBuffer(1, 1)); !errors.Is(err, ErrBadExtension) {
		t.Fatalf("Encode webp error = %v, want ErrBadExtension", err)
	}
}
