package carrier

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	_ "image/png"

	_ "golang.org/x/image/bmp"
)

func TestParseColor(t *testing.T) {
	r, g, b, err := ParseColor("#0a80ff")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if r != 0x0a || g != 0x80 || b != 0xff {
		t.Fatalf("ParseColor = (%d,%d,%d), want (10,128,255)", r, g, b)
	}

	if _, _, _, err := ParseColor("#12345"); err == nil {
		t.Fatalf("expected error for short hex")
	}
	if _, _, _, err := ParseColor("#zzzzzz"); err == nil {
		t.Fatalf("expected error for non-hex digits")
	}
	if _, _, _, err := ParseColor("random"); err != nil {
		t.Fatalf("random color: %v", err)
	}
}

func TestGenerateToWriter(t *testing.T) {
	for _, ext := range []string{".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := Config{Width: 32, Height: 16, Color: "#336699"}
			if err := GenerateToWriter(&buf, ext, cfg); err != nil {
				t.Fatalf("GenerateToWriter: %v", err)
			}

			img, _, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("decode generated %s: %v", ext, err)
			}
			if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 16 {
				t.Fatalf("generated %v, want 32x16", img.Bounds())
			}
			r, g, b, _ := color.RGBAModel.Convert(img.At(5, 5)).(color.RGBA).RGBA()
			if r>>8 != 0x33 || g>>8 != 0x66 || b>>8 != 0x99 {
				t.Fatalf("pixel = %04x %04x %04x, want #336699", r, g, b)
			}
		})
	}
}

func TestGenerateToWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateToWriter(&buf, ".gif", Config{}); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
