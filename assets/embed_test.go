package assets

import (
	"slices"
	"testing"
)

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "knight.png", want: "knight.png"},
		{in: "assets/knight.png", want: "knight.png"},
		{in: "/home/me/spritelab/assets/boom.wav", want: "boom.wav"},
		{in: "/tmp/duck.png", want: "duck.png"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := cleanAssetPath(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDecodeImageSizes(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{name: "knight.png", width: 512, height: 192},
		{name: "warrior_sheet.png", width: 256, height: 160},
		{name: "explosion.png", width: 1554, height: 888},
		{name: "duck.png", width: 64, height: 64},
		{name: "bird.png", width: 64, height: 64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := DecodeImage(tc.name)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tc.width || b.Dy() != tc.height {
				t.Fatalf("expected %dx%d, got %dx%d", tc.width, tc.height, b.Dx(), b.Dy())
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("missing.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}

func TestList(t *testing.T) {
	names := List()
	for _, want := range []string{"boom.wav", "knight.png", "warrior_sheet.png"} {
		if !slices.Contains(names, want) {
			t.Fatalf("expected %q in %v", want, names)
		}
	}
}
