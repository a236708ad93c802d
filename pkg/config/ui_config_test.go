package config

import (
	"image/color"
	"testing"
)

func TestTableColors(t *testing.T) {
	gray := color.RGBA{R: 170, G: 170, B: 170, A: 255}

	tests := []struct {
		name string
		got  color.RGBA
		want color.RGBA
	}{
		{"ball", BallColor, gray},
		{"launcher", LauncherColor, gray},
		{"flipper", FlipperColor, color.RGBA{R: 219, G: 242, B: 39, A: 255}},
		{"segment", SegmentColor, color.RGBA{R: 4, G: 41, B: 64, A: 255}},
		{"static poly", StaticPolyColor, color.RGBA{R: 214, G: 213, B: 142, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s color = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}
