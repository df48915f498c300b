package images

import "testing"

func TestImageMeasure(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float64
		maxWidth float64
		wantW    float64
		wantH    float64
	}{
		{"natural when unconstrained", 200, 100, -1, 200, 100},
		{"natural when it fits", 200, 100, 300, 200, 100},
		{"scaled down keeping aspect", 200, 100, 50, 50, 25},
		{"never scaled up", 20, 10, 100, 20, 10},
		{"zero constraint", 200, 100, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := &Image{Width: tt.w, Height: tt.h}
			w, h := im.Measure(tt.maxWidth)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Measure(%v) = %vx%v, want %vx%v", tt.maxWidth, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestImageFromDataURI(t *testing.T) {
	im, err := FromFile(createTestPNGDataURI())
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if im.Width != 2 || im.Height != 2 {
		t.Errorf("natural size = %vx%v, want 2x2", im.Width, im.Height)
	}
	if im.Decoded() == nil {
		t.Error("decoded pixels should be retained")
	}
}
