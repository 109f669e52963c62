package mesh

import (
	"math"
	"testing"
)

func TestSurfaceZ(t *testing.T) {
	tor := Torus{Major: 0.6, Minor: 0.2}
	tests := []struct {
		name   string
		x, y   float64
		wantZ  float64
		wantOK bool
	}{
		{"tube center on x axis", 0.6, 0, 0.2, true},
		{"tube center on y axis", 0, 0.6, 0.2, true},
		{"outer rim touches", 0.8, 0, 0, true},
		{"inner rim touches", 0.4, 0, 0, true},
		{"origin outside footprint", 0, 0, 0, false},
		{"beyond outer rim", 0.9, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, ok := tor.SurfaceZ(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("SurfaceZ(%v, %v) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if ok && math.Abs(z-tt.wantZ) > 1e-12 {
				t.Errorf("SurfaceZ(%v, %v) = %v, want %v", tt.x, tt.y, z, tt.wantZ)
			}
		})
	}
}

// Every interior grid sample must emit exactly the top/bottom sheet pair:
// equal (x, y), opposite-sign z. Exterior samples emit nothing.
func TestSampleEmitsSheetPairs(t *testing.T) {
	tor := Torus{Major: 0.6, Minor: 0.2}
	const n = 16
	cloud := tor.Sample(n)

	if cloud.PointCount() == 0 {
		t.Fatal("expected a non-empty cloud for the reference torus")
	}
	if cloud.PointCount()%2 != 0 {
		t.Fatalf("PointCount = %d, want an even number (sheet pairs)", cloud.PointCount())
	}
	for i := 0; i < cloud.PointCount(); i += 2 {
		top, bottom := cloud.Point(i), cloud.Point(i+1)
		if top.X != bottom.X || top.Y != bottom.Y {
			t.Fatalf("pair %d: (x,y) differ: %v vs %v", i/2, top, bottom)
		}
		if top.Z != -bottom.Z {
			t.Fatalf("pair %d: z not mirrored: %v vs %v", i/2, top.Z, bottom.Z)
		}
		if top.Z < 0 {
			t.Fatalf("pair %d: top sheet below plane: %v", i/2, top.Z)
		}
		if _, ok := tor.SurfaceZ(top.X, top.Y); !ok {
			t.Fatalf("pair %d: emitted point off the footprint: %v", i/2, top)
		}
	}
}

// Counting interior grid samples independently must match the cloud size.
func TestSampleCountMatchesFootprint(t *testing.T) {
	tor := Torus{Major: 0.6, Minor: 0.2}
	const n = 32
	b := tor.Bound()

	interior := 0
	for i := range n {
		for j := range n {
			x := float64(i)/n*2*b - b
			y := float64(j)/n*2*b - b
			if _, ok := tor.SurfaceZ(x, y); ok {
				interior++
			}
		}
	}

	cloud := tor.Sample(n)
	if cloud.PointCount() != 2*interior {
		t.Errorf("PointCount = %d, want %d (2 per interior sample)", cloud.PointCount(), 2*interior)
	}
}

// Where the sheets touch (inner == 0) both points are emitted, coincident.
func TestSampleTouchingSheets(t *testing.T) {
	// Major 0.5, minor 0.5: the footprint reaches the origin where the
	// two sheets meet at z = 0.
	tor := Torus{Major: 0.5, Minor: 0.5}
	z, ok := tor.SurfaceZ(0, 0)
	if !ok || z != 0 {
		t.Fatalf("SurfaceZ(0,0) = %v, %v; want 0, true", z, ok)
	}

	// An even grid of size 4 over [-1,1] lands exactly on the origin.
	cloud := tor.Sample(4)
	found := false
	for i := 0; i < cloud.PointCount(); i += 2 {
		p, q := cloud.Point(i), cloud.Point(i+1)
		if p.X == 0 && p.Y == 0 {
			found = true
			if p != q {
				t.Errorf("touching sheets should be coincident: %v vs %v", p, q)
			}
		}
	}
	if !found {
		t.Error("expected the origin sample in the cloud")
	}
}

// Degenerate geometry (minor >= major) is not rejected; the sampler just
// emits whatever satisfies the footprint inequality.
func TestSampleDegenerateGeometry(t *testing.T) {
	tor := Torus{Major: 0.2, Minor: 0.6}
	cloud := tor.Sample(8)
	b := tor.Bound()
	for i := range cloud.PointCount() {
		p := cloud.Point(i)
		if _, ok := tor.SurfaceZ(p.X, p.Y); !ok {
			t.Fatalf("point %d off footprint: %v", i, p)
		}
		if math.Abs(p.Z) > b {
			t.Fatalf("point %d out of bound %v: %v", i, b, p)
		}
	}
}

// A coarse grid can miss the footprint entirely; an empty cloud is a valid
// silently-accepted state.
func TestSampleEmptyCloud(t *testing.T) {
	tor := Torus{Major: 0.6, Minor: 0.2}
	// n = 3 samples x,y in {-0.8, -0.267, 0.267}; every pair lands off
	// the footprint.
	cloud := tor.Sample(3)
	if cloud.PointCount() != 0 {
		t.Errorf("PointCount = %d, want 0", cloud.PointCount())
	}
	min, max := cloud.Bounds()
	if min != max {
		t.Errorf("empty cloud bounds = %v..%v, want equal zero values", min, max)
	}
}
