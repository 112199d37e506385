package plot

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDataBounds(t *testing.T) {
	min, max := dataBounds([]float64{3, -1, 7, 0})
	if min != -1 || max != 7 {
		t.Fatalf("got [%v, %v], want [-1, 7]", min, max)
	}
}

func TestNiceAxisBoundsCoverData(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"small positive", 0.1, 0.9},
		{"spanning zero", -2.5, 4.0},
		{"large values", 1200, 8800},
		{"tiny span", 1.0001, 1.0002},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := niceAxisBounds(tc.min, tc.max)
			if a > tc.min+eps {
				t.Fatalf("lower bound %v clips data min %v", a, tc.min)
			}
			if b < tc.max-eps {
				t.Fatalf("upper bound %v clips data max %v", b, tc.max)
			}
			if b <= a {
				t.Fatalf("degenerate range [%v, %v]", a, b)
			}
		})
	}
}

func TestNiceAxisBoundsDegenerateSpan(t *testing.T) {
	a, b := niceAxisBounds(2.0, 2.0)
	if a >= 2.0 || b <= 2.0 {
		t.Fatalf("constant data not given a window: [%v, %v]", a, b)
	}
}

func TestNiceTicksCountAndOrder(t *testing.T) {
	ticks := niceTicks(0, 10, 6)
	if len(ticks) < 2 {
		t.Fatalf("got %d ticks, want at least 2", len(ticks))
	}
	if len(ticks) > 8 {
		t.Fatalf("got %d ticks, want at most 8", len(ticks))
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value <= ticks[i-1].Value {
			t.Fatalf("ticks not strictly increasing at %d", i)
		}
	}
}

func TestNiceTicksDegenerateInput(t *testing.T) {
	if ticks := niceTicks(5, 5, 6); ticks != nil {
		t.Fatalf("got ticks for empty span")
	}
	if ticks := niceTicks(math.NaN(), 1, 6); ticks != nil {
		t.Fatalf("got ticks for NaN bound")
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1500, "1500"},
		{12.5, "12.5"},
		{0.25, "0.25"},
	}
	for _, tc := range tests {
		if got := formatTick(tc.v); got != tc.want {
			t.Fatalf("formatTick(%v): got %q, want %q", tc.v, got, tc.want)
		}
	}
}
