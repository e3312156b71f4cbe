package bitops

import "testing"

func TestExpand6Endpoints(t *testing.T) {
	if got := Expand6(0); got != 0 {
		t.Errorf("Expand6(0) = %d, want 0", got)
	}
	if got := Expand6(63); got != 255 {
		t.Errorf("Expand6(63) = %d, want 255", got)
	}
}

func TestExpand6Monotonic(t *testing.T) {
	prev := byte(0)
	for v := 1; v <= 63; v++ {
		got := Expand6(byte(v))
		if got <= prev {
			t.Fatalf("Expand6 not strictly monotonic at %d: got %d, prev %d", v, got, prev)
		}
		prev = got
	}
}

func TestExpand6IgnoresHighBits(t *testing.T) {
	if Expand6(0x3f) != Expand6(0xff) {
		t.Errorf("Expand6 should mask off the high 2 bits before expanding")
	}
}

func TestExpand4Endpoints(t *testing.T) {
	if got := Expand4(0); got != 0 {
		t.Errorf("Expand4(0) = %d, want 0", got)
	}
	if got := Expand4(15); got != 255 {
		t.Errorf("Expand4(15) = %d, want 255", got)
	}
}

func TestExpandPlane6MatchesScalar(t *testing.T) {
	src := make([]byte, 64)
	for i := range src {
		src[i] = byte(i) & 0x3f
	}
	dst := make([]byte, 64)
	ExpandPlane6(dst, src)
	for i, s := range src {
		if want := Expand6(s); dst[i] != want {
			t.Errorf("ExpandPlane6[%d] = %d, want %d", i, dst[i], want)
		}
	}
}

func TestExpandPlane6OddLength(t *testing.T) {
	src := make([]byte, 5)
	for i := range src {
		src[i] = byte(i * 10)
	}
	dst := make([]byte, 5)
	ExpandPlane6(dst, src)
	for i, s := range src {
		if want := Expand6(s); dst[i] != want {
			t.Errorf("ExpandPlane6[%d] = %d, want %d", i, dst[i], want)
		}
	}
}

func TestExpandPlane6PanicsOnShortDest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on undersized destination")
		}
	}()
	ExpandPlane6(make([]byte, 2), make([]byte, 8))
}

func TestClamp8(t *testing.T) {
	cases := []struct {
		in   int32
		want byte
	}{
		{-1, 0},
		{0, 0},
		{255, 255},
		{256, 255},
		{-1000, 0},
		{1000, 255},
		{128, 128},
	}
	for _, c := range cases {
		if got := Clamp8(c.in); got != c.want {
			t.Errorf("Clamp8(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
