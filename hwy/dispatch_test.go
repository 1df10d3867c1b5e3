package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	cases := map[DispatchLevel]string{
		DispatchScalar:    "scalar",
		DispatchSSE2:      "sse2",
		DispatchAVX2:      "avx2",
		DispatchAVX512:    "avx512",
		DispatchNEON:      "neon",
		DispatchLevel(99): "unknown",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String(): got %q, want %q", int(level), got, want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Fatalf("CurrentWidth: got %d, want 16, 32 or 64", CurrentWidth())
	}
	if CurrentName() == "" {
		t.Error("CurrentName is empty")
	}
	if MaxLanes() != CurrentWidth()/4 {
		t.Errorf("MaxLanes: got %d, want %d", MaxLanes(), CurrentWidth()/4)
	}
	if NumLanes(ScalableTag{}) != MaxLanes() {
		t.Errorf("ScalableTag lanes: got %d, want %d", NumLanes(ScalableTag{}), MaxLanes())
	}
}

func TestNoSimdEnv(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, c := range cases {
		t.Setenv("HWY_NO_SIMD", c.val)
		if got := NoSimdEnv(); got != c.want {
			t.Errorf("NoSimdEnv(%q): got %v, want %v", c.val, got, c.want)
		}
	}
}
