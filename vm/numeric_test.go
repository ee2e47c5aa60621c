package vm

import "testing"

func TestSaturateU8(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{-0.5, 0},
		{0, 0},
		{42.9, 42},
		{255, 255},
		{255.4, 255},
		{256, 255},
		{1e9, 255},
	}
	for _, c := range cases {
		if got := SaturateU8(c.in); got != c.want {
			t.Errorf("SaturateU8(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSaturateU32(t *testing.T) {
	cases := []struct {
		in   float64
		want uint32
	}{
		{-1, 0},
		{0, 0},
		{4294967295, 4294967295},
		{4294967296, 4294967295},
		{1e12, 4294967295},
	}
	for _, c := range cases {
		if got := SaturateU32(c.in); got != c.want {
			t.Errorf("SaturateU32(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRoundF32TiesToEven(t *testing.T) {
	// 2^24 + 1 lies exactly halfway between its float32 neighbours 2^24 and
	// 2^24 + 2; ties-to-even picks 2^24, whose mantissa is even.
	got := RoundF32(16777217) // 2^24 + 1, not exactly representable in f32
	want := float32(16777216)
	if got != want {
		t.Errorf("RoundF32(16777217) = %v, want %v", got, want)
	}
}
