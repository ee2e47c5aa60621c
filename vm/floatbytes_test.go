package vm

import "testing"

func TestFloatBytesRoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 3.5, -3.5, 1e30, -1e-30}
	for _, v := range values {
		b := FloatToBytes(v)
		got := BytesToFloat(b[:])
		if got != v {
			t.Errorf("round trip of %v produced %v", v, got)
		}
	}
}

func TestFloatToBytesIsBigEndian(t *testing.T) {
	// 1.0f32 has bit pattern 0x3F800000.
	b := FloatToBytes(1.0)
	want := [4]byte{0x3F, 0x80, 0x00, 0x00}
	if b != want {
		t.Errorf("FloatToBytes(1.0) = %x, want %x", b, want)
	}
}
