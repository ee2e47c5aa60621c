// floatbytes.go - the big-endian float32 wire view used by RAM access and
// the two float-constant-load opcodes.
//
// The teacher's own memory bus (memory_bus.go) reaches for encoding/binary
// for every fixed-width read/write it does; GSX does the same, just with
// BigEndian instead of the teacher's LittleEndian, per the data model.

package vm

import (
	"encoding/binary"
	"math"
)

// FloatToBytes renders f as four big-endian bytes (IEEE-754 bit pattern).
func FloatToBytes(f float32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(f))
	return b
}

// BytesToFloat reinterprets four big-endian bytes as an IEEE-754 float32.
// The caller must pass a slice of at least length 4.
func BytesToFloat(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}
