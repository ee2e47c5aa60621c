// registers.go - the six-register file (spec.md C3).
//
// Writes funnel through Set, which applies the matching numeric-width
// gate from numeric.go (I1/I2): PC/AS/JS saturate to their unsigned width,
// T/R/Y round to float32. The one exception is PC, which the interpreter
// and the exit/run/reserved handlers also assign directly with values that
// are already uint32 (the halt sentinel, a popped return address, or a
// SaturateU32-clamped jump target).

package vm

// RegisterName identifies one of the six registers for the generic
// Get/Set accessors used by the opcode handlers and the interpreter loop.
// The assembler's constant-load encoder also uses it to pick an opcode.
type RegisterName int

const (
	NamePC RegisterName = iota
	NameAS
	NameJS
	NameT
	NameR
	NameY
)

func (n RegisterName) String() string {
	switch n {
	case NamePC:
		return "pc"
	case NameAS:
		return "as"
	case NameJS:
		return "js"
	case NameT:
		return "t"
	case NameR:
		return "r"
	case NameY:
		return "y"
	default:
		return "?"
	}
}

// floatRegs lists the three general (arithmetic) registers in the fixed
// enumeration order the opcode table builder depends on (spec.md §4.5/§9).
var floatRegs = [3]RegisterName{NameT, NameR, NameY}

// otherTwo returns the two float registers other than r, in floatRegs
// order. Every symmetric/asymmetric arithmetic opcode family is built by
// iterating this fixed pair, so its order is load-bearing.
func otherTwo(r RegisterName) [2]RegisterName {
	var out [2]RegisterName
	i := 0
	for _, o := range floatRegs {
		if o != r {
			out[i] = o
			i++
		}
	}
	return out
}

// RegisterFile holds the VM's six registers.
type RegisterFile struct {
	PC      uint32
	AS, JS  uint8
	T, R, Y float32
}

// Get returns the current value of the named register as a float64. The
// opcode handlers read their operand registers through it.
func (rf *RegisterFile) Get(name RegisterName) float64 {
	switch name {
	case NamePC:
		return float64(rf.PC)
	case NameAS:
		return float64(rf.AS)
	case NameJS:
		return float64(rf.JS)
	case NameT:
		return float64(rf.T)
	case NameR:
		return float64(rf.R)
	case NameY:
		return float64(rf.Y)
	default:
		return 0
	}
}

// Set writes v into the named register, applying that register's numeric
// gate (I1/I2). Every register write goes through it except the direct PC
// assignments described at the top of this file.
func (rf *RegisterFile) Set(name RegisterName, v float64) {
	switch name {
	case NamePC:
		rf.PC = SaturateU32(v)
	case NameAS:
		rf.AS = SaturateU8(v)
	case NameJS:
		rf.JS = SaturateU8(v)
	case NameT:
		rf.T = RoundF32(v)
	case NameR:
		rf.R = RoundF32(v)
	case NameY:
		rf.Y = RoundF32(v)
	}
}

// Reset zeroes every register.
func (rf *RegisterFile) Reset() {
	*rf = RegisterFile{}
}
