// snapshot.go - a read-only view of machine state for an external caller
// (spec.md's "interactive front-end" is explicitly out of scope, but the
// spec itself says such a front end would be a caller of exactly this kind
// of accessor). Grounded on the teacher's own debug_snapshot.go, which
// exists for the identical reason: giving an out-of-scope front end
// something concrete to read without exposing live, mutable state.

package vm

import "fmt"

// Snapshot is a copied-out view of a MachineState at one point in time.
// Mutating a Snapshot has no effect on the MachineState it was taken from.
type Snapshot struct {
	PC      uint32
	AS, JS  uint8
	T, R, Y float32

	// RAM holds a copy of the requested RAM window, not the full 3 MiB.
	RAM []byte

	// ArgStack and JumpStack hold only the live portion of each buffer,
	// i.e. the first AS/JS entries.
	ArgStack  []float32
	JumpStack []uint32
}

// Snapshot copies out m's registers and both stacks' live contents, plus
// the RAM window [ramStart, ramStart+ramLen). Callers wanting no RAM view
// can pass ramLen 0.
func (m *MachineState) Snapshot(ramStart, ramLen uint32) Snapshot {
	s := Snapshot{
		PC: m.Regs.PC,
		AS: m.Regs.AS,
		JS: m.Regs.JS,
		T:  m.Regs.T,
		R:  m.Regs.R,
		Y:  m.Regs.Y,
	}

	if ramLen > 0 {
		end := ramStart + ramLen
		if end > uint32(len(m.RAM)) {
			end = uint32(len(m.RAM))
		}
		if ramStart < end {
			s.RAM = append([]byte(nil), m.RAM[ramStart:end]...)
		}
	}

	s.ArgStack = append([]float32(nil), m.ArgStack[:m.Regs.AS]...)
	s.JumpStack = append([]uint32(nil), m.JumpStack[:m.Regs.JS]...)

	return s
}

// Halted reports whether the snapshot was taken after the machine reached
// the termination sentinel.
func (s Snapshot) Halted() bool {
	return s.PC == haltPC
}

func (s Snapshot) String() string {
	return fmt.Sprintf("pc=%#x as=%d js=%d t=%g r=%g y=%g", s.PC, s.AS, s.JS, s.T, s.R, s.Y)
}
