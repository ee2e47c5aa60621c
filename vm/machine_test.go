package vm

import "testing"

func TestMachineResetClearsRegistersAndRAM(t *testing.T) {
	m := newMachine(t)
	m.Regs.Set(NameT, 42)
	m.RAM[0] = 0xFF
	m.RAM[RAMSize-1] = 0xAB

	m.Reset()

	requireEqualF32(t, m.Regs.T, 0)
	for _, addr := range []int{0, RAMSize - 1} {
		if m.RAM[addr] != 0 {
			t.Fatalf("RAM[%d] = %#x, want 0 after reset", addr, m.RAM[addr])
		}
	}
}

// TestMachineResetPreservesStackBuffers exercises spec.md's resolved open
// question: reset clears RAM and registers, including the AS/JS pointers,
// but leaves the stack buffer contents untouched.
func TestMachineResetPreservesStackBuffers(t *testing.T) {
	m := newMachine(t)
	m.ArgStack[0] = 7.5
	m.JumpStack[0] = 123

	m.Reset()

	requireEqualU8(t, m.Regs.AS, 0)
	requireEqualF32(t, m.ArgStack[0], 7.5)
	if m.JumpStack[0] != 123 {
		t.Fatalf("JumpStack[0] = %d, want 123 (reset must not clear stack buffers)", m.JumpStack[0])
	}
}

func TestRAMByteRoundTripSigned(t *testing.T) {
	m := newMachine(t)
	m.RAMSetI8(10, -1)
	if got := m.RAMGetI8(10); got != -1 {
		t.Fatalf("RAMGetI8(10) = %d, want -1", got)
	}
	if m.RAM[10] != 0xFF {
		t.Fatalf("RAM[10] = %#x, want 0xff", m.RAM[10])
	}
}

func TestRAMFloatRoundTrip(t *testing.T) {
	m := newMachine(t)
	m.RAMSetF32(100, -8.58)
	got := m.RAMGetF32(100)
	want := RoundF32(-8.58)
	requireEqualF32(t, got, want)
}
