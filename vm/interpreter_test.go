package vm

import "testing"

func TestRunRejectsOversizedProgram(t *testing.T) {
	m := newMachine(t)
	code := make([]byte, MaxProgramSize)
	err := Run(code, m)
	if err == nil {
		t.Fatal("expected ProgramTooLargeError, got nil")
	}
	if _, ok := err.(*ProgramTooLargeError); !ok {
		t.Fatalf("expected *ProgramTooLargeError, got %T: %v", err, err)
	}
}

func TestRunAcceptsProgramOneByteUnderLimit(t *testing.T) {
	m := newMachine(t)
	code := make([]byte, MaxProgramSize-1)
	code[0] = 6 // exit
	requireNoError(t, Run(code, m))
	requireEqualU32(t, m.Regs.PC, 0xFFFFFFFF)
}

func TestRunHaltsOnFallOffEnd(t *testing.T) {
	m := newMachine(t)
	code := assembleOrFail(t, "new t = 12")
	requireNoError(t, Run(code, m))
	requireEqualU32(t, m.Regs.PC, 0xFFFFFFFF)
	requireEqualF32(t, m.Regs.T, 12)
}

// TestRunCallAndReturn exercises `run`/`exit` as a call/return pair,
// including spec.md §4.7's one-past-call return convention: the byte
// immediately after `run r` (here a harmless filler opcode, never
// executed) is skipped on return, and the real continuation sits one byte
// further along.
func TestRunCallAndReturn(t *testing.T) {
	m := newMachine(t)
	const subAddr = 7
	code := []byte{
		0, 5, // idx0-1: new t = 5
		1, subAddr, // idx2-3: new r = 7
		opcodeFor(t, "runr"),     // idx4:   run r
		6,                        // idx5:   filler, skipped on return
		6,                        // idx6:   exit (main's real continuation)
		opcodeFor(t, "newt=t+t"), // idx7:   subroutine body
		6,                        // idx8:   exit (subroutine's exit)
	}

	requireNoError(t, Run(code, m))
	requireEqualF32(t, m.Regs.T, 10)
	requireEqualU32(t, m.Regs.PC, 0xFFFFFFFF)
}

func opcodeFor(t *testing.T, mnemonic string) byte {
	t.Helper()
	op, ok := mnemonics[mnemonic]
	if !ok {
		t.Fatalf("mnemonic %q not found", mnemonic)
	}
	return op
}
