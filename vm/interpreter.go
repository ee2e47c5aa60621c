// interpreter.go - the fetch-decode-dispatch loop (spec.md C7).

package vm

// Run executes code against m until the program halts, either by falling
// off the end of the buffer or by an opcode driving PC to the halt
// sentinel (haltPC, 2^32-1). It fails its precondition, returning a
// *ProgramTooLargeError, if code is not strictly smaller than
// MaxProgramSize.
func Run(code []byte, m *MachineState) error {
	if len(code) >= MaxProgramSize {
		return &ProgramTooLargeError{Size: len(code), Limit: MaxProgramSize}
	}

	length := uint32(len(code))
	for m.Regs.PC < length {
		op := code[m.Regs.PC]
		m.Regs.Set(NamePC, float64(m.Regs.PC)+1)
		opcodeTable[op](m, code)

		// A jump opcode (exit, run) owns its own PC assignment, including
		// the halt sentinel when exit pops an empty jump stack: that value
		// must survive exactly as written, even when it happens to land
		// at or past the current buffer length (e.g. a nested exit
		// returning to an address in a caller this buffer doesn't
		// contain). Only a non-jump opcode reaching the end here is a
		// genuine fall-off-the-end, which gets the same sentinel an
		// explicit top-level exit sets (spec.md §4.7, P2).
		if !jumpOpcodes[op] && m.Regs.PC >= length {
			m.Regs.PC = haltPC
			return nil
		}
	}

	return nil
}
