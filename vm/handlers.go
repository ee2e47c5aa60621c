// handlers.go - opcode handler bodies referenced by opcodes.go. Each
// handler closes over the register(s) it operates on, the way the
// teacher's generated 6502 table closes over a fixed addressing mode per
// slot (cpu_6502_opcode_table_gen.go).
//
// All arithmetic is carried out in float64 and written back through
// RegisterFile.Set, which applies RoundF32 (I1) at the single point of
// write. Memory addresses are always taken from a float register's value
// through SaturateU32, since address registers are ordinary float
// registers holding whole-number addresses (spec.md §4.3/§4.7).

package vm

// opReserved fills dispatch-table slots with no assigned mnemonic. It is
// never emitted by Translate; bytecode that reaches it was hand-crafted
// outside the assembler, which spec.md's non-goals leave unsandboxed. It
// behaves like an unconditional exit from the outermost frame, so the
// interpreter halts rather than reading an undefined func value.
func opReserved(m *MachineState, code []byte) {
	m.Regs.PC = haltPC
}

// opLoadByte reads one signed byte immediate at PC and loads it into reg,
// advancing PC by one.
func opLoadByte(reg RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		b := int8(code[m.Regs.PC])
		m.Regs.Set(NamePC, float64(m.Regs.PC)+1)
		m.Regs.Set(reg, float64(b))
	}
}

// opLoadFloat reads a four-byte big-endian float immediate at PC and loads
// it into reg, advancing PC by four.
func opLoadFloat(reg RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		addr := m.Regs.PC
		f := BytesToFloat(code[addr : addr+4])
		m.Regs.Set(NamePC, float64(addr)+4)
		m.Regs.Set(reg, float64(f))
	}
}

// opExit implements `exit`: if the jump stack is empty this terminates the
// whole program by driving PC past any possible bytecode length; otherwise
// it pops a return address verbatim (the one-past-call adjustment happens
// on the `run` side, not here).
func opExit(m *MachineState, code []byte) {
	if m.Regs.JS == 0 {
		m.Regs.PC = haltPC
		return
	}
	m.Regs.Set(NameJS, float64(m.Regs.JS)-1)
	m.Regs.PC = m.JumpStack[m.Regs.JS]
}

// opRun implements `run <reg>`: push a return address, then jump to the
// address held in reg. The pushed address is the live PC (already one past
// the `run` opcode itself, per the interpreter's own pre-dispatch advance)
// plus one more, per spec.md §4.7's explicit "one-past-call return
// convention" — the return skips the single byte immediately following
// `run`. This is a deliberate property of the instruction set, not a bug.
func opRun(reg RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.JumpStack[m.Regs.JS] = SaturateU32(float64(m.Regs.PC) + 1)
		m.Regs.Set(NameJS, float64(m.Regs.JS)+1)
		m.Regs.PC = SaturateU32(m.Regs.Get(reg))
	}
}

// opPush implements `push <reg>`.
func opPush(reg RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		v := m.Regs.Get(reg)
		m.ArgStack[m.Regs.AS] = RoundF32(v)
		m.Regs.Set(NameAS, float64(m.Regs.AS)+1)
	}
}

// opPop implements `new <reg> = pop`.
func opPop(reg RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(NameAS, float64(m.Regs.AS)-1)
		m.Regs.Set(reg, float64(m.ArgStack[m.Regs.AS]))
	}
}

// opRAMReadByte implements `new <v> = ram[<a>] byte`.
func opRAMReadByte(v, a RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		addr := SaturateU32(m.Regs.Get(a))
		b := m.RAMGetI8(addr)
		m.Regs.Set(v, float64(b))
	}
}

// opRAMReadFloat implements `new <v> = ram[<a>] float`.
func opRAMReadFloat(v, a RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		addr := SaturateU32(m.Regs.Get(a))
		f := m.RAMGetF32(addr)
		m.Regs.Set(v, float64(f))
	}
}

// opRAMWriteByte implements `new ram[<a>] byte = <v>`.
func opRAMWriteByte(a, v RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		addr := SaturateU32(m.Regs.Get(a))
		m.RAMSetI8(addr, m.Regs.Get(v))
	}
}

// opRAMWriteFloat implements `new ram[<a>] float = <v>`.
func opRAMWriteFloat(a, v RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		addr := SaturateU32(m.Regs.Get(a))
		m.RAMSetF32(addr, RoundF32(m.Regs.Get(v)))
	}
}

// opAdd3 implements `new <t> = <a> + <b>` where a, b are both registers
// other than t.
func opAdd3(t, a, b RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(t, m.Regs.Get(a)+m.Regs.Get(b))
	}
}

// opDouble implements `new <r> = <r> + <r>` (and its `2*r`/`r*2` synonyms).
func opDouble(r RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(r, m.Regs.Get(r)*2)
	}
}

// opAddOther implements `new <t> = <t> + <o>`.
func opAddOther(t, o RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(t, m.Regs.Get(t)+m.Regs.Get(o))
	}
}

// opMul3 implements `new <t> = <a> * <b>`.
func opMul3(t, a, b RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(t, m.Regs.Get(a)*m.Regs.Get(b))
	}
}

// opSquare implements `new <r> = <r> * <r>` (and its `r^2` synonym).
func opSquare(r RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		v := m.Regs.Get(r)
		m.Regs.Set(r, v*v)
	}
}

// opMulOther implements `new <t> = <t> * <o>`.
func opMulOther(t, o RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(t, m.Regs.Get(t)*m.Regs.Get(o))
	}
}

// opSub3 implements `new <t> = <a> - <b>`.
func opSub3(t, a, b RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(t, m.Regs.Get(a)-m.Regs.Get(b))
	}
}

// opSub2 implements the four target-in-operand subtraction forms. When
// reverse is false it computes t - o; when true, o - t.
func opSub2(t, o RegisterName, reverse bool) opcodeHandler {
	return func(m *MachineState, code []byte) {
		tv, ov := m.Regs.Get(t), m.Regs.Get(o)
		if reverse {
			m.Regs.Set(t, ov-tv)
		} else {
			m.Regs.Set(t, tv-ov)
		}
	}
}

// opDiv3 implements `new <t> = <a> / <b>`. IEEE-754 division semantics
// apply: dividing by zero yields +/-Inf or NaN rather than a Go panic,
// since float division by zero never panics.
func opDiv3(t, a, b RegisterName) opcodeHandler {
	return func(m *MachineState, code []byte) {
		m.Regs.Set(t, m.Regs.Get(a)/m.Regs.Get(b))
	}
}

// opDiv2 implements the four target-in-operand division forms.
func opDiv2(t, o RegisterName, reverse bool) opcodeHandler {
	return func(m *MachineState, code []byte) {
		tv, ov := m.Regs.Get(t), m.Regs.Get(o)
		if reverse {
			m.Regs.Set(t, ov/tv)
		} else {
			m.Regs.Set(t, tv/ov)
		}
	}
}
