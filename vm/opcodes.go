// opcodes.go - the opcode dispatch table and mnemonic dictionary builder
// (spec.md C5, §4.5). The two are built together, in one pass, by a single
// ordered algorithm, because the assembler and interpreter must agree on
// which opcode byte a given mnemonic produces.
//
// This mirrors the teacher's own dispatch-table construction: cpu_z80.go's
// initBaseOps()/initCBOps()/etc, and cpu_six5go2.go's InitOpcodeTable ->
// initOpcodeTableGenerated(), each populating a [256]func(*CPU) array by
// walking a fixed, ordered sequence of assignments.
//
// The step numbering and per-step opcode counts below follow spec.md §4.5
// literally. Walking them for a 3-register machine (T, R, Y are the only
// general registers) accounts for 106 of the table's 256 slots (6 reserved
// constant loads, plus 100 opcodes from steps 2-17) and 127 distinct
// mnemonic keys (several opcodes have synonym mnemonics). The remaining
// slots are never assigned a mnemonic and are filled with opReserved — see
// DESIGN.md for why the narrative "250 entries" framing doesn't arithmetically
// follow from the explicit per-step multipliers on three registers, and why
// this implementation treats the step list (not the round number) as the
// binding contract.
package vm

type opcodeHandler func(m *MachineState, code []byte)

const tableSize = 256

func regName(r RegisterName) string { return r.String() }

// buildOpcodeTable runs the 17-step algorithm once and returns the
// resulting dispatch table, mnemonic dictionary, and the jump-opcode set
// (spec.md §4.7: the handlers that own an arbitrary PC assignment, as
// opposed to the interpreter's own sequential fetch-advance).
func buildOpcodeTable() ([tableSize]opcodeHandler, map[string]byte, [tableSize]bool) {
	var table [tableSize]opcodeHandler
	var jump [tableSize]bool
	for i := range table {
		table[i] = opReserved
		jump[i] = true // unassigned slots halt via opReserved's own PC write
	}
	dict := make(map[string]byte, 160)
	next := 0

	add := func(h opcodeHandler, keys ...string) byte {
		op := byte(next)
		table[op] = h
		jump[op] = false
		for _, k := range keys {
			dict[k] = op
		}
		next++
		return op
	}

	// addJump is add's counterpart for exit and run, the two opcodes whose
	// handlers set PC to a value the sequential fetch-advance did not
	// produce. Run's post-dispatch termination check must never overwrite a
	// PC these handlers set deliberately (DESIGN.md).
	addJump := func(h opcodeHandler, keys ...string) byte {
		op := byte(next)
		table[op] = h
		for _, k := range keys {
			dict[k] = op
		}
		next++
		return op
	}

	// Step 1: opcodes 0-5, the six constant loads. Reserved: no mnemonic
	// key is registered for them here: the assembler recognizes them via
	// the dedicated `new<reg>=<number>` pattern (assembler.go), not a
	// dictionary lookup.
	for _, r := range floatRegs {
		add(opLoadByte(r))
	}
	for _, r := range floatRegs {
		add(opLoadFloat(r))
	}

	// Step 2: exit.
	addJump(opExit, "exit")

	// Step 3: run <reg>, one per general register.
	for _, r := range floatRegs {
		addJump(opRun(r), "run"+regName(r))
	}

	// Step 4: push <reg>, one per general register.
	for _, r := range floatRegs {
		add(opPush(r), "push"+regName(r))
	}

	// Step 5: new <reg> = pop, one per general register.
	for _, r := range floatRegs {
		add(opPop(r), "new"+regName(r)+"=pop")
	}

	// Step 6: memory reads, byte then float, every ordered (vreg, areg)
	// pair including vreg == areg.
	for _, v := range floatRegs {
		for _, a := range floatRegs {
			add(opRAMReadByte(v, a), "new"+regName(v)+"=ram["+regName(a)+"]byte")
		}
	}
	for _, v := range floatRegs {
		for _, a := range floatRegs {
			add(opRAMReadFloat(v, a), "new"+regName(v)+"=ram["+regName(a)+"]float")
		}
	}

	// Step 7: memory writes, byte then float, vreg != areg.
	for _, a := range floatRegs {
		for _, v := range floatRegs {
			if v == a {
				continue
			}
			add(opRAMWriteByte(a, v), "newram["+regName(a)+"]byte="+regName(v))
		}
	}
	for _, a := range floatRegs {
		for _, v := range floatRegs {
			if v == a {
				continue
			}
			add(opRAMWriteFloat(a, v), "newram["+regName(a)+"]float="+regName(v))
		}
	}

	// Step 8: three-register addition. Both operand orderings of the
	// target's other-two map to the same opcode.
	for _, t := range floatRegs {
		o := otherTwo(t)
		add(opAdd3(t, o[0], o[1]),
			"new"+regName(t)+"="+regName(o[0])+"+"+regName(o[1]),
			"new"+regName(t)+"="+regName(o[1])+"+"+regName(o[0]))
	}

	// Step 9: self-double, three synonymous mnemonics per opcode.
	for _, r := range floatRegs {
		n := regName(r)
		add(opDouble(r),
			"new"+n+"="+n+"+"+n,
			"new"+n+"=2*"+n,
			"new"+n+"="+n+"*2")
	}

	// Step 10: register plus other. Both orderings of (target, other) map
	// to the same opcode.
	for _, t := range floatRegs {
		for _, o := range otherTwo(t) {
			tn, on := regName(t), regName(o)
			add(opAddOther(t, o),
				"new"+tn+"="+tn+"+"+on,
				"new"+tn+"="+on+"+"+tn)
		}
	}

	// Step 11: three-register multiplication, symmetric like (8).
	for _, t := range floatRegs {
		o := otherTwo(t)
		add(opMul3(t, o[0], o[1]),
			"new"+regName(t)+"="+regName(o[0])+"*"+regName(o[1]),
			"new"+regName(t)+"="+regName(o[1])+"*"+regName(o[0]))
	}

	// Step 12: self-square, two synonymous mnemonics per opcode.
	for _, r := range floatRegs {
		n := regName(r)
		add(opSquare(r),
			"new"+n+"="+n+"*"+n,
			"new"+n+"="+n+"^2")
	}

	// Step 13: register times other, symmetric like (10).
	for _, t := range floatRegs {
		for _, o := range otherTwo(t) {
			tn, on := regName(t), regName(o)
			add(opMulOther(t, o),
				"new"+tn+"="+tn+"*"+on,
				"new"+tn+"="+on+"*"+tn)
		}
	}

	// Step 14: subtraction, three-operand. Each operand ordering gets its
	// own opcode (subtraction is not commutative).
	for _, t := range floatRegs {
		o := otherTwo(t)
		add(opSub3(t, o[0], o[1]), "new"+regName(t)+"="+regName(o[0])+"-"+regName(o[1]))
		add(opSub3(t, o[1], o[0]), "new"+regName(t)+"="+regName(o[1])+"-"+regName(o[0]))
	}

	// Step 15: subtraction, target-in-operand. Four opcodes per target:
	// target minus other1, target minus other2, other1 minus target,
	// other2 minus target.
	for _, t := range floatRegs {
		o := otherTwo(t)
		tn := regName(t)
		add(opSub2(t, o[0], false), "new"+tn+"="+tn+"-"+regName(o[0]))
		add(opSub2(t, o[1], false), "new"+tn+"="+tn+"-"+regName(o[1]))
		add(opSub2(t, o[0], true), "new"+tn+"="+regName(o[0])+"-"+tn)
		add(opSub2(t, o[1], true), "new"+tn+"="+regName(o[1])+"-"+tn)
	}

	// Step 16: division, three-operand, same shape as (14).
	for _, t := range floatRegs {
		o := otherTwo(t)
		add(opDiv3(t, o[0], o[1]), "new"+regName(t)+"="+regName(o[0])+"/"+regName(o[1]))
		add(opDiv3(t, o[1], o[0]), "new"+regName(t)+"="+regName(o[1])+"/"+regName(o[0]))
	}

	// Step 17: division, target-in-operand, same shape as (15).
	for _, t := range floatRegs {
		o := otherTwo(t)
		tn := regName(t)
		add(opDiv2(t, o[0], false), "new"+tn+"="+tn+"/"+regName(o[0]))
		add(opDiv2(t, o[1], false), "new"+tn+"="+tn+"/"+regName(o[1]))
		add(opDiv2(t, o[0], true), "new"+tn+"="+regName(o[0])+"/"+tn)
		add(opDiv2(t, o[1], true), "new"+tn+"="+regName(o[1])+"/"+tn)
	}

	return table, dict, jump
}

var (
	opcodeTable [tableSize]opcodeHandler
	mnemonics   map[string]byte
	jumpOpcodes [tableSize]bool
)

func init() {
	opcodeTable, mnemonics, jumpOpcodes = buildOpcodeTable()
}
