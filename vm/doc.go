// Package vm implements the GSX virtual machine: a single-pass assembler
// and a register-and-stack bytecode interpreter built around a 256-entry
// opcode dispatch table.
//
// The public surface is two functions: Translate, which turns GSX source
// text into bytecode, and Run, which executes bytecode against a
// MachineState. Both share the same opcode table and mnemonic dictionary,
// built once at init time by buildOpcodeTable.
package vm
