// Command gsxctl is a non-interactive front end for the GSX assembler and
// interpreter: it assembles a source file and, for `run`, executes the
// result once and prints the final machine snapshot. It is not the
// interactive front end (editor, register display, hex view) spec.md
// places out of scope; it has no editing, no debouncing, and exits after
// one pass, the same shape as the teacher's own `assembler/ie32asm.go`
// `main()` and `tools/converter.go`.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gsxvm/gsxvm/vm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gsxctl",
		Short: "Assemble and run GSX programs",
	}

	var asmOutput string
	asmCmd := &cobra.Command{
		Use:   "asm <source.gsx>",
		Short: "Translate a GSX source file into bytecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsm(args[0], asmOutput)
		},
	}
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "", "write bytecode to this file instead of stdout")

	var dump bool
	runCmd := &cobra.Command{
		Use:   "run <source.gsx|bytecode.bin>",
		Short: "Assemble (if source) and run a GSX program, printing the final snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0], dump)
		},
	}
	runCmd.Flags().BoolVar(&dump, "dump", false, "print the full RAM window [0,64) alongside the register snapshot")

	rootCmd.AddCommand(asmCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAsm(path, output string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	code, errs := vm.Translate(string(src))
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("assembly failed with %d error(s)", len(errs))
	}

	if output == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	return os.WriteFile(output, code, 0o644)
}

func runRun(path string, dump bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	code, errs := vm.Translate(string(src))
	if len(errs) > 0 {
		// Not valid GSX source; treat the file as bytecode instead.
		code = src
	}

	m := vm.NewMachineState()
	if err := vm.Run(code, m); err != nil {
		return err
	}

	var ramLen uint32
	if dump {
		ramLen = 64
	}
	snap := m.Snapshot(0, ramLen)
	fmt.Println(snap)
	if dump {
		fmt.Printf("ram[0:%d] = % x\n", len(snap.RAM), snap.RAM)
	}
	return nil
}
