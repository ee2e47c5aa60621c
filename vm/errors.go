// errors.go - the two error kinds spec.md §7 calls for: per-line syntax
// errors (accumulated, never fatal to the whole translation) and the
// single fatal precondition failure on an oversized program.
//
// The 1-based line numbering follows the teacher's own line-numbered
// assembler failures (assembler/ie32asm.go:
// `fmt.Errorf("Line %d: %v", lineNum+1, err)`); the message text differs
// ("Unknown instruction (<line>) on line <n>."), and GSX returns a []error
// instead of calling os.Exit, since a library must never terminate its host
// process.

package vm

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errPrinter = message.NewPrinter(language.English)

// SyntaxError reports one unrecognized source line. Translate accumulates
// one of these per bad line rather than stopping at the first.
type SyntaxError struct {
	Line int    // 1-based source line number
	Text string // the original, un-normalized line text
}

func (e *SyntaxError) Error() string {
	return errPrinter.Sprintf("Unknown instruction (%s) on line %d.", e.Text, e.Line)
}

// ProgramTooLargeError reports that a bytecode buffer met or exceeded
// MaxProgramSize and therefore cannot be run.
type ProgramTooLargeError struct {
	Size, Limit int
}

func (e *ProgramTooLargeError) Error() string {
	return fmt.Sprintf("program of %d bytes is too large: programs must be smaller than %d bytes", e.Size, e.Limit)
}
