// assembler.go - the two-pass-free, single-pass assembler (spec.md C6).
// GSX's instruction set has no labels, no forward references and no
// relocation, so unlike the teacher's own two-pass ie32asm.go assembler
// (which needs a first pass to resolve label addresses), translation here
// is a single left-to-right walk over the source lines.

package vm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// constLoadPattern matches a normalized constant-load line: new<reg>=<num>,
// where <reg> is one of t, r, y and <num> is an optionally-signed integer
// or decimal (at least one digit on each side of a single dot).
var constLoadPattern = regexp.MustCompile(`^new([try])=(-?[0-9]+(?:\.[0-9]+)?)$`)

// normalize strips any comment (from the first '#' to end of line),
// removes all whitespace, and lowercases what remains, per spec.md §4.6.
func normalize(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func registerNameFromLetter(letter string) RegisterName {
	switch letter {
	case "t":
		return NameT
	case "r":
		return NameR
	case "y":
		return NameY
	default:
		return NameT
	}
}

// encodeConstant returns the bytecode for a constant-load line already
// known to match constLoadPattern.
func encodeConstant(reg RegisterName, numText string) []byte {
	isFloat := strings.Contains(numText, ".")
	value, _ := strconv.ParseFloat(numText, 64)

	if !isFloat && value >= -128 && value <= 127 {
		op := byte(0)
		switch reg {
		case NameT:
			op = 0
		case NameR:
			op = 1
		case NameY:
			op = 2
		}
		return []byte{op, byte(int8(value))}
	}

	op := byte(3)
	switch reg {
	case NameT:
		op = 3
	case NameR:
		op = 4
	case NameY:
		op = 5
	}
	b := FloatToBytes(RoundF32(value))
	return append([]byte{op}, b[:]...)
}

// Translate assembles GSX source text into bytecode. Blank lines (after
// normalization strips comments and whitespace) are skipped. Every
// unrecognized line is collected as a *SyntaxError rather than aborting
// translation at the first failure; if any errors were collected the
// returned bytecode is nil.
func Translate(source string) ([]byte, []error) {
	var out []byte
	var errs []error

	for i, raw := range strings.Split(source, "\n") {
		line := normalize(raw)
		if line == "" {
			continue
		}

		if op, ok := mnemonics[line]; ok {
			out = append(out, op)
			continue
		}

		if m := constLoadPattern.FindStringSubmatch(line); m != nil {
			reg := registerNameFromLetter(m[1])
			out = append(out, encodeConstant(reg, m[2])...)
			continue
		}

		errs = append(errs, &SyntaxError{Line: i + 1, Text: raw})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}
