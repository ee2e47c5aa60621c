// vm_test.go - shared test rig, in the teacher's style: a constructor plus
// a handful of small requireXxx comparison helpers, no assertion library.

package vm

import "testing"

func newMachine(t *testing.T) *MachineState {
	t.Helper()
	return NewMachineState()
}

func requireEqualU32(t *testing.T, got, want uint32) {
	t.Helper()
	if got != want {
		t.Fatalf("got %#x, want %#x", got, want)
	}
}

func requireEqualU8(t *testing.T, got, want uint8) {
	t.Helper()
	if got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func requireEqualF32(t *testing.T, got, want float32) {
	t.Helper()
	if got != want {
		t.Fatalf("got %g, want %g", got, want)
	}
}

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assembleOrFail(t *testing.T, src string) []byte {
	t.Helper()
	code, errs := Translate(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected assembly errors: %v", errs)
	}
	return code
}
