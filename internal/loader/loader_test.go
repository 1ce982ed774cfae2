package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teros-kernel/teros/internal/interp"
)

func TestLoadParsesKnownOpcodes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.json")
	const body = `[
		{"op": "LOAD", "rd": 1, "imm": 1},
		{"op": "HALT"}
	]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	program, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(program) != 2 {
		t.Fatalf("len(program) = %d, want 2", len(program))
	}
	if program[0].Op != interp.OpLoad || program[0].Rd != 1 || program[0].Imm != 1 {
		t.Errorf("program[0] = %+v, want LOAD rd=1 imm=1", program[0])
	}
	if program[1].Op != interp.OpHalt {
		t.Errorf("program[1].Op = %v, want OpHalt", program[1].Op)
	}
}

func TestLoadRejectsUnknownOpcode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.json")
	if err := os.WriteFile(path, []byte(`[{"op": "NOPE"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail on an unrecognized opcode")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.json"); err == nil {
		t.Error("Load should fail when the file does not exist")
	}
}
