// Package loader is the "external assembler/loader" spec §6 assumes
// constructs T3-ISA instructions and hands them to the interpreter by
// reference. It reads a JSON instruction list from disk, the same role
// the teacher's main.go ReadImage plays for LC-3 object files, adapted
// to T3-ISA's tuple-of-fields instruction shape instead of a packed
// binary word.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/teros-kernel/teros/internal/interp"
)

// opcodeNames maps the on-disk mnemonic to its Opcode, mirroring the
// teacher's OP_* constant table in main.go/internal/lc3.
var opcodeNames = map[string]interp.Opcode{
	"LOAD":  interp.OpLoad,
	"STORE": interp.OpStore,
	"ADD":   interp.OpAdd,
	"SUB":   interp.OpSub,
	"MUL":   interp.OpMul,
	"DIV":   interp.OpDiv,
	"AND":   interp.OpAnd,
	"OR":    interp.OpOr,
	"XOR":   interp.OpXor,
	"NOT":   interp.OpNot,
	"CMP":   interp.OpCmp,
	"JMP":   interp.OpJmp,
	"JZ":    interp.OpJz,
	"JNZ":   interp.OpJnz,
	"CALL":  interp.OpCall,
	"RET":   interp.OpRet,
	"PUSH":  interp.OpPush,
	"POP":   interp.OpPop,
	"HALT":  interp.OpHalt,
}

// instrJSON is the on-disk shape of one T3-ISA instruction.
type instrJSON struct {
	Op  string `json:"op"`
	Rd  int    `json:"rd"`
	Ra  int    `json:"ra"`
	Rb  int    `json:"rb"`
	Imm int    `json:"imm"`
}

// Load reads a JSON array of instructions from path.
func Load(path string) ([]interp.Instruction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	var decoded []instrJSON
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("loader: parse %s: %w", path, err)
	}

	program := make([]interp.Instruction, len(decoded))
	for i, d := range decoded {
		op, ok := opcodeNames[d.Op]
		if !ok {
			return nil, fmt.Errorf("loader: %s: instruction %d: unrecognized opcode %q", path, i, d.Op)
		}
		program[i] = interp.Instruction{Op: op, Rd: d.Rd, Ra: d.Ra, Rb: d.Rb, Imm: d.Imm}
	}
	return program, nil
}
