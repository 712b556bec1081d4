package ir

import (
	"fmt"

	"surge/internal/diag"
)

// Validate verifies every block of every function in the module is
// terminated — the only validation pass that runs inside the IR core
// itself. Any other well-formedness is left to the sema pipeline that
// produced this IR.
func (m *Module) Validate(r diag.Reporter) {
	for _, fn := range m.Functions {
		for _, blk := range fn.Blocks {
			if !blockIsTerminated(blk) {
				diag.ReportError(r, diag.ICEInvariant, blk.Location,
					fmt.Sprintf("block %q of function %q is not terminated", blk.BlockName, fn.Name)).Emit()
			}
		}
	}
}

func blockIsTerminated(blk *Value) bool {
	if len(blk.Instructions) == 0 {
		return false
	}
	last := blk.Instructions[len(blk.Instructions)-1]
	return last.IsTerminator()
}
