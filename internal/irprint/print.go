// Package irprint renders an *ir.Module as human-readable textual IR, per
// the format golden-file tests are written against.
package irprint

import (
	"fmt"
	"io"
	"strings"

	"surge/internal/ir"

	"github.com/fatih/color"
)

// Options controls printer behaviour.
type Options struct {
	Color bool
}

// Print writes the textual form of m to w.
func Print(w io.Writer, m *ir.Module, opts Options) {
	p := &printer{w: w, color: opts.Color}
	p.printModule(m)
}

type printer struct {
	w     io.Writer
	color bool
}

func (p *printer) emit(f string, args ...any) {
	fmt.Fprintf(p.w, f, args...) //nolint:errcheck
}

func (p *printer) keyword(s string) string {
	if !p.color {
		return s
	}
	return color.New(color.FgMagenta).Sprint(s)
}

func (p *printer) printModule(m *ir.Module) {
	p.emit("; module %s\n", m.Name)

	for _, st := range m.Context.Types.NamedStructs() {
		p.emit("type @%s = %s\n", st.StructName, printStructBody(st))
	}

	for _, g := range m.Globals {
		p.printGlobal(g)
	}

	for _, fn := range m.Functions {
		p.printFunction(fn)
	}
}

func printStructBody(t *ir.Type) string {
	var sb strings.Builder
	sb.WriteString("struct { ")
	for i, f := range t.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

func (p *printer) printGlobal(g *ir.Value) {
	p.emit("%s %s@%s = %s\n", p.keyword("define"), linkageKeyword(p, g.Linkage), g.Name, printConstant(g.Operand))
}

func linkageKeyword(p *printer, l ir.Linkage) string {
	switch l {
	case ir.LinkageExported:
		return p.keyword("export") + " "
	case ir.LinkageImported:
		return p.keyword("import") + " "
	default:
		return p.keyword("internal") + " "
	}
}

func printConstant(v *ir.Value) string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case ir.ValArrayConstant:
		if v.IsStringLiteral {
			return v.Type.String() + " " + quoteCString(v.ArrayData)
		}
		return v.Type.String() + " <array>"
	case ir.ValIntegerConstant:
		return fmt.Sprintf("%s %d", v.Type.String(), v.IntValue)
	case ir.ValFloatConstant:
		return fmt.Sprintf("%s %g", v.Type.String(), v.FloatValue)
	case ir.ValVoidConstant:
		return "void"
	case ir.ValPoison:
		return v.Type.String() + " poison"
	default:
		return v.Type.String()
	}
}

// quoteCString renders array data as a quoted C-style string literal,
// escaping non-printable-ASCII bytes as \xx.
func quoteCString(data []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, b := range data {
		switch {
		case b == '"':
			sb.WriteString(`\"`)
		case b == '\\':
			sb.WriteString(`\\`)
		case b == '\n':
			sb.WriteString(`\n`)
		case b == 0:
			sb.WriteString(`\00`)
		case b >= 0x20 && b < 0x7f:
			sb.WriteByte(b)
		default:
			fmt.Fprintf(&sb, `\%02x`, b)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (p *printer) printFunction(fn *ir.Value) {
	keyword := "define"
	if len(fn.Blocks) == 0 {
		keyword = "declare"
	}

	params := make([]string, len(fn.Parameters))
	for i, param := range fn.Parameters {
		if param.Name != "" {
			params[i] = fmt.Sprintf("%s %%%s", param.Type.String(), param.Name)
		} else {
			params[i] = param.Type.String()
		}
	}
	paramList := strings.Join(params, ", ")
	if fn.Type.IsVariadic {
		if paramList != "" {
			paramList += ", "
		}
		paramList += "..."
	}

	linkage := ""
	if fn.Linkage == ir.LinkageExported {
		linkage = p.keyword("export") + " "
	}

	p.emit("%s %s%s @%s(%s) -> %s", p.keyword(keyword), linkage, fn.CallConv.String(), fn.Name, paramList, fn.Type.ReturnType.String())

	if keyword == "declare" {
		p.emit("\n")
		return
	}

	p.emit(" {\n")
	for i, blk := range fn.Blocks {
		label := blk.BlockName
		if label == "" {
			label = fmt.Sprintf("_bb%d", i)
		}
		p.emit("%s:\n", label)
		for _, instr := range blk.Instructions {
			p.printInstruction(instr)
		}
	}
	p.emit("}\n")
}

func (p *printer) printInstruction(v *ir.Value) {
	prefix := "  "
	if v.Kind.ProducesValue() && !v.Type.IsVoid() {
		if v.Name != "" {
			prefix += "%" + v.Name + " = "
		} else {
			prefix += fmt.Sprintf("%%%d = ", v.Index)
		}
	}
	p.emit("%s%s\n", prefix, renderInstructionBody(v))
}

func operandRef(v *ir.Value) string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case ir.ValIntegerConstant:
		return fmt.Sprintf("%s %d", v.Type.String(), v.IntValue)
	case ir.ValFloatConstant:
		return fmt.Sprintf("%s %g", v.Type.String(), v.FloatValue)
	case ir.ValVoidConstant:
		return "void"
	case ir.ValPoison:
		return v.Type.String() + " poison"
	case ir.ValGlobalVariable, ir.ValFunction:
		return fmt.Sprintf("%s @%s", v.Type.String(), v.Name)
	default:
		if v.Name != "" {
			return fmt.Sprintf("%s %%%s", v.Type.String(), v.Name)
		}
		return fmt.Sprintf("%s %%%d", v.Type.String(), v.Index)
	}
}

func blockRef(blk *ir.Value) string {
	if blk.BlockName != "" {
		return "%" + blk.BlockName
	}
	return "%_bb"
}

func renderInstructionBody(v *ir.Value) string {
	switch v.Kind {
	case ir.ValNop:
		return "nop"
	case ir.ValAlloca:
		return fmt.Sprintf("alloca %s", v.AllocatedType.String())
	case ir.ValLoad:
		return fmt.Sprintf("load %s, %s", v.Type.String(), operandRef(v.Address))
	case ir.ValStore:
		return fmt.Sprintf("store %s, %s", operandRef(v.Address), operandRef(v.Operand))
	case ir.ValPtrAdd:
		return fmt.Sprintf("ptradd %s, %s", operandRef(v.Address), operandRef(v.Operand))
	case ir.ValCall:
		args := make([]string, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = operandRef(a)
		}
		argList := strings.Join(args, ", ")
		if v.CalleeType.IsVariadic {
			if argList != "" {
				argList += ", "
			}
			argList += "..."
		}
		return fmt.Sprintf("call %s %s @%s(%s)", v.CallConv.String(), v.Type.String(), v.Callee.Name, argList)
	case ir.ValBuiltin:
		args := make([]string, len(v.BuiltinArgs))
		for i, a := range v.BuiltinArgs {
			args[i] = operandRef(a)
		}
		return fmt.Sprintf("builtin_%s(%s)", v.BuiltinName, strings.Join(args, ", "))
	case ir.ValReturn:
		if v.Operand == nil {
			return "return_void"
		}
		return "return " + operandRef(v.Operand)
	case ir.ValUnreachable:
		return "unreachable"
	case ir.ValBranch:
		return "branch " + blockRef(v.Pass)
	case ir.ValCondBranch:
		return fmt.Sprintf("cond_branch %s, %s, %s", operandRef(v.Operand), blockRef(v.Pass), blockRef(v.Fail))
	case ir.ValPhi:
		var sb strings.Builder
		sb.WriteString("phi " + v.Type.String())
		for _, in := range v.Incoming {
			sb.WriteString(fmt.Sprintf(" [%s, %s]", operandRef(in.Value), blockRef(in.Block)))
		}
		return sb.String()
	case ir.ValZExt, ir.ValSExt, ir.ValTrunc, ir.ValBitcast,
		ir.ValFPToUI, ir.ValFPToSI, ir.ValUIToFP, ir.ValSIToFP, ir.ValFPExt, ir.ValFPTrunc:
		return fmt.Sprintf("%s %s to %s", castMnemonic(v.Kind), operandRef(v.Operand), v.Type.String())
	case ir.ValNeg, ir.ValCompl, ir.ValCopy:
		return fmt.Sprintf("%s %s", unaryMnemonic(v.Kind), operandRef(v.Operand))
	default:
		if mnemonic, ok := binaryMnemonic(v.Kind); ok {
			return fmt.Sprintf("%s %s, %s", mnemonic, operandRef(v.LHS), operandRef(v.RHS))
		}
		return "<unknown>"
	}
}

func castMnemonic(k ir.ValueKind) string {
	switch k {
	case ir.ValZExt:
		return "zext"
	case ir.ValSExt:
		return "sext"
	case ir.ValTrunc:
		return "trunc"
	case ir.ValBitcast:
		return "bitcast"
	case ir.ValFPToUI:
		return "fptoui"
	case ir.ValFPToSI:
		return "fptosi"
	case ir.ValUIToFP:
		return "uitofp"
	case ir.ValSIToFP:
		return "sitofp"
	case ir.ValFPExt:
		return "fpext"
	case ir.ValFPTrunc:
		return "fptrunc"
	default:
		return "cast"
	}
}

func unaryMnemonic(k ir.ValueKind) string {
	switch k {
	case ir.ValNeg:
		return "neg"
	case ir.ValCompl:
		return "compl"
	case ir.ValCopy:
		return "copy"
	default:
		return "unary"
	}
}

func binaryMnemonic(k ir.ValueKind) (string, bool) {
	switch k {
	case ir.ValAdd:
		return "add", true
	case ir.ValSub:
		return "sub", true
	case ir.ValMul:
		return "mul", true
	case ir.ValSDiv:
		return "sdiv", true
	case ir.ValUDiv:
		return "udiv", true
	case ir.ValSMod:
		return "smod", true
	case ir.ValUMod:
		return "umod", true
	case ir.ValShl:
		return "shl", true
	case ir.ValShr:
		return "shr", true
	case ir.ValSar:
		return "sar", true
	case ir.ValAnd:
		return "and", true
	case ir.ValOr:
		return "or", true
	case ir.ValXor:
		return "xor", true
	case ir.ValFAdd:
		return "fadd", true
	case ir.ValFSub:
		return "fsub", true
	case ir.ValFMul:
		return "fmul", true
	case ir.ValFDiv:
		return "fdiv", true
	case ir.ValFMod:
		return "fmod", true
	case ir.ValICmpEQ:
		return "icmp_eq", true
	case ir.ValICmpNE:
		return "icmp_ne", true
	case ir.ValICmpSLT:
		return "icmp_slt", true
	case ir.ValICmpSLE:
		return "icmp_sle", true
	case ir.ValICmpSGT:
		return "icmp_sgt", true
	case ir.ValICmpSGE:
		return "icmp_sge", true
	case ir.ValICmpULT:
		return "icmp_ult", true
	case ir.ValICmpULE:
		return "icmp_ule", true
	case ir.ValICmpUGT:
		return "icmp_ugt", true
	case ir.ValICmpUGE:
		return "icmp_uge", true
	case ir.ValFCmpOEQ:
		return "fcmp_oeq", true
	case ir.ValFCmpONE:
		return "fcmp_one", true
	case ir.ValFCmpOLT:
		return "fcmp_olt", true
	case ir.ValFCmpOLE:
		return "fcmp_ole", true
	case ir.ValFCmpOGT:
		return "fcmp_ogt", true
	case ir.ValFCmpOGE:
		return "fcmp_oge", true
	case ir.ValFCmpUEQ:
		return "fcmp_ueq", true
	case ir.ValFCmpUNE:
		return "fcmp_une", true
	case ir.ValFCmpULT:
		return "fcmp_ult", true
	case ir.ValFCmpULE:
		return "fcmp_ule", true
	case ir.ValFCmpUGT:
		return "fcmp_ugt", true
	case ir.ValFCmpUGE:
		return "fcmp_uge", true
	case ir.ValFCmpORD:
		return "fcmp_ord", true
	case ir.ValFCmpUNO:
		return "fcmp_uno", true
	default:
		return "", false
	}
}
