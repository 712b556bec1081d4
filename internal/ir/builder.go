package ir

import (
	"fmt"

	"surge/internal/source"
)

// Builder is a pure cursor: current insertion function, current insertion
// block, and an insert index within that block. It owns nothing.
type Builder struct {
	module *Module

	fn    *Value
	block *Value
	index int
}

// NewBuilder creates a builder bound to a module.
func NewBuilder(m *Module) *Builder {
	return &Builder{module: m}
}

// PositionAtEnd moves the cursor to the end of block.
func (b *Builder) PositionAtEnd(block *Value) {
	b.block = block
	b.fn = block.ParentFunction
	b.index = len(block.Instructions)
}

// PositionBefore moves the cursor to just before instr within its block.
func (b *Builder) PositionBefore(instr *Value) {
	b.block = instr.ParentBlock
	b.fn = b.block.ParentFunction
	b.index = indexOf(b.block.Instructions, instr)
}

// PositionAfter moves the cursor to just after instr within its block.
func (b *Builder) PositionAfter(instr *Value) {
	b.block = instr.ParentBlock
	b.fn = b.block.ParentFunction
	b.index = indexOf(b.block.Instructions, instr) + 1
}

func indexOf(xs []*Value, target *Value) int {
	for i, x := range xs {
		if x == target {
			return i
		}
	}
	panic("ir: instruction not found in its own parent block")
}

// insert places v at the cursor, advances the cursor by one, associates v
// with the current block, and then re-indexes every non-void instruction
// in the function so SSA values carry dense increasing indices — used
// solely for textual IR, never for identity.
func (b *Builder) insert(v *Value) *Value {
	if b.block == nil {
		panic("ir: builder has no insertion point")
	}
	v.ParentBlock = b.block

	instrs := b.block.Instructions
	instrs = append(instrs, nil)
	copy(instrs[b.index+1:], instrs[b.index:])
	instrs[b.index] = v
	b.block.Instructions = instrs
	b.index++

	b.reindex()
	return v
}

// reindex assigns dense increasing indices to every non-void-producing
// instruction in the current function, starting at the parameter count.
// Instructions that produce no value (stores, branches, terminators, nop)
// keep index 0 and carry the void type.
func (b *Builder) reindex() {
	if b.fn == nil {
		return
	}
	next := int64(len(b.fn.Parameters))
	for _, blk := range b.fn.Blocks {
		for _, instr := range blk.Instructions {
			if instr.Kind.producesValue() && !instr.Type.IsVoid() {
				instr.Index = next
				next++
			} else {
				instr.Index = 0
			}
		}
	}
}

func (b *Builder) assertSameModule(v *Value) {
	if v != nil && v.Module != nil && v.Module != b.module {
		panic("ir: operand belongs to a different module")
	}
}

// Nop inserts a no-op instruction.
func (b *Builder) Nop(loc source.Span) *Value {
	return b.insert(b.module.newValue(ValNop, loc, b.module.Context.Types.Void()))
}

// Alloca inserts a stack allocation of elemType; the result is always
// ptr-typed, with the element type carried separately for the backend.
func (b *Builder) Alloca(loc source.Span, elemType *Type) *Value {
	v := b.module.newValue(ValAlloca, loc, b.module.Context.Types.Ptr())
	v.AllocatedType = elemType
	return b.insert(v)
}

// Load inserts a load of typ from addr. addr must be ptr-typed.
func (b *Builder) Load(loc source.Span, addr *Value, typ *Type) *Value {
	b.assertSameModule(addr)
	if addr.Type.Kind != TypePtr {
		panic("ir: load address must be ptr-typed")
	}
	v := b.module.newValue(ValLoad, loc, typ)
	v.Address = addr
	return b.insert(v)
}

// Store inserts a store of value to addr. Produces no value.
func (b *Builder) Store(loc source.Span, addr, value *Value) *Value {
	b.assertSameModule(addr)
	b.assertSameModule(value)
	if addr.Type.Kind != TypePtr {
		panic("ir: store address must be ptr-typed")
	}
	v := b.module.newValue(ValStore, loc, b.module.Context.Types.Void())
	v.Address = addr
	v.Operand = value
	return b.insert(v)
}

// PtrAdd inserts a pointer + integer-offset -> pointer instruction.
func (b *Builder) PtrAdd(loc source.Span, addr, offset *Value) *Value {
	b.assertSameModule(addr)
	b.assertSameModule(offset)
	if addr.Type.Kind != TypePtr {
		panic("ir: ptradd address must be ptr-typed")
	}
	if offset.Type.Kind != TypeInteger {
		panic("ir: ptradd offset must be integer-typed")
	}
	v := b.module.newValue(ValPtrAdd, loc, b.module.Context.Types.Ptr())
	v.Address = addr
	v.Operand = offset
	return b.insert(v)
}

// Call inserts a call to callee of callee type calleeType with the given
// arguments. Operand types are asserted to match the callee's signature.
func (b *Builder) Call(loc source.Span, callee *Value, calleeType *Type, args []*Value, name string) *Value {
	b.assertSameModule(callee)
	if calleeType.Kind != TypeFunction {
		panic("ir: call target must have function type")
	}
	if !calleeType.IsVariadic && len(args) != len(calleeType.ParamTypes) {
		panic(fmt.Sprintf("ir: call argument count mismatch: want %d, got %d", len(calleeType.ParamTypes), len(args)))
	}
	for i, p := range calleeType.ParamTypes {
		if i >= len(args) {
			break
		}
		b.assertSameModule(args[i])
		if args[i].Type.Kind != p.Kind {
			panic("ir: call argument type mismatch")
		}
	}
	v := b.module.newValue(ValCall, loc, calleeType.ReturnType)
	v.Callee = callee
	v.CalleeType = calleeType
	v.CallConv = calleeType.CallConv
	v.Arguments = append([]*Value(nil), args...)
	v.Name = name
	return b.insert(v)
}

// Builtin inserts a call to an intrinsic identified by name.
func (b *Builder) Builtin(loc source.Span, name string, resultType *Type, args []*Value) *Value {
	v := b.module.newValue(ValBuiltin, loc, resultType)
	v.BuiltinName = name
	v.BuiltinArgs = append([]*Value(nil), args...)
	return b.insert(v)
}

// BuiltinMemset inserts a memset intrinsic call; produces no value.
func (b *Builder) BuiltinMemset(loc source.Span, dst, value, size *Value) *Value {
	return b.Builtin(loc, "memset", b.module.Context.Types.Void(), []*Value{dst, value, size})
}

// BuiltinMemcopy inserts a memcopy intrinsic call; produces no value.
func (b *Builder) BuiltinMemcopy(loc source.Span, dst, src, size *Value) *Value {
	return b.Builtin(loc, "memcopy", b.module.Context.Types.Void(), []*Value{dst, src, size})
}

// Return inserts a terminating return with value.
func (b *Builder) Return(loc source.Span, value *Value) *Value {
	b.assertSameModule(value)
	v := b.module.newValue(ValReturn, loc, b.module.Context.Types.Void())
	v.Operand = value
	return b.insert(v)
}

// ReturnVoid inserts a terminating return with no value.
func (b *Builder) ReturnVoid(loc source.Span) *Value {
	v := b.module.newValue(ValReturn, loc, b.module.Context.Types.Void())
	return b.insert(v)
}

// Unreachable inserts a terminating unreachable marker.
func (b *Builder) Unreachable(loc source.Span) *Value {
	return b.insert(b.module.newValue(ValUnreachable, loc, b.module.Context.Types.Void()))
}

// Branch inserts an unconditional terminating jump to target.
func (b *Builder) Branch(loc source.Span, target *Value) *Value {
	v := b.module.newValue(ValBranch, loc, b.module.Context.Types.Void())
	v.Pass = target
	return b.insert(v)
}

// CondBranch inserts a terminating conditional jump.
func (b *Builder) CondBranch(loc source.Span, cond, pass, fail *Value) *Value {
	b.assertSameModule(cond)
	v := b.module.newValue(ValCondBranch, loc, b.module.Context.Types.Void())
	v.Operand = cond
	v.Pass = pass
	v.Fail = fail
	return b.insert(v)
}

// Phi inserts an empty phi of the given type; incoming pairs are added
// with PhiAddIncoming afterward, in the order the caller calls it.
func (b *Builder) Phi(loc source.Span, typ *Type) *Value {
	return b.insert(b.module.newValue(ValPhi, loc, typ))
}

// PhiAddIncoming appends an (value, predecessor block) pair to phi, in
// call order.
func (b *Builder) PhiAddIncoming(phi *Value, value *Value, block *Value) {
	if phi.Kind != ValPhi {
		panic("ir: PhiAddIncoming on a non-phi value")
	}
	phi.Incoming = append(phi.Incoming, Incoming{Value: value, Block: block})
}

func (b *Builder) unary(kind ValueKind, loc source.Span, typ *Type, operand *Value) *Value {
	b.assertSameModule(operand)
	v := b.module.newValue(kind, loc, typ)
	v.Operand = operand
	return b.insert(v)
}

func (b *Builder) binary(kind ValueKind, loc source.Span, typ *Type, lhs, rhs *Value) *Value {
	b.assertSameModule(lhs)
	b.assertSameModule(rhs)
	v := b.module.newValue(kind, loc, typ)
	v.LHS = lhs
	v.RHS = rhs
	return b.insert(v)
}

// Neg, Compl, Copy — unary operators.
func (b *Builder) Neg(loc source.Span, operand *Value) *Value  { return b.unary(ValNeg, loc, operand.Type, operand) }
func (b *Builder) Compl(loc source.Span, operand *Value) *Value { return b.unary(ValCompl, loc, operand.Type, operand) }
func (b *Builder) Copy(loc source.Span, operand *Value) *Value { return b.unary(ValCopy, loc, operand.Type, operand) }

// Integer arithmetic.
func (b *Builder) Add(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValAdd, loc, lhs.Type, lhs, rhs) }
func (b *Builder) Sub(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValSub, loc, lhs.Type, lhs, rhs) }
func (b *Builder) Mul(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValMul, loc, lhs.Type, lhs, rhs) }
func (b *Builder) SDiv(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValSDiv, loc, lhs.Type, lhs, rhs) }
func (b *Builder) UDiv(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValUDiv, loc, lhs.Type, lhs, rhs) }
func (b *Builder) SMod(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValSMod, loc, lhs.Type, lhs, rhs) }
func (b *Builder) UMod(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValUMod, loc, lhs.Type, lhs, rhs) }
func (b *Builder) Shl(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValShl, loc, lhs.Type, lhs, rhs) }
func (b *Builder) Shr(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValShr, loc, lhs.Type, lhs, rhs) }
func (b *Builder) Sar(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValSar, loc, lhs.Type, lhs, rhs) }
func (b *Builder) And(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValAnd, loc, lhs.Type, lhs, rhs) }
func (b *Builder) Or(loc source.Span, lhs, rhs *Value) *Value   { return b.binary(ValOr, loc, lhs.Type, lhs, rhs) }
func (b *Builder) Xor(loc source.Span, lhs, rhs *Value) *Value  { return b.binary(ValXor, loc, lhs.Type, lhs, rhs) }

// Float arithmetic.
func (b *Builder) FAdd(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValFAdd, loc, lhs.Type, lhs, rhs) }
func (b *Builder) FSub(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValFSub, loc, lhs.Type, lhs, rhs) }
func (b *Builder) FMul(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValFMul, loc, lhs.Type, lhs, rhs) }
func (b *Builder) FDiv(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValFDiv, loc, lhs.Type, lhs, rhs) }
func (b *Builder) FMod(loc source.Span, lhs, rhs *Value) *Value { return b.binary(ValFMod, loc, lhs.Type, lhs, rhs) }

func (b *Builder) icmp(kind ValueKind, loc source.Span, lhs, rhs *Value) *Value {
	return b.binary(kind, loc, b.module.Context.Types.Integer(1), lhs, rhs)
}

// Integer comparisons — all return a 1-bit boolean integer.
func (b *Builder) ICmpEQ(loc source.Span, lhs, rhs *Value) *Value  { return b.icmp(ValICmpEQ, loc, lhs, rhs) }
func (b *Builder) ICmpNE(loc source.Span, lhs, rhs *Value) *Value  { return b.icmp(ValICmpNE, loc, lhs, rhs) }
func (b *Builder) ICmpSLT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpSLT, loc, lhs, rhs) }
func (b *Builder) ICmpSLE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpSLE, loc, lhs, rhs) }
func (b *Builder) ICmpSGT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpSGT, loc, lhs, rhs) }
func (b *Builder) ICmpSGE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpSGE, loc, lhs, rhs) }
func (b *Builder) ICmpULT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpULT, loc, lhs, rhs) }
func (b *Builder) ICmpULE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpULE, loc, lhs, rhs) }
func (b *Builder) ICmpUGT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpUGT, loc, lhs, rhs) }
func (b *Builder) ICmpUGE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValICmpUGE, loc, lhs, rhs) }

// Float comparisons — ordered and unordered IEEE-754 variants.
func (b *Builder) FCmpOEQ(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpOEQ, loc, lhs, rhs) }
func (b *Builder) FCmpONE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpONE, loc, lhs, rhs) }
func (b *Builder) FCmpOLT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpOLT, loc, lhs, rhs) }
func (b *Builder) FCmpOLE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpOLE, loc, lhs, rhs) }
func (b *Builder) FCmpOGT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpOGT, loc, lhs, rhs) }
func (b *Builder) FCmpOGE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpOGE, loc, lhs, rhs) }
func (b *Builder) FCmpUEQ(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpUEQ, loc, lhs, rhs) }
func (b *Builder) FCmpUNE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpUNE, loc, lhs, rhs) }
func (b *Builder) FCmpULT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpULT, loc, lhs, rhs) }
func (b *Builder) FCmpULE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpULE, loc, lhs, rhs) }
func (b *Builder) FCmpUGT(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpUGT, loc, lhs, rhs) }
func (b *Builder) FCmpUGE(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpUGE, loc, lhs, rhs) }
func (b *Builder) FCmpORD(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpORD, loc, lhs, rhs) }
func (b *Builder) FCmpUNO(loc source.Span, lhs, rhs *Value) *Value { return b.icmp(ValFCmpUNO, loc, lhs, rhs) }

// Integer casts.
func (b *Builder) ZExt(loc source.Span, operand *Value, to *Type) *Value   { return b.unary(ValZExt, loc, to, operand) }
func (b *Builder) SExt(loc source.Span, operand *Value, to *Type) *Value   { return b.unary(ValSExt, loc, to, operand) }
func (b *Builder) Trunc(loc source.Span, operand *Value, to *Type) *Value  { return b.unary(ValTrunc, loc, to, operand) }
func (b *Builder) Bitcast(loc source.Span, operand *Value, to *Type) *Value {
	return b.unary(ValBitcast, loc, to, operand)
}

// Float casts.
func (b *Builder) FPToUI(loc source.Span, operand *Value, to *Type) *Value { return b.unary(ValFPToUI, loc, to, operand) }
func (b *Builder) FPToSI(loc source.Span, operand *Value, to *Type) *Value { return b.unary(ValFPToSI, loc, to, operand) }
func (b *Builder) UIToFP(loc source.Span, operand *Value, to *Type) *Value { return b.unary(ValUIToFP, loc, to, operand) }
func (b *Builder) SIToFP(loc source.Span, operand *Value, to *Type) *Value { return b.unary(ValSIToFP, loc, to, operand) }
func (b *Builder) FPExt(loc source.Span, operand *Value, to *Type) *Value  { return b.unary(ValFPExt, loc, to, operand) }
func (b *Builder) FPTrunc(loc source.Span, operand *Value, to *Type) *Value {
	return b.unary(ValFPTrunc, loc, to, operand)
}
