package ir

import "surge/internal/source"

// NewFunction creates a function value, appends it to the module's function
// list, and materialises its parameter values. The caller still needs to
// add at least an entry block before the function is well-formed.
func (m *Module) NewFunction(loc source.Span, name string, fnType *Type, paramNames []string, linkage Linkage, cc CallingConvention) *Value {
	f := m.newValue(ValFunction, loc, fnType)
	f.Name = name
	f.Linkage = linkage
	f.CallConv = cc

	for i, pt := range fnType.ParamTypes {
		p := m.newValue(ValParameter, loc, pt)
		p.ParamIndex = i
		if i < len(paramNames) {
			p.Name = paramNames[i]
		}
		p.Index = int64(i)
		f.Parameters = append(f.Parameters, p)
	}

	m.Functions = append(m.Functions, f)
	return f
}

// NewBlock creates a basic block and appends it to the function's block
// list. The first block added to a function is its entry block.
func (m *Module) NewBlock(fn *Value, loc source.Span, name string) *Value {
	b := m.newValue(ValBlock, loc, m.Context.Types.Void())
	b.BlockName = name
	b.ParentFunction = fn
	fn.Blocks = append(fn.Blocks, b)
	return b
}

// NewGlobalVariable creates a module-owned global holding the given
// constant initialiser.
func (m *Module) NewGlobalVariable(loc source.Span, name string, linkage Linkage, initializer *Value) *Value {
	g := m.newValue(ValGlobalVariable, loc, m.Context.Types.Ptr())
	g.Name = name
	g.Linkage = linkage
	g.Operand = initializer
	m.Globals = append(m.Globals, g)
	return g
}

// NewGlobalString allocates an i8[n+1] array constant (content plus a
// trailing NUL), wraps it in an internal-linkage global, and returns the
// pointer-typed global value — suitable as a call argument or a ptradd
// base.
func (m *Module) NewGlobalString(loc source.Span, content string) *Value {
	data := make([]byte, len(content)+1)
	copy(data, content)

	arrType := m.Context.Types.Array(m.Context.Types.Integer(8), int64(len(data)))
	constant := m.newValue(ValArrayConstant, loc, arrType)
	constant.ArrayData = data
	constant.IsStringLiteral = true

	name := m.Context.nextGlobalName()
	return m.NewGlobalVariable(loc, name, LinkageInternal, constant)
}

// NewIntegerConstant returns an integer-constant value of the given type.
func (m *Module) NewIntegerConstant(loc source.Span, typ *Type, value int64) *Value {
	v := m.newValue(ValIntegerConstant, loc, typ)
	v.IntValue = value
	return v
}

// NewFloatConstant returns a float-constant value of the given type.
func (m *Module) NewFloatConstant(loc source.Span, typ *Type, value float64) *Value {
	v := m.newValue(ValFloatConstant, loc, typ)
	v.FloatValue = value
	return v
}

// NewVoidConstant returns the void-constant value.
func (m *Module) NewVoidConstant(loc source.Span) *Value {
	return m.newValue(ValVoidConstant, loc, m.Context.Types.Void())
}

// NewPoison returns a poison value of the given type — absorbing, so no
// downstream conversion out of it is treated as an error.
func (m *Module) NewPoison(loc source.Span, typ *Type) *Value {
	return m.newValue(ValPoison, loc, typ)
}
