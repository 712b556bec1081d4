package irprint_test

import (
	"strings"
	"testing"

	"surge/internal/ir"
	"surge/internal/irprint"
	"surge/internal/source"
)

func TestPrintHelloWorld(t *testing.T) {
	ctx := ir.NewContext()
	m := ir.NewModule(ctx, "hello")
	defer m.Destroy()

	var sp source.Span

	i32 := ctx.Types.Integer(32)
	ptr := ctx.Types.Ptr()
	printfType := ctx.Types.Function(i32, []*ir.Type{ptr}, ir.CallConvC, true)
	printf := m.NewFunction(sp, "printf", printfType, []string{"fmt"}, ir.LinkageImported, ir.CallConvC)

	mainType := ctx.Types.Function(i32, nil, ir.CallConvC, false)
	main := m.NewFunction(sp, "main", mainType, nil, ir.LinkageExported, ir.CallConvC)
	entry := m.NewBlock(main, sp, "entry")

	str := m.NewGlobalString(sp, "hello, world\n")

	b := ir.NewBuilder(m)
	b.PositionAtEnd(entry)
	b.Call(sp, printf, printfType, []*ir.Value{str}, "")
	b.Return(sp, m.NewIntegerConstant(sp, i32, 0))

	var buf strings.Builder
	irprint.Print(&buf, m, irprint.Options{Color: false})

	out := buf.String()
	if !strings.Contains(out, "@printf(ptr @global.0, ...)") {
		t.Fatalf("printer output missing expected call form:\n%s", out)
	}
	if !strings.Contains(out, "return i32 0") {
		t.Fatalf("printer output missing expected return:\n%s", out)
	}
}
