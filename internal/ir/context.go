package ir

import "strconv"

// Context is the IR-side counterpart of the compiler-wide Context: it owns
// the type singletons/memoisation table and the list of IR modules produced
// during a compilation, so that destroying it tears down every IR value.
type Context struct {
	Types *TypeContext

	modules []*Module

	stringCounter int
}

// NewContext creates an empty IR context with its type singletons ready.
func NewContext() *Context {
	return &Context{Types: NewTypeContext()}
}

// Modules returns every IR module created from this context, in creation
// order.
func (c *Context) Modules() []*Module {
	return c.modules
}

// nextGlobalName returns a unique, sequential name for an anonymous global
// (e.g. string constants), matching the "global.N" naming the hello-world
// scenario expects.
func (c *Context) nextGlobalName() string {
	n := c.stringCounter
	c.stringCounter++
	return "global." + strconv.Itoa(n)
}
