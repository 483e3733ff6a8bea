package pass

// LinePointer returns the ABI's code-handler-relative memory address of
// the current line, as used by instructions that embed an absolute
// pointer to another line (rather than a relative displacement). It is
// only meaningful when the active ABI uses line pointers; callers should
// check ABI.UseLinePointers before relying on the result.
//
// The formula mirrors the C source's G_GetLinePointer: the code handler's
// base address, plus the size of the handler itself, plus 8 bytes per
// line already emitted on this pass.
func (c *Context) LinePointer() uint32 {
	return c.ABI.CodeHandlerBase + c.ABI.CodeHandlerSize + c.pointerCounter*8
}

// PointerCounter returns the number of pointer-carrying lines seen so far
// on the current pass.
func (c *Context) PointerCounter() uint32 {
	return c.pointerCounter
}
