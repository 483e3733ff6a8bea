package pass

import "fmt"

// DeclareLabel registers name as a label that will be defined later in the
// same EmitFunc. Declaring alone does not make the label resolvable: a
// forward Goto/Gosub resolves it on the emit pass, after DefineLabel has
// bound it during the labels pass. Declaring the same
// name twice is a no-op; declaring is idempotent across passes since Run
// calls the EmitFunc fresh on each one.
func (c *Context) DeclareLabel(name string) {
	if _, ok := c.labels[name]; ok {
		return
	}
	c.labels[name] = &labelEntry{declared: true}
}

// DefineLabel binds name to the current line. It must be called exactly
// once per pass at the point in program order the label marks; Run's
// repeated passes mean this binding is re-established identically every
// time, which is what makes forward references resolve.
func (c *Context) DefineLabel(name string) error {
	e, ok := c.labels[name]
	if !ok {
		e = &labelEntry{}
		c.labels[name] = e
	}
	e.defined = true
	e.line = c.lineCounter
	return nil
}

// Label returns the line a previously defined label resolves to. It is an
// error to query a label that DefineLabel has not bound in this or an
// earlier pass of the same Run; a label that was only declared is not
// resolvable.
func (c *Context) Label(name string) (uint32, error) {
	e, ok := c.labels[name]
	if !ok || !e.defined {
		return 0, fmt.Errorf("pass: label %q not defined", name)
	}
	return e.line, nil
}

// Labels returns every label that was defined during the run, mapped to
// its resolved line. Intended for tooling (such as the inspector package)
// that wants to annotate a captured line table after the fact; codegen
// itself never needs this, since Goto/Gosub resolve displacements
// through LabelDisplacement directly.
func (c *Context) Labels() map[string]uint32 {
	out := make(map[string]uint32, len(c.labels))
	for name, e := range c.labels {
		if e.defined {
			out[name] = e.line
		}
	}
	return out
}

// LabelDisplacement returns the signed line displacement from the current
// line to name's defined line, matching the C source's G_GetLabel: Goto
// and Gosub instructions encode a relative branch, not an absolute line
// index.
func (c *Context) LabelDisplacement(name string) (int32, error) {
	target, err := c.Label(name)
	if err != nil {
		return 0, err
	}
	return int32(target) - int32(c.lineCounter), nil
}
