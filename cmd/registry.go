package cmd

import (
	"fmt"
	"sort"

	"github.com/yonder-tools/geckoasm/codegen"
	"github.com/yonder-tools/geckoasm/programs/demo"
)

// registeredProgram pairs a compiled-in Program with its envelope
// metadata, mirroring the C source's model of one statically compiled
// CODE_DEFINITION per executable — geckoasm compiles several in and picks
// one by name at runtime instead.
type registeredProgram struct {
	Name    string
	Author  string
	Program func(e *codegen.Emitter) error
}

var programRegistry = map[string]registeredProgram{
	demo.Name: {Name: demo.Name, Author: demo.Author, Program: demo.Program},
}

func lookupProgram(name string) (registeredProgram, error) {
	p, ok := programRegistry[name]
	if !ok {
		names := make([]string, 0, len(programRegistry))
		for n := range programRegistry {
			names = append(names, n)
		}
		sort.Strings(names)
		return registeredProgram{}, fmt.Errorf("unknown program %q (available: %v)", name, names)
	}
	return p, nil
}
