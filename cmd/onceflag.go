package cmd

import "fmt"

// onceString is a pflag.Value that errors if Set is called more than
// once, reproducing the C source's getopt_long loop rejecting a repeated
// -o/-c option ("ERROR: Cannot specify 'o' option multiple times").
// pflag itself silently keeps the last value on a repeated flag; cobra's
// CLI contract here is stricter than that default.
type onceString struct {
	label string
	value string
	isSet bool
}

func newOnceString(label, def string) *onceString {
	return &onceString{label: label, value: def}
}

func (o *onceString) String() string {
	return o.value
}

func (o *onceString) Set(v string) error {
	if o.isSet {
		return fmt.Errorf("cannot specify '%s' option multiple times", o.label)
	}
	if v == "" {
		return fmt.Errorf("missing value for '%s' option", o.label)
	}
	o.value = v
	o.isSet = true
	return nil
}

func (o *onceString) Type() string {
	return "string"
}
