package library

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/loam-lang/loam"
)

// Latin1 is a library native.
//
// latin1 re-encodes the parameter's string literal from UTF-8 to Latin-1
// (Windows-1252) and returns the encoded bytes as a new string literal.
// Characters with no Latin-1 representation are substituted.
func Latin1(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	p, err := parameterArg(self)
	if err != nil {
		return nil, err
	}
	s, ok := p.StringValue()
	if !ok {
		return nil, &loam.MissingArgumentError{Name: loam.ParameterSlot}
	}
	e := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	b, err := e.Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return vm.NewString(string(b)), nil
}
