package library

import (
	"time"

	"gitlab.com/variadico/lctime"

	"github.com/loam-lang/loam"
)

// now returns the current time. Tests replace it to get stable output.
var now = time.Now

// Date is a library native.
//
// date formats the current time with the strftime format string in the
// parameter's string literal, using the current locale. With no parameter,
// it uses "%c". See the lctime documentation for the supported conversions.
func Date(vm *loam.VM, self *loam.Object) (*loam.Object, error) {
	format := "%c"
	if p, ok := loam.GetLocalSlot(self, loam.ParameterSlot); ok {
		s, ok := p.StringValue()
		if !ok {
			return nil, &loam.MissingArgumentError{Name: loam.ParameterSlot}
		}
		format = s
	}
	return vm.NewString(lctime.Strftime(format, now())), nil
}
