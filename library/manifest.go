package library

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/loam-lang/loam"
)

// A Manifest declares named literal constants to install on a library root.
// Manifests are YAML documents of the form:
//
//	name: demo
//	constants:
//	  pi: 3.141592653589793
//	  version: "0.1.0"
//	  verbose: true
//
// Numbers, booleans, and strings are supported, matching the literal kinds
// the runtime understands.
type Manifest struct {
	Name      string                 `yaml:"name"`
	Constants map[string]interface{} `yaml:"constants"`
}

// LoadManifest decodes a manifest from r.
func LoadManifest(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("library: decoding manifest: %w", err)
	}
	return m, nil
}

// Install assigns each of the manifest's constants as a literal slot on
// root. Constants of unsupported types abort with an error, possibly after
// installing some of the others.
func (m *Manifest) Install(vm *loam.VM, root *loam.Object) error {
	for name, v := range m.Constants {
		var obj *loam.Object
		switch v := v.(type) {
		case float64:
			obj = vm.NewNumber(v)
		case int:
			obj = vm.NewNumber(float64(v))
		case bool:
			obj = vm.NewBool(v)
		case string:
			obj = vm.NewString(v)
		default:
			return fmt.Errorf("library: manifest constant %s has unsupported type %T", name, v)
		}
		loam.SetSlot(root, name, obj)
	}
	return nil
}
