// Command loamfn lists the exported native computations in one or more
// packages: every symbol whose type is assignable to the runtime's Fn type.
// The output is one "slot name: symbol" line per native, suitable for
// pasting into an Install function or a manifest.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore string
	var loampkg string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&loampkg, "loam", "github.com/loam-lang/loam", "import path for the loam package source code")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedTypes | packages.NeedSyntax | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{loampkg}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	fn := fnType(pkgs[0])
	results := []string{}
	for _, pkg := range pkgs[1:] {
		results = append(results, natives(pkg.Types.Scope(), fn, mre, ire)...)
	}
	sort.Strings(results)
	for _, name := range results {
		fmt.Printf("%s: %s\n", slotName(name, mre), name)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// fnType resolves the Fn type in the loam package.
func fnType(pkg *packages.Package) types.Type {
	r := pkg.Types.Scope().Lookup("Fn")
	if r == nil {
		fail(pkg.Types.Name(), "has no definition of Fn")
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		fail(pkg.Types.Name(), "has incorrect definition of Fn:", r)
	}
	return t.Type().Underlying()
}

// natives collects the names in scope whose types are assignable to fn.
func natives(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		if types.AssignableTo(scope.Lookup(name).Type(), fn) {
			r = append(r, name)
		}
	}
	return r
}

// slotName derives a conventional slot name from a native's symbol name by
// trimming the matched prefix and lowercasing the first rune.
func slotName(name string, mre *regexp.Regexp) string {
	if mre.String() != "." {
		if k := mre.FindStringIndex(name); k != nil {
			name = name[k[1]:]
		}
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
