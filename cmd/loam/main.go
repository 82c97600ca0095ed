// Command loam is a demonstration entry point for the loam object runtime.
// It wires up the library package and runs the end-to-end scenarios, or
// renders the resulting object graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loam-lang/loam"
	"github.com/loam-lang/loam/library"
)

var trace bool

var rootCmd = &cobra.Command{
	Use:          "loam",
	Short:        "Poke the loam object runtime",
	SilenceUsage: true,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demonstration scenarios",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

var (
	renderDepth  int
	manifestPath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the library object graph",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log every message send")
	renderCmd.Flags().IntVar(&renderDepth, "depth", 3, "maximum slot depth to render")
	renderCmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML constant manifest to install on the library root")
	rootCmd.AddCommand(demoCmd, renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVM() (*loam.VM, error) {
	vm := loam.NewVM()
	if trace {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		vm.Log = log
	}
	return vm, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	vm, err := newVM()
	if err != nil {
		return err
	}
	root := library.Install(vm)
	library.Factorial(vm, root)

	sum, err := vm.SendWith(root, "+", vm.NewObject(loam.Slots{
		"lhs": vm.NewNumber(1),
		"rhs": vm.NewNumber(2),
	}))
	if err != nil {
		return err
	}
	v, _ := sum.Number()
	fmt.Printf("1 + 2 = %g\n", v)

	fact, err := vm.SendWith(root, "factorial", vm.NewNumber(5))
	if err != nil {
		return err
	}
	v, _ = fact.Number()
	fmt.Printf("factorial(5) = %g\n", v)

	parent := vm.NewObject(loam.Slots{"x": vm.NewNumber(7)})
	child := vm.NewObject(nil)
	loam.SetParentSlot(child, "base", parent)
	x, err := vm.Send(child, "x")
	if err != nil {
		return err
	}
	v, _ = x.Number()
	fmt.Printf("child x = %g (inherited)\n", v)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	vm, err := newVM()
	if err != nil {
		return err
	}
	root := library.Install(vm)
	library.Factorial(vm, root)
	if manifestPath != "" {
		f, err := os.Open(manifestPath)
		if err != nil {
			return err
		}
		defer f.Close()
		m, err := library.LoadManifest(f)
		if err != nil {
			return err
		}
		if err := m.Install(vm, root); err != nil {
			return err
		}
	}
	loam.Render(os.Stdout, root, renderDepth)
	return nil
}
