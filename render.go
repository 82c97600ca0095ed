package loam

import (
	"fmt"
	"io"
	"strings"

	"github.com/zephyrtronium/contains"
)

// Render writes a diagnostic description of obj to w: its name, a payload
// summary, and its parent-name list, recursing into slots up to maxDepth
// levels. Objects already shown in the same call are not expanded again, so
// rendering terminates on cyclic graphs. Render never mutates the graph. It
// is a debugging aid with no correctness requirements beyond those.
func Render(w io.Writer, obj *Object, maxDepth int) {
	seen := contains.Set{}
	render(w, "", obj, maxDepth, 0, &seen)
}

// RenderString renders obj as by Render and returns the result.
func RenderString(obj *Object, maxDepth int) string {
	b := strings.Builder{}
	Render(&b, obj, maxDepth)
	return b.String()
}

func render(w io.Writer, prefix string, obj *Object, depth, indent int, seen *contains.Set) {
	pad := strings.Repeat("  ", indent)
	if obj == nil {
		fmt.Fprintf(w, "%s%s<nil>\n", pad, prefix)
		return
	}
	label := obj.name
	if label == "" {
		label = "object"
	}
	if !seen.Add(obj.UniqueID()) {
		fmt.Fprintf(w, "%s%s%s %s (shown above)\n", pad, prefix, label, summarize(obj))
		return
	}
	fmt.Fprintf(w, "%s%s%s %s parents=[%s]\n", pad, prefix, label, summarize(obj), strings.Join(obj.parents, " "))
	if len(obj.slots) == 0 {
		return
	}
	if depth <= 0 {
		fmt.Fprintf(w, "%s  ...\n", pad)
		return
	}
	for _, name := range obj.SlotNames() {
		render(w, name+": ", obj.slots[name], depth-1, indent+1, seen)
	}
}

func summarize(o *Object) string {
	switch p := o.payload.(type) {
	case nativePayload:
		return "native"
	case literalPayload:
		return fmt.Sprintf("literal(%#v)", p.value)
	case sequencePayload:
		return fmt.Sprintf("sequence(%s)", strings.Join(p.msgs, " "))
	}
	return "plain"
}
