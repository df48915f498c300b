package js

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
)

// consoleAPI backs the console object scene scripts log through. Output
// goes to injectable sinks so callers can capture script diagnostics the
// same way they capture layout traces.
type consoleAPI struct {
	out io.Writer
	err io.Writer
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		return c.write(c.out, "", call)
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		return c.write(c.err, "WARN:", call)
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		return c.write(c.err, "ERROR:", call)
	})
	vm.Set("console", console)
}

// write emits one line: the level prefix, then the space-joined string
// forms of every argument.
func (c *consoleAPI) write(w io.Writer, prefix string, call goja.FunctionCall) goja.Value {
	parts := make([]string, 0, len(call.Arguments)+1)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	for _, arg := range call.Arguments {
		parts = append(parts, arg.String())
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	return goja.Undefined()
}
