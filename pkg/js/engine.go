// Package js evaluates scene scripts: JavaScript that builds layout node
// trees through the ui builder object. Scripts get a console binding and
// return their root node as the script's final value.
package js

import (
	"fmt"
	"io"
	"os"

	"github.com/dop251/goja"

	"kryon/pkg/layout"
)

// Engine runs scene scripts in a fresh goja runtime.
type Engine struct {
	vm      *goja.Runtime
	console *consoleAPI
}

// New creates a new scene engine with console and ui registered. Console
// output defaults to the process streams.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm, console: &consoleAPI{out: os.Stdout, err: os.Stderr}}

	e.console.register(vm)

	u := &uiAPI{vm: vm}
	u.register(vm)

	return e
}

// SetConsoleOutput redirects console.log to out and console.warn/error to
// errOut. A nil writer keeps the current sink.
func (e *Engine) SetConsoleOutput(out, errOut io.Writer) {
	if out != nil {
		e.console.out = out
	}
	if errOut != nil {
		e.console.err = errOut
	}
}

// BuildScene evaluates src and returns the node tree it produced. The
// script's final expression must be a ui node.
func (e *Engine) BuildScene(src string) (*layout.Node, error) {
	v, err := e.vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("js: evaluating scene: %w", err)
	}
	root := nodeFromValue(v)
	if root == nil {
		return nil, fmt.Errorf("js: scene script did not produce a ui node")
	}
	return root, nil
}
