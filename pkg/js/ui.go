package js

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/dop251/goja"

	"kryon/pkg/images"
	"kryon/pkg/layout"
	"kryon/pkg/markdown"
	"kryon/pkg/text"
)

// nodeHandle is the value ui builders hand back to scripts. Scripts treat
// it as opaque and only pass it to other builders.
type nodeHandle struct {
	node *layout.Node
}

// uiAPI implements the ui builder object: ui.row(props, ...children) and
// friends construct layout nodes directly.
type uiAPI struct {
	vm *goja.Runtime
}

func (u *uiAPI) register(vm *goja.Runtime) {
	u.vm = vm
	ui := vm.NewObject()
	ui.Set("box", u.container(layout.KindBox))
	ui.Set("row", u.container(layout.KindRow))
	ui.Set("column", u.container(layout.KindColumn))
	ui.Set("center", u.container(layout.KindCenter))
	ui.Set("table", u.container(layout.KindTable))
	ui.Set("text", u.text)
	ui.Set("button", u.button)
	ui.Set("image", u.image)
	ui.Set("markdown", u.markdown)
	vm.Set("ui", ui)
}

func nodeFromValue(v goja.Value) *layout.Node {
	if v == nil {
		return nil
	}
	if h, ok := v.Export().(*nodeHandle); ok {
		return h.node
	}
	return nil
}

func (u *uiAPI) wrap(n *layout.Node) goja.Value {
	return u.vm.ToValue(&nodeHandle{node: n})
}

func (u *uiAPI) fail(format string, args ...interface{}) {
	panic(u.vm.NewTypeError(fmt.Sprintf(format, args...)))
}

func (u *uiAPI) container(kind layout.NodeKind) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		n := layout.NewNode(kind)
		args := call.Arguments
		if len(args) > 0 && nodeFromValue(args[0]) == nil && !goja.IsUndefined(args[0]) && !goja.IsNull(args[0]) {
			u.applyProps(n, u.props(args[0]))
			args = args[1:]
		}
		for i, a := range args {
			child := nodeFromValue(a)
			if child == nil {
				u.fail("%s: child %d is not a ui node", kind, i)
			}
			n.AppendChild(child)
		}
		return u.wrap(n)
	}
}

func (u *uiAPI) text(call goja.FunctionCall) goja.Value {
	label, props := u.labelFrom(call, "text")
	n := layout.NewLeaf(label)
	u.applyProps(n, props)
	return u.wrap(n)
}

func (u *uiAPI) button(call goja.FunctionCall) goja.Value {
	label, props := u.labelFrom(call, "button")
	n := layout.NewLeaf(text.Button{Label: label})
	u.applyProps(n, props)
	return u.wrap(n)
}

func (u *uiAPI) image(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) == 0 {
		u.fail("image: missing source")
	}
	img, err := images.FromFile(call.Arguments[0].String())
	if err != nil {
		panic(u.vm.NewGoError(err))
	}
	n := layout.NewLeaf(img)
	if len(call.Arguments) > 1 {
		u.applyProps(n, u.props(call.Arguments[1]))
	}
	return u.wrap(n)
}

func (u *uiAPI) markdown(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) == 0 {
		u.fail("markdown: missing source")
	}
	n := layout.NewLeaf(markdown.Block{Source: call.Arguments[0].String()})
	if len(call.Arguments) > 1 {
		u.applyProps(n, u.props(call.Arguments[1]))
	}
	return u.wrap(n)
}

// labelFrom builds a text.Label from a (string, props) call, splitting the
// text-specific keys off the shared node props.
func (u *uiAPI) labelFrom(call goja.FunctionCall, name string) (text.Label, map[string]interface{}) {
	if len(call.Arguments) == 0 {
		u.fail("%s: missing text", name)
	}
	label := text.Label{Text: call.Arguments[0].String()}
	var props map[string]interface{}
	if len(call.Arguments) > 1 {
		props = u.props(call.Arguments[1])
	}
	if v, ok := props["size"]; ok {
		if f, ok := number(v); ok {
			label.Size = f
		}
		delete(props, "size")
	}
	for _, key := range []string{"bold", "italic", "mono"} {
		if v, ok := props[key]; ok {
			flag, _ := v.(bool)
			switch key {
			case "bold":
				label.Bold = flag
			case "italic":
				label.Italic = flag
			case "mono":
				label.Mono = flag
			}
			delete(props, key)
		}
	}
	return label, props
}

func (u *uiAPI) props(v goja.Value) map[string]interface{} {
	props, ok := v.Export().(map[string]interface{})
	if !ok {
		u.fail("props must be an object, got %s", v)
	}
	return props
}

func (u *uiAPI) applyProps(n *layout.Node, props map[string]interface{}) {
	for key, raw := range props {
		if err := applyProp(n, key, raw); err != nil {
			u.fail("%v", err)
		}
	}
}

func applyProp(n *layout.Node, key string, raw interface{}) error {
	switch key {
	case "id":
		n.ID = fmt.Sprint(raw)
	case "width":
		return setDimension(&n.Width, key, raw)
	case "height":
		return setDimension(&n.Height, key, raw)
	case "minWidth":
		return setDimension(&n.MinWidth, key, raw)
	case "minHeight":
		return setDimension(&n.MinHeight, key, raw)
	case "maxWidth":
		return setDimension(&n.MaxWidth, key, raw)
	case "maxHeight":
		return setDimension(&n.MaxHeight, key, raw)
	case "padding":
		var v float64
		if err := setNumber(&v, key, raw); err != nil {
			return err
		}
		n.Padding = layout.Uniform(v)
	case "margin":
		var v float64
		if err := setNumber(&v, key, raw); err != nil {
			return err
		}
		n.Margin = layout.Uniform(v)
	case "gap":
		return setNumber(&n.Gap, key, raw)
	case "justify":
		return setAlignment(&n.Justify, key, raw)
	case "align":
		return setAlignment(&n.Align, key, raw)
	case "grow":
		return setNumber(&n.FlexGrow, key, raw)
	case "shrink":
		return setNumber(&n.FlexShrink, key, raw)
	case "position":
		s := fmt.Sprint(raw)
		switch s {
		case "static":
			n.Position = layout.PositionStatic
		case "absolute":
			n.Position = layout.PositionAbsolute
		default:
			return fmt.Errorf("position: unknown mode %q", s)
		}
	case "left":
		return setNumber(&n.Left, key, raw)
	case "top":
		return setNumber(&n.Top, key, raw)
	case "z":
		f, ok := number(raw)
		if !ok {
			return fmt.Errorf("z: want a number, got %v", raw)
		}
		n.ZIndex = int(f)
	case "background":
		c, err := parseColor(fmt.Sprint(raw))
		if err != nil {
			return err
		}
		visual(n).Background = c
	case "border":
		c, err := parseColor(fmt.Sprint(raw))
		if err != nil {
			return err
		}
		v := visual(n)
		v.Border = c
		if v.BorderWidth == 0 {
			v.BorderWidth = 1
		}
	case "borderWidth":
		return setNumber(&visual(n).BorderWidth, key, raw)
	default:
		return fmt.Errorf("unknown prop %q", key)
	}
	return nil
}

func visual(n *layout.Node) *layout.Visual {
	if n.Visual == nil {
		n.Visual = &layout.Visual{}
	}
	return n.Visual
}

func number(raw interface{}) (float64, bool) {
	switch t := raw.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	}
	return 0, false
}

func setNumber(dst *float64, key string, raw interface{}) error {
	f, ok := number(raw)
	if !ok {
		return fmt.Errorf("%s: want a number, got %v", key, raw)
	}
	*dst = f
	return nil
}

func setDimension(dst *layout.Dimension, key string, raw interface{}) error {
	d, err := parseDimension(raw)
	if err != nil {
		return fmt.Errorf("%s: %v", key, err)
	}
	*dst = d
	return nil
}

// parseDimension accepts 120, "auto", "50%", "2fr", and "120px".
func parseDimension(raw interface{}) (layout.Dimension, error) {
	if f, ok := number(raw); ok {
		return layout.Px(f), nil
	}
	s, ok := raw.(string)
	if !ok {
		return layout.Auto(), fmt.Errorf("want a number or dimension string, got %v", raw)
	}
	s = strings.TrimSpace(s)
	if s == "auto" {
		return layout.Auto(), nil
	}
	for suffix, ctor := range map[string]func(float64) layout.Dimension{
		"%":  layout.Percent,
		"fr": layout.Flex,
		"px": layout.Px,
	} {
		if strings.HasSuffix(s, suffix) {
			f, err := strconv.ParseFloat(strings.TrimSuffix(s, suffix), 64)
			if err != nil {
				return layout.Auto(), fmt.Errorf("bad dimension %q", s)
			}
			return ctor(f), nil
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return layout.Px(f), nil
	}
	return layout.Auto(), fmt.Errorf("bad dimension %q", s)
}

func setAlignment(dst *layout.Alignment, key string, raw interface{}) error {
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%s: want a string, got %v", key, raw)
	}
	switch s {
	case "start":
		*dst = layout.AlignStart
	case "center":
		*dst = layout.AlignCenter
	case "end":
		*dst = layout.AlignEnd
	case "stretch":
		*dst = layout.AlignStretch
	case "space-between":
		*dst = layout.AlignSpaceBetween
	case "space-around":
		*dst = layout.AlignSpaceAround
	case "space-evenly":
		*dst = layout.AlignSpaceEvenly
	default:
		return fmt.Errorf("%s: unknown alignment %q", key, s)
	}
	return nil
}

func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b, a uint64
	var err error
	switch len(s) {
	case 6:
		r, err = strconv.ParseUint(s[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(s[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(s[4:6], 16, 8)
		}
		a = 255
	case 8:
		r, err = strconv.ParseUint(s[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(s[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(s[4:6], 16, 8)
		}
		if err == nil {
			a, err = strconv.ParseUint(s[6:8], 16, 8)
		}
	default:
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}
