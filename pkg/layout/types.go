package layout

import "image/color"

// Unresolved is the available-size value passed down an axis whose size is
// not yet known (an Auto-sized ancestor being measured). Percent dimensions
// resolve to 0 against it; content hooks treat it as "no wrap constraint".
const Unresolved = -1.0

// DimensionKind selects how a Dimension value is interpreted.
type DimensionKind uint8

const (
	DimAuto    DimensionKind = iota // size from content
	DimPixels                       // fixed pixel value
	DimPercent                      // percentage of the parent content axis
	DimFlex                         // flex units; sized by grow distribution
)

// Dimension is a tagged size value for one axis.
type Dimension struct {
	Kind  DimensionKind
	Value float64
}

// Auto returns an auto (content-sized) dimension.
func Auto() Dimension { return Dimension{Kind: DimAuto} }

// Px returns a fixed pixel dimension. Negative values clamp to 0.
func Px(v float64) Dimension {
	if v < 0 {
		v = 0
	}
	return Dimension{Kind: DimPixels, Value: v}
}

// Percent returns a dimension resolved against the parent's content axis.
func Percent(v float64) Dimension {
	if v < 0 {
		v = 0
	}
	return Dimension{Kind: DimPercent, Value: v}
}

// Flex returns a flex-unit dimension. The value doubles as the node's grow
// factor on that axis when no explicit FlexGrow is declared.
func Flex(v float64) Dimension {
	if v < 0 {
		v = 0
	}
	return Dimension{Kind: DimFlex, Value: v}
}

// IsAuto reports whether the dimension defers to intrinsic measurement.
func (d Dimension) IsAuto() bool { return d.Kind == DimAuto }

// resolve returns the dimension's value against an available size and
// whether the axis is determined without content measurement.
// Percent against Unresolved availability resolves to 0 (documented
// degenerate case, not an error). Flex resolves to 0; distribution is what
// actually gives it size.
func (d Dimension) resolve(available float64) (float64, bool) {
	switch d.Kind {
	case DimPixels:
		return d.Value, true
	case DimPercent:
		if available < 0 {
			return 0, true
		}
		return available * d.Value / 100, true
	case DimFlex:
		return 0, true
	default:
		return 0, false
	}
}

// EdgeFlags records which edges of a Spacing were explicitly set.
// The styling layer uses this to distinguish "explicitly zero" from "unset".
type EdgeFlags struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// Spacing holds four edge values, used for padding and margin.
type Spacing struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64

	Explicit EdgeFlags
}

// Uniform returns a Spacing with all four edges set to v.
func Uniform(v float64) Spacing {
	if v < 0 {
		v = 0
	}
	return Spacing{
		Top: v, Right: v, Bottom: v, Left: v,
		Explicit: EdgeFlags{Top: true, Right: true, Bottom: true, Left: true},
	}
}

// Horizontal returns the sum of the left and right edges, clamped non-negative.
func (s Spacing) Horizontal() float64 { return clampEdge(s.Left) + clampEdge(s.Right) }

// Vertical returns the sum of the top and bottom edges, clamped non-negative.
func (s Spacing) Vertical() float64 { return clampEdge(s.Top) + clampEdge(s.Bottom) }

func clampEdge(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Alignment is a distribution policy. The same type serves the main-axis
// "justify" slot and the cross-axis "align" slot of a container; the
// space-distribution values are only meaningful on the main axis and
// AlignStretch only on the cross axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	case AlignSpaceEvenly:
		return "space-evenly"
	}
	return "unknown"
}

// PositionMode selects whether a node participates in its parent's flow.
type PositionMode uint8

const (
	PositionStatic   PositionMode = iota // laid out by the parent container
	PositionAbsolute                     // placed from its own Left/Top offsets
)

// NodeKind is the closed set of layout node variants. Each pass dispatches
// on it exhaustively; new leaf content is added through the Content
// capability, not new kinds.
type NodeKind uint8

const (
	KindBox    NodeKind = iota // generic container, column main axis
	KindRow                    // horizontal main axis
	KindColumn                 // vertical main axis
	KindCenter                 // centers its single child on both axes
	KindLeaf                   // terminal node measured through Content
	KindTable                  // delegated to a registered SubLayout
)

func (k NodeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindCenter:
		return "center"
	case KindLeaf:
		return "leaf"
	case KindTable:
		return "table"
	}
	return "unknown"
}

// horizontal reports whether the kind's main axis is horizontal.
func (k NodeKind) horizontal() bool { return k == KindRow }

// Content is the measurement capability carried by leaf nodes. Measure
// returns the content's intrinsic size given maxWidth as a wrapping
// constraint; maxWidth < 0 means unconstrained. Implementations must be
// pure: the engine may call Measure any number of times per pass.
type Content interface {
	Measure(maxWidth float64) (width, height float64)
}

// NoStretch marks content whose measured cross size must survive an
// AlignStretch container (wrapped text would distort if stretched).
type NoStretch interface {
	NoStretch() bool
}

// Rect is an axis-aligned rectangle in absolute coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ComputedLayout is the per-node geometry cache written by the placement
// driver (or, for delegated subtrees, by a SubLayout through
// SetRelativeBounds). Width and Height are never negative.
type ComputedLayout struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Relative marks coordinates that are relative to the node's layout
	// parent rather than absolute. Set only by sub-layout delegates;
	// consumers must apply the parent origin before use.
	Relative bool

	// Valid is false until a placement pass has visited this exact node in
	// the current tree generation.
	Valid bool
}

// Rect returns the cached geometry as a Rect.
func (c ComputedLayout) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// Visual carries optional paint hints consumed by the render collaborator.
// The layout passes never read it.
type Visual struct {
	Background  color.RGBA
	Border      color.RGBA
	BorderWidth float64
}
