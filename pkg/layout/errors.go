package layout

import (
	"errors"
	"fmt"
)

// ErrNilRoot is returned when a pass is started with a nil root node.
var ErrNilRoot = errors.New("layout: nil root node")

// StaleLayoutError reports a read of computed geometry on a node that the
// current pass never visited, either because no pass has run since the tree
// changed or because a delegate failed before reaching it.
type StaleLayoutError struct {
	Node *Node
}

func (e *StaleLayoutError) Error() string {
	return fmt.Sprintf("layout: stale read on %s: node not visited by the last pass", e.Node.describe())
}

// SubLayoutError wraps a failure reported by a sub-layout delegate, keeping
// the delegated node's identity.
type SubLayoutError struct {
	Node *Node
	Err  error
}

func (e *SubLayoutError) Error() string {
	return fmt.Sprintf("layout: sub-layout for %s: %v", e.Node.describe(), e.Err)
}

func (e *SubLayoutError) Unwrap() error { return e.Err }

// MissingSubLayoutError is returned when the tree contains a delegated node
// but no delegate was registered on the engine.
type MissingSubLayoutError struct {
	Node *Node
}

func (e *MissingSubLayoutError) Error() string {
	return fmt.Sprintf("layout: no sub-layout registered for %s", e.Node.describe())
}
