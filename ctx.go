package anyparse

// Ctx is the chain of descriptive location fragments accumulated while a parse
// descends into nested structures. It is a persistent cons-list: Push returns
// a new Ctx and never mutates the receiver, so a parent Ctx can be shared as
// the starting point of every sibling descent (array elements, object fields)
// without their fragments leaking into each other.
//
// Fragments are stored most-recently-pushed first; an error raised at a leaf
// therefore reports the innermost location first.
type Ctx struct {
	head *ctxNode
}

type ctxNode struct {
	frag string
	next *ctxNode
}

// NewCtx returns the empty context. Run creates one per invocation; callers
// only need this when invoking Parser.Parse directly.
func NewCtx() Ctx { return Ctx{} }

// Push returns a new Ctx with frag prepended. The receiver is unchanged.
func (c Ctx) Push(frag string) Ctx {
	return Ctx{head: &ctxNode{frag: frag, next: c.head}}
}

// Fragments returns the stored fragments, innermost first. The empty context
// returns nil.
func (c Ctx) Fragments() []string {
	var out []string
	for n := c.head; n != nil; n = n.next {
		out = append(out, n.frag)
	}
	return out
}
