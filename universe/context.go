package universe

import (
	"fmt"
	"strings"
)

// Context is a persistent, ordered list of objects, shaped like a typing
// environment. The zero value and nil are both the empty context. Extending a
// context shares the parent; nothing is ever copied or mutated.
type Context[O comparable] struct {
	parent *Context[O]
	obj    O
	depth  int
}

// Empty returns the empty context.
func Empty[O comparable]() *Context[O] { return nil }

// Extend returns a new context holding parent followed by obj.
func Extend[O comparable](parent *Context[O], obj O) *Context[O] {
	return &Context[O]{parent: parent, obj: obj, depth: parent.Len() + 1}
}

// Extend is the method form of the package-level Extend.
func (c *Context[O]) Extend(obj O) *Context[O] { return Extend(c, obj) }

// IsEmpty reports whether c holds no objects.
func (c *Context[O]) IsEmpty() bool { return c.Len() == 0 }

// Len returns the number of objects in c.
func (c *Context[O]) Len() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// Parent returns the context c extended, or nil for the empty context.
func (c *Context[O]) Parent() *Context[O] {
	if c == nil {
		return nil
	}
	return c.parent
}

// Last returns the most recently added object.
func (c *Context[O]) Last() (O, bool) {
	if c.IsEmpty() {
		var zero O
		return zero, false
	}
	return c.obj, true
}

// Objects returns the objects outermost first.
func (c *Context[O]) Objects() []O {
	out := make([]O, c.Len())
	for cur, i := c, c.Len()-1; !cur.IsEmpty(); cur, i = cur.parent, i-1 {
		out[i] = cur.obj
	}
	return out
}

// Contains reports whether obj occurs anywhere in c.
func (c *Context[O]) Contains(obj O) bool {
	for cur := c; !cur.IsEmpty(); cur = cur.parent {
		if cur.obj == obj {
			return true
		}
	}
	return false
}

func (c *Context[O]) String() string {
	objs := c.Objects()
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = fmt.Sprint(o)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
