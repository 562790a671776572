package sexpr

// Builder accumulates Values into the list under construction and keeps the
// enclosing lists on an explicit stack, one entry per unmatched Open. Scalar
// pushes and Open return the Builder so trees can be assembled fluently:
//
//	b := NewBuilder().Open().PushString("+").PushNumber(1).PushNumber(2)
//	if err := b.Close(); err != nil { ... }
//	v, err := b.Value()
//
// A Builder is meant to be used once: driven either by hand or by the parser,
// then consumed by Value.
type Builder struct {
	current []*Value
	stack   [][]*Value
}

func NewBuilder() *Builder {
	return &Builder{current: []*Value{}}
}

func (b *Builder) push(v *Value) *Builder {
	b.current = append(b.current, v)
	return b
}

func (b *Builder) PushString(s string) *Builder {
	return b.push(NewStringValue(s))
}

func (b *Builder) PushBool(v bool) *Builder {
	return b.push(NewBoolValue(v))
}

func (b *Builder) PushNumber(n float64) *Builder {
	return b.push(NewNumberValue(n))
}

// extractCurrent hands back the list under construction, leaving a fresh
// empty list in its place so the Builder stays valid.
func (b *Builder) extractCurrent() []*Value {
	current := b.current
	b.current = []*Value{}
	return current
}

// Open saves the list under construction and starts a new, empty one in its
// place. The saved list is moved, not copied.
func (b *Builder) Open() *Builder {
	b.stack = append(b.stack, b.extractCurrent())
	return b
}

// Close wraps the list under construction into a single list Value, restores
// the most recently saved list and appends the wrapped list to it. A Close
// with no matching Open reports a StackUnderflow error.
func (b *Builder) Close() error {
	if len(b.stack) == 0 {
		return newError(ErrorKindStackUnderflow, "unmatched closing parenthesis")
	}
	wrapped := NewListValue(b.extractCurrent())
	b.current = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.push(wrapped)
	return nil
}

// Depth reports the current nesting depth (the number of unmatched Opens).
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Value consumes the Builder and produces the finished tree. The result is
// always a list wrapping the top level, mirroring the symmetric Open/Close
// design; Parse unwraps a single-element top level before returning. Value
// fails with UnbalancedParentheses when Opens remain unmatched.
func (b *Builder) Value() (*Value, error) {
	if n := len(b.stack); n > 0 {
		return nil, newError(ErrorKindUnbalancedParentheses, "%d unclosed parenthesis(es) at end of input", n)
	}
	return NewListValue(b.extractCurrent()), nil
}
