package control

// Frame is an open Unbounded container.
type Frame struct {
	Type Type

	// Offset is the position of the opening block in the input.
	Offset uint64

	// Count is the number of fields read directly inside the container
	// so far.
	Count uint64
}

// Stack holds the open containers, innermost last.
type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

// Top returns the innermost open container, or nil at the top level.
func (s Stack) Top() *Frame {
	if len(s) == 0 {
		return nil
	}

	return s[len(s)-1]
}

// Pop closes the innermost container. t is the closing block type.
func (s *Stack) Pop(t Type) (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("unexpected %s (not in a container)", t)
	}

	if top.Type != ContainerUnbounded {
		return Error.New("unexpected %s (container not unbounded): %s", t, top.Type)
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Count records one field in the innermost container.
func (s *Stack) Count() {
	if top := s.Top(); top != nil {
		top.Count++
	}
}
