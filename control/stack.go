package control

// Frame is an enclosing array, map or tag whose content is still being read.
type Frame struct {
	Type Type

	// Argument is the argument of the enclosing head: the element count of
	// an array, the pair count of a map or the tag number.
	Argument uint64

	// Remaining is the number of entries left before the frame completes.
	// Map entries are pairs.
	Remaining uint64

	// Key is set while a map has read the key of its current pair.
	Key bool
}

type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() (err error) {
	top := s.Top()
	if top == nil {
		return Error.New("no frame on stack")
	}

	if top.Remaining != 0 || top.Key {
		return Error.New(
			"items remaining in %s: remaining=%d key=%t",
			top.Type.Abbr,
			top.Remaining,
			top.Key,
		)
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Complete records that one item finished and pops every frame the item
// completes.
func (s *Stack) Complete() (err error) {
	for {
		top := s.Top()
		if top == nil {
			return nil
		}

		if top.Type == Map && !top.Key {
			top.Key = true
			return nil
		}

		top.Key = false
		top.Remaining--
		if top.Remaining > 0 {
			return nil
		}

		err = s.Pop()
		if err != nil {
			return err
		}
	}
}

// push opens a frame for a head with content. It reports false when the head
// has no content and is complete on its own.
func (s *Stack) push(t Type, arg uint64) (ok bool, err error) {
	var remaining uint64

	switch t {
	case Array, Map:
		remaining = arg
	case Tag:
		remaining = 1
	}

	if remaining == 0 {
		return false, nil
	}

	s.Push(&Frame{
		Type:      t,
		Argument:  arg,
		Remaining: remaining,
	})

	return true, nil
}
