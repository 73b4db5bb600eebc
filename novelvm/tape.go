package novelvm

const (
	TapeSize = 512
	MaxCell  = 1<<24 - 1
)

// Tape is the engine memory. All access is bounds checked and reported as *Fault.
type Tape struct {
	cells   [TapeSize]uint32
	pointer int
}

func (t *Tape) Clear() {
	clear(t.cells[:])
	t.pointer = 0
}

func (t *Tape) Pointer() int {
	return t.pointer
}

func (t *Tape) Get(i int) (uint32, *Fault) {
	if i < 0 || i >= TapeSize {
		return 0, newFault(IndexOutOfRange, "Attempted to read index %d outside the tape.", i)
	}
	return t.cells[i], nil
}

func (t *Tape) Set(i int, v uint32) *Fault {
	if i < 0 || i >= TapeSize {
		return newFault(IndexOutOfRange, "Attempted to write index %d outside the tape.", i)
	}
	if v > MaxCell {
		return newFault(CellOverflow, "Attempted to store %d at index %d above integer max.", v, i)
	}
	t.cells[i] = v
	return nil
}

func (t *Tape) Current() (uint32, *Fault) {
	return t.Get(t.pointer)
}

func (t *Tape) SetCurrent(v uint32) *Fault {
	return t.Set(t.pointer, v)
}

func (t *Tape) Increment() *Fault {
	v, fault := t.Current()
	if fault != nil {
		return fault
	}
	if v >= MaxCell {
		return newFault(CellOverflow, "Attempted to increment value at index %d above integer max.", t.pointer)
	}
	return t.SetCurrent(v + 1)
}

func (t *Tape) Decrement() *Fault {
	v, fault := t.Current()
	if fault != nil {
		return fault
	}
	if v == 0 {
		return newFault(CellUnderflow, "Attempted to decrement value at index %d below 0.", t.pointer)
	}
	return t.SetCurrent(v - 1)
}

func (t *Tape) ShiftLeft() *Fault {
	if t.pointer <= 0 {
		return newFault(PointerUnderflow, "Attempted to shift array index below 0.")
	}
	t.pointer--
	return nil
}

func (t *Tape) ShiftRight() *Fault {
	if t.pointer >= TapeSize-1 {
		return newFault(PointerOverflow, "Attempted to shift array index above %d.", TapeSize-1)
	}
	t.pointer++
	return nil
}

func (t *Tape) ShiftToValue() *Fault {
	v, fault := t.Current()
	if fault != nil {
		return fault
	}
	if v >= TapeSize {
		return newFault(ShiftOutOfRange, "Attempted to shift array index to %d, above %d.", v, TapeSize-1)
	}
	t.pointer = int(v)
	return nil
}

func (t *Tape) ResetPointer() {
	t.pointer = 0
}

// NonZero returns the cells holding a value other than zero.
func (t *Tape) NonZero() map[int]uint32 {
	ret := make(map[int]uint32)
	for i, v := range t.cells {
		if v != 0 {
			ret[i] = v
		}
	}
	return ret
}
