package alu

// Flags holds the condition flags set by the last arithmetic or logic
// operation. Every operation clears flags first, then sets zero/
// negative/positive from the result and overflow/underflow from the
// operation itself.
type Flags struct {
	Overflow  bool
	Underflow bool
	Zero      bool
	Negative  bool
	Positive  bool
}

// Clear resets all flags, matching the explicit clear_flags contract of
// spec §4.3.
func (f *Flags) Clear() {
	*f = Flags{}
}

func (f *Flags) setFromResult(v int) {
	f.Zero = v == 0
	f.Negative = v < 0
	f.Positive = v > 0
}
