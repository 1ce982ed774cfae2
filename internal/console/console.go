// Package console bridges the host terminal's keyboard into the kernel
// signal subsystem. It is grounded on the teacher's TRAP_GETC/TRAP_IN
// call sites (main.go, internal/lc3/memory.go), which read one key at a
// time with github.com/eiannone/keyboard and treat Ctrl-C as an
// interrupt; here that interrupt is generalized into a proper signal
// send instead of an immediate log.Fatal.
package console

import (
	"github.com/eiannone/keyboard"

	"github.com/teros-kernel/teros/internal/ipc/signal"
)

// InterruptSignal is the signal number raised when the host delivers
// Ctrl-C while the console reader is active.
const InterruptSignal = 2

// Console reads single keystrokes from the host terminal and forwards
// Ctrl-C as a signal, the same pattern the teacher's TRAP_GETC/TRAP_IN
// handlers hard-coded as a direct log.Fatal.
type Console struct {
	sig *signal.State
}

// New returns a Console that raises InterruptSignal on sig when Ctrl-C
// is read.
func New(sig *signal.State) *Console {
	return &Console{sig: sig}
}

// Open starts reading from the keyboard, matching the teacher's direct
// keyboard.Open()/keyboard.Close() bracketing around GetSingleKey.
func Open() error {
	return keyboard.Open()
}

// Close releases the keyboard.
func Close() {
	_ = keyboard.Close()
}

// ReadByte reads a single keystroke and returns it as a byte. If the
// keystroke is Ctrl-C it raises InterruptSignal on the bound signal
// state and returns ok=false instead of the keystroke, leaving the
// decision of what to do about the interrupt to the signal handler
// rather than exiting the process directly (the teacher's
// log.Fatal("interrupt") call sites are the behavior this replaces).
func (c *Console) ReadByte() (b byte, ok bool) {
	ch, key, err := keyboard.GetSingleKey()
	if err != nil {
		return 0, false
	}
	if key == keyboard.KeyCtrlC {
		if c.sig != nil {
			c.sig.Send(0, InterruptSignal)
		}
		return 0, false
	}
	return byte(ch), true
}
