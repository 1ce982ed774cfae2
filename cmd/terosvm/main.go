// Command terosvm is the TEROS driver: it allocates ternary memory,
// constructs a TVM and Interpreter, loads a program, and runs it to
// completion or until interrupted — the same shape as the teacher's
// cmd/mipsvm/main.go (flag parsing, a goroutine running the core with a
// done channel, os/signal.Notify racing it via select), generalized
// from a byte-addressed CPU to the trit-addressed TVM and wired to the
// IPC Core's signal subsystem instead of exiting directly on Ctrl-C.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/teros-kernel/teros/internal/alu"
	"github.com/teros-kernel/teros/internal/console"
	"github.com/teros-kernel/teros/internal/interp"
	tsignal "github.com/teros-kernel/teros/internal/ipc/signal"
	"github.com/teros-kernel/teros/internal/kernlog"
	"github.com/teros-kernel/teros/internal/loader"
	"github.com/teros-kernel/teros/internal/tmem"
	"github.com/teros-kernel/teros/internal/tvm"
)

func main() {
	verbose := flag.Bool("v", false, "enable verbose logging")
	memoryFlag := flag.Int("memory", 1<<16, "ternary memory size in trits")
	stackFlag := flag.Int("stack", tvm.DefaultStackDepth, "TVM stack capacity in trits")
	programFlag := flag.String("program", "", "path to a JSON T3-ISA instruction list")
	rawTerm := flag.Bool("raw-terminal", false, "put the host terminal into raw mode for console I/O")
	flag.Parse()

	log := kernlog.New(*verbose)

	if *programFlag == "" {
		log.Fatal("terosvm: -program is required")
	}

	log.Printf("allocating %d trits of ternary memory", *memoryFlag)
	mem := tmem.New(*memoryFlag)

	log.Printf("loading program from %s", *programFlag)
	program, err := loader.Load(*programFlag)
	if err != nil {
		log.Fatal(err)
	}

	machine := tvm.New(mem, *stackFlag)
	unit := alu.New()
	core := interp.New(machine, unit)

	sig := tsignal.New()
	sig.Register(console.InterruptSignal, func(int) {
		log.Always("interrupt signal received, stopping interpreter")
		os.Exit(130)
	})

	var oldState *term.State
	if *rawTerm {
		oldState, err = term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			log.Fatal(err)
		}
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}
	if *rawTerm {
		if err := console.Open(); err == nil {
			defer console.Close()
			bridge := console.New(sig)
			go func() {
				for {
					if _, ok := bridge.ReadByte(); !ok {
						return
					}
				}
			}()
		}
	}

	done := make(chan struct{})

	log.Printf("running interpreter over %d instructions", len(program))
	start := time.Now()

	go func() {
		core.Run(program)
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Printf("host signal received, exiting without waiting for the interpreter")
	case <-done:
	}

	elapsed := time.Since(start)

	log.Printf("interpreter stopped: halted=%v error=%v", core.IsHalted(), core.HasError())
	log.Printf("total execution time: %s", elapsed)

	if core.HasError() {
		os.Exit(1)
	}
}
