package boot

import (
	"log"

	"sbi-in-go/clint"
	"sbi-in-go/machine"
)

// Config wires the sequencer to the board. The Init* hooks run on the
// boot hart only, exactly once; EarlyTrap runs on every hart. Any nil
// hook is skipped. Event, when set, receives an ordered record of the
// rendezvous for the simulation harness.
type Config struct {
	NumHarts uint64

	// FallbackDTB is the address of the embedded device tree,
	// used when the loader passed no opaque handoff value.
	FallbackDTB uint64

	InitMemory  func() // zero uninitialized globals, copy data image
	InitConsole func()
	InitHeap    func()
	EarlyTrap   func(hart uint64)
	Discover    func(opaque uint64) error // best-effort board discovery
	Banner      func(info *Info, opaque uint64)

	Event func(hart uint64, what string)
}

func (c *Config) event(hart uint64, what string) {
	if c.Event != nil {
		c.Event(hart, what)
	}
}

func (c *Config) notify(cl clint.Registers, self uint64) {
	for t := uint64(0); t < c.NumHarts; t++ {
		if t != self {
			cl.SendSoft(t)
		}
	}
}

// Run drives one hart from reset to ready. The boot hart performs the
// global initialization and releases the followers twice: once so they
// can proceed past reset-time setup, once after full initialization.
// Followers sit in Pause at both points. Every hart with a supervisor
// mode leaves with its traps delegated and gets back the supervisor
// entry point and opaque handoff value for its trap loop.
func Run(cfg *Config, csr machine.CSR, cl clint.Registers, opaque uint64, info *Info) (mepc, opq uint64) {
	hart := csr.HartID()
	isBoot := hart == info.BootHart

	if isBoot {
		if cfg.InitMemory != nil {
			cfg.InitMemory()
		}
		if cfg.InitConsole != nil {
			cfg.InitConsole()
		}
		// Not before this point: the warning needs a console to
		// land on.
		if info.Magic != Magic {
			log.Printf("[sbi] warning: boot descriptor magic %#x, want %#x", info.Magic, Magic)
		}
		cfg.event(hart, "global-init")
		cfg.notify(cl, hart)
		cfg.event(hart, "notify-early")
	} else {
		Pause(csr, cl)
		cfg.event(hart, "pause-1")
	}

	if opaque == 0 {
		opaque = cfg.FallbackDTB
	}
	if cfg.EarlyTrap != nil {
		cfg.EarlyTrap(hart)
	}

	if isBoot {
		if cfg.InitHeap != nil {
			cfg.InitHeap()
		}
		if cfg.Discover != nil {
			if err := cfg.Discover(opaque); err != nil {
				log.Printf("[sbi] warning: device tree: %v", err)
			}
		}
		Delegate(csr)
		if cfg.Banner != nil {
			cfg.Banner(info, opaque)
		}
		cfg.event(hart, "init-done")
		cfg.notify(cl, hart)
		cfg.event(hart, "notify-late")
	} else {
		// Hart 0 is the monitor core: no supervisor mode, so
		// the delegation registers do not apply to it.
		if hart != 0 {
			Delegate(csr)
		}
		Pause(csr, cl)
		cfg.event(hart, "pause-2")
	}

	return info.NextAddr, opaque
}
