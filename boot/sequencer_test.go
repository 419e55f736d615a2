package boot_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"sbi-in-go/boot"
	"sbi-in-go/machine"
	"sbi-in-go/sbi"
	"sbi-in-go/sim"
	"sbi-in-go/trap"
)

// bootFiveHarts runs the full rendezvous on five simulated harts. The
// Init hooks sleep a little, standing in for the real work (zeroing
// memory, parsing the tree) that keeps the boot hart busy while the
// followers reach their barrier.
func bootFiveHarts(t *testing.T, cfg *boot.Config, info *boot.Info) ([5]uint64, *sim.CLINT, []*sim.Hart) {
	t.Helper()

	const harts = 5
	cl := sim.NewCLINT(harts)

	hs := make([]*sim.Hart, harts)
	for i := range hs {
		hs[i] = sim.NewHart(uint64(i), cl)
	}

	var mepc [harts]uint64
	var wg sync.WaitGroup
	for i := 0; i < harts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pc, _ := boot.Run(cfg, hs[i], cl, 0x83000000, info)
			mepc[i] = pc
		}(i)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("boot sequence never converged")
	}
	return mepc, cl, hs
}

func TestBootSequenceEndToEnd(t *testing.T) {
	info := &boot.Info{
		Magic:    boot.Magic,
		Version:  2,
		NextAddr: 0x80200000,
		NextMode: boot.ModeSupervisor,
		BootHart: 0,
	}

	lg := &sim.EventLog{}
	cfg := &boot.Config{
		NumHarts:   5,
		InitMemory: func() { time.Sleep(50 * time.Millisecond) },
		InitHeap:   func() { time.Sleep(50 * time.Millisecond) },
		Event:      lg.Append,
	}

	mepc, _, hs := bootFiveHarts(t, cfg, info)

	for h, pc := range mepc {
		if pc != 0x80200000 {
			t.Errorf("hart %d enters supervisor at %#x, want %#x", h, pc, 0x80200000)
		}
	}

	// boot-hart initialization happens before any follower gets past
	// either barrier
	ev := lg.Snapshot()
	for h := uint64(1); h < 5; h++ {
		if sim.Index(ev, h, "pause-1") < 0 || sim.Index(ev, h, "pause-2") < 0 {
			t.Fatalf("hart %d missing barrier events", h)
		}
		if sim.Index(ev, 0, "global-init") > sim.Index(ev, h, "pause-1") {
			t.Errorf("hart %d passed the first barrier before global init", h)
		}
		if sim.Index(ev, 0, "init-done") > sim.Index(ev, h, "pause-2") {
			t.Errorf("hart %d passed the second barrier before full init", h)
		}
		if sim.Index(ev, h, "pause-1") > sim.Index(ev, h, "pause-2") {
			t.Errorf("hart %d barriers out of order", h)
		}
	}

	// followers (except hart 0) left with their traps delegated
	for h := uint64(1); h < 5; h++ {
		if hs[h].ReadMideleg() == 0 {
			t.Errorf("hart %d left the sequence without delegation", h)
		}
	}

	// any hart can now serve a probe call with the pc stepped past it
	m := sbi.NewMux(3)
	m.Register(sbi.ExtBase, sbi.NewBase(m))
	sup := &sim.Supervisor{Steps: []sim.Step{
		{Cause: machine.ExcEcallS, Apply: func(ctx *trap.Context) {
			ctx.A7, ctx.A6, ctx.A0 = sbi.ExtBase, sbi.BaseProbeExtension, sbi.ExtBase
		}},
	}}
	rt := trap.New(sup, mepc[3], 3, 0x83000000)
	sbi.Serve(rt, m, hs[3])
	ctx := rt.Context()
	if int64(ctx.A0) != sbi.Success || ctx.A1 != 1 || ctx.Mepc != mepc[3]+4 {
		t.Errorf("probe after boot: a0=%d a1=%d mepc=%#x, want 0, 1, %#x",
			int64(ctx.A0), ctx.A1, ctx.Mepc, mepc[3]+4)
	}
}

func TestFallbackDeviceTree(t *testing.T) {
	cl := sim.NewCLINT(1)
	h := sim.NewHart(0, cl)
	info := &boot.Info{Magic: boot.Magic, NextAddr: 0x80200000}

	var seen uint64
	cfg := &boot.Config{
		NumHarts:    1,
		FallbackDTB: 0x82200000,
		Discover:    func(opaque uint64) error { seen = opaque; return nil },
	}

	// loader passed nothing: the embedded tree takes over
	_, opq := boot.Run(cfg, h, cl, 0, info)
	if opq != 0x82200000 || seen != 0x82200000 {
		t.Errorf("opaque = %#x, discovery saw %#x, want fallback address", opq, seen)
	}

	// loader's own tree wins when present
	_, opq = boot.Run(cfg, h, cl, 0x90000000, info)
	if opq != 0x90000000 {
		t.Errorf("opaque = %#x, want the loader's value kept", opq)
	}
}

func TestDiscoverFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	cl := sim.NewCLINT(1)
	h := sim.NewHart(0, cl)
	info := &boot.Info{Magic: boot.Magic, NextAddr: 0x80200000}
	cfg := &boot.Config{
		NumHarts: 1,
		Discover: func(uint64) error { return errors.New("bad fdt magic") },
	}

	mepc, _ := boot.Run(cfg, h, cl, 0x90000000, info)
	if mepc != 0x80200000 {
		t.Errorf("mepc = %#x, boot must proceed past a discovery failure", mepc)
	}
	if !strings.Contains(buf.String(), "warning") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}

func TestMagicWarningWaitsForConsole(t *testing.T) {
	var early, console bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&early)
	defer log.SetOutput(orig)

	cl := sim.NewCLINT(1)
	h := sim.NewHart(0, cl)
	info := &boot.Info{Magic: 0x12345678, NextAddr: 0x80200000}
	cfg := &boot.Config{
		NumHarts:    1,
		InitConsole: func() { log.SetOutput(&console) },
	}

	boot.Run(cfg, h, cl, 0x90000000, info)
	if strings.Contains(early.String(), "warning") {
		t.Errorf("warning emitted before the console existed: %q", early.String())
	}
	if !strings.Contains(console.String(), "warning") {
		t.Errorf("warning missing from the console, got %q", console.String())
	}
}

func TestBadMagicWarnsAndProceeds(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	cl := sim.NewCLINT(1)
	h := sim.NewHart(0, cl)
	info := &boot.Info{Magic: 0x12345678, NextAddr: 0x80200000}

	mepc, _ := boot.Run(&boot.Config{NumHarts: 1}, h, cl, 0x90000000, info)
	if mepc != 0x80200000 {
		t.Errorf("mepc = %#x, a magic mismatch is the caller's problem", mepc)
	}
	if !strings.Contains(buf.String(), "warning") {
		t.Errorf("expected a logged warning, got %q", buf.String())
	}
}
