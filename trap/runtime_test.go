package trap_test

import (
	"testing"

	"sbi-in-go/machine"
	"sbi-in-go/sim"
	"sbi-in-go/trap"
)

func TestNewSeedsContext(t *testing.T) {
	rt := trap.New(&sim.Supervisor{}, 0x80200000, 3, 0x82200000)
	ctx := rt.Context()
	if ctx.Mepc != 0x80200000 {
		t.Errorf("mepc = %#x, want %#x", ctx.Mepc, 0x80200000)
	}
	if ctx.A0 != 3 || ctx.A1 != 0x82200000 {
		t.Errorf("a0, a1 = %#x, %#x, want hart id and opaque", ctx.A0, ctx.A1)
	}
	if rt.State() != trap.NotStarted {
		t.Errorf("state = %v, want NotStarted", rt.State())
	}
}

func TestResumeClassifiesTraps(t *testing.T) {
	sup := &sim.Supervisor{Steps: []sim.Step{
		{Cause: machine.ExcEcallS},
		{Cause: machine.Interrupt | machine.IntMTimer},
		{Cause: machine.Interrupt | machine.IntMSoft},
		{Cause: machine.ExcIllegal},
	}}
	rt := trap.New(sup, 0x80200000, 0, 0)

	want := []trap.Kind{trap.SbiCall, trap.MachineTimer, trap.MachineSoft, trap.IllegalInstruction}
	for i, w := range want {
		kind, ok := rt.Resume()
		if !ok {
			t.Fatalf("resume %d: completed early", i)
		}
		if kind != w {
			t.Errorf("resume %d: kind = %v, want %v", i, kind, w)
		}
		if rt.State() != trap.Suspended {
			t.Errorf("resume %d: state = %v, want Suspended", i, rt.State())
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	rt := trap.New(&sim.Supervisor{}, 0x80200000, 0, 0)
	if _, ok := rt.Resume(); ok {
		t.Fatal("empty supervisor should complete on first resume")
	}
	if rt.State() != trap.Completed {
		t.Errorf("state = %v, want Completed", rt.State())
	}

	defer func() {
		if recover() == nil {
			t.Error("resume after completion should panic")
		}
	}()
	rt.Resume()
}

func TestContextMutationsVisibleNextResume(t *testing.T) {
	var seen uint64
	sup := &sim.Supervisor{Steps: []sim.Step{
		{Cause: machine.ExcEcallS},
		{Cause: machine.ExcEcallS, Apply: func(ctx *trap.Context) { seen = ctx.A0 }},
	}}
	rt := trap.New(sup, 0x80200000, 0, 0)

	rt.Resume()
	rt.Context().A0 = 0xdead
	rt.Resume()
	if seen != 0xdead {
		t.Errorf("supervisor saw a0 = %#x, want mutation from machine mode", seen)
	}
}

func TestUnknownCauseAborts(t *testing.T) {
	sup := &sim.Supervisor{Steps: []sim.Step{{Cause: machine.ExcStoreFault}}}
	rt := trap.New(sup, 0x80200000, 0, 0)
	defer func() {
		if recover() == nil {
			t.Error("a store fault reaching machine mode must abort the hart")
		}
	}()
	rt.Resume()
}
