//go:build riscv64

package main

import (
	"log"
	"runtime"
	_ "unsafe"

	"sbi-in-go/boot"
	"sbi-in-go/clint"
	"sbi-in-go/dtb"
	"sbi-in-go/machine"
	"sbi-in-go/sbi"
	"sbi-in-go/trap"
)

//go:linkname ramStart runtime.ramStart
var ramStart uint64 = firmwareBase

// The runtime window stops short of the heap extent at the top, so
// zeroing and region setup there never touch live runtime memory.
//
//go:linkname ramSize runtime.ramSize
var ramSize uint64 = firmwareSize - heapSize

// Clocks and DDR were brought up by the previous boot stage.
//
//go:linkname hwinit runtime.hwinit
func hwinit() {}

// entry is the reset vector, in entry_riscv64.s. Every hart starts
// there.
func entry()

// bootArgs is filled by the entry assembly from the registers the
// previous stage handed over: the opaque value (device tree pointer)
// and the dynamic-info descriptor address. Every hart writes the same
// two words.
var bootArgs [2]uint64

var board *dtb.Board

// dtbScratch bounds the device tree copy held in the heap region
// while discovery parses it.
const dtbScratch = 32 * 1024

func discover(opaque uint64) error {
	// Parse a copy in firmware-owned memory: the loader's tree sits
	// in RAM the supervisor is free to reuse.
	addr, buf := heapRegion.Reserve(dtbScratch, 4)
	defer heapRegion.Release(addr)

	b, err := dtb.DiscoverAt(uintptr(opaque), buf)
	if err != nil {
		return err
	}
	board = b
	log.Printf("[sbi] board: %s, %d cpus", b.Model, b.NumCPUs)
	return nil
}

func banner(info *boot.Info, opaque uint64) {
	log.Printf("[sbi] sbi-in-go (%s %s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	log.Printf("[sbi] enter supervisor at %#x mode %d, opaque %#x",
		info.NextAddr, info.NextMode, opaque)
}

// kmain is entered by every hart from entry_riscv64.s, on its own
// stack slice, with all privilege still at machine level.
func kmain() {
	csr := machine.HW{}
	hart := csr.HartID()
	cl := clint.NewMMIO(clintBase)
	info := boot.InfoAt(uintptr(bootArgs[1]))

	cfg := &boot.Config{
		NumHarts:    numHarts,
		FallbackDTB: dtb.FallbackAddr(),
		InitMemory:  initMemory,
		InitConsole: initConsole,
		InitHeap:    initHeap,
		EarlyTrap:   func(uint64) { trap.InstallEarly() },
		Discover:    discover,
		Banner:      banner,
	}
	mepc, opaque := boot.Run(cfg, csr, cl, bootArgs[0], info)

	protectFirmware()

	mux := sbi.NewMux(hart)
	mux.Register(sbi.ExtBase, sbi.NewBase(mux))
	mux.Register(sbi.ExtTimer, sbi.NewTimer(cl, csr))
	mux.Register(sbi.ExtIPI, sbi.NewIPI(cl, numHarts))
	mux.Register(sbi.ExtLegacyPutchar, sbi.NewLegacyPutchar(uartConsole{}))
	mux.Register(sbi.ExtLegacyGetchar, sbi.NewLegacyGetchar(uartConsole{}))

	rt := trap.New(trap.NewHWSwitcher(), mepc, hart, opaque)
	sbi.Serve(rt, mux, csr)

	// Completed means the supervisor will never run again; there is
	// nothing left for this hart to do.
	log.Printf("[sbi] hart %d: supervisor completed", hart)
	for {
	}
}

func main() {}
