//go:build riscv64

package main

import (
	"unsafe"

	"github.com/usbarmory/tamago/dma"

	"sbi-in-go/boot"
)

// Hart stacks: one arena, partitioned by hart id into equal disjoint
// slices. The entry assembly computes each hart's stack pointer from
// this symbol before any Go code runs.
var sbiStack [numHarts * boot.PerHartStackSize]byte

// heapRegion is the single shared allocation arena. Initialized by
// the boot hart, exactly once; undefined until then.
var heapRegion *dma.Region

// initMemory zeroes the heap extent. It sits outside the image, so
// the loader gives no guarantee about its contents.
func initMemory() {
	mem := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(heapStart))), heapSize)
	for i := range mem {
		mem[i] = 0
	}
}

// initHeap hands the heap extent to the allocator. The extent lies
// outside the runtime RAM window; NewRegion rejects any overlap, and
// a firmware that cannot establish its own heap must not run a
// supervisor image.
func initHeap() {
	r, err := dma.NewRegion(heapStart, heapSize, false)
	if err != nil {
		panic("kernel: heap region: " + err.Error())
	}
	heapRegion = r
}
