package clint

import "unsafe"

// Register offsets from the CLINT base, fixed by the hardware.
const (
	msipOff     = 0x0000 // 4 bytes per hart
	mtimecmpOff = 0x4000 // 8 bytes per hart
	mtimeOff    = 0xbff8
)

// MMIO is the memory-mapped CLINT at a fixed base address.
type MMIO struct {
	base uintptr
}

func NewMMIO(base uintptr) *MMIO {
	return &MMIO{base: base}
}

func (c *MMIO) msip(hart uint64) *uint32 {
	return (*uint32)(unsafe.Pointer(c.base + msipOff + 4*uintptr(hart)))
}

func (c *MMIO) SendSoft(hart uint64) {
	*c.msip(hart) = 1
}

func (c *MMIO) ClearSoft(hart uint64) {
	*c.msip(hart) = 0
}

func (c *MMIO) Soft(hart uint64) bool {
	return *c.msip(hart) != 0
}

func (c *MMIO) Mtime() uint64 {
	return *(*uint64)(unsafe.Pointer(c.base + mtimeOff))
}

func (c *MMIO) SetTimer(hart uint64, cmp uint64) {
	*(*uint64)(unsafe.Pointer(c.base + mtimecmpOff + 8*uintptr(hart))) = cmp
}

var _ Registers = (*MMIO)(nil)
