//go:build riscv64

package main

import (
	"github.com/usbarmory/tamago/riscv64"
	"github.com/usbarmory/tamago/soc/sifive/fu540"
)

// protectFirmware closes the firmware image region to supervisor and
// user mode. PMP entries match in order: a no-permission window over
// [firmwareBase, firmwareBase+firmwareSize), then a grant for the
// rest of the address space. Machine mode is unaffected.
func protectFirmware() {
	if err := fu540.RV64.WritePMP(0, firmwareBase, false, false, false, riscv64.PMP_A_OFF, false); err != nil {
		panic("kernel: pmp: " + err.Error())
	}
	if err := fu540.RV64.WritePMP(1, firmwareBase+firmwareSize, false, false, false, riscv64.PMP_A_TOR, false); err != nil {
		panic("kernel: pmp: " + err.Error())
	}
	if err := fu540.RV64.WritePMP(2, 1<<38, true, true, true, riscv64.PMP_A_TOR, false); err != nil {
		panic("kernel: pmp: " + err.Error())
	}
}
