//go:build riscv64

package main

import (
	"log"
	"unsafe"
)

// SiFive UART registers. The previous boot stage already set the
// divisor and enabled the transmitter; we only move bytes.
const (
	uartTxData = 0x00 // bit 31: fifo full
	uartRxData = 0x04 // bit 31: fifo empty
	uartTxCtrl = 0x08
)

func uartReg(off uintptr) *uint32 {
	return (*uint32)(unsafe.Pointer(uintptr(uart0Base) + off))
}

func putc(c byte) {
	for *uartReg(uartTxData)&(1<<31) != 0 {
	}
	*uartReg(uartTxData) = uint32(c)
}

func getc() int {
	v := *uartReg(uartRxData)
	if v&(1<<31) != 0 {
		return -1
	}
	return int(v & 0xff)
}

// uartConsole backs both the firmware log and the legacy SBI console
// calls.
type uartConsole struct{}

func (uartConsole) Putchar(c byte) { putc(c) }
func (uartConsole) Getchar() int   { return getc() }

func (uartConsole) Write(p []byte) (int, error) {
	for _, c := range p {
		if c == '\n' {
			putc('\r')
		}
		putc(c)
	}
	return len(p), nil
}

// initConsole binds the log package to the UART. Boot hart only, once.
func initConsole() {
	*uartReg(uartTxCtrl) |= 1 // txen
	log.SetFlags(0)
	log.SetOutput(uartConsole{})
}

// printk hands the runtime's own console output to the UART.
//
//go:linkname printk runtime.printk
func printk(c byte) {
	putc(c)
}
