// Package dtb carries the embedded fallback device tree and the
// best-effort board discovery over whatever tree the loader handed us.
package dtb

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"

	"github.com/u-root/u-root/pkg/dt"
)

// Fallback blob, used only when the loader supplied no device tree.
//
//go:embed fu740.dtb
var fallback []byte

// Fallback returns the embedded device tree.
func Fallback() []byte { return fallback }

// FallbackAddr returns its address for the supervisor handoff
// register.
func FallbackAddr() uint64 {
	return uint64(uintptr(unsafe.Pointer(&fallback[0])))
}

// At maps the flattened tree at a raw address into a byte slice,
// bounded by the totalsize field of its header.
func At(addr uintptr) ([]byte, error) {
	hdr := unsafe.Slice((*byte)(unsafe.Pointer(addr)), 8)
	if binary.BigEndian.Uint32(hdr) != 0xd00dfeed {
		return nil, fmt.Errorf("dtb: bad magic %#x at %#x", binary.BigEndian.Uint32(hdr), addr)
	}
	size := binary.BigEndian.Uint32(hdr[4:])
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// DiscoverAt maps the tree at addr and parses a copy held in scratch,
// so nothing reads through the raw pointer once the copy is made.
func DiscoverAt(addr uintptr, scratch []byte) (*Board, error) {
	blob, err := At(addr)
	if err != nil {
		return nil, err
	}
	if len(scratch) < len(blob) {
		return nil, fmt.Errorf("dtb: tree is %d bytes, scratch holds %d", len(blob), len(scratch))
	}
	return Discover(scratch[:copy(scratch, blob)])
}

// Board is what discovery learned about the machine.
type Board struct {
	Model    string
	NumCPUs  int
	Timebase uint32
}

// Discover parses a flattened device tree and pulls out the board
// identity. Errors are reported, not fatal: the caller degrades to
// built-in defaults.
func Discover(blob []byte) (*Board, error) {
	fdt, err := dt.ReadFDT(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("dtb: %w", err)
	}

	b := &Board{}
	for _, p := range fdt.RootNode.Properties {
		if p.Name == "model" {
			b.Model = cstring(p.Value)
		}
	}
	for _, n := range fdt.RootNode.Children {
		if n.Name != "cpus" {
			continue
		}
		for _, p := range n.Properties {
			if p.Name == "timebase-frequency" && len(p.Value) >= 4 {
				b.Timebase = binary.BigEndian.Uint32(p.Value)
			}
		}
		for _, c := range n.Children {
			if strings.HasPrefix(c.Name, "cpu@") {
				b.NumCPUs++
			}
		}
	}
	if b.NumCPUs == 0 {
		return nil, fmt.Errorf("dtb: no cpu nodes")
	}
	return b, nil
}

func cstring(v []byte) string {
	if i := bytes.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return string(v)
}
