package nes

import (
	"github.com/golang/glog"

	"github.com/nes6502/core/mos6502"
)

// Nes owns a CPU and the memory map it steps against, plus the currently
// loaded cartridge's lifecycle. It is the entry point a host embeds: wire
// up a PPU/APU via Mem().AttachPPU/AttachAPU, Load a cartridge, then call
// Step in a loop.
type Nes struct {
	cpu  *mos6502.CPU
	mem  *MemoryMap
	cart *Cartridge
}

// New constructs an Nes with a fresh Ricoh 2A03 CPU (decimal mode
// disabled) and an empty memory map. The CPU is not yet reset; call
// PowerOn once a cartridge is loaded so the reset vector can be read.
func New() *Nes {
	cpu := mos6502.New(mos6502.Config{
		Variant:    mos6502.VariantRicoh2A03,
		BCDEnabled: mos6502.DefaultBCDEnabled(mos6502.VariantRicoh2A03),
	})
	return &Nes{cpu: cpu, mem: NewMemoryMap()}
}

// Load attaches cart to the memory map. Call PowerOn afterward to read
// its reset vector.
func (n *Nes) Load(cart *Cartridge) {
	glog.V(1).Infof("loading cartridge: mapper %d, prg rom %d bytes, chr rom %d bytes",
		cart.Header.MapperID, cart.Header.PRGROMSize, cart.Header.CHRROMSize)
	n.cart = cart
	n.mem.Load(cart)
}

// Eject detaches the current cartridge, if any.
func (n *Nes) Eject() {
	if n.cart != nil {
		glog.V(1).Infof("ejecting cartridge: mapper %d", n.cart.Header.MapperID)
	}
	n.cart = nil
	n.mem.Eject()
}

// PowerOn resets the CPU, loading PC from the cartridge's reset vector.
func (n *Nes) PowerOn() error {
	return n.cpu.PowerOn(n.mem)
}

// Step decodes and dispatches one instruction. The returned error is nil
// on success, a HaltInstruction-kind *mos6502.ExecError when an HLT
// opcode is reached, or any other decode/exec failure.
func (n *Nes) Step() error {
	inst, err := n.cpu.Step(n.mem)
	if err != nil {
		glog.V(2).Infof("step error at pc=0x%04X: %v", n.cpu.PC.Get(), err)
		return err
	}
	glog.V(2).Infof("pc=0x%04X cyc=%d %s", n.cpu.PC.Get(), n.cpu.Clock.Get(), inst)
	return nil
}

// CPU exposes the underlying CPU for host inspection (registers, flags,
// PC, clock).
func (n *Nes) CPU() *mos6502.CPU { return n.cpu }

// Mem exposes the memory map for host inspection and for attaching a PPU
// or APU.
func (n *Nes) Mem() *MemoryMap { return n.mem }

// MemMut is an alias for Mem kept for symmetry with Mapper's
// PRG/PRGMut naming; Go has no separate mutable-borrow accessor, so both
// return the same map.
func (n *Nes) MemMut() *MemoryMap { return n.mem }
