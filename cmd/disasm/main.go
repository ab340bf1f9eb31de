// Command disasm disassembles a raw PRG ROM image using the mos6502
// decoder, printing one line per instruction: its address and the decoded
// instruction's text.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/nes6502/core/mos6502"
	"github.com/nes6502/core/nes"
)

var (
	romPath = flag.String("rom", "", "path to a raw PRG ROM image (no iNES header)")
	start   = flag.Uint("start", 0x8000, "CPU address to start disassembling from")
	count   = flag.Int("count", 32, "number of instructions to disassemble")
)

func main() {
	flag.Parse()
	if *romPath == "" {
		glog.Exit("-rom is required")
	}

	prg, err := os.ReadFile(*romPath)
	if err != nil {
		glog.Exitf("reading %s: %v", *romPath, err)
	}

	cart, err := nes.Load(nes.Header{MapperID: 0}, prg, nil)
	if err != nil {
		glog.Exitf("loading cartridge: %v", err)
	}
	glog.V(1).Infof("loaded %d byte PRG ROM", len(prg))

	bus := cart.Mapper.PRG()
	pc := mos6502.ProgramCounterAt(uint16(*start))
	for i := 0; i < *count; i++ {
		addr := pc.Get()
		inst, err := mos6502.Decode(&pc, bus)
		if err != nil {
			fmt.Printf("%04X: decode error: %v\n", addr, err)
			return
		}
		fmt.Printf("%04X: %s\n", addr, inst)
	}
}
