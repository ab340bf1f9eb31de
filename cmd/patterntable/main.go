// Command patterntable renders a cartridge's CHR pattern table (256 8x8
// tiles, NES 2-bits-per-pixel planar format) to a PNG, using
// golang.org/x/image/draw to scale the result up to a legible size.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/golang/glog"
	"golang.org/x/image/draw"

	"github.com/nes6502/core/mem"
	"github.com/nes6502/core/nes"
)

var (
	chrPath = flag.String("chr", "", "path to a raw CHR ROM image")
	outPath = flag.String("out", "patterntable.png", "output PNG path")
	scale   = flag.Int("scale", 2, "integer scale factor applied to the 128x128 source image")
)

const (
	tileSize       = 8
	tileBytes      = 16
	tilesPerRow    = 16
	tableTileCount = 256
	tableDim       = tileSize * tilesPerRow // 128
)

// nesPalette is a placeholder 4-entry grayscale ramp standing in for the
// real PPU palette, which lives outside this core's scope.
var nesPalette = [4]color.Gray{{Y: 0}, {Y: 85}, {Y: 170}, {Y: 255}}

func main() {
	flag.Parse()
	if *chrPath == "" {
		glog.Exit("-chr is required")
	}

	chrROM, err := os.ReadFile(*chrPath)
	if err != nil {
		glog.Exitf("reading %s: %v", *chrPath, err)
	}

	cart, err := nes.Load(nes.Header{MapperID: 0, CHRROMSize: uint32(len(chrROM))}, make([]byte, 0x8000), chrROM)
	if err != nil {
		glog.Exitf("loading cartridge: %v", err)
	}
	glog.V(1).Infof("loaded %d byte CHR ROM", len(chrROM))

	src := image.NewGray(image.Rect(0, 0, tableDim, tableDim))
	chr := cart.Mapper.CHR()
	for tile := 0; tile < tableTileCount; tile++ {
		tx := (tile % tilesPerRow) * tileSize
		ty := (tile / tilesPerRow) * tileSize
		if err := drawTile(src, chr, tile, tx, ty); err != nil {
			glog.V(1).Infof("tile %d: %v (leaving blank)", tile, err)
		}
	}

	dstDim := tableDim * *scale
	dst := image.NewRGBA(image.Rect(0, 0, dstDim, dstDim))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(*outPath)
	if err != nil {
		glog.Exitf("creating %s: %v", *outPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		glog.Exitf("encoding PNG: %v", err)
	}
	glog.V(1).Infof("wrote %s (%dx%d)", *outPath, dstDim, dstDim)
}

// drawTile reads tile's 16-byte planar pattern from chr and paints it into
// dst at (ox, oy).
func drawTile(dst *image.Gray, chr mem.Memory, tile, ox, oy int) error {
	var raw [tileBytes]byte
	if err := chr.Get(uint64(tile*tileBytes), raw[:]); err != nil {
		return err
	}
	for row := 0; row < tileSize; row++ {
		lo := raw[row]
		hi := raw[row+tileSize]
		for col := 0; col < tileSize; col++ {
			bit := uint(7 - col)
			idx := (lo>>bit)&1 | (hi>>bit)&1<<1
			dst.SetGray(ox+col, oy+row, nesPalette[idx])
		}
	}
	return nil
}
