// Package bmp inspects bitmap files: dimensions, pixel format, and for
// 32-bit images a color census plus a compact alpha-channel RLE.
package bmp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"sort"

	xbmp "golang.org/x/image/bmp"
)

// Color is one RGBA pixel value as stored in the file
type Color struct {
	R, G, B, A uint8
}

// ColorCount pairs a color with how often it occurs
type ColorCount struct {
	Color Color
	Count int
}

// Run is one alpha RLE run. Lengths saturate at 255 so each run fits a
// single byte in the encoded form.
type Run struct {
	Alpha  uint8
	Length uint8
}

// Info is everything the inspector reports about one file
type Info struct {
	Width       int
	Height      int
	WidthMod128 int
	Format      string

	// The fields below are populated for 32-bit images only
	Colors            []ColorCount
	VariesOnlyInAlpha bool
	AlphaRLE          []Run
}

// Inspect decodes a BMP stream and gathers its report
func Inspect(r io.Reader) (*Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bmp: read: %w", err)
	}
	img, err := xbmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bmp: decode: %w", err)
	}

	bounds := img.Bounds()
	info := &Info{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		WidthMod128: bounds.Dx() % 128,
	}

	switch img.(type) {
	case *image.Paletted:
		info.Format = "INDEX8"
	case *image.RGBA:
		info.Format = "RGB24"
	case *image.NRGBA:
		info.Format = "ARGB8888"
		pixels, err := rawPixels32(data)
		if err != nil {
			return nil, err
		}
		info.census(pixels)
	default:
		info.Format = fmt.Sprintf("%T", img)
	}
	return info, nil
}

// rawPixels32 reads the stored BGRA pixel array of a 32-bit BMP in
// row-major top-to-bottom order. The stock decoder treats files with
// the plain 40-byte info header as opaque and replaces the stored alpha
// byte with 0xFF, and that is exactly the header SDL and the encoder in
// x/image write, so the census has to read the pixel array itself.
func rawPixels32(data []byte) ([]Color, error) {
	if len(data) < 54 || data[0] != 'B' || data[1] != 'M' {
		return nil, fmt.Errorf("bmp: truncated header")
	}
	offset := int(binary.LittleEndian.Uint32(data[10:14]))
	width := int(int32(binary.LittleEndian.Uint32(data[18:22])))
	height := int(int32(binary.LittleEndian.Uint32(data[22:26])))
	bpp := int(binary.LittleEndian.Uint16(data[28:30]))
	if bpp != 32 {
		return nil, fmt.Errorf("bmp: expected 32 bits per pixel, got %d", bpp)
	}

	// Negative height means the rows are stored top-down
	topDown := false
	if height < 0 {
		topDown = true
		height = -height
	}
	if width < 0 {
		return nil, fmt.Errorf("bmp: negative width %d", width)
	}

	// 32bpp rows are 4-byte multiples already, no padding
	stride := width * 4
	if offset < 54 || len(data) < offset+stride*height {
		return nil, fmt.Errorf("bmp: truncated pixel array")
	}

	pixels := make([]Color, 0, width*height)
	for y := 0; y < height; y++ {
		row := y
		if !topDown {
			row = height - 1 - y
		}
		base := offset + row*stride
		for x := 0; x < width; x++ {
			p := data[base+4*x : base+4*x+4]
			pixels = append(pixels, Color{R: p[2], G: p[1], B: p[0], A: p[3]})
		}
	}
	return pixels, nil
}

// census walks the pixels row-major, counting distinct colors, building
// the alpha RLE, and checking whether only the alpha channel varies. A
// pixel counts against the varies check only when all three of r, g and
// b differ from the previous pixel, matching the inspector this tool
// descends from.
func (info *Info) census(pixels []Color) {
	counts := make(map[Color]int)
	info.VariesOnlyInAlpha = true

	var last Color
	for i, cur := range pixels {
		counts[cur]++
		if i > 0 && cur.R != last.R && cur.G != last.G && cur.B != last.B {
			info.VariesOnlyInAlpha = false
		}
		n := len(info.AlphaRLE)
		if n == 0 || info.AlphaRLE[n-1].Alpha != cur.A || info.AlphaRLE[n-1].Length == 255 {
			info.AlphaRLE = append(info.AlphaRLE, Run{Alpha: cur.A, Length: 1})
		} else {
			info.AlphaRLE[n-1].Length++
		}
		last = cur
	}

	info.Colors = make([]ColorCount, 0, len(counts))
	for c, n := range counts {
		info.Colors = append(info.Colors, ColorCount{Color: c, Count: n})
	}
	sort.Slice(info.Colors, func(i, j int) bool {
		a, b := info.Colors[i].Color, info.Colors[j].Color
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		if a.B != b.B {
			return a.B < b.B
		}
		return a.A < b.A
	})
}

// EncodedRLE renders the alpha runs as uppercase hex byte pairs,
// (alpha, length) per run
func (info *Info) EncodedRLE() string {
	out := make([]byte, 0, 4*len(info.AlphaRLE))
	for _, run := range info.AlphaRLE {
		out = appendHexByte(out, run.Alpha)
		out = appendHexByte(out, run.Length)
	}
	return string(out)
}

// RLELength is the run count in bytes, two per run
func (info *Info) RLELength() int {
	return 2 * len(info.AlphaRLE)
}

const hexDigits = "0123456789ABCDEF"

func appendHexByte(out []byte, b uint8) []byte {
	return append(out, hexDigits[b>>4], hexDigits[b&0x0F])
}
