// Package backend registers the format-specific decoder back-ends
// against internal/decoder's dispatch table. Importing a
// back-end package for its side effect (blank import) is enough to make a
// format available; package mixcore blank-imports this package, which
// registers every back-end.
package backend

import "encoding/binary"

// clampSample saturates an int-domain sample to the int16 range, the
// conversion every back-end applies when downscaling a wider source
// format to S16LE.
func clampSample(v int) int16 {
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}

// convertPCMSample converts one little-endian sample of the given bit
// depth (8, 16, 24, or 32) to a clamped S16LE sample, matching the
// usual LE sign-extension and shift rules.
func convertPCMSample(raw []byte, bitDepth int) int16 {
	var v int
	switch bitDepth {
	case 8:
		v = (int(raw[0]) - 128) << 8
	case 16:
		v = int(int16(binary.LittleEndian.Uint16(raw)))
	case 24:
		s := int32(raw[0]) | int32(raw[1])<<8 | int32(raw[2])<<16
		if s&0x800000 != 0 {
			s |= ^int32(0xFFFFFF)
		}
		v = int(s >> 8)
	case 32:
		v = int(int32(binary.LittleEndian.Uint32(raw)) >> 16)
	default:
		v = 0
	}
	return clampSample(v)
}
