// Package mixchan implements the channel controller and software mixer:
// channel reservation and the pause state machine, and the
// fixed-point per-sample accumulation that downmixes every playing
// channel into the device's output buffer.
package mixchan

// Fixed-point scales.
const (
	VolumeBits = 24
	PanBits    = 8

	// MixAccumBuflen is the largest number of stereo frames mixed in a
	// single accumulation pass; callers asking for more iterate in chunks.
	MixAccumBuflen = 1024

	// MaxBaseVolume is the ceiling on the mixer-wide base volume
	// multiplier.
	MaxBaseVolume = 15

	// MaxChannelVolume is the ceiling on a single channel's volume: the
	// largest integer gain whose Q0.24 representation fits an int32
	// (0x7FFFFFFF >> VolumeBits).
	MaxChannelVolume = 127

	panMultCenter = 1 << PanBits // 256, the unattenuated multiplier
)

func volumeUnit() int32 { return 1 << VolumeBits }
