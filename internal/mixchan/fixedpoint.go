package mixchan

import "math"

// floatToVolumeQ converts a linear gain (0.0 = silence, 1.0 = unity) to
// the mixer's Q0.24 fixed-point representation, clamped to [0, ceiling]:
// MaxChannelVolume for a channel's own volume, MaxBaseVolume for the
// mixer-wide base multiplier.
func floatToVolumeQ(v, ceiling float64) int32 {
	if v < 0 {
		v = 0
	}
	if v > ceiling {
		v = ceiling
	}
	return int32(math.Round(v * float64(volumeUnit())))
}

// panMultipliers computes the stereo channel multiplier pair
// for a pan position -1 (full left) to 1 (full right): the channel on
// the opposite side of the pan is attenuated towards 0; the pan-side
// channel is never attenuated above unity.
func panMultipliers(p float64) (left, right int32) {
	if p > 1 {
		p = 1
	}
	if p < -1 {
		p = -1
	}
	if 1-p < 1+p {
		left = int32(math.Round((1 - p) / (1 + p) * panMultCenter))
		right = panMultCenter
	} else {
		left = panMultCenter
		right = int32(math.Round((1 + p) / (1 - p) * panMultCenter))
	}
	return left, right
}

// panLinear maps a pan position -1..1 to the 0..256 linear scale used
// when spreading a mono source across the stereo output.
func panLinear(p float64) int32 {
	if p > 1 {
		p = 1
	}
	if p < -1 {
		p = -1
	}
	return int32(math.Round((p + 1) / 2 * panMultCenter))
}

// effectiveVolume combines a channel's own Q0.24 volume with the
// mixer-wide base volume multiplier, both Q0.24, into a single Q0.24
// gain. The combined gain saturates at the int32 ceiling (a base of 15
// on a channel at 127 would otherwise overflow).
func effectiveVolume(base, channel int32) int32 {
	const shift = VolumeBits
	round := int64(1) << (shift - 1)
	v := (int64(base)*int64(channel) + round) >> shift
	if v > math.MaxInt32 {
		v = math.MaxInt32
	}
	return int32(v)
}

func clampSample(acc int64) int16 {
	if acc > 32767 {
		return 32767
	}
	if acc < -32768 {
		return -32768
	}
	return int16(acc)
}

func advanceFade(volume, fadeRate, fadeTarget int32, samples int) (newVolume, newFadeRate int32) {
	if fadeRate == 0 {
		return volume, 0
	}
	next := int64(volume) + int64(fadeRate)*int64(samples)
	if fadeRate > 0 {
		if next >= int64(fadeTarget) {
			return fadeTarget, 0
		}
	} else {
		if next <= int64(fadeTarget) {
			return fadeTarget, 0
		}
	}
	return int32(next), fadeRate
}
