package filterfx

import (
	"errors"
	"math"
)

// ErrInvalidFlangeParams is returned by NewFlange when the requested
// parameters would overflow the fixed-point pipeline.
var ErrInvalidFlangeParams = errors.New("filterfx: invalid flange parameters")

const lutStep = 256

// Flange is a modulated delay line
// mixed 9:7 dry:wet.
type Flange struct {
	stereo bool
	freq   int

	delayBuf     []int32 // ring of one channel's history, interleaved if stereo
	delayBufLen  int
	writePointer int

	lut          []int64 // 16.16 fixed-point delay values
	periodSample int64

	phase int64
}

// NewFlange builds a flange filter over a signal of the given rate and
// channel layout. periodSeconds and depthSeconds are the modulation
// period and maximum delay in seconds.
func NewFlange(stereo bool, freq int, periodSeconds, depthSeconds float64) (*Flange, error) {
	if freq == 0 || periodSeconds <= 0 || depthSeconds < 0 {
		return nil, ErrInvalidFlangeParams
	}
	periodSamples := periodSeconds * float64(freq)
	depthSamples := depthSeconds * float64(freq)
	if periodSamples >= math.Pow(2, 32) || depthSamples >= math.Pow(2, 16) {
		return nil, ErrInvalidFlangeParams
	}

	bufLen := nextPow2(int(math.Ceil(depthSamples)))
	if bufLen == 0 {
		bufLen = 1
	}

	lutLen := int(math.Ceil(periodSamples/lutStep)) + 1
	lut := make([]int64, lutLen)
	depthFixed := int64(depthSamples * 65536)
	for i := range lut {
		phase := float64(i*lutStep) * 2 * math.Pi / periodSamples
		lut[i] = int64(float64(depthFixed) * (1 - math.Cos(phase)) / 2)
	}

	channels := 1
	if stereo {
		channels = 2
	}

	return &Flange{
		stereo:       stereo,
		freq:         freq,
		delayBuf:     make([]int32, bufLen*channels),
		delayBufLen:  bufLen,
		lut:          lut,
		periodSample: int64(periodSamples),
	}, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (f *Flange) Stereo() bool { return f.stereo }
func (f *Flange) Freq() int    { return f.freq }
func (f *Flange) Close()       {}

// Apply runs the flange effect over buf in place.
func (f *Flange) Apply(buf []int16) {
	channels := 1
	if f.stereo {
		channels = 2
	}
	frames := len(buf) / channels

	for i := 0; i < frames; i++ {
		lutIdx := int(f.phase / lutStep)
		frac := f.phase % lutStep
		if lutIdx+1 >= len(f.lut) {
			lutIdx = len(f.lut) - 2
			if lutIdx < 0 {
				lutIdx = 0
			}
			frac = 0
		}
		d0, d1 := f.lut[lutIdx], f.lut[lutIdx+1]
		delay := d0 + (d1-d0)*frac/lutStep

		delaySamples := int(delay >> 16)
		delayFrac := delay & 0xFFFF

		for ch := 0; ch < channels; ch++ {
			in := int64(buf[i*channels+ch])
			// The input enters the ring before the tap is read, so a zero
			// delay reproduces the input exactly. The write pointer moves
			// downward, which puts older samples at higher indices.
			f.delayBuf[f.writePointer*channels+ch] = int32(in)

			slotA := mod(f.writePointer+delaySamples, f.delayBufLen)
			slotB := mod(slotA+1, f.delayBufLen)
			a := f.delayBuf[slotA*channels+ch]
			b := f.delayBuf[slotB*channels+ch]
			delayed := int64(a) + (int64(b)-int64(a))*delayFrac/65536

			out := (9*in + 7*delayed) / 16
			buf[i*channels+ch] = clampSample(int(out))
		}

		f.writePointer = mod(f.writePointer-1, f.delayBufLen)
		f.phase++
		if f.periodSample > 0 {
			f.phase %= f.periodSample
		}
	}
}

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

func clampSample(v int) int16 {
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}
	return int16(v)
}
