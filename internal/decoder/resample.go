package decoder

// resampleBufFrames is the size (in frames) of the resample staging
// buffer, refilled from the back-end whenever the read cursor reaches its
// end.
const resampleBufFrames = 1024

func (in *Instance) ensureResampleBuf() {
	if in.resampleBuf == nil {
		in.resampleBuf = make([]int16, resampleBufFrames*in.channels)
	}
}

// refillResampleBuf pulls the next chunk of native-rate PCM from the
// back-end. Any loop rewind the back-end reports for this chunk is
// credited to resampleLoopOfs, to be spent against samplesGotten as the
// buffer is consumed (see resampleStep).
func (in *Instance) refillResampleBuf() {
	in.ensureResampleBuf()
	var loopOffset int64
	n, err := in.backend.GetPCM(in.resampleBuf, &loopOffset)
	in.resampleBufValid = n
	in.resamplePos = 0
	in.resampleLoopOfs += loopOffset
	if n == 0 || err != nil {
		in.resampleEOF = true
	}
}

// frameAt returns the sample pair at the given index into the resample
// buffer, or silence past the buffer's valid region.
func (in *Instance) frameAt(pos int64) (int16, int16) {
	if pos < 0 || pos >= int64(in.resampleBufValid) {
		return 0, 0
	}
	idx := pos * int64(in.channels)
	if in.channels == 1 {
		return in.resampleBuf[idx], in.resampleBuf[idx]
	}
	return in.resampleBuf[idx], in.resampleBuf[idx+1]
}

// interpSample linearly interpolates between the previous and current
// decode-rate sample by the fractional position within the output period.
func interpSample(last, cur int16, posFrac int64, outputFreq int) int16 {
	if outputFreq <= 0 {
		return cur
	}
	diff := int64(cur) - int64(last)
	return int16(int64(last) + diff*posFrac/int64(outputFreq))
}

// resampleStep produces one output-rate frame. ok is false
// once the trailing interpolated sample (against implicit zero) has
// already been emitted and the stream is fully exhausted.
func (in *Instance) resampleStep() (int16, int16, bool) {
	if in.resampleBuf == nil && !in.resampleEOF {
		in.refillResampleBuf()
	}
	if in.hardStop {
		return 0, 0, false
	}

	curL, curR := in.frameAt(in.resamplePos)
	atEOF := in.resampleEOF && in.resamplePos >= int64(in.resampleBufValid)

	var outL, outR int16
	if in.doInterpolate {
		outL = interpSample(in.lastL, curL, in.posFrac, in.outputFreq)
		outR = interpSample(in.lastR, curR, in.posFrac, in.outputFreq)
		if atEOF && in.lastL == 0 && in.lastR == 0 {
			// The one-cycle-delayed trailing sample has already been
			// produced against an implicit zero; stop after this call.
			in.hardStop = true
		}
	} else {
		if atEOF {
			in.hardStop = true
			return 0, 0, false
		}
		outL, outR = curL, curR
	}

	in.posFrac += int64(in.decodeFreq)
	for in.posFrac >= int64(in.outputFreq) {
		if in.doInterpolate {
			in.lastL, in.lastR = curL, curR
		}
		in.posFrac -= int64(in.outputFreq)
		in.resamplePos++
		in.samplesGotten++
		if in.loopLength > 0 {
			if in.resampleLoopOfs >= in.loopLength {
				in.resampleLoopOfs -= in.loopLength
				in.samplesGotten -= in.loopLength
			}
		} else if in.resampleLoopOfs > 0 {
			// Whole-stream loop: the rewind size is the tail length the
			// back-end reported, not a fixed region.
			in.samplesGotten -= in.resampleLoopOfs
			in.resampleLoopOfs = 0
		}
		if in.resamplePos >= int64(in.resampleBufValid) && !in.resampleEOF {
			in.refillResampleBuf()
		}
		curL, curR = in.frameAt(in.resamplePos)
	}

	return outL, outR, true
}
