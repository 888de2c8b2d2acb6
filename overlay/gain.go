// SPDX-License-Identifier: EPL-2.0

package overlay

import (
	"math"

	"github.com/ik5/overdub/audio"
	"gonum.org/v1/gonum/floats"
)

// DBToGain converts a decibel delta to a linear amplitude factor.
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// GainToDB converts a linear amplitude factor to decibels.
func GainToDB(gain float64) float64 {
	return 20 * math.Log10(gain)
}

// Gain returns a copy of buf with every sample scaled by db decibels.
// Samples are not clipped.
func Gain(buf audio.Buffer, db float64) audio.Buffer {
	out := buf.Clone()
	if db != 0 {
		floats.Scale(DBToGain(db), out.Samples)
	}

	return out
}

// Peak is the largest absolute sample value in buf.
func Peak(buf audio.Buffer) float64 {
	if len(buf.Samples) == 0 {
		return 0
	}
	return floats.Norm(buf.Samples, math.Inf(1))
}

// Normalize scales buf so its peak sits headroomDB below full scale.
// Silent buffers come back unchanged.
func Normalize(buf audio.Buffer, headroomDB float64) audio.Buffer {
	peak := Peak(buf)
	if peak == 0 {
		return buf
	}

	out := buf.Clone()
	floats.Scale(DBToGain(-headroomDB)/peak, out.Samples)

	return out
}
