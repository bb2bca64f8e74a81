// Package animate turns a placement and a frame counter into the visual
// parameters of one render tick.
//
// Every function here is pure: the only inputs are the placement (its seed,
// index and cached base angle) and the frame number, so rendering frame N
// twice, or after a reload of the same dataset, gives the same picture.
package animate

import (
	"math"

	"github.com/matzehuels/hexgrid/pkg/layout"
)

// Animation constants, per frame and per item index.
const (
	hueStep = 37

	pulseRate      = 0.04
	pulseIndexStep = 0.6

	brightnessBase  = 80.0
	brightnessSwing = 15.0

	saturationBase  = 85.0
	saturationSwing = 10.0
	saturationPhase = 2.0

	floatRate      = 0.05
	floatIndexStep = 0.3
	floatAmplitude = 4.0

	wobbleRate      = 0.05
	wobbleAmplitude = 0.25
)

// Visual holds the animated parameters of one hexagon for one frame.
// Hue is in degrees [0, 360); Saturation and Brightness are in [0, 100].
// Rotation is in radians and Offset is added to the baseline y.
type Visual struct {
	Hue        float64
	Saturation float64
	Brightness float64
	Rotation   float64
	Offset     float64
}

// Hue returns the fixed hue of a seed.
func Hue(seed uint32) float64 {
	return float64(uint64(seed) * hueStep % 360)
}

// Compute returns the visual parameters for an item with the given seed,
// base angle and sequence index at frame.
func Compute(seed uint32, baseAngle float64, index, frame int) Visual {
	f, i := float64(frame), float64(index)
	t := f*pulseRate + i*pulseIndexStep

	return Visual{
		Hue:        Hue(seed),
		Brightness: brightnessBase + math.Sin(t)*brightnessSwing,
		Saturation: saturationBase + math.Sin(t+saturationPhase)*saturationSwing,
		Offset:     math.Sin(f*floatRate+i*floatIndexStep) * floatAmplitude,
		Rotation:   baseAngle + math.Sin(f*wobbleRate+i)*wobbleAmplitude,
	}
}

// At returns the visual parameters of p at frame, using the base angle
// cached on the placement.
func At(p layout.Placement, frame int) Visual {
	return Compute(p.Seed, p.BaseAngle, p.Index, frame)
}
