package domain

import (
	"math"
	"time"
)

const (
	fullTurn = 2 * math.Pi

	// MinTurns and MaxTurns bound the whole turns a spin adds before its random offset.
	MinTurns = 5
	MaxTurns = 10
)

// SliceAngle is the angular width of one of n equal slices.
func SliceAngle(n int) float64 {
	return fullTurn / float64(n)
}

// SpinPlan describes one animation from Start to Start+Total.
type SpinPlan struct {
	Start    float64
	Total    float64
	Duration time.Duration
}

// PlanSpin draws a total rotation of 5-10 full turns plus a random offset.
func PlanSpin(rng RNG, start float64, duration time.Duration) SpinPlan {
	turns := MinTurns + rng.Float64()*(MaxTurns-MinTurns)
	extra := rng.Float64() * fullTurn
	return SpinPlan{
		Start:    start,
		Total:    turns*fullTurn + extra,
		Duration: duration,
	}
}

// Progress returns elapsed/duration clamped to [0, 1].
func (p SpinPlan) Progress(elapsed time.Duration) float64 {
	if p.Duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(p.Duration))
}

// RotationAt returns the eased rotation and progress after elapsed.
func (p SpinPlan) RotationAt(elapsed time.Duration) (rotation, progress float64) {
	progress = p.Progress(elapsed)
	return p.Start + p.Total*EaseOutCubic(progress), progress
}

// EaseOutCubic maps linear progress to 1-(1-p)^3.
func EaseOutCubic(p float64) float64 {
	p = clamp01(p)
	return 1 - math.Pow(1-p, 3)
}

// NormalizeRotation maps rotation into [0, 2π), inverted so the fixed pointer
// reads slices in increasing order as the wheel turns.
func NormalizeRotation(rotation float64) float64 {
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return 0
	}
	n := math.Mod((fullTurn-math.Mod(rotation, fullTurn))+fullTurn, fullTurn)
	// Mod can round up to exactly 2π for tiny negative remainders.
	if n >= fullTurn {
		n = 0
	}
	return n
}

// ResolveIndex returns the slice under the pointer for a final rotation.
// The result is always in [0, n) for n > 0.
func ResolveIndex(rotation float64, n int) int {
	if n <= 0 {
		return 0
	}
	normalized := NormalizeRotation(rotation)
	idx := int(math.Floor(math.Mod(normalized/SliceAngle(n), float64(n))))
	if idx < 0 || idx >= n {
		return 0
	}
	return idx
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
