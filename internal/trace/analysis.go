package trace

import (
	"fmt"
	"math"
)

// Result summarizes a replay
type Result struct {
	EventCount int
	Gestures   int // accepted begins
	Rejected   int // begins that hit no thumb
	Cancelled  int
	MoveCount  int // accepted moves
	MinStep    float64
	MaxStep    float64
	AvgStep    float64
}

// Analyze computes replay statistics. A step is the largest value change
// caused by one accepted move.
func Analyze(samples []Sample) *Result {
	result := &Result{EventCount: len(samples)}

	minStep := math.MaxFloat64
	maxStep := 0.0
	totalStep := 0.0

	for i, s := range samples {
		switch s.Type {
		case Begin:
			if s.Accepted {
				result.Gestures++
			} else {
				result.Rejected++
			}
		case Cancel:
			if s.Accepted {
				result.Cancelled++
			}
		case Move:
			if !s.Accepted || i == 0 {
				continue
			}
			prev := samples[i-1].Values
			step := math.Max(math.Abs(s.Values.Start-prev.Start), math.Abs(s.Values.End-prev.End))

			result.MoveCount++
			totalStep += step
			minStep = math.Min(minStep, step)
			maxStep = math.Max(maxStep, step)
		}
	}

	if result.MoveCount > 0 {
		result.MinStep = minStep
		result.MaxStep = maxStep
		result.AvgStep = totalStep / float64(result.MoveCount)
	}

	return result
}

// String formats the result for terminal output
func (r *Result) String() string {
	return fmt.Sprintf("%d events, %d gestures (%d rejected, %d cancelled), %d moves, step min %.6f max %.6f avg %.6f",
		r.EventCount, r.Gestures, r.Rejected, r.Cancelled, r.MoveCount, r.MinStep, r.MaxStep, r.AvgStep)
}
