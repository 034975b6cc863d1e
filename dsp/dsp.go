// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package dsp holds single pass, single feedback variable filters that
// run in place over a sample buffer
package dsp

import "math"

// Processor transforms a buffer of samples
type Processor interface {
	// ProcessInPlace overwrites buf with the processed samples
	ProcessInPlace(buf []float32)
	// Process returns a processed copy of in, leaving in untouched
	Process(in []float32) []float32
}

func processCopy(p Processor, in []float32) []float32 {
	out := make([]float32, len(in))
	copy(out, in)
	p.ProcessInPlace(out)
	return out
}

// HighPassSquare is a one pole high pass whose output is squared:
//
//	fb = a*x - b*fb
//	y  = fb*fb
type HighPassSquare struct {
	CoefA, CoefB float32
}

var _ Processor = HighPassSquare{}

func (f HighPassSquare) ProcessInPlace(buf []float32) {
	var feedback float32
	for i, x := range buf {
		feedback = f.CoefA*x - f.CoefB*feedback
		buf[i] = feedback * feedback
	}
}

func (f HighPassSquare) Process(in []float32) []float32 {
	return processCopy(f, in)
}

// EnvelopeAnalyzer follows the rms envelope of a signal:
//
//	fb = sqrt(x*x*(1-c) + c*fb)
//
// Coef close to 1 gives a slow envelope.
type EnvelopeAnalyzer struct {
	Coef float32
}

var _ Processor = EnvelopeAnalyzer{}

func (f EnvelopeAnalyzer) ProcessInPlace(buf []float32) {
	var feedback float32
	for i, x := range buf {
		feedback = float32(math.Sqrt(float64(x*x*(1-f.Coef) + f.Coef*feedback)))
		buf[i] = feedback
	}
}

func (f EnvelopeAnalyzer) Process(in []float32) []float32 {
	return processCopy(f, in)
}

// Normalizer scales a buffer so its largest sample is 1
type Normalizer struct{}

var _ Processor = Normalizer{}

func (Normalizer) ProcessInPlace(buf []float32) {
	NormalizeInPlace(buf)
}

func (n Normalizer) Process(in []float32) []float32 {
	return processCopy(n, in)
}

// NormalizeInPlace divides every sample by the maximum sample.  A buffer
// whose maximum is not positive is left as is.
func NormalizeInPlace(buf []float32) {
	var maximum float32
	for _, x := range buf {
		if x > maximum {
			maximum = x
		}
	}
	if maximum <= 0 {
		return
	}
	factor := 1 / maximum
	for i := range buf {
		buf[i] *= factor
	}
}

// Normalize returns a normalized copy of in
func Normalize(in []float32) []float32 {
	return processCopy(Normalizer{}, in)
}

// Chain runs each processor in turn
type Chain []Processor

var _ Processor = Chain(nil)

func (c Chain) ProcessInPlace(buf []float32) {
	for _, p := range c {
		p.ProcessInPlace(buf)
	}
}

func (c Chain) Process(in []float32) []float32 {
	return processCopy(c, in)
}
