// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	primvec "github.com/facebookincubator/go-primvec"
	"github.com/facebookincubator/go-primvec/dsp"

	"gopkg.in/yaml.v3"
)

// Stage configures one filter of a pipeline
type Stage struct {
	// Kind is one of highpass, envelope or normalize
	Kind string  `yaml:"kind"`
	A    float32 `yaml:"a,omitempty"`
	B    float32 `yaml:"b,omitempty"`
	Coef float32 `yaml:"coef,omitempty"`
}

// Pipeline is the yaml configuration accepted by --config
//
//	stages:
//	  - kind: highpass
//	    a: 0.95
//	    b: 0.5
//	  - kind: envelope
//	    coef: 0.99
//	  - kind: normalize
type Pipeline struct {
	Stages []Stage `yaml:"stages"`
}

// LoadPipeline reads a yaml pipeline description
func LoadPipeline(path string) (Pipeline, error) {
	var p Pipeline
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// Processor builds the filter chain described by the pipeline
func (p Pipeline) Processor() (dsp.Chain, error) {
	chain := make(dsp.Chain, 0, len(p.Stages))
	for i, s := range p.Stages {
		switch strings.ToLower(s.Kind) {
		case "highpass":
			chain = append(chain, dsp.HighPassSquare{CoefA: s.A, CoefB: s.B})
		case "envelope":
			if !(s.Coef >= 0 && s.Coef <= 1) {
				return nil, fmt.Errorf("stage %d: envelope coefficient %g outside [0, 1]", i, s.Coef)
			}
			chain = append(chain, dsp.EnvelopeAnalyzer{Coef: s.Coef})
		case "normalize":
			chain = append(chain, dsp.Normalizer{})
		default:
			return nil, fmt.Errorf("stage %d: unknown filter %q", i, s.Kind)
		}
	}
	return chain, nil
}

// envelopeChain builds a single envelope stage, checked like any
// configured stage
func envelopeChain(coef float32) (dsp.Chain, error) {
	return Pipeline{Stages: []Stage{{Kind: "envelope", Coef: coef}}}.Processor()
}

// parseHighPass parses the "a,b" form of --highpass
func parseHighPass(s string) (Stage, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Stage{}, fmt.Errorf("expected a,b coefficients, got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return Stage{}, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return Stage{}, err
	}
	return Stage{Kind: "highpass", A: float32(a), B: float32(b)}, nil
}

// readSamples reads one sample per line.  Blank lines and lines starting
// with # are skipped.
func readSamples(r io.Reader) (*primvec.FloatVector, error) {
	samples := primvec.New[float32]()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		x, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		samples.Push(float32(x))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// applyPipeline runs chain over a copy of samples
func applyPipeline(chain dsp.Chain, samples *primvec.FloatVector) *primvec.FloatVector {
	buf := samples.ToArray()
	chain.ProcessInPlace(buf)
	return primvec.Of(buf...)
}
