package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	primvec "github.com/facebookincubator/go-primvec"
	"github.com/facebookincubator/go-primvec/dsp"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

const testPipeline = `
stages:
  - kind: highpass
    a: 1
    b: 0
  - kind: Normalize
`

func TestLoadPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPipeline), 0o644))

	p, err := LoadPipeline(path)
	require.NoError(t, err)
	assert.Equal(t, []Stage{{Kind: "highpass", A: 1}, {Kind: "Normalize"}}, p.Stages)

	chain, err := p.Processor()
	require.NoError(t, err)
	assert.Equal(t, dsp.Chain{dsp.HighPassSquare{CoefA: 1}, dsp.Normalizer{}}, chain)

	out := applyPipeline(chain, primvec.Of[float32](1, 2))
	assert.Equal(t, []float32{0.25, 1}, out.ToArray())

	_, err = LoadPipeline(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPipelineErrors(t *testing.T) {
	_, err := Pipeline{Stages: []Stage{{Kind: "lowpass"}}}.Processor()
	assert.ErrorContains(t, err, `unknown filter "lowpass"`)
	_, err = Pipeline{Stages: []Stage{{Kind: "envelope", Coef: 2}}}.Processor()
	assert.ErrorContains(t, err, "outside [0, 1]")

	chain, err := Pipeline{}.Processor()
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestEnvelopeChain(t *testing.T) {
	chain, err := envelopeChain(0.25)
	require.NoError(t, err)
	assert.Equal(t, dsp.Chain{dsp.EnvelopeAnalyzer{Coef: 0.25}}, chain)

	for _, coef := range []float32{2, -0.5, float32(math.NaN())} {
		_, err := envelopeChain(coef)
		assert.ErrorContains(t, err, "outside [0, 1]", "coef %g", coef)
	}
}

func TestParseHighPass(t *testing.T) {
	s, err := parseHighPass(" 0.5, 0.25")
	require.NoError(t, err)
	assert.Equal(t, Stage{Kind: "highpass", A: 0.5, B: 0.25}, s)

	for _, bad := range []string{"1", "1,2,3", "x,1", "1,y"} {
		_, err := parseHighPass(bad)
		assert.Error(t, err, bad)
	}
}

func TestReadSamples(t *testing.T) {
	v, err := readSamples(strings.NewReader("# header\n1\n\n  -2.5 \n3e1\n"))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -2.5, 30}, v.ToArray())

	_, err = readSamples(strings.NewReader("1\nnope\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestWriteOutput(t *testing.T) {
	v := primvec.Of[float32](0.5, -1)

	var text bytes.Buffer
	require.NoError(t, writeOutput(&text, "text", v))
	assert.Equal(t, "0.5\n-1\n", text.String())

	var js bytes.Buffer
	require.NoError(t, writeOutput(&js, "json", v))
	var fromJSON primvec.FloatVector
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.True(t, v.Equal(&fromJSON))

	var mp bytes.Buffer
	require.NoError(t, writeOutput(&mp, "msgpack", v))
	var fromMsgpack primvec.FloatVector
	require.NoError(t, msgpack.Unmarshal(mp.Bytes(), &fromMsgpack))
	assert.True(t, v.Equal(&fromMsgpack))

	var bin bytes.Buffer
	require.NoError(t, writeOutput(&bin, "bin", v))
	var fromBin primvec.FloatVector
	_, err := fromBin.ReadFrom(&bin)
	require.NoError(t, err)
	assert.True(t, v.Equal(&fromBin))

	assert.Error(t, writeOutput(&bin, "xml", v))
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.png")
	in := primvec.Of[float32](0, 1, 0, -1, 0)
	out := applyPipeline(dsp.Chain{dsp.EnvelopeAnalyzer{Coef: 0.5}}, in)
	require.NoError(t, savePlot(path, "test", in, out))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
