// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	primvec "github.com/facebookincubator/go-primvec"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v5"
)

var pipelineFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "input",
		Aliases: []string{"in", "i"},
		Usage:   "file of samples, one per line, to read from (default is stdin)",
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "yaml pipeline description; overrides the filter flags",
	},
	&cli.StringFlag{
		Name:  "highpass",
		Usage: "apply a squared high pass with coefficients `a,b`",
	},
	&cli.Float64Flag{
		Name:  "envelope",
		Usage: "apply an envelope follower with the given coefficient",
	},
	&cli.BoolFlag{
		Name:  "normalize",
		Usage: "normalize the output so its peak is 1",
	},
	&cli.IntFlag{
		Name:  "from",
		Usage: "first sample to process",
	},
	&cli.IntFlag{
		Name:  "to",
		Value: -1,
		Usage: "sample to stop before (default is the end)",
	},
}

func openInput(c *cli.Context) (io.ReadCloser, error) {
	if c.IsSet("input") {
		return os.Open(c.String("input"))
	}
	return io.NopCloser(os.Stdin), nil
}

// loadAndFilter reads the requested sample range and runs the
// configured pipeline over it
func loadAndFilter(c *cli.Context) (input, output *primvec.FloatVector, err error) {
	var p Pipeline
	if c.IsSet("config") {
		if p, err = LoadPipeline(c.String("config")); err != nil {
			return
		}
	} else {
		if c.IsSet("highpass") {
			s, err := parseHighPass(c.String("highpass"))
			if err != nil {
				return nil, nil, fmt.Errorf("--highpass: %w", err)
			}
			p.Stages = append(p.Stages, s)
		}
		if c.IsSet("envelope") {
			p.Stages = append(p.Stages, Stage{Kind: "envelope", Coef: float32(c.Float64("envelope"))})
		}
		if c.Bool("normalize") {
			p.Stages = append(p.Stages, Stage{Kind: "normalize"})
		}
	}
	chain, err := p.Processor()
	if err != nil {
		return
	}

	r, err := openInput(c)
	if err != nil {
		return
	}
	defer r.Close()
	start := time.Now()
	input, err = readSamples(r)
	if err != nil {
		return
	}
	to := c.Int("to")
	if to < 0 {
		to = input.Len()
	}
	if input, err = input.SubList(c.Int("from"), to); err != nil {
		return nil, nil, fmt.Errorf("selecting samples: %w", err)
	}
	log.Printf("read %d samples in %s", input.Len(), time.Since(start))

	start = time.Now()
	output = applyPipeline(chain, input)
	log.Printf("ran %d filter stages in %s", len(chain), time.Since(start))
	return
}

func writeOutput(w io.Writer, format string, v *primvec.FloatVector) (err error) {
	switch format {
	case "text":
		for x := range v.Values() {
			if _, err = fmt.Fprintln(w, strconv.FormatFloat(float64(x), 'g', -1, 32)); err != nil {
				return
			}
		}
	case "json":
		err = json.NewEncoder(w).Encode(v)
	case "msgpack":
		err = msgpack.NewEncoder(w).Encode(v)
	case "bin":
		_, err = v.WriteTo(w)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	return
}

func main() {
	app := &cli.App{
		Name:  "primvec",
		Usage: "filter sample streams held in primitive vectors",
		Commands: []*cli.Command{
			{
				Name:  "filter",
				Usage: "run a filter pipeline over a list of samples",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"out", "o"},
						Usage:   "name of the file to write the samples to (default is stdout)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "output format: text, json, msgpack or bin",
					},
				}, pipelineFlags...),
				Action: func(c *cli.Context) error {
					if c.NArg() > 0 {
						return fmt.Errorf("unexpected command line arguments: %q", c.Args().Slice())
					}
					_, output, err := loadAndFilter(c)
					if err != nil {
						return err
					}
					if !c.IsSet("output") {
						return writeOutput(os.Stdout, c.String("format"), output)
					}
					path := c.String("output")
					if _, err := os.Stat(path); !os.IsNotExist(err) {
						return fmt.Errorf("refusing to over-write existing file: %s", path)
					}
					o, err := os.Create(path)
					if err != nil {
						return fmt.Errorf("error opening %s: %s", path, err)
					}
					defer o.Close()
					if err := writeOutput(o, c.String("format"), output); err != nil {
						return fmt.Errorf("error writing samples: %w", err)
					}
					log.Printf("wrote %d samples to %s", output.Len(), path)
					return nil
				},
			},
			{
				Name:  "plot",
				Usage: "draw the input and filtered samples to an image",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"out", "o"},
						Value:   "samples.png",
						Usage:   "image file to write; the extension picks the format",
					},
					&cli.StringFlag{
						Name:  "title",
						Value: "samples",
						Usage: "chart title",
					},
				}, pipelineFlags...),
				Action: func(c *cli.Context) error {
					input, output, err := loadAndFilter(c)
					if err != nil {
						return err
					}
					if err := savePlot(c.String("output"), c.String("title"), input, output); err != nil {
						return fmt.Errorf("plot: %w", err)
					}
					log.Printf("plotted %d samples to %s", input.Len(), c.String("output"))
					return nil
				},
			},
			{
				Name:  "describe",
				Usage: "read the header from a binary vector file and describe it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"in", "i"},
						Usage:   "file containing a vector",
					},
				},
				Action: func(c *cli.Context) error {
					h, err := primvec.ReadHeaderFromPath(c.String("i"))
					if err != nil {
						return fmt.Errorf("describe: can't read input file: %w", err)
					}
					fmt.Printf("Vector format version %d\n", h.Version)
					fmt.Printf("%d %s elements\n", h.Length, h.ElemKind())
					config := primvec.Config{InitialCapacity: int(h.Length)}
					config.ExplainIndent("  ", h.ElemKind())
					return nil
				},
			},
			{
				Name:      "envelope",
				Usage:     "print the envelope of the samples given as arguments",
				ArgsUsage: "sample...",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "coef",
						Value: 0.5,
						Usage: "envelope coefficient in [0, 1]",
					},
				},
				Action: func(c *cli.Context) error {
					samples := primvec.New[float32]()
					for _, arg := range c.Args().Slice() {
						x, err := strconv.ParseFloat(arg, 32)
						if err != nil {
							return fmt.Errorf("envelope: %w", err)
						}
						samples.Push(float32(x))
					}
					chain, err := envelopeChain(float32(c.Float64("coef")))
					if err != nil {
						return fmt.Errorf("envelope: %w", err)
					}
					return writeOutput(os.Stdout, "text", applyPipeline(chain, samples))
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
