// Package hdrtool provides a Go library for extracting HDR10 static
// metadata from video files and translating it into encoder parameters.
//
// hdrtool wraps ffprobe to read a stream's color description, mastering
// display metadata, and content light levels, then synthesizes
// ready-to-use parameter strings for x265, SVT-AV1, and libaom-AV1.
//
// Basic usage:
//
//	extractor, err := hdrtool.New(
//	    hdrtool.WithStreamIndex(0),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := extractor.Extract(ctx, "movie.mkv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("x265: %s\n", result.X265Params)
package hdrtool

import (
	"context"

	"github.com/colorbars/hdrtool/internal/config"
	"github.com/colorbars/hdrtool/internal/ffprobe"
	"github.com/colorbars/hdrtool/internal/hdr"
	"github.com/colorbars/hdrtool/internal/params"
)

// Re-export metadata types
type (
	StreamMetadata      = hdr.StreamMetadata
	ColorDescription    = hdr.ColorDescription
	MasteringDisplay    = hdr.MasteringDisplay
	ContentLightLevel   = hdr.ContentLightLevel
	NormalizedHDRValues = hdr.NormalizedHDRValues
)

// Unknown is the sentinel value for absent color description fields.
const Unknown = hdr.Unknown

// Extractor is the main entry point for metadata extraction.
type Extractor struct {
	config *config.Config
}

// Result contains the outcome of one extraction.
type Result struct {
	X265Params         string
	SvtAv1Params       string
	LibaomParams       string
	FFmpegColorOptions string
	Metadata           *StreamMetadata
}

// Option configures the extractor.
type Option func(*config.Config)

// New creates a new Extractor with the given options.
func New(opts ...Option) (*Extractor, error) {
	cfg := config.NewConfig(".")

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Extractor{config: cfg}, nil
}

// WithStreamIndex selects which video stream to extract from, counting
// video streams only. Defaults to 0.
func WithStreamIndex(index int) Option {
	return func(c *config.Config) {
		c.StreamIndex = index
	}
}

// WithFFprobeBin sets the probing binary to use. Defaults to "ffprobe"
// resolved from PATH.
func WithFFprobeBin(path string) Option {
	return func(c *config.Config) {
		c.FFprobeBin = path
	}
}

// Extract probes input with ffprobe and runs the extraction pipeline.
func (e *Extractor) Extract(ctx context.Context, input string) (*Result, error) {
	probe, err := ffprobe.Run(ctx, e.config.FFprobeBin, input)
	if err != nil {
		return nil, err
	}
	return pipeline(probe, e.config.StreamIndex)
}

// ExtractFromProbe runs the extraction pipeline on already-captured
// ffprobe JSON output, without spawning a subprocess.
func (e *Extractor) ExtractFromProbe(data []byte) (*Result, error) {
	probe, err := ffprobe.Parse(data)
	if err != nil {
		return nil, err
	}
	return pipeline(probe, e.config.StreamIndex)
}

// pipeline is the one-way metadata flow: typed parse, normalization,
// parameter synthesis.
func pipeline(probe *ffprobe.Output, streamIndex int) (*Result, error) {
	meta, err := ffprobe.ExtractStreamMetadata(probe, streamIndex)
	if err != nil {
		return nil, err
	}

	norm, err := hdr.Normalize(meta)
	if err != nil {
		return nil, err
	}

	p, err := params.Synthesize(meta.Color, norm)
	if err != nil {
		return nil, err
	}

	return &Result{
		X265Params:         p.X265,
		SvtAv1Params:       p.SvtAv1,
		LibaomParams:       p.Libaom,
		FFmpegColorOptions: params.FFmpegColorOptions(meta.Color),
		Metadata:           meta,
	}, nil
}
