// Package params synthesizes encoder parameter strings from normalized
// HDR metadata.
package params

import (
	"fmt"
	"strings"

	"github.com/colorbars/hdrtool/internal/errors"
	"github.com/colorbars/hdrtool/internal/hdr"
)

// Params holds the three encoder parameter strings built from one stream's
// metadata. Each is a ready-to-use x265-params / svtav1-params / aom-params
// style fragment.
type Params struct {
	X265   string
	SvtAv1 string
	Libaom string
}

type paramKV struct {
	key   string
	value string
}

// builder accumulates key=value pairs and joins them in insertion order
// with the colon separator all three target encoders use.
type builder struct {
	params []paramKV
}

func (b *builder) add(key, value string) {
	b.params = append(b.params, paramKV{key, value})
}

func (b *builder) build() string {
	var parts []string
	for _, p := range b.params {
		parts = append(parts, fmt.Sprintf("%s=%s", p.key, p.value))
	}
	return strings.Join(parts, ":")
}

// Synthesize produces the three encoder parameter strings for the given
// color description and normalized HDR values. The color segment is always
// emitted, passing the parsed values through verbatim, "unknown" sentinel
// included. The mastering-display and content-light segments are omitted
// entirely when the corresponding side data was absent.
//
// Validation happened upstream; the only error here is the defensive
// luminance ordering check, which signals a normalizer defect.
func Synthesize(color hdr.ColorDescription, norm *hdr.NormalizedHDRValues) (*Params, error) {
	var mastering string
	if md := norm.MasteringDisplay; md != nil {
		if md.MaxLuminance < md.MinLuminance {
			return nil, errors.NewInvariantViolationError(fmt.Sprintf(
				"normalized max luminance %d below min luminance %d", md.MaxLuminance, md.MinLuminance))
		}
		mastering = masteringSegment(md)
	}

	return &Params{
		X265:   x265Params(color, mastering, norm.ContentLightLevel),
		SvtAv1: av1Params(color, mastering, norm.ContentLightLevel),
		Libaom: av1Params(color, mastering, norm.ContentLightLevel),
	}, nil
}

// masteringSegment renders the shared G/B/R/WP/L layout. Group order and
// the max-before-min luminance order are fixed by the encoder CLI grammars.
func masteringSegment(md *hdr.ScaledMasteringDisplay) string {
	return fmt.Sprintf("G(%d,%d)B(%d,%d)R(%d,%d)WP(%d,%d)L(%d,%d)",
		md.Green.X, md.Green.Y,
		md.Blue.X, md.Blue.Y,
		md.Red.X, md.Red.Y,
		md.WhitePoint.X, md.WhitePoint.Y,
		md.MaxLuminance, md.MinLuminance)
}

func x265Params(color hdr.ColorDescription, mastering string, cll *hdr.ContentLightLevel) string {
	b := &builder{}
	b.add("colorprim", color.Primaries)
	b.add("transfer", color.Transfer)
	b.add("colormatrix", color.Matrix)
	if mastering != "" {
		b.add("master-display", mastering)
	}
	if cll != nil {
		b.add("max-cll", fmt.Sprintf("%d,%d", cll.MaxCLL, cll.MaxFALL))
	}
	return b.build()
}

// av1Params covers both SVT-AV1 and libaom-AV1, which share flag names and
// layout for the segments emitted here.
func av1Params(color hdr.ColorDescription, mastering string, cll *hdr.ContentLightLevel) string {
	b := &builder{}
	b.add("color-primaries", color.Primaries)
	b.add("transfer-characteristics", color.Transfer)
	b.add("matrix-coefficients", color.Matrix)
	if mastering != "" {
		b.add("mastering-display", mastering)
	}
	if cll != nil {
		b.add("content-light", fmt.Sprintf("%d,%d", cll.MaxCLL, cll.MaxFALL))
	}
	return b.build()
}

// FFmpegColorOptions renders the stream's color description as FFmpeg
// command-line options, for display alongside the encoder strings.
func FFmpegColorOptions(color hdr.ColorDescription) string {
	return fmt.Sprintf("-pix_fmt %s -colorspace %s -color_trc %s -color_primaries %s",
		color.PixelFormat, color.Matrix, color.Transfer, color.Primaries)
}
