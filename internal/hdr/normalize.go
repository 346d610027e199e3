package hdr

import (
	"strconv"
	"strings"

	"github.com/colorbars/hdrtool/internal/errors"
)

const (
	// ChromaticityScale is the CIE 1931 integer convention: coordinates are
	// expressed as value × 50000.
	ChromaticityScale int64 = 50000

	// LuminanceScale is the SMPTE ST 2086 integer convention: cd/m² values
	// are expressed as value × 10000.
	LuminanceScale int64 = 10000
)

// Normalize converts the raw rational fields of meta into the scaled
// integer representation used by encoder command lines. Rationals are
// evaluated with exact integer arithmetic and rounded half-up at the end;
// intermediate floating point would drift on denominators that do not
// divide the scale factor evenly.
//
// Optional groups absent from meta remain nil in the result.
func Normalize(meta *StreamMetadata) (*NormalizedHDRValues, error) {
	norm := &NormalizedHDRValues{}

	if md := meta.MasteringDisplay; md != nil {
		scaled, err := normalizeMasteringDisplay(md)
		if err != nil {
			return nil, err
		}
		norm.MasteringDisplay = scaled
	}

	// CLL and FALL are already plain integer nits.
	if cll := meta.ContentLightLevel; cll != nil {
		norm.ContentLightLevel = &ContentLightLevel{
			MaxCLL:  cll.MaxCLL,
			MaxFALL: cll.MaxFALL,
		}
	}

	return norm, nil
}

func normalizeMasteringDisplay(md *MasteringDisplay) (*ScaledMasteringDisplay, error) {
	scaled := &ScaledMasteringDisplay{}

	coords := []struct {
		field string
		raw   Chromaticity
		dst   *ScaledChromaticity
	}{
		{"red", md.Red, &scaled.Red},
		{"green", md.Green, &scaled.Green},
		{"blue", md.Blue, &scaled.Blue},
		{"white_point", md.WhitePoint, &scaled.WhitePoint},
	}

	for _, c := range coords {
		x, err := scaleChromaticity(c.field+"_x", c.raw.X)
		if err != nil {
			return nil, err
		}
		y, err := scaleChromaticity(c.field+"_y", c.raw.Y)
		if err != nil {
			return nil, err
		}
		c.dst.X = x
		c.dst.Y = y
	}

	maxLum, err := scaleRational("max_luminance", md.MaxLuminance, LuminanceScale)
	if err != nil {
		return nil, err
	}
	minLum, err := scaleRational("min_luminance", md.MinLuminance, LuminanceScale)
	if err != nil {
		return nil, err
	}
	scaled.MaxLuminance = maxLum
	scaled.MinLuminance = minLum

	return scaled, nil
}

// scaleChromaticity scales a chromaticity rational and enforces that the
// result lands in the valid 0-50000 coordinate range.
func scaleChromaticity(field, raw string) (int64, error) {
	v, err := scaleRational(field, raw, ChromaticityScale)
	if err != nil {
		return 0, err
	}
	if v > ChromaticityScale {
		return 0, errors.NewInvalidRationalError(field, raw)
	}
	return v, nil
}

// scaleRational evaluates a "numerator/denominator" string times scale,
// rounded half-up. Negative components and zero denominators are rejected.
func scaleRational(field, raw string, scale int64) (int64, error) {
	num, den, err := parseRational(raw)
	if err != nil {
		return 0, errors.NewInvalidRationalError(field, raw)
	}
	return (num*scale + den/2) / den, nil
}

func parseRational(raw string) (num, den int64, err error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return 0, 0, strconv.ErrSyntax
	}
	num, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	den, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	if num < 0 || den <= 0 {
		return 0, 0, strconv.ErrRange
	}
	return num, den, nil
}
