// Package hdr provides the typed HDR10 static metadata model and the
// normalization of its raw rational fields into encoder-ready integers.
package hdr

// Unknown is the sentinel used when a color description field is absent
// from the probe output. Common for SDR content and not an error.
const Unknown = "unknown"

// ColorDescription holds the three color signalling fields of a video
// stream, plus the pixel format for display purposes.
type ColorDescription struct {
	Primaries   string
	Transfer    string
	Matrix      string
	PixelFormat string
}

// Chromaticity is a raw CIE 1931 coordinate pair as rational strings,
// e.g. x="34000/50000" y="16000/50000".
type Chromaticity struct {
	X string
	Y string
}

// MasteringDisplay holds the raw SMPTE ST 2086 mastering display metadata
// as reported by the probe: primary and white point chromaticities plus
// the display luminance range in cd/m².
type MasteringDisplay struct {
	Red          Chromaticity
	Green        Chromaticity
	Blue         Chromaticity
	WhitePoint   Chromaticity
	MinLuminance string
	MaxLuminance string
}

// ContentLightLevel holds the maximum content light level and maximum
// frame-average light level, both in nits.
type ContentLightLevel struct {
	MaxCLL  int
	MaxFALL int
}

// StreamMetadata is one video stream's color description with optional
// HDR10 static metadata. Nil optional fields mean the corresponding side
// data was not present in the source, which is a valid SDR outcome.
// Immutable once parsed.
type StreamMetadata struct {
	Color             ColorDescription
	MasteringDisplay  *MasteringDisplay
	ContentLightLevel *ContentLightLevel
}

// IsHDR reports whether any HDR10 static metadata side data was present.
func (m *StreamMetadata) IsHDR() bool {
	return m.MasteringDisplay != nil || m.ContentLightLevel != nil
}

// ScaledChromaticity is a chromaticity coordinate pair scaled to integers
// in the 0-50000 range.
type ScaledChromaticity struct {
	X int64
	Y int64
}

// ScaledMasteringDisplay holds mastering display values in the integer
// scales encoder CLIs expect: chromaticity ×50000, luminance ×10000.
type ScaledMasteringDisplay struct {
	Red          ScaledChromaticity
	Green        ScaledChromaticity
	Blue         ScaledChromaticity
	WhitePoint   ScaledChromaticity
	MaxLuminance int64
	MinLuminance int64
}

// NormalizedHDRValues is the normalized form of a stream's HDR metadata.
// Optional groups absent from the source stay nil here. Read-only once
// computed.
type NormalizedHDRValues struct {
	MasteringDisplay  *ScaledMasteringDisplay
	ContentLightLevel *ContentLightLevel
}
