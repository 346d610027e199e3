package hdr

import (
	"testing"

	"github.com/colorbars/hdrtool/internal/errors"
)

func TestScaleRational(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		scale   int64
		want    int64
		wantErr bool
	}{
		{
			name:  "chromaticity already in 50000 scale",
			raw:   "25000/50000",
			scale: ChromaticityScale,
			want:  25000,
		},
		{
			name:  "simplified chromaticity expands back out",
			raw:   "17/25",
			scale: ChromaticityScale,
			want:  34000,
		},
		{
			name:  "luminance in 10000 scale",
			raw:   "10000000/10000",
			scale: LuminanceScale,
			want:  10000000,
		},
		{
			name:  "min luminance fraction",
			raw:   "50/10000",
			scale: LuminanceScale,
			want:  50,
		},
		{
			name:  "rounds half up on non-dividing denominator",
			raw:   "1/3",
			scale: ChromaticityScale,
			want:  16667,
		},
		{
			name:  "exact half rounds up",
			raw:   "1/100000",
			scale: ChromaticityScale,
			want:  1,
		},
		{
			name:  "zero numerator",
			raw:   "0/50000",
			scale: ChromaticityScale,
			want:  0,
		},
		{
			name:    "zero denominator",
			raw:     "100/0",
			scale:   ChromaticityScale,
			wantErr: true,
		},
		{
			name:    "negative numerator",
			raw:     "-1/50000",
			scale:   ChromaticityScale,
			wantErr: true,
		},
		{
			name:    "not a number",
			raw:     "a/50000",
			scale:   ChromaticityScale,
			wantErr: true,
		},
		{
			name:    "missing denominator",
			raw:     "34000",
			scale:   ChromaticityScale,
			wantErr: true,
		},
		{
			name:    "too many slashes",
			raw:     "1/2/3",
			scale:   ChromaticityScale,
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			scale:   ChromaticityScale,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scaleRational("test_field", tt.raw, tt.scale)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("scaleRational(%q) expected error, got %d", tt.raw, got)
				}
				if !errors.IsInvalidRational(err) {
					t.Errorf("error kind = %v, want KindInvalidRational", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("scaleRational(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("scaleRational(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestScaleChromaticityRange(t *testing.T) {
	// 2/1 scales to 100000, outside the CIE 1931 integer range.
	if _, err := scaleChromaticity("red_x", "2/1"); err == nil {
		t.Error("scaleChromaticity() expected error for out-of-range coordinate")
	}

	// 1/1 is the upper bound and must pass.
	v, err := scaleChromaticity("white_point_y", "1/1")
	if err != nil {
		t.Fatalf("scaleChromaticity(1/1) error = %v", err)
	}
	if v != 50000 {
		t.Errorf("scaleChromaticity(1/1) = %d, want 50000", v)
	}
}

func sampleMasteringDisplay() *MasteringDisplay {
	return &MasteringDisplay{
		Red:          Chromaticity{X: "34000/50000", Y: "16000/50000"},
		Green:        Chromaticity{X: "13250/50000", Y: "34500/50000"},
		Blue:         Chromaticity{X: "7500/50000", Y: "3000/50000"},
		WhitePoint:   Chromaticity{X: "15635/50000", Y: "16450/50000"},
		MaxLuminance: "10000000/10000",
		MinLuminance: "50/10000",
	}
}

func TestNormalizeFullMetadata(t *testing.T) {
	meta := &StreamMetadata{
		Color: ColorDescription{
			Primaries: "bt2020",
			Transfer:  "smpte2084",
			Matrix:    "bt2020nc",
		},
		MasteringDisplay:  sampleMasteringDisplay(),
		ContentLightLevel: &ContentLightLevel{MaxCLL: 1000, MaxFALL: 400},
	}

	norm, err := Normalize(meta)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	md := norm.MasteringDisplay
	if md == nil {
		t.Fatal("MasteringDisplay = nil, want populated")
	}
	if md.Red.X != 34000 || md.Red.Y != 16000 {
		t.Errorf("Red = (%d,%d), want (34000,16000)", md.Red.X, md.Red.Y)
	}
	if md.Green.X != 13250 || md.Green.Y != 34500 {
		t.Errorf("Green = (%d,%d), want (13250,34500)", md.Green.X, md.Green.Y)
	}
	if md.Blue.X != 7500 || md.Blue.Y != 3000 {
		t.Errorf("Blue = (%d,%d), want (7500,3000)", md.Blue.X, md.Blue.Y)
	}
	if md.WhitePoint.X != 15635 || md.WhitePoint.Y != 16450 {
		t.Errorf("WhitePoint = (%d,%d), want (15635,16450)", md.WhitePoint.X, md.WhitePoint.Y)
	}
	if md.MaxLuminance != 10000000 {
		t.Errorf("MaxLuminance = %d, want 10000000", md.MaxLuminance)
	}
	if md.MinLuminance != 50 {
		t.Errorf("MinLuminance = %d, want 50", md.MinLuminance)
	}

	cll := norm.ContentLightLevel
	if cll == nil {
		t.Fatal("ContentLightLevel = nil, want populated")
	}
	if cll.MaxCLL != 1000 || cll.MaxFALL != 400 {
		t.Errorf("CLL = (%d,%d), want (1000,400)", cll.MaxCLL, cll.MaxFALL)
	}
}

func TestNormalizeSimplifiedRatios(t *testing.T) {
	// ffprobe sometimes reports simplified fractions; they must expand back
	// to the full-ratio integers.
	meta := &StreamMetadata{
		MasteringDisplay: &MasteringDisplay{
			Red:          Chromaticity{X: "17/25", Y: "8/25"},
			Green:        Chromaticity{X: "53/200", Y: "69/100"},
			Blue:         Chromaticity{X: "3/20", Y: "3/50"},
			WhitePoint:   Chromaticity{X: "3127/10000", Y: "329/1000"},
			MaxLuminance: "1000/1",
			MinLuminance: "1/200",
		},
	}

	norm, err := Normalize(meta)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	md := norm.MasteringDisplay
	if md.Red.X != 34000 || md.Red.Y != 16000 {
		t.Errorf("Red = (%d,%d), want (34000,16000)", md.Red.X, md.Red.Y)
	}
	if md.Green.X != 13250 || md.Green.Y != 34500 {
		t.Errorf("Green = (%d,%d), want (13250,34500)", md.Green.X, md.Green.Y)
	}
	if md.Blue.X != 7500 || md.Blue.Y != 3000 {
		t.Errorf("Blue = (%d,%d), want (7500,3000)", md.Blue.X, md.Blue.Y)
	}
	if md.WhitePoint.X != 15635 || md.WhitePoint.Y != 16450 {
		t.Errorf("WhitePoint = (%d,%d), want (15635,16450)", md.WhitePoint.X, md.WhitePoint.Y)
	}
	if md.MaxLuminance != 10000000 {
		t.Errorf("MaxLuminance = %d, want 10000000", md.MaxLuminance)
	}
	if md.MinLuminance != 50 {
		t.Errorf("MinLuminance = %d, want 50", md.MinLuminance)
	}
}

func TestNormalizeAbsentGroupsStayAbsent(t *testing.T) {
	meta := &StreamMetadata{
		Color: ColorDescription{Primaries: Unknown, Transfer: Unknown, Matrix: Unknown},
	}

	norm, err := Normalize(meta)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if norm.MasteringDisplay != nil {
		t.Error("MasteringDisplay should stay nil for SDR input")
	}
	if norm.ContentLightLevel != nil {
		t.Error("ContentLightLevel should stay nil when side data is absent")
	}
}

func TestNormalizeCLLOnly(t *testing.T) {
	meta := &StreamMetadata{
		ContentLightLevel: &ContentLightLevel{MaxCLL: 700, MaxFALL: 200},
	}

	norm, err := Normalize(meta)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if norm.MasteringDisplay != nil {
		t.Error("MasteringDisplay should stay nil")
	}
	if norm.ContentLightLevel == nil || norm.ContentLightLevel.MaxCLL != 700 {
		t.Errorf("ContentLightLevel = %+v, want MaxCLL 700", norm.ContentLightLevel)
	}
}

func TestNormalizeBadRationalSurfacesField(t *testing.T) {
	md := sampleMasteringDisplay()
	md.Blue.X = "garbage"
	meta := &StreamMetadata{MasteringDisplay: md}

	_, err := Normalize(meta)
	if err == nil {
		t.Fatal("Normalize() expected error for unparsable coordinate")
	}
	if !errors.IsInvalidRational(err) {
		t.Errorf("error kind = %v, want KindInvalidRational", err)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	meta := &StreamMetadata{
		MasteringDisplay:  sampleMasteringDisplay(),
		ContentLightLevel: &ContentLightLevel{MaxCLL: 1000, MaxFALL: 400},
	}

	first, err := Normalize(meta)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	second, err := Normalize(meta)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if *first.MasteringDisplay != *second.MasteringDisplay {
		t.Error("repeated normalization must be identical")
	}
	if *first.ContentLightLevel != *second.ContentLightLevel {
		t.Error("repeated normalization must be identical")
	}
}
