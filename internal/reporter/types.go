// Package reporter provides result reporting interfaces and implementations.
package reporter

// ProbeInfo describes the probe invocation about to run.
type ProbeInfo struct {
	InputFile   string
	StreamIndex int
	FFprobeBin  string
}

// StreamSummary describes the selected video stream's color metadata.
type StreamSummary struct {
	PixelFormat           string
	Primaries             string
	Transfer              string
	Matrix                string
	DynamicRange          string
	HasMasteringDisplay   bool
	HasContentLightLevel  bool
	MaxCLL                int
	MaxFALL               int
}

// ResultSummary contains the synthesized encoder parameter strings.
type ResultSummary struct {
	X265Params         string
	SvtAv1Params       string
	LibaomParams       string
	FFmpegColorOptions string
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Suggestion string
}
