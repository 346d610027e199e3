// Package ffprobe runs the external probing binary and parses its JSON
// output into typed stream metadata.
package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/colorbars/hdrtool/internal/errors"
)

// Side data type labels as reported by ffprobe.
const (
	SideDataMasteringDisplay  = "Mastering display metadata"
	SideDataContentLightLevel = "Content light level metadata"
)

// Output represents the JSON output from ffprobe.
type Output struct {
	Streams []Stream `json:"streams"`
}

// Stream is one probed stream with the color fields and side data this
// tool consumes.
type Stream struct {
	CodecType      string     `json:"codec_type"`
	CodecName      string     `json:"codec_name"`
	PixFmt         string     `json:"pix_fmt"`
	ColorPrimaries string     `json:"color_primaries"`
	ColorTransfer  string     `json:"color_transfer"`
	ColorSpace     string     `json:"color_space"`
	SideDataList   []SideData `json:"side_data_list"`
}

// SideData is one typed side data entry. The chromaticity and luminance
// fields are rational strings; the light level fields are pointers so a
// present-but-broken entry can be told apart from an absent one.
type SideData struct {
	SideDataType string `json:"side_data_type"`
	RedX         string `json:"red_x"`
	RedY         string `json:"red_y"`
	GreenX       string `json:"green_x"`
	GreenY       string `json:"green_y"`
	BlueX        string `json:"blue_x"`
	BlueY        string `json:"blue_y"`
	WhitePointX  string `json:"white_point_x"`
	WhitePointY  string `json:"white_point_y"`
	MinLuminance string `json:"min_luminance"`
	MaxLuminance string `json:"max_luminance"`
	MaxContent   *int   `json:"max_content"`
	MaxAverage   *int   `json:"max_average"`
}

// Args returns the ffprobe argument list used to probe inputPath.
// Exposed so callers can log the exact invocation.
func Args(inputPath string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "warning",
		"-select_streams", "v",
		"-print_format", "json",
		"-show_streams",
		"-show_entries", "stream=codec_type,codec_name,pix_fmt,color_space,color_primaries,color_transfer,side_data_list",
		"-i", inputPath,
	}
}

// Run executes the probing binary against inputPath and returns the parsed
// output. The subprocess inherits ctx for cancellation.
func Run(ctx context.Context, bin, inputPath string) (*Output, error) {
	cmd := exec.CommandContext(ctx, bin, Args(inputPath)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.WrapExecError(bin, err, strings.TrimSpace(stderr.String()))
	}

	return Parse(stdout.Bytes())
}

// Parse parses raw ffprobe JSON output.
func Parse(data []byte) (*Output, error) {
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.NewJSONParseError("failed to parse ffprobe output", err)
	}
	return &out, nil
}
