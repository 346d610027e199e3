package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs NDJSON events for machine consumption.
type JSONReporter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{writer: os.Stdout}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) ProbeStarted(info ProbeInfo) {
	r.write(map[string]interface{}{
		"type":         "probe_started",
		"input_file":   info.InputFile,
		"stream_index": info.StreamIndex,
		"ffprobe_bin":  info.FFprobeBin,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) StreamFound(summary StreamSummary) {
	event := map[string]interface{}{
		"type":                    "stream_found",
		"pixel_format":            summary.PixelFormat,
		"color_primaries":         summary.Primaries,
		"color_transfer":          summary.Transfer,
		"color_matrix":            summary.Matrix,
		"dynamic_range":           summary.DynamicRange,
		"has_mastering_display":   summary.HasMasteringDisplay,
		"has_content_light_level": summary.HasContentLightLevel,
		"timestamp":               r.timestamp(),
	}
	if summary.HasContentLightLevel {
		event["max_cll"] = summary.MaxCLL
		event["max_fall"] = summary.MaxFALL
	}
	r.write(event)
}

func (r *JSONReporter) Result(summary ResultSummary) {
	r.write(map[string]interface{}{
		"type":                 "result",
		"x265_params":          summary.X265Params,
		"svtav1_params":        summary.SvtAv1Params,
		"libaom_params":        summary.LibaomParams,
		"ffmpeg_color_options": summary.FFmpegColorOptions,
		"timestamp":            r.timestamp(),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"suggestion": err.Suggestion,
		"timestamp":  r.timestamp(),
	})
}
