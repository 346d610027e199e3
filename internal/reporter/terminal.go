package reporter

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu      sync.Mutex
	spinner *progressbar.ProgressBar
	cyan    *color.Color
	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	bold    *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:   color.New(color.FgCyan, color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow, color.Bold),
		red:    color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
}

// printLabel prints a bold label with fixed width padding followed by a value.
// Width is applied to the plain text before styling to ensure proper alignment.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) finishSpinner() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner != nil {
		_ = r.spinner.Finish()
		fmt.Fprintln(os.Stderr)
		r.spinner = nil
	}
}

func (r *TerminalReporter) ProbeStarted(info ProbeInfo) {
	fmt.Println()
	_, _ = r.cyan.Println("INPUT")
	r.printLabel(9, "File:", info.InputFile)
	r.printLabel(9, "Stream:", fmt.Sprintf("%d", info.StreamIndex))
	r.printLabel(9, "Probe:", info.FFprobeBin)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.spinner = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Probing input"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
	)
	_ = r.spinner.RenderBlank()
}

func (r *TerminalReporter) StreamFound(summary StreamSummary) {
	r.finishSpinner()

	fmt.Println()
	_, _ = r.cyan.Println("STREAM")
	r.printLabel(16, "Pixel format:", summary.PixelFormat)
	r.printLabel(16, "Primaries:", summary.Primaries)
	r.printLabel(16, "Transfer:", summary.Transfer)
	r.printLabel(16, "Matrix:", summary.Matrix)
	r.printLabel(16, "Dynamic range:", summary.DynamicRange)
	if summary.HasContentLightLevel {
		r.printLabel(16, "Light level:", fmt.Sprintf("CLL %d nits, FALL %d nits", summary.MaxCLL, summary.MaxFALL))
	}
}

func (r *TerminalReporter) Result(summary ResultSummary) {
	r.finishSpinner()

	fmt.Println()
	_, _ = r.cyan.Println("ENCODER PARAMETERS")
	r.printLabel(12, "x265:", summary.X265Params)
	r.printLabel(12, "SVT-AV1:", summary.SvtAv1Params)
	r.printLabel(12, "libaom-AV1:", summary.LibaomParams)
	if summary.FFmpegColorOptions != "" {
		fmt.Println()
		_, _ = r.cyan.Println("FFMPEG COLOR OPTIONS")
		fmt.Printf("  %s\n", summary.FFmpegColorOptions)
	}
	fmt.Println()
	_, _ = r.green.Println("Done")
}

func (r *TerminalReporter) Warning(message string) {
	r.finishSpinner()
	_, _ = r.yellow.Printf("Warning: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishSpinner()
	_, _ = r.red.Fprintf(os.Stderr, "%s\n", err.Title)
	if err.Message != "" {
		fmt.Fprintf(os.Stderr, "  %s\n", err.Message)
	}
	if err.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "  Suggestion: %s\n", err.Suggestion)
	}
}
