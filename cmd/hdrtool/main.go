// Package main provides the CLI entry point for hdrtool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/colorbars/hdrtool/internal/config"
	"github.com/colorbars/hdrtool/internal/errors"
	"github.com/colorbars/hdrtool/internal/ffprobe"
	"github.com/colorbars/hdrtool/internal/hdr"
	"github.com/colorbars/hdrtool/internal/logging"
	"github.com/colorbars/hdrtool/internal/params"
	"github.com/colorbars/hdrtool/internal/reporter"
	"github.com/colorbars/hdrtool/internal/util"
)

const (
	appName    = "hdrtool"
	appVersion = "0.1.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.NewConfig("")

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Extract HDR static metadata and build encoder parameters",
		Long: `hdrtool reads a video stream's HDR10 static metadata (mastering
display chromaticity/luminance and content light levels) through ffprobe
and translates it into ready-to-use parameter strings for the x265,
SVT-AV1, and libaom-AV1 encoders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.InputPath, "input", "i", "", "video file to extract HDR metadata from")
	cmd.Flags().IntVarP(&cfg.StreamIndex, "stream", "s", config.DefaultStreamIndex, "video stream index in the input file, counting video streams only")
	cmd.Flags().StringVarP(&cfg.FFprobeBin, "ffprobe-bin", "e", config.DefaultFFprobeBin, "ffprobe binary to use")
	cmd.Flags().StringVarP(&cfg.LogDir, "log-dir", "l", "", "log directory (defaults to ./logs)")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVar(&cfg.NoLog, "no-log", false, "disable log file creation")
	cmd.Flags().BoolVar(&cfg.JSONOutput, "json", false, "emit NDJSON events instead of human-friendly text")
	_ = cmd.MarkFlagRequired("input")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	})

	return cmd
}

func runExtract(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	var rep reporter.Reporter = reporter.NewTerminalReporter()
	if cfg.JSONOutput {
		rep = reporter.NewJSONReporter()
	}

	if err := executeExtract(cfg, rep); err != nil {
		rep.Error(reporterError(err))
		return err
	}
	return nil
}

func executeExtract(cfg *config.Config, rep reporter.Reporter) error {
	inputPath, err := filepath.Abs(cfg.InputPath)
	if err != nil {
		return errors.NewPathError(fmt.Sprintf("invalid input path %s", cfg.InputPath))
	}
	if _, err := os.Stat(inputPath); err != nil {
		return errors.NewPathError(fmt.Sprintf("input file does not exist: %s", inputPath))
	}

	ffprobeBin, err := exec.LookPath(cfg.FFprobeBin)
	if err != nil {
		return errors.NewCommandStartError(cfg.FFprobeBin, err)
	}

	logDir := cfg.LogDir
	if logDir == "" {
		logDir = "logs"
	}
	logger, err := logging.Setup(logDir, cfg.Verbose, cfg.NoLog)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	rep.ProbeStarted(reporter.ProbeInfo{
		InputFile:   inputPath,
		StreamIndex: cfg.StreamIndex,
		FFprobeBin:  ffprobeBin,
	})

	logger.Info("Input file: %s", inputPath)
	logger.Info("Video stream index: %d", cfg.StreamIndex)
	logger.Debug("Probe command: %s", util.FormatCommand(ffprobeBin, ffprobe.Args(inputPath)))

	probe, err := ffprobe.Run(ctx, ffprobeBin, inputPath)
	if err != nil {
		logger.Error("Probe failed: %v", err)
		return err
	}

	meta, err := ffprobe.ExtractStreamMetadata(probe, cfg.StreamIndex)
	if err != nil {
		logger.Error("Metadata extraction failed: %v", err)
		return err
	}

	rep.StreamFound(streamSummary(meta))
	logger.Info("Color description: primaries=%s transfer=%s matrix=%s",
		meta.Color.Primaries, meta.Color.Transfer, meta.Color.Matrix)
	if !meta.IsHDR() {
		logger.Info("No HDR10 static metadata side data found, treating as SDR")
		rep.Warning("no HDR10 static metadata found; emitting color description only")
	}

	norm, err := hdr.Normalize(meta)
	if err != nil {
		logger.Error("Normalization failed: %v", err)
		return err
	}

	p, err := params.Synthesize(meta.Color, norm)
	if err != nil {
		logger.Error("Parameter synthesis failed: %v", err)
		return err
	}

	logger.Info("x265 params: %s", p.X265)
	logger.Info("SVT-AV1 params: %s", p.SvtAv1)
	logger.Info("libaom-AV1 params: %s", p.Libaom)

	rep.Result(reporter.ResultSummary{
		X265Params:         p.X265,
		SvtAv1Params:       p.SvtAv1,
		LibaomParams:       p.Libaom,
		FFmpegColorOptions: params.FFmpegColorOptions(meta.Color),
	})

	return nil
}

func streamSummary(meta *hdr.StreamMetadata) reporter.StreamSummary {
	summary := reporter.StreamSummary{
		PixelFormat:          meta.Color.PixelFormat,
		Primaries:            meta.Color.Primaries,
		Transfer:             meta.Color.Transfer,
		Matrix:               meta.Color.Matrix,
		DynamicRange:         "SDR",
		HasMasteringDisplay:  meta.MasteringDisplay != nil,
		HasContentLightLevel: meta.ContentLightLevel != nil,
	}
	if meta.IsHDR() {
		summary.DynamicRange = "HDR10"
	}
	if cll := meta.ContentLightLevel; cll != nil {
		summary.MaxCLL = cll.MaxCLL
		summary.MaxFALL = cll.MaxFALL
	}
	return summary
}

func reporterError(err error) reporter.ReporterError {
	re := reporter.ReporterError{
		Title:   "Extraction failed",
		Message: err.Error(),
	}
	switch {
	case errors.IsKind(err, errors.KindCommand):
		re.Suggestion = "check that ffprobe is installed, or point at a binary with -e"
	case errors.IsStreamNotFound(err):
		re.Suggestion = "list the file's video streams and pick a valid index with -s"
	case errors.IsMalformedMetadata(err):
		re.Suggestion = "the source's HDR side data is incomplete; re-probe with a newer ffprobe"
	}
	return re
}
