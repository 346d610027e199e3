package ffprobe

import (
	"fmt"

	"github.com/colorbars/hdrtool/internal/errors"
	"github.com/colorbars/hdrtool/internal/hdr"
)

// ExtractStreamMetadata selects the streamIndex-th video stream from the
// probe output and builds its typed metadata record. streamIndex counts
// video streams only, in probe order, independent of any audio or subtitle
// streams in between.
//
// Missing color fields default to the "unknown" sentinel. Absent side data
// leaves the optional groups nil; a side data entry of a recognized kind
// that is missing required sub-fields is a malformed metadata error.
func ExtractStreamMetadata(probe *Output, streamIndex int) (*hdr.StreamMetadata, error) {
	if streamIndex < 0 {
		return nil, errors.NewStreamNotFoundError(streamIndex, 0)
	}

	var stream *Stream
	videoCount := 0
	for i := range probe.Streams {
		if probe.Streams[i].CodecType != "video" {
			continue
		}
		if videoCount == streamIndex {
			stream = &probe.Streams[i]
		}
		videoCount++
	}
	if stream == nil {
		return nil, errors.NewStreamNotFoundError(streamIndex, videoCount)
	}

	meta := &hdr.StreamMetadata{
		Color: hdr.ColorDescription{
			Primaries:   defaultUnknown(stream.ColorPrimaries),
			Transfer:    defaultUnknown(stream.ColorTransfer),
			Matrix:      defaultUnknown(stream.ColorSpace),
			PixelFormat: defaultUnknown(stream.PixFmt),
		},
	}

	for i := range stream.SideDataList {
		sd := &stream.SideDataList[i]
		switch sd.SideDataType {
		case SideDataMasteringDisplay:
			md, err := extractMasteringDisplay(sd)
			if err != nil {
				return nil, err
			}
			meta.MasteringDisplay = md
		case SideDataContentLightLevel:
			cll, err := extractContentLightLevel(sd)
			if err != nil {
				return nil, err
			}
			meta.ContentLightLevel = cll
		}
	}

	return meta, nil
}

func defaultUnknown(s string) string {
	if s == "" {
		return hdr.Unknown
	}
	return s
}

func extractMasteringDisplay(sd *SideData) (*hdr.MasteringDisplay, error) {
	required := []struct {
		name  string
		value string
	}{
		{"red_x", sd.RedX},
		{"red_y", sd.RedY},
		{"green_x", sd.GreenX},
		{"green_y", sd.GreenY},
		{"blue_x", sd.BlueX},
		{"blue_y", sd.BlueY},
		{"white_point_x", sd.WhitePointX},
		{"white_point_y", sd.WhitePointY},
		{"min_luminance", sd.MinLuminance},
		{"max_luminance", sd.MaxLuminance},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, errors.NewMalformedMetadataError(fmt.Sprintf(
				"mastering display side data is missing %s", f.name))
		}
	}

	return &hdr.MasteringDisplay{
		Red:          hdr.Chromaticity{X: sd.RedX, Y: sd.RedY},
		Green:        hdr.Chromaticity{X: sd.GreenX, Y: sd.GreenY},
		Blue:         hdr.Chromaticity{X: sd.BlueX, Y: sd.BlueY},
		WhitePoint:   hdr.Chromaticity{X: sd.WhitePointX, Y: sd.WhitePointY},
		MinLuminance: sd.MinLuminance,
		MaxLuminance: sd.MaxLuminance,
	}, nil
}

func extractContentLightLevel(sd *SideData) (*hdr.ContentLightLevel, error) {
	if sd.MaxContent == nil {
		return nil, errors.NewMalformedMetadataError("content light level side data is missing max_content")
	}
	if sd.MaxAverage == nil {
		return nil, errors.NewMalformedMetadataError("content light level side data is missing max_average")
	}

	return &hdr.ContentLightLevel{
		MaxCLL:  *sd.MaxContent,
		MaxFALL: *sd.MaxAverage,
	}, nil
}
