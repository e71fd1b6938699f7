// Package mp4probe reads video track metadata from MP4 containers.
//
// Demuxer-reported frame counts come from the container's nb_frames hint,
// which some muxers leave empty or wrong. For MP4 files the sample table
// carries the exact count, so the pipeline prefers this probe when the source
// extension says MP4.
package mp4probe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Info holds video track metadata read from the container.
type Info struct {
	// FrameCount is the exact number of video samples.
	FrameCount int

	// FPS is the average frame rate over the track duration.
	FPS float64

	// DurationSec is the video track duration in seconds.
	DurationSec float64

	// Codec names the video codec (h264, av1, hevc) or "unknown".
	Codec string
}

// ProbeFile reads video track metadata from the MP4 file at path.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader reads video track metadata from an io.ReadSeeker.
func ProbeReader(reader io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}

	if mp4File.IsFragmented() {
		// Fragmented files keep sample counts in the moofs; not worth
		// walking here since the demuxer handles them anyway.
		return Info{}, fmt.Errorf("fragmented mp4 not supported")
	}

	if mp4File.Moov == nil {
		return Info{}, fmt.Errorf("no moov box found")
	}

	for _, trak := range mp4File.Moov.Traks {
		info, ok := probeTrack(trak)
		if ok {
			return info, nil
		}
	}

	return Info{}, fmt.Errorf("no video track found")
}

func probeTrack(trak *mp4.TrakBox) (Info, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return Info{}, false
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsz == nil {
		return Info{}, false
	}
	if trak.Mdia.Mdhd == nil || trak.Mdia.Mdhd.Timescale == 0 {
		return Info{}, false
	}

	info := Info{
		FrameCount:  int(trak.Mdia.Minf.Stbl.Stsz.SampleNumber),
		DurationSec: float64(trak.Mdia.Mdhd.Duration) / float64(trak.Mdia.Mdhd.Timescale),
		Codec:       codecName(trak.Mdia.Minf.Stbl.Stsd),
	}
	if info.DurationSec > 0 {
		info.FPS = float64(info.FrameCount) / info.DurationSec
	}
	return info, info.FrameCount > 0
}

func codecName(stsd *mp4.StsdBox) string {
	if stsd == nil {
		return "unknown"
	}
	for _, child := range stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			return "h264"
		case "av01":
			return "av1"
		case "hvc1", "hev1":
			return "hevc"
		}
	}
	return "unknown"
}
