package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Prober inspects media files with ffprobe.
type Prober struct {
	binary string
	logger zerolog.Logger
}

// NewProber returns a Prober invoking the given ffprobe binary.
func NewProber(binary string, logger zerolog.Logger) *Prober {
	return &Prober{binary: binary, logger: logger}
}

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result.
func (p *Prober) Probe(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("ffprobe %q: %w: %s", path, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	result, err := ParseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	p.logger.Debug().
		Str("path", path).
		Str("resolution", result.Resolution()).
		Float64("duration", result.Duration).
		Bool("audio", result.HasAudio).
		Msg("probed input")
	return result, nil
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
}

type ffprobeStream struct {
	Index        int            `json:"index"`
	CodecName    string         `json:"codec_name"`
	CodecType    string         `json:"codec_type"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	Duration     string         `json:"duration"`
	AvgFrameRate string         `json:"avg_frame_rate"`
	Disposition  map[string]int `json:"disposition"`
}

// --- Conversion from wire types to the domain type ---

func buildResult(raw *ffprobeOutput) *Result {
	r := &Result{
		Duration:   parseFloat(raw.Format.Duration),
		SizeBytes:  parseInt64(raw.Format.Size),
		FormatName: raw.Format.FormatName,
	}

	var primary *ffprobeStream
	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			// Attached pictures (cover art) are video streams but not
			// playable content.
			if s.Disposition["attached_pic"] == 1 {
				continue
			}
			if primary == nil {
				primary = s
			}
		case "audio":
			r.HasAudio = true
			if r.AudioCodec == "" {
				r.AudioCodec = s.CodecName
			}
		}
	}

	if primary != nil {
		r.Width = primary.Width
		r.Height = primary.Height
		r.VideoCodec = primary.CodecName
		r.FrameRate = primary.AvgFrameRate
		// Some containers report duration only on the stream.
		if r.Duration == 0 {
			r.Duration = parseFloat(primary.Duration)
		}
	}
	return r
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
