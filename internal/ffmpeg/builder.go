package ffmpeg

import (
	"strconv"

	"github.com/reelpress/reelpress/internal/planner"
)

// silentSource is the lavfi input synthesizing a silent stereo track at the
// canonical sample rate. Used wherever a real audio stream is missing or
// unusable.
const silentSource = "anullsrc=channel_layout=stereo:sample_rate=44100"

// buildResizeArgs constructs the argument list for one resize attempt. With
// silent set, the source audio is ignored and a synthesized silent track is
// muxed instead.
func buildResizeArgs(plan *planner.ResizePlan, silent bool) []string {
	args := make([]string, 0, 40)

	// --- Preamble ---
	args = append(args, "-hide_banner", "-nostdin", "-y", "-loglevel", "error")

	// --- Inputs ---
	args = append(args, "-i", plan.InputPath)
	if silent {
		args = append(args, "-f", "lavfi", "-i", silentSource)
	}

	// --- Stream maps ---
	args = append(args, "-map", "0:v:0")
	if silent {
		args = append(args, "-map", "1:a:0")
	} else {
		args = append(args, "-map", "0:a:0")
	}

	// --- Video filter chain ---
	args = append(args, "-vf", plan.VideoFilter)

	// --- Codecs ---
	args = appendVideoCodec(args, plan.Quality)
	args = appendAudioCodec(args, plan.Quality.AudioBitrate)

	// Silent track is infinite; stop at video end.
	if silent {
		args = append(args, "-shortest")
	}

	// --- Container opts and output ---
	args = append(args, "-movflags", "+faststart")
	args = append(args, plan.OutputPath)

	return args
}

// buildNormalizeArgs constructs the argument list for one normalize
// attempt. The loudness chain applies only when real source audio is
// mapped; synthesized silence is already at target levels.
func buildNormalizeArgs(plan *planner.NormalizePlan, silent bool) []string {
	args := make([]string, 0, 44)

	// --- Preamble ---
	args = append(args, "-hide_banner", "-nostdin", "-y", "-loglevel", "error")

	// --- Inputs ---
	args = append(args, "-i", plan.InputPath)
	if silent {
		args = append(args, "-f", "lavfi", "-i", silentSource)
	}

	// --- Stream maps ---
	args = append(args, "-map", "0:v:0")
	if silent {
		args = append(args, "-map", "1:a:0")
	} else {
		args = append(args, "-map", "0:a:0")
	}

	// --- Filter chains ---
	args = append(args, "-vf", plan.VideoFilter)
	if !silent {
		args = append(args, "-af", plan.AudioFilter)
	}

	// --- Codecs ---
	args = appendVideoCodec(args, plan.Quality)
	args = appendAudioCodec(args, plan.Quality.AudioBitrate)

	if silent {
		args = append(args, "-shortest")
	}

	// --- Container opts and output ---
	args = append(args, "-movflags", "+faststart")
	args = append(args, plan.OutputPath)

	return args
}

// buildConcatArgs constructs the argument list for the stream-copy join of
// the normalized clips.
func buildConcatArgs(plan *planner.ConcatPlan) []string {
	args := make([]string, 0, 16)

	// --- Preamble ---
	args = append(args, "-hide_banner", "-nostdin", "-y", "-loglevel", "error")

	// --- Demuxer input ---
	args = append(args, "-f", "concat", "-safe", "0", "-i", plan.ListPath)

	// --- Stream copy, no re-encode ---
	args = append(args, "-c", "copy")

	// --- Container opts and output ---
	args = append(args, "-movflags", "+faststart")
	args = append(args, plan.OutputPath)

	return args
}

// appendVideoCodec adds the H.264 output arguments shared by every encode
// path: High profile at level 4.1 with tier-resolved CRF and preset.
func appendVideoCodec(args []string, q planner.TierSettings) []string {
	return append(args,
		"-c:v", "libx264",
		"-profile:v", "high",
		"-level:v", "4.1",
		"-crf", strconv.Itoa(q.CRF),
		"-preset", q.Preset,
	)
}

// appendAudioCodec adds the AAC output arguments: stereo at the canonical
// sample rate with the tier-resolved bitrate.
func appendAudioCodec(args []string, bitrate string) []string {
	return append(args,
		"-c:a", "aac",
		"-b:a", bitrate,
		"-ar", "44100",
		"-ac", "2",
	)
}

