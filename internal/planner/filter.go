package planner

import "fmt"

// FillFilter builds the video chain for the resize path: scale so the frame
// covers the target, center-crop the overflow, and force 4:2:0. Content is
// never distorted and never letterboxed; edges outside the target aspect
// are lost instead.
func FillFilter(width, height int) string {
	return fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d,format=yuv420p",
		width, height, width, height,
	)
}

// FitFilter builds the video chain for the normalize path: scale so the
// frame fits inside the target, pad the remainder with centered black bars,
// then pin sample aspect, frame rate, and pixel format so every normalized
// clip is concatenation-compatible.
func FitFilter(width, height int) string {
	return fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:black,setsar=1,fps=%d,format=yuv420p",
		width, height, width, height, outputFrameRate,
	)
}

// AudioNormalizeFilter builds the audio chain for the normalize path:
// resample to the shared rate, coerce layout and sample format, then
// normalize loudness to the streaming target.
func AudioNormalizeFilter() string {
	return fmt.Sprintf(
		"aresample=%d,aformat=sample_fmts=fltp:channel_layouts=stereo,loudnorm=I=%d:TP=%s:LRA=%d",
		outputSampleRate, loudnormIntegrated, loudnormTruePeak, loudnormRange,
	)
}

// Canonical output parameters shared by every encode path.
const (
	outputFrameRate  = 30
	outputSampleRate = 44100

	// EBU R128 loudness targets for streaming delivery.
	loudnormIntegrated = -16
	loudnormTruePeak   = "-1.5"
	loudnormRange      = 11
)
