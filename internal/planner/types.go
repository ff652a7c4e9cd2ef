package planner

import "errors"

// Tier selects the speed/quality tradeoff for merge encodes.
type Tier string

const (
	TierDraft Tier = "draft" // Fast preview encodes.
	TierHigh  Tier = "high"  // Publish quality (default).
)

// Validate checks that the tier holds a known value.
func (t Tier) Validate() error {
	switch t {
	case TierDraft, TierHigh:
		return nil
	}
	return errors.New("invalid quality tier (use 'draft' or 'high')")
}

// Resolution selects the output resolution cap for merges.
type Resolution string

const (
	ResolutionOriginal Resolution = "original" // Keep the first clip's dimensions.
	Resolution720p     Resolution = "720p"     // Cap at 1280x720 (720x1280 vertical).
	Resolution1080p    Resolution = "1080p"    // Cap at 1920x1080 (1080x1920 vertical).
)

// Validate checks that the resolution holds a known value.
func (r Resolution) Validate() error {
	switch r {
	case ResolutionOriginal, Resolution720p, Resolution1080p:
		return nil
	}
	return errors.New("invalid resolution (use 'original', '720p', or '1080p')")
}

// ResizePlan holds the complete set of decisions for an aspect-fill resize
// of a single clip. Produced by BuildResizePlan and consumed by the ffmpeg
// package to construct command arguments.
type ResizePlan struct {
	InputPath  string
	OutputPath string

	Width  int
	Height int

	// VideoFilter is the comma-joined fill chain (scale to cover, center
	// crop, pixel format).
	VideoFilter string

	// Quality is fixed for resizes; there is no tier choice on this path.
	Quality TierSettings
}

// NormalizePlan holds the decisions for converting one clip to the shared
// canonical form that makes stream-copy concatenation possible.
type NormalizePlan struct {
	InputPath  string
	OutputPath string

	Width  int
	Height int

	// HasAudio mirrors the probe result and picks the primary attempt
	// shape: real audio through the loudness chain, or synthesized
	// silence.
	HasAudio bool

	// VideoFilter is the comma-joined fit chain (scale to fit, centered
	// pad, square pixels, constant frame rate, pixel format).
	VideoFilter string

	// AudioFilter is the loudness normalization chain. Applied only when
	// real source audio is mapped.
	AudioFilter string

	Quality TierSettings
}

// ConcatPlan holds the decisions for the final stream-copy concatenation.
type ConcatPlan struct {
	// ListPath is the demuxer list file referencing the normalized clips
	// in order.
	ListPath   string
	OutputPath string
}
