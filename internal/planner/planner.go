package planner

import (
	"github.com/reelpress/reelpress/internal/probe"
)

// BuildResizePlan produces the decisions for an aspect-fill resize to exact
// target dimensions. The pipeline calls this once per resize job.
//
// Flow:
//  1. Pin target geometry (preset or custom, already validated upstream)
//  2. Build the fill filter chain (cover-scale, center crop, 4:2:0)
//  3. Fix quality: publish CRF, default preset, full-rate audio
func BuildResizePlan(inputPath, outputPath string, width, height int) *ResizePlan {
	return &ResizePlan{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		Width:       width,
		Height:      height,
		VideoFilter: FillFilter(width, height),
		Quality:     resizeSettings,
	}
}

// BuildNormalizePlan produces the decisions for converting one clip to the
// canonical merge form. The pipeline calls this once per clip with the
// geometry picked by VoteVertical and SelectDimensions.
//
// Flow:
//  1. Pin shared geometry from the merge decision
//  2. Build the fit filter chain (contain-scale, centered pad, SAR, fps, 4:2:0)
//  3. Build the loudness chain; whether it applies depends on HasAudio
//  4. Resolve tier parameters (draft or high)
func BuildNormalizePlan(inputPath, outputPath string, pr *probe.Result, width, height int, tier Tier) *NormalizePlan {
	return &NormalizePlan{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		Width:       width,
		Height:      height,
		HasAudio:    pr.HasAudio,
		VideoFilter: FitFilter(width, height),
		AudioFilter: AudioNormalizeFilter(),
		Quality:     SettingsForTier(tier),
	}
}

// BuildConcatPlan produces the decisions for the final stream-copy join of
// the normalized clips.
func BuildConcatPlan(listPath, outputPath string) *ConcatPlan {
	return &ConcatPlan{
		ListPath:   listPath,
		OutputPath: outputPath,
	}
}
