package ffmpeg

import "github.com/reelpress/reelpress/internal/planner"

// Attempt is one engine invocation variant. Ladders are ordered; the
// pipeline runs each in sequence until one succeeds.
type Attempt struct {
	Name string
	Args []string
}

// Attempt names, stable for logs and error messages.
const (
	AttemptPrimary     = "primary"
	AttemptSilentAudio = "silent-audio"
	AttemptConcat      = "concat"
)

// ResizeAttempts builds the attempt ladder for a resize: the primary run
// maps the source audio; the fallback substitutes synthesized silence,
// which also covers sources with no audio stream at all.
func ResizeAttempts(plan *planner.ResizePlan) []Attempt {
	return []Attempt{
		{Name: AttemptPrimary, Args: buildResizeArgs(plan, false)},
		{Name: AttemptSilentAudio, Args: buildResizeArgs(plan, true)},
	}
}

// NormalizeAttempts builds the attempt ladder for a normalize. When the
// probe found no audio the primary run already synthesizes silence, so
// both rungs are silent; the fallback still exists to retry past transient
// failures of the first run.
func NormalizeAttempts(plan *planner.NormalizePlan) []Attempt {
	primary := buildNormalizeArgs(plan, !plan.HasAudio)
	return []Attempt{
		{Name: AttemptPrimary, Args: primary},
		{Name: AttemptSilentAudio, Args: buildNormalizeArgs(plan, true)},
	}
}

// ConcatAttempts builds the single-rung ladder for the final join. Concat
// inputs are already normalized and known-good, so a failure here means an
// environment problem that a retry would not fix.
func ConcatAttempts(plan *planner.ConcatPlan) []Attempt {
	return []Attempt{
		{Name: AttemptConcat, Args: buildConcatArgs(plan)},
	}
}
