package planner

import (
	"testing"

	"github.com/reelpress/reelpress/internal/probe"
)

func TestFillFilter(t *testing.T) {
	got := FillFilter(1080, 1920)
	want := "scale=1080:1920:force_original_aspect_ratio=increase,crop=1080:1920,format=yuv420p"
	if got != want {
		t.Errorf("FillFilter:\n got %q\nwant %q", got, want)
	}
}

func TestFitFilter(t *testing.T) {
	got := FitFilter(1280, 720)
	want := "scale=1280:720:force_original_aspect_ratio=decrease,pad=1280:720:(ow-iw)/2:(oh-ih)/2:black,setsar=1,fps=30,format=yuv420p"
	if got != want {
		t.Errorf("FitFilter:\n got %q\nwant %q", got, want)
	}
}

func TestAudioNormalizeFilter(t *testing.T) {
	got := AudioNormalizeFilter()
	want := "aresample=44100,aformat=sample_fmts=fltp:channel_layouts=stereo,loudnorm=I=-16:TP=-1.5:LRA=11"
	if got != want {
		t.Errorf("AudioNormalizeFilter:\n got %q\nwant %q", got, want)
	}
}

func TestTierValidate(t *testing.T) {
	for _, tier := range []Tier{TierDraft, TierHigh} {
		if err := tier.Validate(); err != nil {
			t.Errorf("%s: %v", tier, err)
		}
	}
	if err := Tier("broadcast").Validate(); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestResolutionValidate(t *testing.T) {
	for _, res := range []Resolution{ResolutionOriginal, Resolution720p, Resolution1080p} {
		if err := res.Validate(); err != nil {
			t.Errorf("%s: %v", res, err)
		}
	}
	if err := Resolution("4k").Validate(); err == nil {
		t.Error("expected error for unknown resolution")
	}
}

func TestSettingsForTier(t *testing.T) {
	draft := SettingsForTier(TierDraft)
	if draft.Preset != "fast" || draft.CRF != 24 || draft.AudioBitrate != "128k" {
		t.Errorf("draft settings = %+v", draft)
	}
	high := SettingsForTier(TierHigh)
	if high.Preset != "slow" || high.CRF != 18 || high.AudioBitrate != "256k" {
		t.Errorf("high settings = %+v", high)
	}
}

func clip(w, h int) *probe.Result {
	return &probe.Result{Width: w, Height: h, Duration: 10}
}

func TestVoteVertical(t *testing.T) {
	cases := []struct {
		name  string
		clips []*probe.Result
		want  bool
	}{
		{"all vertical", []*probe.Result{clip(1080, 1920), clip(720, 1280)}, true},
		{"all horizontal", []*probe.Result{clip(1920, 1080), clip(1280, 720)}, false},
		{"majority vertical", []*probe.Result{clip(1080, 1920), clip(1080, 1920), clip(1920, 1080)}, true},
		{"majority horizontal", []*probe.Result{clip(1080, 1920), clip(1920, 1080), clip(1920, 1080)}, false},
		{"one each ties to horizontal", []*probe.Result{clip(1080, 1920), clip(1920, 1080)}, false},
		{"squares count as horizontal", []*probe.Result{clip(1080, 1080), clip(1080, 1080), clip(1080, 1920)}, false},
		{"square tiebreaker", []*probe.Result{clip(1080, 1920), clip(1080, 1080)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VoteVertical(tc.clips); got != tc.want {
				t.Errorf("VoteVertical = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelectDimensions(t *testing.T) {
	cases := []struct {
		name     string
		first    *probe.Result
		res      Resolution
		vertical bool
		wantW    int
		wantH    int
	}{
		{"original keeps native", clip(3840, 2160), ResolutionOriginal, false, 3840, 2160},
		{"original keeps small native", clip(640, 360), ResolutionOriginal, false, 640, 360},
		{"720p caps horizontal", clip(1920, 1080), Resolution720p, false, 1280, 720},
		{"720p caps vertical", clip(1080, 1920), Resolution720p, true, 720, 1280},
		{"720p leaves small clips alone", clip(960, 540), Resolution720p, false, 960, 540},
		{"720p exact box passes through", clip(1280, 720), Resolution720p, false, 1280, 720},
		{"1080p caps 4k", clip(3840, 2160), Resolution1080p, false, 1920, 1080},
		{"1080p caps vertical 4k", clip(2160, 3840), Resolution1080p, true, 1080, 1920},
		{"1080p leaves 720p clips alone", clip(1280, 720), Resolution1080p, false, 1280, 720},
		{"tall but narrow clip still capped at 720p", clip(608, 1080), Resolution720p, true, 720, 1280},
		{"odd native dimensions rounded even", clip(1279, 717), ResolutionOriginal, false, 1278, 716},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := SelectDimensions(tc.first, tc.res, tc.vertical)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("SelectDimensions = %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestBuildResizePlan(t *testing.T) {
	plan := BuildResizePlan("/ws/source-0.mp4", "/ws/output.mp4", 1080, 1920)

	if plan.Width != 1080 || plan.Height != 1920 {
		t.Errorf("geometry = %dx%d", plan.Width, plan.Height)
	}
	if plan.VideoFilter != FillFilter(1080, 1920) {
		t.Errorf("filter = %q", plan.VideoFilter)
	}
	// Resize quality is fixed: publish CRF at the default preset.
	if plan.Quality.CRF != 18 || plan.Quality.Preset != "medium" || plan.Quality.AudioBitrate != "256k" {
		t.Errorf("quality = %+v", plan.Quality)
	}
}

func TestBuildNormalizePlan(t *testing.T) {
	withAudio := &probe.Result{Width: 1920, Height: 1080, HasAudio: true}
	plan := BuildNormalizePlan("/ws/source-0.mp4", "/ws/normalized-0.mp4", withAudio, 1280, 720, TierDraft)

	if !plan.HasAudio {
		t.Error("HasAudio should carry over from probe")
	}
	if plan.VideoFilter != FitFilter(1280, 720) {
		t.Errorf("video filter = %q", plan.VideoFilter)
	}
	if plan.AudioFilter != AudioNormalizeFilter() {
		t.Errorf("audio filter = %q", plan.AudioFilter)
	}
	if plan.Quality != SettingsForTier(TierDraft) {
		t.Errorf("quality = %+v", plan.Quality)
	}

	muted := &probe.Result{Width: 1920, Height: 1080, HasAudio: false}
	plan = BuildNormalizePlan("in", "out", muted, 1280, 720, TierHigh)
	if plan.HasAudio {
		t.Error("HasAudio should be false for muted source")
	}
}

func TestBuildConcatPlan(t *testing.T) {
	plan := BuildConcatPlan("/ws/concat.txt", "/ws/output.mp4")
	if plan.ListPath != "/ws/concat.txt" || plan.OutputPath != "/ws/output.mp4" {
		t.Errorf("plan = %+v", plan)
	}
}
