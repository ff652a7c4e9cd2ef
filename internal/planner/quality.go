package planner

// TierSettings holds the resolved encoder parameters for one quality tier.
type TierSettings struct {
	Preset       string // libx264 speed preset.
	CRF          int    // Constant rate factor.
	AudioBitrate string // AAC bitrate, e.g. "256k".
}

// tierTable maps each tier to its encoder parameters. Draft trades quality
// for turnaround on preview renders; high is the publish path.
var tierTable = map[Tier]TierSettings{
	TierDraft: {Preset: "fast", CRF: 24, AudioBitrate: "128k"},
	TierHigh:  {Preset: "slow", CRF: 18, AudioBitrate: "256k"},
}

// SettingsForTier resolves the encoder parameters for a tier. Unknown tiers
// resolve to high; Validate catches them before a plan is built.
func SettingsForTier(t Tier) TierSettings {
	if s, ok := tierTable[t]; ok {
		return s
	}
	return tierTable[TierHigh]
}

// resizeSettings is the fixed quality for the single-clip resize path:
// publish-grade CRF at the default speed preset.
var resizeSettings = TierSettings{Preset: "medium", CRF: 18, AudioBitrate: "256k"}
