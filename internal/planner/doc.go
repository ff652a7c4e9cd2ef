// Package planner makes the pure encode decisions: output geometry, filter
// chains, quality tiers, and the orientation vote. It produces typed plans
// that the ffmpeg package turns into argument lists; nothing in here touches
// the filesystem or spawns processes.
package planner
