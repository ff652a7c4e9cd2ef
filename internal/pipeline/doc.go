// Package pipeline orchestrates the full resize and merge flows: fetch the
// sources, probe them, plan the encodes, run the engine attempt ladders, and
// hand back the finished MP4 as an in-memory buffer.
//
// The package owns sequencing and error classification only. Encode decisions
// live in planner, argument construction and process execution in ffmpeg, and
// HTTP access in fetch. Everything the pipeline touches on disk lives inside a
// per-job workspace directory that is removed when the job ends.
package pipeline
