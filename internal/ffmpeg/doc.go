// Package ffmpeg turns planner decisions into ffmpeg argument lists and
// executes them. Each encode operation carries an ordered ladder of
// attempts; when the primary invocation fails, the next variant (typically
// one substituting synthesized silence for a missing audio stream) runs
// against the same output. Stderr is captured on every run for failure
// classification and error reporting.
//
// The Runner interface is the process boundary: the pipeline depends on it,
// Engine implements it with os/exec, and tests substitute a fake.
package ffmpeg
