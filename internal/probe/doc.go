// Package probe provides ffprobe-based media inspection and typed result
// structures. A single JSON call per file yields everything the pipeline
// needs: dimensions, duration, and audio presence.
package probe
