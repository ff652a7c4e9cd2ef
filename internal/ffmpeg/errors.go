package ffmpeg

import "regexp"

// Pre-compiled regexes classifying engine stderr into failure categories.
// Classification drives logging and error detail only; the attempt ladder
// advances on any non-zero exit regardless of category.
var (
	reNoAudioStream = regexp.MustCompile(
		`Stream map '0:a:0' matches no streams|` +
			`Stream specifier ':a' .*matches no streams|` +
			`Output file #\d+ does not contain any stream`)

	reInvalidInput = regexp.MustCompile(
		`(?i)Invalid data found when processing input|` +
			`moov atom not found|` +
			`Invalid NAL unit|` +
			`could not find codec parameters`)

	reMissingEncoder = regexp.MustCompile(
		`(?i)Unknown encoder|Encoder not found|` +
			`automatic codec selection failed`)
)

// MatchNoAudioStream reports whether stderr indicates the source had no
// mappable audio stream, the expected trigger for the silent-audio rung.
func MatchNoAudioStream(stderr string) bool {
	return reNoAudioStream.MatchString(stderr)
}

// MatchInvalidInput reports whether stderr indicates the source bytes are
// not decodable media (truncated download, wrong content type).
func MatchInvalidInput(stderr string) bool {
	return reInvalidInput.MatchString(stderr)
}

// MatchMissingEncoder reports whether stderr indicates the engine build
// lacks a required encoder (libx264 or aac).
func MatchMissingEncoder(stderr string) bool {
	return reMissingEncoder.MatchString(stderr)
}

// ClassifyStderr names the failure category for logs. Empty when no known
// pattern matches.
func ClassifyStderr(stderr string) string {
	switch {
	case MatchNoAudioStream(stderr):
		return "no-audio-stream"
	case MatchInvalidInput(stderr):
		return "invalid-input"
	case MatchMissingEncoder(stderr):
		return "missing-encoder"
	default:
		return ""
	}
}
