package probe

// Result is the fully parsed output of a single ffprobe JSON call. It is
// immutable after probing.
type Result struct {
	// Duration is the container duration in seconds, falling back to the
	// primary video stream duration when the container value is absent.
	Duration float64
	// Width and Height come from the primary video stream. Zero when the
	// file has no video stream.
	Width  int
	Height int
	// HasAudio reports whether any audio stream exists. Absence is not
	// an error.
	HasAudio bool

	// Diagnostics carried for logging and result metadata.
	VideoCodec string
	AudioCodec string
	FrameRate  string
	SizeBytes  int64
	FormatName string
}

// HasVideo reports whether the file carried a usable video stream.
func (r *Result) HasVideo() bool {
	return r.Width > 0 && r.Height > 0
}

// Vertical reports whether the clip is taller than it is wide.
func (r *Result) Vertical() bool {
	return r.Height > r.Width
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (r *Result) Resolution() string {
	if !r.HasVideo() {
		return "unknown"
	}
	return itoa(r.Width) + "x" + itoa(r.Height)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
