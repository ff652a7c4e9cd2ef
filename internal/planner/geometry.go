package planner

import "github.com/reelpress/reelpress/internal/probe"

// VoteVertical decides the merge output orientation by majority. A clip is
// vertical when height strictly exceeds width, so squares count as
// horizontal; a tie also resolves to horizontal.
func VoteVertical(results []*probe.Result) bool {
	var vertical, horizontal int
	for _, r := range results {
		if r.Vertical() {
			vertical++
		} else {
			horizontal++
		}
	}
	return vertical > horizontal
}

// Resolution cap boxes, long side first.
const (
	cap720Long  = 1280
	cap720Short = 720

	cap1080Long  = 1920
	cap1080Short = 1080
)

// SelectDimensions picks the merge output geometry. The first clip's native
// dimensions are the starting point; 720p and 1080p replace them with the
// canonical box (swapped when the orientation vote said vertical) whenever
// either native dimension exceeds that box. The result is rounded down to
// even values for 4:2:0 encoding.
func SelectDimensions(first *probe.Result, res Resolution, vertical bool) (int, int) {
	width, height := first.Width, first.Height

	switch res {
	case Resolution720p:
		if width > cap720Long || height > cap720Short {
			width, height = orient(cap720Long, cap720Short, vertical)
		}
	case Resolution1080p:
		if width > cap1080Long || height > cap1080Short {
			width, height = orient(cap1080Long, cap1080Short, vertical)
		}
	}

	return width &^ 1, height &^ 1
}

func orient(long, short int, vertical bool) (int, int) {
	if vertical {
		return short, long
	}
	return long, short
}
