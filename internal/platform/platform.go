// Package platform holds the catalog of social platform output presets.
package platform

import (
	"fmt"
	"sort"
	"time"
)

// Preset describes the output contract for one platform target.
type Preset struct {
	Width       int
	Height      int
	AspectRatio string
	// MaxDuration caps clip length for the platform. Zero means no cap.
	MaxDuration time.Duration
}

var presets = map[string]Preset{
	"instagram-reel":  {Width: 1080, Height: 1920, AspectRatio: "9:16", MaxDuration: 90 * time.Second},
	"instagram-story": {Width: 1080, Height: 1920, AspectRatio: "9:16", MaxDuration: 60 * time.Second},
	"instagram-feed":  {Width: 1080, Height: 1350, AspectRatio: "4:5"},
	"tiktok":          {Width: 1080, Height: 1920, AspectRatio: "9:16", MaxDuration: 600 * time.Second},
	"youtube-short":   {Width: 1080, Height: 1920, AspectRatio: "9:16", MaxDuration: 60 * time.Second},
	"youtube":         {Width: 1920, Height: 1080, AspectRatio: "16:9"},
	"x-post":          {Width: 1280, Height: 720, AspectRatio: "16:9", MaxDuration: 140 * time.Second},
	"facebook-feed":   {Width: 1080, Height: 1080, AspectRatio: "1:1"},
}

// Lookup resolves a preset by identifier.
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown platform preset %q", name)
	}
	return p, nil
}

// Names returns all preset identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
