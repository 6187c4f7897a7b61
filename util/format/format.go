// Package format renders counts, durations and artwork choices for
// display.
package format

import (
	"fmt"
	"strconv"

	"github.com/crate-fm/crate/models"
)

// PlayCount renders a listener or play count compactly: 2500000 -> "2.5M",
// 2500 -> "2.5K", 500 -> "500". An unknown count renders as "0".
func PlayCount(count *int) string {
	if count == nil || *count <= 0 {
		return "0"
	}
	n := *count
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}

// Duration renders seconds as m:ss; 61 -> "1:01". Unknown or zero renders
// as "0:00".
func Duration(seconds *int) string {
	if seconds == nil || *seconds <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", *seconds/60, *seconds%60)
}

// Largest-first fallback order for artwork selection.
var sizeOrder = []models.ImageSize{
	models.ImageMega,
	models.ImageExtraLarge,
	models.ImageLarge,
	models.ImageMedium,
	models.ImageSmall,
}

// AlbumImageURL picks the artwork URL closest to the preferred size,
// walking down to smaller sizes, then falling back to any entry with a
// URL. Returns "" when nothing usable exists.
func AlbumImageURL(images []models.AlbumImage, preferred models.ImageSize) string {
	if len(images) == 0 {
		return ""
	}

	start := 0
	for i, size := range sizeOrder {
		if size == preferred {
			start = i
			break
		}
	}

	for _, size := range sizeOrder[start:] {
		for _, img := range images {
			if img.Size == size && img.URL != "" {
				return img.URL
			}
		}
	}
	for _, img := range images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}
