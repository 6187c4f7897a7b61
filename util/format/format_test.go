package format

import (
	"testing"

	"github.com/crate-fm/crate/models"
)

func intPtr(n int) *int { return &n }

func TestPlayCount(t *testing.T) {
	tests := []struct {
		name  string
		count *int
		want  string
	}{
		{name: "millions", count: intPtr(2500000), want: "2.5M"},
		{name: "exactly one million", count: intPtr(1000000), want: "1.0M"},
		{name: "tens of millions", count: intPtr(10500000), want: "10.5M"},
		{name: "thousands", count: intPtr(2500), want: "2.5K"},
		{name: "exactly one thousand", count: intPtr(1000), want: "1.0K"},
		{name: "just under a million", count: intPtr(999999), want: "1000.0K"},
		{name: "small count", count: intPtr(500), want: "500"},
		{name: "single play", count: intPtr(1), want: "1"},
		{name: "zero", count: intPtr(0), want: "0"},
		{name: "unknown", count: nil, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayCount(tt.count); got != tt.want {
				t.Errorf("PlayCount() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds *int
		want    string
	}{
		{name: "pads single digit seconds", seconds: intPtr(61), want: "1:01"},
		{name: "whole minutes", seconds: intPtr(180), want: "3:00"},
		{name: "over an hour stays in minutes", seconds: intPtr(3661), want: "61:01"},
		{name: "under a minute", seconds: intPtr(9), want: "0:09"},
		{name: "zero", seconds: intPtr(0), want: "0:00"},
		{name: "unknown", seconds: nil, want: "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.seconds); got != tt.want {
				t.Errorf("Duration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAlbumImageURL(t *testing.T) {
	full := []models.AlbumImage{
		{URL: "small.jpg", Size: models.ImageSmall},
		{URL: "medium.jpg", Size: models.ImageMedium},
		{URL: "large.jpg", Size: models.ImageLarge},
		{URL: "xl.jpg", Size: models.ImageExtraLarge},
	}

	tests := []struct {
		name      string
		images    []models.AlbumImage
		preferred models.ImageSize
		want      string
	}{
		{name: "preferred size present", images: full, preferred: models.ImageExtraLarge, want: "xl.jpg"},
		{name: "preferred missing falls to next smaller", images: full, preferred: models.ImageMega, want: "xl.jpg"},
		{
			name: "skips smaller sizes above preferred",
			images: []models.AlbumImage{
				{URL: "small.jpg", Size: models.ImageSmall},
			},
			preferred: models.ImageLarge,
			want:      "small.jpg",
		},
		{name: "no images", images: nil, preferred: models.ImageLarge, want: ""},
		{
			name: "all empty urls",
			images: []models.AlbumImage{
				{URL: "", Size: models.ImageLarge},
			},
			preferred: models.ImageLarge,
			want:      "",
		},
		{name: "medium preferred", images: full, preferred: models.ImageMedium, want: "medium.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlbumImageURL(tt.images, tt.preferred); got != tt.want {
				t.Errorf("AlbumImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
