// Package albumsort reorders materialized album lists.
package albumsort

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/crate-fm/crate/models"
)

// Mode selects one of the four fixed sort orders.
type Mode string

const (
	NameAsc  Mode = "name_asc"
	NameDesc Mode = "name_desc"
	YearAsc  Mode = "year_asc"
	YearDesc Mode = "year_desc"
)

// Last.fm publishes wiki dates like "06 Sep 2019, 15:21"; older entries
// drop the time, a few carry only the year.
var publishedLayouts = []string{
	"02 Jan 2006, 15:04",
	"2 Jan 2006, 15:04",
	"02 Jan 2006",
	"2 Jan 2006",
	"2006",
}

// Sort returns a new list ordered by mode. The input is never mutated, the
// sort is stable, and an unrecognized mode returns an unmodified shallow
// copy. Albums without a parsable publish year sort as year 0: first in
// YearAsc, last in YearDesc.
func Sort(albums []models.Album, mode Mode) []models.Album {
	sorted := make([]models.Album, len(albums))
	copy(sorted, albums)

	switch mode {
	case NameAsc:
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case NameDesc:
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	case YearAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return publishedYear(sorted[i]) < publishedYear(sorted[j])
		})
	case YearDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return publishedYear(sorted[i]) > publishedYear(sorted[j])
		})
	}

	return sorted
}

func publishedYear(album models.Album) int {
	if album.Wiki == nil {
		return 0
	}
	s := strings.TrimSpace(album.Wiki.Published)
	if s == "" {
		return 0
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year()
		}
	}
	return 0
}
