package albumsort

import (
	"testing"

	"github.com/crate-fm/crate/models"
)

func album(name, published string) models.Album {
	a := models.Album{Name: name, Artist: "Artist"}
	if published != "" {
		a.Wiki = &models.Wiki{Published: published}
	}
	return a
}

func names(albums []models.Album) []string {
	out := make([]string, len(albums))
	for i, a := range albums {
		out[i] = a.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByName(t *testing.T) {
	input := []models.Album{
		album("Revolver", ""),
		album("Abbey Road", ""),
		album("Let It Be", ""),
	}

	asc := Sort(input, NameAsc)
	if want := []string{"Abbey Road", "Let It Be", "Revolver"}; !equal(names(asc), want) {
		t.Errorf("NameAsc = %v, want %v", names(asc), want)
	}

	desc := Sort(input, NameDesc)
	if want := []string{"Revolver", "Let It Be", "Abbey Road"}; !equal(names(desc), want) {
		t.Errorf("NameDesc = %v, want %v", names(desc), want)
	}

	// With no ties, descending is exactly the reverse of ascending.
	for i := range asc {
		if asc[i].Name != desc[len(desc)-1-i].Name {
			t.Errorf("NameDesc is not the reverse of NameAsc: %v vs %v", names(asc), names(desc))
			break
		}
	}
}

func TestSortByYear(t *testing.T) {
	input := []models.Album{
		album("Nineties", "12 Mar 1994, 08:00"),
		album("Unknown", ""),
		album("Sixties", "06 Sep 1969, 15:21"),
		album("NoWiki", ""),
		album("Eighties", "01 Jan 1985"),
	}

	asc := Sort(input, YearAsc)
	// Unknown years derive year 0 and sort before every positive year.
	if got := names(asc)[:2]; !equal(got, []string{"Unknown", "NoWiki"}) {
		t.Errorf("YearAsc leading unknowns = %v", got)
	}
	if want := []string{"Unknown", "NoWiki", "Sixties", "Eighties", "Nineties"}; !equal(names(asc), want) {
		t.Errorf("YearAsc = %v, want %v", names(asc), want)
	}

	desc := Sort(input, YearDesc)
	if want := []string{"Nineties", "Eighties", "Sixties", "Unknown", "NoWiki"}; !equal(names(desc), want) {
		t.Errorf("YearDesc = %v, want %v", names(desc), want)
	}
}

func TestSortNeverMutatesInput(t *testing.T) {
	input := []models.Album{
		album("B", "01 Jan 2001"),
		album("A", "01 Jan 1999"),
		album("C", ""),
	}
	original := names(input)

	for _, mode := range []Mode{NameAsc, NameDesc, YearAsc, YearDesc, Mode("bogus")} {
		out := Sort(input, mode)
		if !equal(names(input), original) {
			t.Fatalf("mode %q mutated the input: %v", mode, names(input))
		}
		if len(out) != len(input) {
			t.Fatalf("mode %q changed the length: %d", mode, len(out))
		}
	}

	if out := Sort(nil, NameAsc); len(out) != 0 {
		t.Errorf("sorting nil = %v, want empty", out)
	}
	if out := Sort([]models.Album{}, YearDesc); len(out) != 0 {
		t.Errorf("sorting empty = %v, want empty", out)
	}
}

func TestSortUnknownModeReturnsCopy(t *testing.T) {
	input := []models.Album{album("C", ""), album("A", ""), album("B", "")}

	out := Sort(input, Mode("shuffle"))
	if !equal(names(out), []string{"C", "A", "B"}) {
		t.Errorf("unknown mode reordered: %v", names(out))
	}

	// Must be a copy, not the same backing array.
	out[0] = album("X", "")
	if input[0].Name != "C" {
		t.Error("unknown mode returned the input slice itself")
	}
}

func TestPublishedYearParsing(t *testing.T) {
	tests := []struct {
		name      string
		published string
		want      int
	}{
		{name: "full lastfm form", published: "06 Sep 2019, 15:21", want: 2019},
		{name: "date only", published: "01 Jan 1985", want: 1985},
		{name: "single digit day", published: "6 Sep 2019, 15:21", want: 2019},
		{name: "year only", published: "1969", want: 1969},
		{name: "surrounding whitespace", published: "  06 Sep 2019, 15:21  ", want: 2019},
		{name: "unparsable", published: "sometime in the 60s", want: 0},
		{name: "empty", published: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := album("X", tt.published)
			if got := publishedYear(a); got != tt.want {
				t.Errorf("publishedYear(%q) = %d, want %d", tt.published, got, tt.want)
			}
		})
	}

	if got := publishedYear(models.Album{Name: "X"}); got != 0 {
		t.Errorf("publishedYear without wiki = %d, want 0", got)
	}
}
