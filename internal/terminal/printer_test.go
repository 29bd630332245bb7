package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/windoze95/movierec/internal/view"
)

func TestPrintSearch_LoadMoreHint(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).PrintSearch(view.SearchView{
		Entries:         []view.Entry{{MovieID: 1, Heading: "Batman (1989)", Body: "Bats.", Action: view.AddRecommendationText}},
		LoadMoreVisible: true,
	})

	got := out.String()
	for _, want := range []string{"[1] Batman (1989)", "    Bats.", "Add Recommendation: recommend 1", "load more"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestPrintSearch_NoHintWhenHidden(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).PrintSearch(view.SearchView{})

	if strings.Contains(out.String(), "load more") {
		t.Errorf("output = %q, load more hint should be hidden", out.String())
	}
	if !strings.Contains(out.String(), "(none)") {
		t.Errorf("output = %q, want (none)", out.String())
	}
}

func TestPrintRecommendations_Placeholder(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).PrintRecommendations(view.RecommendationsView{Placeholder: view.NoRecommendationsText})

	if !strings.Contains(out.String(), view.NoRecommendationsText) {
		t.Errorf("output = %q", out.String())
	}
}

func TestAlert_EmptyIsSilent(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out).Alert("")
	if out.Len() != 0 {
		t.Errorf("output = %q, want nothing", out.String())
	}
}

func TestParseMovieID(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"123", 123, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"3.14", 0, true},
		{"99999999999", 0, true},
	}
	for _, tc := range cases {
		got, err := parseMovieID(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseMovieID(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("parseMovieID(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
