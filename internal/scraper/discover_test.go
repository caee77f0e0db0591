package scraper

import (
	"testing"
)

const athenaPage = `
<html><body>
	<table class="wikitable">
		<tr><th>Name</th><th>Base Gold Reward</th></tr>
		<tr><td>Chest of Legends</td><td>1,250 – 2,500</td></tr>
	</table>
	<table class="wikitable">
		<tr><th>Name</th><th>Reputation</th></tr>
		<tr><td>Athena's Fortune</td><td>Grade V</td></tr>
	</table>
	<table class="infobox">
		<tr><th>Name</th><th>Base Gold Reward</th></tr>
	</table>
	<table class="wikitable">
		<tr><th>Item</th><th>Median Base Gold</th></tr>
		<tr><td>Skull of the Damned</td><td>1,500</td></tr>
	</table>
</body></html>`

const chestsPage = `
<html><body>
	<h2><span class="mw-headline">Overview</span></h2>
	<h3><span class="mw-headline" id="Common">Common Chests</span></h3>
	<table class="wikitable">
		<tr><th>Name</th><th>Base Gold Reward</th></tr>
		<tr><td>Castaway's Chest</td><td>40 - 60</td></tr>
	</table>
	<h3>Plain heading without anchor</h3>
	<table class="wikitable">
		<tr><th>Name</th><th>Base Gold Reward</th></tr>
		<tr><td>Ignored</td><td>1</td></tr>
	</table>
	<p>Trivia follows.</p>
	<p>See also below.</p>
	<h3><span class="mw-headline" id="Trivia">Trivia</span></h3>
	<table class="wikitable">
		<tr><th>Fact</th><th>Source</th></tr>
	</table>
	<h3><span class="mw-headline" id="Gallery">Gallery</span></h3>
	<p>No tables here.</p>
</body></html>`

func TestDiscover_Flagged(t *testing.T) {
	doc := mustParse(t, athenaPage)

	got, err := Discover(doc, "athena", StrategyFlagged, nil)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	wantTitles := []string{"athena Treasure 1", "athena Treasure 2"}
	if len(got) != len(wantTitles) {
		t.Fatalf("Discover() returned %d candidates, want %d", len(got), len(wantTitles))
	}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Errorf("candidate %d title = %q, want %q", i, got[i].Title, want)
		}
	}

	rows := ExtractRows(got[1].Table, NameColumn, MedianColumn)
	if len(rows) != 1 || rows[0].Name != "Skull of the Damned" || rows[0].Median != 1500 {
		t.Errorf("second candidate rows = %+v, want Skull of the Damned at 1500", rows)
	}
}

func TestDiscover_Heading(t *testing.T) {
	doc := mustParse(t, chestsPage)

	got, err := Discover(doc, "chests", StrategyHeading, SiblingLocator{})
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	// Trivia is closer to its own table (no base gold column) and Gallery
	// falls back to the Trivia table, so only Common Chests survives.
	if len(got) != 1 {
		titles := make([]string, 0, len(got))
		for _, c := range got {
			titles = append(titles, c.Title)
		}
		t.Fatalf("Discover() returned %v, want one candidate", titles)
	}
	if got[0].Title != "chests - Common Chests" {
		t.Errorf("title = %q, want %q", got[0].Title, "chests - Common Chests")
	}

	rows := ExtractRows(got[0].Table, NameColumn, MedianColumn)
	if len(rows) != 1 || rows[0].Median != 50 {
		t.Errorf("rows = %+v, want Castaway's Chest at 50", rows)
	}
}

func TestDiscover_HeadingDefaultsLocator(t *testing.T) {
	doc := mustParse(t, chestsPage)

	got, err := Discover(doc, "chests", StrategyHeading, nil)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Discover() with nil locator returned %d candidates, want 1", len(got))
	}
}

func TestDiscover_UnknownStrategy(t *testing.T) {
	doc := mustParse(t, athenaPage)

	if _, err := Discover(doc, "athena", Strategy("everything"), nil); err == nil {
		t.Error("Discover() expected error for unknown strategy, got nil")
	}
}

func TestStrategy_Valid(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     bool
	}{
		{StrategyFlagged, true},
		{StrategyHeading, true},
		{"", false},
		{"Flagged", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			if got := tt.strategy.Valid(); got != tt.want {
				t.Errorf("Strategy(%q).Valid() = %v, want %v", tt.strategy, got, tt.want)
			}
		})
	}
}
