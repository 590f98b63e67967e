package board

import (
	"testing"

	"draftboard/internal/adp"
)

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b adp.Value
		want int
	}{
		{"both null", adp.Null(), adp.Null(), 0},
		{"null after number", adp.Null(), adp.Int(1), 1},
		{"number before null", adp.Int(1), adp.Null(), -1},
		{"null after string", adp.Null(), adp.String("a"), 1},
		{"numbers", adp.Int(2), adp.Number("10.5"), -1},
		{"numeric strings compare as numbers", adp.String("9"), adp.String("10"), -1},
		{"number against numeric string", adp.String("12"), adp.Int(3), 1},
		{"equal numbers", adp.Number("3.0"), adp.Int(3), 0},
		{"case insensitive", adp.String("apple"), adp.String("Banana"), -1},
		{"case only differs", adp.String("wr"), adp.String("WR"), 0},
		{"mixed falls back to text", adp.String("RB"), adp.Int(5), 1},
		{"empty string is text", adp.String(""), adp.Int(0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareValues(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("CompareValues(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestSort_NullsLastAscendingFirstDescending(t *testing.T) {
	b := New()
	b.Loaded(adp.NewDataset([]adp.Row{
		player("nullA", adp.Null()),
		player("one", adp.Int(1)),
		player("nullB", adp.Null()),
		player("two", adp.String("2")),
	}))

	b.RequestSort("ADP")
	got := names(b.Rows())
	want := []string{"one", "two", "nullA", "nullB"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ascending = %v, want %v", got, want)
		}
	}

	b.RequestSort("ADP")
	got = names(b.Rows())
	want = []string{"nullA", "nullB", "two", "one"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("descending = %v, want %v", got, want)
		}
	}
}

func TestSort_NumericStringsNotLexicographic(t *testing.T) {
	b := New()
	b.Loaded(adp.NewDataset([]adp.Row{
		player("ten", adp.String("10")),
		player("nine", adp.String("9")),
		player("hundred", adp.String("100")),
	}))
	b.RequestSort("ADP")
	got := names(b.Rows())
	want := []string{"nine", "ten", "hundred"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSort_MissingColumnReadsAsNull(t *testing.T) {
	b := New()
	b.Loaded(adp.NewDataset([]adp.Row{
		adp.NewRow(adp.Field{Key: "Name", Value: adp.String("short")}),
		player("full", adp.Int(4)),
	}))
	b.RequestSort("ADP")
	got := names(b.Rows())
	if got[0] != "full" || got[1] != "short" {
		t.Errorf("order = %v, want [full short]", got)
	}
}
