package tex

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const fixture = `% Knuth's example patterns
\message{TeXbook appendix H}
\patterns{
.hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n
}
\hyphenation{
ta-ble
}
`

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	h, err := Compile("texbook", strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want string
	}{
		{word: "hyphenation", want: "hy-phen-ation"},
		{word: "nation", want: "na-tion"},
		{word: "table", want: "ta-ble"}, // comes from TeX exceptions
		{word: "tables", want: "tables"},
	}
	for _, tt := range tests {
		if got := h.HyphenationString(tt.word, "-"); got != tt.want {
			t.Fatalf("hyphenation mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestCompileReportsUnclosedBlock(t *testing.T) {
	if _, err := Compile("broken", strings.NewReader("\\patterns{\na1b\n")); err == nil {
		t.Fatalf("expected error for unclosed patterns block")
	}
}
