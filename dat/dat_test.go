package dat

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/acdat/trie"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type pattern struct {
	text    string
	weights []uint8
}

func build(t *testing.T, patterns []pattern) (*trie.Trie, *DATrie) {
	t.Helper()
	tr := trie.New()
	for _, p := range patterns {
		if err := tr.Insert(p.text, p.weights); err != nil {
			t.Fatal(err)
		}
	}
	d := New()
	d.Convert(tr)
	d.Prepare(tr)
	return tr, d
}

var smallSet = []pattern{
	{"abc", []uint8{0, 0, 1, 0}},
	{"bc", []uint8{0, 3, 0}},
	{"xbc", []uint8{1, 0, 0, 0}},
	{"qbcz", []uint8{0, 0, 0, 0, 1}},
	{".ab", []uint8{0, 0, 2, 0}},
}

func TestConvertKeepsCheckInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "acdat")
	defer teardown()
	//
	tr, d := build(t, smallSet)
	tr.Walk(func(id int, node *trie.Node) {
		s := d.State(id)
		for _, ch := range tr.Children(id) {
			slot := d.Base[s] + int(ch.Code)
			if d.Mark[slot] != s {
				t.Fatalf("mark[%d] = %d, want parent %d (route %q)", slot, d.Mark[slot], s, node.Route)
			}
			if d.State(ch.Node) != slot {
				t.Fatalf("child of %q placed at %d, expected %d", node.Route, d.State(ch.Node), slot)
			}
		}
	})
	if d.Mark[0] != NoParent {
		t.Fatalf("root must not have a parent, has %d", d.Mark[0])
	}
	for _, p := range smallSet {
		if _, ok := d.Fetch([]byte(p.text)); !ok {
			t.Fatalf("pattern %q not reachable in DAT", p.text)
		}
	}
	if _, ok := d.Fetch([]byte("abx")); ok {
		t.Fatalf("abx must not be reachable")
	}
}

func TestPrepareFailureLinks(t *testing.T) {
	_, d := build(t, smallSet)
	fetch := func(s string) int {
		st, ok := d.Fetch([]byte(s))
		if !ok {
			t.Fatalf("%q not found", s)
		}
		return st
	}
	tests := []struct {
		from, to string
	}{
		{"abc", "bc"},
		{"ab", "b"},
		{"xbc", "bc"},
		{"qbcz", ""},
		{".ab", "ab"},
		{"a", ""},
	}
	for _, tt := range tests {
		want := 0
		if tt.to != "" {
			want = fetch(tt.to)
		}
		if got := d.Fail[fetch(tt.from)]; got != want {
			t.Fatalf("fail(%q) = %d, want %d (%q)", tt.from, got, want, tt.to)
		}
	}
}

func TestPrepareMergesSuffixData(t *testing.T) {
	_, d := build(t, smallSet)
	tests := []struct {
		route string
		want  []uint8
	}{
		{"abc", []uint8{0, 0, 3, 0}},
		{"xbc", []uint8{1, 0, 3, 0}},
		{"qbc", []uint8{0, 3, 0}}, // no own pattern, inherits from "bc"
		{"bc", []uint8{0, 3, 0}},
		{".ab", []uint8{0, 0, 2, 0}},
		{"ab", nil},
	}
	for _, tt := range tests {
		s, _ := d.Fetch([]byte(tt.route))
		if !reflect.DeepEqual(d.Data[s], tt.want) {
			t.Fatalf("data(%q) = %v, want %v", tt.route, d.Data[s], tt.want)
		}
	}
}

func TestMergeRight(t *testing.T) {
	got := mergeRight([]uint8{1, 0, 0, 2}, []uint8{5, 1})
	if want := []uint8{1, 0, 5, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("mergeRight: got %v, want %v", got, want)
	}
	got = mergeRight([]uint8{0, 4}, []uint8{3, 1, 1})
	if want := []uint8{3, 1, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("mergeRight with extension: got %v, want %v", got, want)
	}
	got = mergeRight(nil, []uint8{0, 2})
	if want := []uint8{0, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("mergeRight into nil: got %v, want %v", got, want)
	}
}

func TestPackDescriptors(t *testing.T) {
	_, d := build(t, smallSet)
	list := d.DataList()
	var raw []byte
	for _, v := range list {
		raw = append(raw, v...)
	}
	table, err := d.Pack(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != StateWidth*d.Len() {
		t.Fatalf("expected %d words, have %d", StateWidth*d.Len(), len(table))
	}
	for s := 0; s < d.Len(); s++ {
		rec := table[s*StateWidth : (s+1)*StateWidth]
		if int(rec[0]) != d.Base[s]*StateWidth || int(rec[2]) != d.Fail[s]*StateWidth {
			t.Fatalf("state %d: bad record %v", s, rec)
		}
		if d.Mark[s] == NoParent && rec[1] != NoParent {
			t.Fatalf("state %d: sentinel not kept verbatim: %d", s, rec[1])
		}
		if d.Mark[s] != NoParent && int(rec[1]) != d.Mark[s]*StateWidth {
			t.Fatalf("state %d: mark %d not scaled", s, rec[1])
		}
		off, n := int(rec[3]>>4), int(rec[3]&0x0F)
		if d.Data[s] == nil {
			if rec[3] != 0 {
				t.Fatalf("state %d: descriptor %x for empty data", s, rec[3])
			}
			continue
		}
		if !reflect.DeepEqual([]uint8(raw[off:off+n]), d.Data[s]) {
			t.Fatalf("state %d: descriptor points to %v, want %v", s, raw[off:off+n], d.Data[s])
		}
	}
}

func TestPackRejectsOverflow(t *testing.T) {
	d := New()
	d.resize(1)
	d.Data[1] = make([]uint8, 16)
	if _, err := d.Pack(make([]byte, 32)); !errors.Is(err, ErrVectorTooLong) {
		t.Fatalf("expected ErrVectorTooLong, got %v", err)
	}
	d.Data[1] = []uint8{7, 7}
	if _, err := d.Pack([]byte{1, 2, 3}); !errors.Is(err, ErrVectorMissing) {
		t.Fatalf("expected ErrVectorMissing, got %v", err)
	}
	raw := append(make([]byte, MaxRawOffset+1), 7, 7)
	if _, err := d.Pack(raw); !errors.Is(err, ErrOffsetOverflow) {
		t.Fatalf("expected ErrOffsetOverflow, got %v", err)
	}
}

func TestDataListIsDistinct(t *testing.T) {
	_, d := build(t, smallSet)
	list := d.DataList()
	seen := map[string]bool{}
	for _, v := range list {
		if seen[string(v)] {
			t.Fatalf("duplicate vector %v", v)
		}
		seen[string(v)] = true
	}
	// "bc" and "qbc" share one vector
	if len(list) != 5 {
		t.Fatalf("expected 5 distinct vectors, have %d: %v", len(list), list)
	}
}

func TestStats(t *testing.T) {
	_, d := build(t, smallSet)
	stats := d.Stats()
	if stats.UsedSlots <= 0 || stats.TotalSlots < stats.UsedSlots {
		t.Fatalf("implausible stats %+v", stats)
	}
	if r := stats.FillRatio(); r <= 0 || r > 1 {
		t.Fatalf("fill ratio out of range: %f", r)
	}
	if stats.Vectors != 6 {
		t.Fatalf("expected 6 states with data, have %d", stats.Vectors)
	}
}

func TestDump(t *testing.T) {
	want := " idx|    0|\nbase|    0|\nmark|65535|\nfail|    0|\nused|    1|\n"
	if got := New().Dump(); got != want {
		t.Fatalf("dump of empty DAT:\n%s\nwant:\n%s", got, want)
	}
	_, d := build(t, smallSet)
	dump := d.Dump()
	if rows := strings.Count(dump, "\n"); rows != 5 {
		t.Fatalf("expected 5 rows, have %d", rows)
	}
	t.Logf("\n%s", dump)
}
