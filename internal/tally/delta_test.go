package tally

import (
	"reflect"
	"testing"

	"warnsum/internal/extract"
)

func TestDiffCountsSelfIsEmpty(t *testing.T) {
	x := Counts{"a": 3, "b": 1, "c": 7}
	if got := DiffCounts(x, x); len(got) != 0 {
		t.Fatalf("diff(X, X) should be empty, got %v", got)
	}
}

func TestDiffCountsSignedValues(t *testing.T) {
	lhs := Counts{"only-lhs": 2, "both-equal": 5, "both-differ": 7}
	rhs := Counts{"only-rhs": 3, "both-equal": 5, "both-differ": 4}

	got := DiffCounts(lhs, rhs)
	want := Counts{"only-lhs": 2, "only-rhs": -3, "both-differ": 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("diff mismatch: got %v want %v", got, want)
	}
}

// The diff keys must be exactly the keys whose counts differ, with values
// lhs.get(k, 0) - rhs.get(k, 0).
func TestDiffCountsKeyDiscipline(t *testing.T) {
	lhs := Counts{"a": 1, "b": 2}
	rhs := Counts{"b": 2, "c": 4}
	got := DiffCounts(lhs, rhs)

	if _, ok := got["b"]; ok {
		t.Fatalf("equal-count key must vanish, got %v", got)
	}
	if got["a"] != 1 || got["c"] != -4 {
		t.Fatalf("unexpected deltas: %v", got)
	}
}

func TestDiffCountsInputsUntouched(t *testing.T) {
	lhs := Counts{"a": 1}
	rhs := Counts{"a": 5}
	_ = DiffCounts(lhs, rhs)
	if lhs["a"] != 1 || rhs["a"] != 5 {
		t.Fatalf("inputs were modified: lhs=%v rhs=%v", lhs, rhs)
	}
}

func TestCollectionDiffCoversAllDimensions(t *testing.T) {
	older := New([]extract.Warning{
		{Name: "bad-thing", File: "/a/f1.c", Keywords: []string{"zing"}},
		{Name: "bad-thing", File: "/a/f1.c", Keywords: []string{"zing"}},
	})
	newer := New([]extract.Warning{
		{Name: "bad-thing", File: "/a/f1.c", Keywords: []string{"zing"}},
		{Name: "new-thing", File: "/b/f2.c", Keywords: []string{"zapp"}},
	})

	d := older.Diff(newer)

	wantNames := Counts{"bad-thing": 1, "new-thing": -1}
	if !reflect.DeepEqual(d.Names, wantNames) {
		t.Fatalf("names delta: got %v want %v", d.Names, wantNames)
	}
	wantFiles := Counts{"/a/f1.c": 1, "/b/f2.c": -1}
	if !reflect.DeepEqual(d.Files, wantFiles) {
		t.Fatalf("files delta: got %v want %v", d.Files, wantFiles)
	}
	wantDirs := Counts{"/a": 1, "/b": -1}
	if !reflect.DeepEqual(d.Directories, wantDirs) {
		t.Fatalf("directories delta: got %v want %v", d.Directories, wantDirs)
	}
	wantKeywords := Counts{"zing": 1, "zapp": -1}
	if !reflect.DeepEqual(d.Keywords, wantKeywords) {
		t.Fatalf("keywords delta: got %v want %v", d.Keywords, wantKeywords)
	}
}
