package tree

import (
	"errors"
	"slices"
	"testing"
)

func TestWalk(t *testing.T) {
	var got []string
	err := Walk(sampleTree(), func(rel string, _ Node) error {
		got = append(got, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	want := []string{
		"backend",
		"backend/app",
		"backend/app/__init__.py",
		"backend/app/main.py",
		"backend/requirements.txt",
		"docs",
		"notes",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Walk(sampleTree(), func(string, Node) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("err = %v, calls = %d", err, calls)
	}
}

func TestCount(t *testing.T) {
	dirs, files := Count(sampleTree())
	if dirs != 3 || files != 4 {
		t.Errorf("Count = (%d, %d), want (3, 4)", dirs, files)
	}
	if d, f := Count(Dir{}); d != 0 || f != 0 {
		t.Errorf("Count(empty) = (%d, %d)", d, f)
	}
}

func TestKindString(t *testing.T) {
	if KindDir.String() != "dir" || KindFile.String() != "file" {
		t.Errorf("unexpected Kind strings: %s %s", KindDir, KindFile)
	}
}
