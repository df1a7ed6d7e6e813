package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	origV, origC, origD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origV, origC, origD })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"

	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() = %q", got)
	}
	want := "v1.2.3 (commit: abc123, built: 2026-01-02)"
	if got := GetFullVersion(); got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
}
