package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "1.2.0"}, "1.2.0"},
		{Info{Version: "1.2.0", Dirty: true}, "1.2.0-dirty"},
	}

	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFillFromVCS(t *testing.T) {
	info := Info{Commit: "unknown", BuildDate: "unknown"}
	fillFromVCS(&info, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.time", Value: "2024-01-02T03:04:05Z"},
		{Key: "vcs.modified", Value: "true"},
	})

	if info.Commit != "abc123" || info.BuildDate != "2024-01-02T03:04:05Z" || !info.Dirty {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestFillFromVCS_KeepsLdflags(t *testing.T) {
	info := Info{Commit: "fromldflags", BuildDate: "2025-01-01"}
	fillFromVCS(&info, []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}})

	if info.Commit != "fromldflags" {
		t.Errorf("ldflags commit overwritten: %q", info.Commit)
	}
}

func TestFull(t *testing.T) {
	out := Full()
	for _, want := range []string{"sftnews ", "Commit:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Full() missing %q:\n%s", want, out)
		}
	}
}
