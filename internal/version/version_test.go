// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import "testing"

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc1234",
		BuildTime: "2025-01-30T12:00:00Z",
	}

	want := "v1.0.0 (commit: abc1234, built: 2025-01-30T12:00:00Z)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInfoWithDefaults(t *testing.T) {
	var info Info
	info = info.withDefaults()

	if info.Version != "dev" {
		t.Errorf("Version = %q, want %q", info.Version, "dev")
	}
	if info.GitCommit != "unknown" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "unknown")
	}
	if info.BuildTime != "unknown" {
		t.Errorf("BuildTime = %q, want %q", info.BuildTime, "unknown")
	}

	set := Info{Version: "v2.0.0", GitCommit: "def5678", BuildTime: "now"}.withDefaults()
	if set.Version != "v2.0.0" || set.GitCommit != "def5678" || set.BuildTime != "now" {
		t.Errorf("withDefaults() overwrote set fields: %+v", set)
	}
}

func TestGet(t *testing.T) {
	old := version
	version = "v9.9.9"
	t.Cleanup(func() { version = old })

	info := Get()
	if info.Version != "v9.9.9" {
		t.Errorf("Version = %q, want %q", info.Version, "v9.9.9")
	}
	if info.GitCommit == "" || info.BuildTime == "" {
		t.Errorf("Get() left fields empty: %+v", info)
	}
}
