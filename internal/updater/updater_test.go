package updater

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.2.0", "1.10.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"dev", "0.1.0", -1},
		{"0.1.0", "dev", 1},
		{"dev", "unknown", 0},
		{"1.0", "1.0.0", -1},
		{"1.0.x", "1.0.0", -1},
	}

	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFindAsset(t *testing.T) {
	release := &Release{Assets: []Asset{
		{Name: "hydrate-linux-amd64"},
		{Name: "hydrate-windows-amd64.exe"},
	}}

	if got := FindAsset(release, "hydrate-linux-amd64"); got == nil || got.Name != "hydrate-linux-amd64" {
		t.Errorf("FindAsset existing = %v", got)
	}
	if got := FindAsset(release, "hydrate-darwin-arm64"); got != nil {
		t.Errorf("FindAsset missing = %v, want nil", got)
	}
}
