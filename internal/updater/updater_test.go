package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older minor", "1.0.0", "1.1.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix both", "v1.0.0", "v1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"invalid current", "notaversion", "1.0.0", 0, true},
		{"dev version", "dev", "1.0.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareVersions(tt.current, tt.latest)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, result, tt.expected)
			}
		})
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{"update available", "1.0.0", "1.1.0", true},
		{"on latest", "1.1.0", "1.1.0", false},
		{"ahead of latest", "1.2.0", "1.1.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsUpdateAvailable(tt.current, tt.latest)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("IsUpdateAvailable(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.expected)
			}
		})
	}
}

func TestCache(t *testing.T) {
	t.Run("missing file returns nil", func(t *testing.T) {
		cache, err := LoadCache(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache != nil {
			t.Error("expected nil cache for missing file")
		}
	})

	t.Run("save and load round trip", func(t *testing.T) {
		tmp := t.TempDir()
		original := &VersionCache{
			LatestVersion:   "1.2.0",
			CurrentVersion:  "1.1.0",
			CheckedAt:       time.Now().Truncate(time.Second),
			UpdateAvailable: true,
		}
		if err := SaveCache(tmp, original); err != nil {
			t.Fatalf("SaveCache failed: %v", err)
		}
		loaded, err := LoadCache(tmp)
		if err != nil {
			t.Fatalf("LoadCache failed: %v", err)
		}
		if loaded.LatestVersion != "1.2.0" || loaded.CurrentVersion != "1.1.0" {
			t.Errorf("loaded = %+v", loaded)
		}
		if !loaded.UpdateAvailable {
			t.Error("UpdateAvailable should be true")
		}
	})

	t.Run("corrupted file errors", func(t *testing.T) {
		tmp := t.TempDir()
		os.WriteFile(filepath.Join(tmp, cacheFileName), []byte("not json{{"), 0644)
		if _, err := LoadCache(tmp); err == nil {
			t.Error("expected error for corrupted cache")
		}
	})

	t.Run("staleness", func(t *testing.T) {
		if !IsCacheStale(nil, time.Hour) {
			t.Error("nil cache should be stale")
		}
		fresh := &VersionCache{CheckedAt: time.Now()}
		if IsCacheStale(fresh, time.Hour) {
			t.Error("fresh cache should not be stale")
		}
		old := &VersionCache{CheckedAt: time.Now().Add(-2 * time.Hour)}
		if !IsCacheStale(old, time.Hour) {
			t.Error("old cache should be stale")
		}
	})
}

func TestCheckLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.4.0", "html_url": "https://example.invalid/release"}`)
	}))
	defer srv.Close()

	u := New("1.0.0", WithHTTPClient(srv.Client()), WithAPIBase(srv.URL))
	release, err := u.CheckLatestVersion()
	if err != nil {
		t.Fatalf("CheckLatestVersion() error: %v", err)
	}
	if release.Version != "v1.4.0" {
		t.Errorf("Version = %q, want v1.4.0", release.Version)
	}
}

func TestCheckLatestVersionErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u := New("1.0.0", WithHTTPClient(srv.Client()), WithAPIBase(srv.URL))
	if _, err := u.CheckLatestVersion(); err == nil {
		t.Error("expected error for 404 response")
	}
}
