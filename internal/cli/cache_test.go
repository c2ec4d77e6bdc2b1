package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/domsearch/pkg/cache"
)

func TestCachePathCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	c, out := newTestCLI()
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path: %v", err)
	}

	want := filepath.Join("/tmp/xdg-test", appName)
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	fc, err := cache.NewFileCache(filepath.Join(xdg, appName))
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(context.Background(), "solution:abc", []byte("{}"), 0); err != nil {
		t.Fatal(err)
	}

	c, out := newTestCLI()
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 1 stored solutions") {
		t.Errorf("unexpected output %q", out.String())
	}

	out.Reset()
	root = c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out.String(), "Cache is empty") {
		t.Errorf("unexpected output %q", out.String())
	}
}
