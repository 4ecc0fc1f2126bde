package vfs

import (
	"reflect"
	"testing"

	"github.com/go-git/go-billy/v5/util"
)

func newTestFS(t *testing.T, files []string, dirs []string) *BillyFS {
	t.Helper()
	fs := NewInMemoryFS()
	for _, f := range files {
		if err := util.WriteFile(fs.Raw(), f, []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
	for _, d := range dirs {
		if err := fs.Raw().MkdirAll(d, 0755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	return fs
}

func TestBillyFS_Exists(t *testing.T) {
	fs := newTestFS(t, []string{"/app/main.swift"}, nil)

	ok, err := fs.Exists("/app/main.swift")
	if err != nil || !ok {
		t.Errorf("expected existing file, got ok=%v err=%v", ok, err)
	}

	ok, err = fs.Exists("/app/missing.swift")
	if err != nil || ok {
		t.Errorf("expected missing file, got ok=%v err=%v", ok, err)
	}
}

func TestBillyFS_IsDirectory(t *testing.T) {
	fs := newTestFS(t, []string{"/app/main.swift"}, []string{"/app/empty"})

	tests := []struct {
		path string
		want bool
	}{
		{"/app", true},
		{"/app/empty", true},
		{"/app/main.swift", false},
		{"/nope", false},
	}
	for _, tt := range tests {
		got, err := fs.IsDirectory(tt.path)
		if err != nil {
			t.Errorf("IsDirectory(%s): %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("IsDirectory(%s) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestBillyFS_Glob(t *testing.T) {
	fs := newTestFS(t, []string{
		"/app/Sources/b.swift",
		"/app/Sources/a.swift",
		"/app/Sources/Nested/c.swift",
		"/app/Resources/logo.png",
	}, nil)

	tests := []struct {
		name    string
		dir     string
		pattern string
		want    []string
	}{
		{
			name:    "single level",
			dir:     "/app",
			pattern: "Sources/*.swift",
			want:    []string{"/app/Sources/a.swift", "/app/Sources/b.swift"},
		},
		{
			name:    "doublestar crosses directories",
			dir:     "/app",
			pattern: "Sources/**/*.swift",
			want: []string{
				"/app/Sources/Nested/c.swift",
				"/app/Sources/a.swift",
				"/app/Sources/b.swift",
			},
		},
		{
			name:    "directories match too",
			dir:     "/app",
			pattern: "*",
			want:    []string{"/app/Resources", "/app/Sources"},
		},
		{
			name:    "no matches",
			dir:     "/app",
			pattern: "*.md",
			want:    nil,
		},
		{
			name:    "missing anchor is empty not error",
			dir:     "/gone",
			pattern: "*",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Glob(tt.dir, tt.pattern)
			if err != nil {
				t.Fatalf("Glob: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Glob(%s, %s) = %v, want %v", tt.dir, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestBillyFS_GlobDeterministic(t *testing.T) {
	fs := newTestFS(t, []string{
		"/app/z.swift",
		"/app/a.swift",
		"/app/m.swift",
	}, nil)

	first, err := fs.Glob("/app", "*.swift")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := fs.Glob("/app", "*.swift")
		if err != nil {
			t.Fatalf("Glob: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Glob not deterministic: %v vs %v", first, again)
		}
	}
	want := []string{"/app/a.swift", "/app/m.swift", "/app/z.swift"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("Glob order = %v, want sorted %v", first, want)
	}
}

func TestBillyFS_GlobBadPattern(t *testing.T) {
	fs := newTestFS(t, []string{"/app/a.swift"}, nil)
	if _, err := fs.Glob("/app", "[unclosed"); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
