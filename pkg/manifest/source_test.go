package manifest

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/util"

	"github.com/quarry-build/quarry/pkg/vfs"
)

func writeManifest(t *testing.T, fs *vfs.BillyFS, path, content string) {
	t.Helper()
	if err := util.WriteFile(fs.Raw(), path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestYAMLSource_LoadProject(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   string
		checkFunc func(*testing.T, *Project)
	}{
		{
			name: "valid project",
			content: `
name: App
filesGroup: Sources
targets:
  - name: App
    platform: ios
    product: app
    bundleId: com.example.app
    infoPlist: Info.plist
    sources:
      - "Sources/**/*.swift"
    dependencies:
      - type: target
        name: Kit
`,
			checkFunc: func(t *testing.T, m *Project) {
				if m.Name != "App" {
					t.Errorf("expected name App, got %s", m.Name)
				}
				if len(m.Targets) != 1 {
					t.Fatalf("expected 1 target, got %d", len(m.Targets))
				}
				if m.Targets[0].Platform != PlatformIOS {
					t.Errorf("expected platform ios, got %s", m.Targets[0].Platform)
				}
				if len(m.Targets[0].Dependencies) != 1 || m.Targets[0].Dependencies[0].Name != "Kit" {
					t.Errorf("unexpected dependencies: %v", m.Targets[0].Dependencies)
				}
			},
		},
		{
			name: "unknown field rejected",
			content: `
name: App
bogus: true
`,
			wantErr: "decode",
		},
		{
			name: "missing name rejected",
			content: `
targets: []
`,
			wantErr: "validate",
		},
		{
			name: "bad platform tag rejected",
			content: `
name: App
targets:
  - name: App
    platform: amiga
    product: app
    bundleId: com.example.app
    infoPlist: Info.plist
`,
			wantErr: "validate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := vfs.NewInMemoryFS()
			writeManifest(t, fs, "/app/Project.yml", tt.content)

			m, err := NewYAMLSource(fs).LoadProject("/app")
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadProject: %v", err)
			}
			tt.checkFunc(t, m)
		})
	}
}

func TestYAMLSource_LoadWorkspace(t *testing.T) {
	fs := vfs.NewInMemoryFS()
	writeManifest(t, fs, "/ws/Workspace.yml", `
name: Monorepo
projects:
  - "Projects/*"
additionalFiles:
  - glob: "Docs/**"
  - folderReference: Assets
`)

	m, err := NewYAMLSource(fs).LoadWorkspace("/ws")
	if err != nil {
		t.Fatalf("LoadWorkspace: %v", err)
	}
	if m.Name != "Monorepo" {
		t.Errorf("expected name Monorepo, got %s", m.Name)
	}
	if len(m.Projects) != 1 || m.Projects[0] != "Projects/*" {
		t.Errorf("unexpected projects: %v", m.Projects)
	}
	if len(m.AdditionalFiles) != 2 {
		t.Fatalf("expected 2 additional files, got %d", len(m.AdditionalFiles))
	}
	if m.AdditionalFiles[1].FolderReference != "Assets" {
		t.Errorf("unexpected folder reference: %v", m.AdditionalFiles[1])
	}
}

func TestYAMLSource_MissingManifest(t *testing.T) {
	fs := vfs.NewInMemoryFS()
	if _, err := NewYAMLSource(fs).LoadProject("/nowhere"); err == nil {
		t.Error("expected error for missing manifest file")
	}
}
