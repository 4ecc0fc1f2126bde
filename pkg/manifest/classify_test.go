package manifest

import (
	"reflect"
	"testing"

	"github.com/quarry-build/quarry/pkg/vfs"
)

func TestFSClassifier_Classify(t *testing.T) {
	fs := vfs.NewInMemoryFS()
	writeManifest(t, fs, "/ws/App/Project.yml", "name: App")
	writeManifest(t, fs, "/ws/Workspace.yml", "name: WS")
	writeManifest(t, fs, "/ws/Both/Project.yml", "name: Both")
	writeManifest(t, fs, "/ws/Both/Workspace.yml", "name: Both")
	writeManifest(t, fs, "/ws/Plain/readme.md", "hi")

	tests := []struct {
		dir  string
		want []Kind
	}{
		{"/ws/App", []Kind{KindProject}},
		{"/ws", []Kind{KindWorkspace}},
		{"/ws/Both", []Kind{KindProject, KindWorkspace}},
		{"/ws/Plain", nil},
		{"/ws/Missing", nil},
	}

	c := NewFSClassifier(fs)
	for _, tt := range tests {
		got, err := c.Classify(tt.dir)
		if err != nil {
			t.Errorf("Classify(%s): %v", tt.dir, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Classify(%s) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestHasKind(t *testing.T) {
	kinds := []Kind{KindProject}
	if !HasKind(kinds, KindProject) {
		t.Error("expected project kind present")
	}
	if HasKind(kinds, KindWorkspace) {
		t.Error("expected workspace kind absent")
	}
}
