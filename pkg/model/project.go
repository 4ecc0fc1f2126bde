package model

// Project is a resolved project.
type Project struct {
	// Path is the absolute path to the project's root directory.
	Path string `json:"path"`

	Name string `json:"name"`

	Settings *Settings `json:"settings,omitempty"`

	// FilesGroup labels the group loose files are placed under in the
	// generated project.
	FilesGroup string `json:"files_group"`

	// Targets holds the declared targets in declaration order, followed
	// by the synthesized manifest target appended last.
	Targets []Target `json:"targets"`

	Schemes []Scheme `json:"schemes,omitempty"`

	AdditionalFiles []FileElement `json:"additional_files,omitempty"`
}

// WithTarget returns a copy of the project with t appended to its
// target list. The receiver is not modified.
func (p Project) WithTarget(t Target) Project {
	targets := make([]Target, 0, len(p.Targets)+1)
	targets = append(targets, p.Targets...)
	targets = append(targets, t)
	p.Targets = targets
	return p
}

// Workspace is a resolved workspace.
type Workspace struct {
	Name string `json:"name"`

	// Projects are the absolute root directories of the member
	// projects. Each was confirmed to contain a project manifest at
	// resolution time.
	Projects []string `json:"projects"`

	AdditionalFiles []FileElement `json:"additional_files,omitempty"`
}
