package model

// FileElement is a closed variant over the loose file entries a project
// or workspace can track: individual files, or a folder tracked as a
// single opaque unit.
type FileElement interface {
	isFileElement()
}

// FileReference tracks a single file.
type FileReference struct {
	// Path is the absolute path to the file.
	Path string `json:"path"`
}

// FolderReference tracks a directory as one opaque unit; its contents
// are not individually enumerated.
type FolderReference struct {
	// Path is the absolute path to the directory.
	Path string `json:"path"`
}

func (FileReference) isFileElement()   {}
func (FolderReference) isFileElement() {}
