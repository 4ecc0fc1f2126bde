package model

// Dependency is a closed variant over the ways a target can depend on
// another build product. The concrete types are TargetDependency,
// ProjectDependency, FrameworkDependency and LibraryDependency; no
// other implementations exist.
type Dependency interface {
	isDependency()
}

// TargetDependency references a target declared in the same project.
type TargetDependency struct {
	// Name is the depended-on target's name.
	Name string `json:"name"`
}

// ProjectDependency references a target declared in another project.
type ProjectDependency struct {
	// Target is the depended-on target's name within the other project.
	Target string `json:"target"`

	// Path is the absolute path to the other project's root directory.
	Path string `json:"path"`
}

// FrameworkDependency references a prebuilt framework bundle.
type FrameworkDependency struct {
	// Path is the absolute path to the framework bundle.
	Path string `json:"path"`
}

// LibraryDependency references a prebuilt static or dynamic library.
type LibraryDependency struct {
	// Path is the absolute path to the library binary.
	Path string `json:"path"`

	// PublicHeaders is the absolute path to the library's public
	// headers directory.
	PublicHeaders string `json:"public_headers"`

	// SwiftModuleMap is the absolute path to the library's module map,
	// or empty when the manifest declared none.
	SwiftModuleMap string `json:"swift_module_map,omitempty"`
}

func (TargetDependency) isDependency()    {}
func (ProjectDependency) isDependency()   {}
func (FrameworkDependency) isDependency() {}
func (LibraryDependency) isDependency()   {}
