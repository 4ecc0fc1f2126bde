package model

// Headers groups a target's header files by visibility. A group the
// manifest omitted resolves to an empty set.
type Headers struct {
	Public  []string `json:"public,omitempty"`
	Private []string `json:"private,omitempty"`
	Project []string `json:"project,omitempty"`
}

// CoreDataModel is a resolved data-model bundle.
type CoreDataModel struct {
	// Path is the absolute path to the model bundle; its existence was
	// verified at resolution time.
	Path string `json:"path"`

	// Versions are the absolute paths of the version sub-bundles
	// discovered inside the bundle.
	Versions []string `json:"versions"`

	// CurrentVersion is the declared current version name. It is not
	// required to match any discovered version.
	CurrentVersion string `json:"current_version"`
}

// TargetAction is a script or tool invocation run before or after a
// target's build.
type TargetAction struct {
	// Name labels the action in the generated project.
	Name string `json:"name"`

	// Order places the action before or after the build.
	Order ActionOrder `json:"order"`

	// Path is the absolute path to the script to run, or empty when the
	// action invokes a tool by name instead.
	Path string `json:"path,omitempty"`

	// Tool is the tool name to invoke, or empty when Path is set.
	Tool string `json:"tool,omitempty"`

	// Arguments are passed to the script or tool.
	Arguments []string `json:"arguments,omitempty"`
}

// Target is a resolved build target.
type Target struct {
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
	Product  Product  `json:"product"`

	// BundleID is the product's bundle identifier.
	BundleID string `json:"bundle_id"`

	// InfoPlist is the absolute path to the target's Info.plist.
	InfoPlist string `json:"info_plist"`

	// Entitlements is the absolute path to the entitlements file, or
	// empty when the manifest declared none.
	Entitlements string `json:"entitlements,omitempty"`

	Settings *Settings `json:"settings,omitempty"`

	// Sources are the absolute paths of the target's source files, in
	// stable sorted order.
	Sources []string `json:"sources"`

	// Resources are the absolute paths of the target's resource files,
	// in stable sorted order.
	Resources []string `json:"resources,omitempty"`

	Headers *Headers `json:"headers,omitempty"`

	CoreDataModels []CoreDataModel `json:"core_data_models,omitempty"`

	// Actions run around the target's build, in declaration order.
	Actions []TargetAction `json:"actions,omitempty"`

	// Environment is exposed to the running product.
	Environment map[string]string `json:"environment,omitempty"`

	Dependencies []Dependency `json:"dependencies,omitempty"`
}
