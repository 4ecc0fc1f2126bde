package manifest

// Platform is a manifest platform tag.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformMacOS   Platform = "macos"
	PlatformTvOS    Platform = "tvos"
	PlatformWatchOS Platform = "watchos"
)

// Product is a manifest product tag.
type Product string

const (
	ProductApp            Product = "app"
	ProductStaticLibrary  Product = "staticLibrary"
	ProductDynamicLibrary Product = "dynamicLibrary"
	ProductFramework      Product = "framework"
	ProductUnitTests      Product = "unitTests"
	ProductUITests        Product = "uiTests"
)

// BuildConfiguration is a manifest build configuration tag.
type BuildConfiguration string

const (
	ConfigurationDebug   BuildConfiguration = "debug"
	ConfigurationRelease BuildConfiguration = "release"
)

// Dependency type tags.
const (
	DependencyTarget    = "target"
	DependencyProject   = "project"
	DependencyFramework = "framework"
	DependencyLibrary   = "library"
)

// Target action order tags.
const (
	ActionOrderPre  = "pre"
	ActionOrderPost = "post"
)

// Project is the declarative description of a project.
type Project struct {
	// Name is the project name.
	Name string `yaml:"name" json:"name" validate:"required"`

	// Settings are project-wide build settings.
	Settings *Settings `yaml:"settings,omitempty" json:"settings,omitempty"`

	// FilesGroup labels the group loose files are placed under.
	// Defaults to "Project" when omitted.
	FilesGroup string `yaml:"filesGroup,omitempty" json:"filesGroup,omitempty"`

	// Targets are the project's build targets, in declaration order.
	Targets []Target `yaml:"targets,omitempty" json:"targets,omitempty" validate:"dive"`

	// Schemes are the project's schemes.
	Schemes []Scheme `yaml:"schemes,omitempty" json:"schemes,omitempty" validate:"dive"`

	// AdditionalFiles are loose files tracked alongside the targets.
	AdditionalFiles []FileElement `yaml:"additionalFiles,omitempty" json:"additionalFiles,omitempty" validate:"dive"`
}

// Target is the declarative description of a build target.
type Target struct {
	Name string `yaml:"name" json:"name" validate:"required"`

	// Platform is the platform tag (ios, macos, tvos, watchos).
	Platform Platform `yaml:"platform" json:"platform" validate:"required,oneof=ios macos tvos watchos"`

	// Product is the product tag.
	Product Product `yaml:"product" json:"product" validate:"required,oneof=app staticLibrary dynamicLibrary framework unitTests uiTests"`

	// BundleID is the product's bundle identifier.
	BundleID string `yaml:"bundleId" json:"bundleId" validate:"required"`

	// InfoPlist is the manifest-relative path to the Info.plist.
	InfoPlist string `yaml:"infoPlist" json:"infoPlist" validate:"required"`

	// Entitlements is the manifest-relative path to the entitlements
	// file, when any.
	Entitlements string `yaml:"entitlements,omitempty" json:"entitlements,omitempty"`

	Settings *Settings `yaml:"settings,omitempty" json:"settings,omitempty"`

	// Sources are glob patterns selecting the target's source files.
	Sources []string `yaml:"sources,omitempty" json:"sources,omitempty"`

	// Resources are glob patterns selecting the target's resources.
	Resources []string `yaml:"resources,omitempty" json:"resources,omitempty"`

	Headers *Headers `yaml:"headers,omitempty" json:"headers,omitempty"`

	// CoreDataModels are the target's data-model bundles.
	CoreDataModels []CoreDataModel `yaml:"coreDataModels,omitempty" json:"coreDataModels,omitempty" validate:"dive"`

	// Actions run around the target's build.
	Actions []TargetAction `yaml:"actions,omitempty" json:"actions,omitempty" validate:"dive"`

	// Environment is exposed to the running product.
	Environment map[string]string `yaml:"environment,omitempty" json:"environment,omitempty"`

	Dependencies []Dependency `yaml:"dependencies,omitempty" json:"dependencies,omitempty" validate:"dive"`
}

// Headers groups header glob patterns by visibility.
type Headers struct {
	Public  []string `yaml:"public,omitempty" json:"public,omitempty"`
	Private []string `yaml:"private,omitempty" json:"private,omitempty"`
	Project []string `yaml:"project,omitempty" json:"project,omitempty"`
}

// CoreDataModel declares a data-model bundle.
type CoreDataModel struct {
	// Path is the manifest-relative path to the model bundle.
	Path string `yaml:"path" json:"path" validate:"required"`

	// CurrentVersion is the declared current version name.
	CurrentVersion string `yaml:"currentVersion" json:"currentVersion" validate:"required"`
}

// TargetAction declares a script or tool run before or after a build.
type TargetAction struct {
	Name string `yaml:"name" json:"name" validate:"required"`

	// Order is "pre" or "post".
	Order string `yaml:"order" json:"order" validate:"required,oneof=pre post"`

	// Path is the manifest-relative path to the script, when the action
	// runs a script.
	Path string `yaml:"path,omitempty" json:"path,omitempty" validate:"required_without=Tool"`

	// Tool is the tool name, when the action invokes a tool.
	Tool string `yaml:"tool,omitempty" json:"tool,omitempty" validate:"required_without=Path"`

	Arguments []string `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// Dependency declares a dependency of a target. Type selects the
// variant; the remaining fields apply per variant.
type Dependency struct {
	// Type is one of target, project, framework, library.
	Type string `yaml:"type" json:"type" validate:"required,oneof=target project framework library"`

	// Name is the depended-on target's name (type target).
	Name string `yaml:"name,omitempty" json:"name,omitempty" validate:"required_if=Type target"`

	// Target is the depended-on target's name in the other project
	// (type project).
	Target string `yaml:"target,omitempty" json:"target,omitempty" validate:"required_if=Type project"`

	// Path is the manifest-relative path to the project directory,
	// framework bundle or library binary (types project, framework,
	// library).
	Path string `yaml:"path,omitempty" json:"path,omitempty" validate:"required_unless=Type target"`

	// PublicHeaders is the manifest-relative path to the library's
	// public headers directory (type library).
	PublicHeaders string `yaml:"publicHeaders,omitempty" json:"publicHeaders,omitempty" validate:"required_if=Type library"`

	// SwiftModuleMap is the manifest-relative path to the library's
	// module map, when any (type library).
	SwiftModuleMap string `yaml:"swiftModuleMap,omitempty" json:"swiftModuleMap,omitempty"`
}

// FileElement declares a loose file entry: either a glob expanded to
// individual files, or a folder tracked as one opaque reference.
type FileElement struct {
	// Glob selects individual files.
	Glob string `yaml:"glob,omitempty" json:"glob,omitempty" validate:"required_without=FolderReference"`

	// FolderReference tracks a directory as a single unit.
	FolderReference string `yaml:"folderReference,omitempty" json:"folderReference,omitempty" validate:"required_without=Glob"`
}

// Settings declares base build settings plus per-configuration
// overlays.
type Settings struct {
	Base    map[string]string `yaml:"base,omitempty" json:"base,omitempty"`
	Debug   *Configuration    `yaml:"debug,omitempty" json:"debug,omitempty"`
	Release *Configuration    `yaml:"release,omitempty" json:"release,omitempty"`
}

// Configuration declares settings for one build configuration.
type Configuration struct {
	Settings map[string]string `yaml:"settings,omitempty" json:"settings,omitempty"`

	// XCConfig is the manifest-relative path to a settings file.
	XCConfig string `yaml:"xcconfig,omitempty" json:"xcconfig,omitempty"`
}

// Arguments declares environment and launch arguments for a scheme
// action.
type Arguments struct {
	Environment     map[string]string `yaml:"environment,omitempty" json:"environment,omitempty"`
	LaunchArguments map[string]bool   `yaml:"launchArguments,omitempty" json:"launchArguments,omitempty"`
}

// BuildAction declares the targets a scheme builds.
type BuildAction struct {
	Targets []string `yaml:"targets" json:"targets" validate:"required,min=1"`
}

// TestAction declares how a scheme runs tests.
type TestAction struct {
	Targets   []string           `yaml:"targets" json:"targets" validate:"required,min=1"`
	Config    BuildConfiguration `yaml:"config" json:"config" validate:"required,oneof=debug release"`
	Coverage  bool               `yaml:"coverage,omitempty" json:"coverage,omitempty"`
	Arguments *Arguments         `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// RunAction declares how a scheme launches the built product.
type RunAction struct {
	Config     BuildConfiguration `yaml:"config" json:"config" validate:"required,oneof=debug release"`
	Executable string             `yaml:"executable,omitempty" json:"executable,omitempty"`
	Arguments  *Arguments         `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// Scheme declares a scheme.
type Scheme struct {
	Name   string `yaml:"name" json:"name" validate:"required"`
	Shared bool   `yaml:"shared,omitempty" json:"shared,omitempty"`

	BuildAction *BuildAction `yaml:"buildAction,omitempty" json:"buildAction,omitempty"`
	TestAction  *TestAction  `yaml:"testAction,omitempty" json:"testAction,omitempty"`
	RunAction   *RunAction   `yaml:"runAction,omitempty" json:"runAction,omitempty"`
}

// Workspace is the declarative description of a workspace.
type Workspace struct {
	Name string `yaml:"name" json:"name" validate:"required"`

	// Projects are glob patterns denoting candidate project locations,
	// relative to the workspace root.
	Projects []string `yaml:"projects,omitempty" json:"projects,omitempty"`

	AdditionalFiles []FileElement `yaml:"additionalFiles,omitempty" json:"additionalFiles,omitempty" validate:"dive"`
}
