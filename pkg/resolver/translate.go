package resolver

import (
	"fmt"

	"github.com/quarry-build/quarry/pkg/diag"
	"github.com/quarry-build/quarry/pkg/manifest"
	"github.com/quarry-build/quarry/pkg/model"
)

// defaultFilesGroup labels loose files when the manifest omits a group.
const defaultFilesGroup = "Project"

// translateProject converts a project manifest anchored at dir into a
// resolved project. The synthesized manifest target is not appended
// here; see withManifestTarget.
func (s *session) translateProject(m *manifest.Project, dir string) (model.Project, error) {
	targets := make([]model.Target, 0, len(m.Targets))
	for _, mt := range m.Targets {
		t, err := s.translateTarget(mt, dir)
		if err != nil {
			return model.Project{}, fmt.Errorf("target %q: %w", mt.Name, err)
		}
		targets = append(targets, t)
	}

	schemes := make([]model.Scheme, 0, len(m.Schemes))
	for _, ms := range m.Schemes {
		schemes = append(schemes, translateScheme(ms))
	}

	additional, err := s.translateFileElements(m.AdditionalFiles, dir)
	if err != nil {
		return model.Project{}, err
	}

	filesGroup := m.FilesGroup
	if filesGroup == "" {
		filesGroup = defaultFilesGroup
	}

	return model.Project{
		Path:            dir,
		Name:            m.Name,
		Settings:        translateSettings(m.Settings, dir),
		FilesGroup:      filesGroup,
		Targets:         targets,
		Schemes:         schemes,
		AdditionalFiles: additional,
	}, nil
}

// translateTarget converts a target manifest anchored at dir.
func (s *session) translateTarget(m manifest.Target, dir string) (model.Target, error) {
	platform, err := translatePlatform(m.Platform)
	if err != nil {
		return model.Target{}, err
	}

	sources, err := s.globAll(dir, m.Sources, s.isFile)
	if err != nil {
		return model.Target{}, err
	}

	resources, err := s.globAll(dir, m.Resources, s.isResource)
	if err != nil {
		return model.Target{}, err
	}

	headers, err := s.translateHeaders(m.Headers, dir)
	if err != nil {
		return model.Target{}, err
	}

	dataModels := make([]model.CoreDataModel, 0, len(m.CoreDataModels))
	for _, md := range m.CoreDataModels {
		dm, err := s.translateCoreDataModel(md, dir)
		if err != nil {
			return model.Target{}, err
		}
		dataModels = append(dataModels, dm)
	}

	actions := make([]model.TargetAction, 0, len(m.Actions))
	for _, ma := range m.Actions {
		actions = append(actions, translateTargetAction(ma, dir))
	}

	deps := make([]model.Dependency, 0, len(m.Dependencies))
	for _, md := range m.Dependencies {
		deps = append(deps, translateDependency(md, dir))
	}

	entitlements := ""
	if m.Entitlements != "" {
		entitlements = resolvePath(dir, m.Entitlements)
	}

	return model.Target{
		Name:           m.Name,
		Platform:       platform,
		Product:        translateProduct(m.Product),
		BundleID:       m.BundleID,
		InfoPlist:      resolvePath(dir, m.InfoPlist),
		Entitlements:   entitlements,
		Settings:       translateSettings(m.Settings, dir),
		Sources:        sources,
		Resources:      resources,
		Headers:        headers,
		CoreDataModels: dataModels,
		Actions:        actions,
		Environment:    m.Environment,
		Dependencies:   deps,
	}, nil
}

// globAll expands each pattern in order and concatenates the results.
func (s *session) globAll(dir string, patterns []string, include includeFn) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		matches, err := s.glob(dir, pattern, include)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

// translatePlatform maps a platform tag. watchOS is gated explicitly
// until the generator implements it.
func translatePlatform(p manifest.Platform) (model.Platform, error) {
	switch p {
	case manifest.PlatformIOS:
		return model.PlatformIOS, nil
	case manifest.PlatformMacOS:
		return model.PlatformMacOS, nil
	case manifest.PlatformTvOS:
		return model.PlatformTvOS, nil
	case manifest.PlatformWatchOS:
		return "", NewFeatureNotSupportedError("watchOS targets are not supported yet")
	default:
		panic(fmt.Sprintf("unhandled platform %q", p))
	}
}

// translateProduct maps a product tag.
func translateProduct(p manifest.Product) model.Product {
	switch p {
	case manifest.ProductApp:
		return model.ProductApp
	case manifest.ProductStaticLibrary:
		return model.ProductStaticLibrary
	case manifest.ProductDynamicLibrary:
		return model.ProductDynamicLibrary
	case manifest.ProductFramework:
		return model.ProductFramework
	case manifest.ProductUnitTests:
		return model.ProductUnitTests
	case manifest.ProductUITests:
		return model.ProductUITests
	default:
		panic(fmt.Sprintf("unhandled product %q", p))
	}
}

// translateBuildConfiguration maps a build configuration tag.
func translateBuildConfiguration(c manifest.BuildConfiguration) model.BuildConfiguration {
	switch c {
	case manifest.ConfigurationDebug:
		return model.ConfigurationDebug
	case manifest.ConfigurationRelease:
		return model.ConfigurationRelease
	default:
		panic(fmt.Sprintf("unhandled configuration %q", c))
	}
}

// translateDependency maps a dependency declaration, anchoring its
// paths at dir.
func translateDependency(d manifest.Dependency, dir string) model.Dependency {
	switch d.Type {
	case manifest.DependencyTarget:
		return model.TargetDependency{Name: d.Name}
	case manifest.DependencyProject:
		return model.ProjectDependency{
			Target: d.Target,
			Path:   resolvePath(dir, d.Path),
		}
	case manifest.DependencyFramework:
		return model.FrameworkDependency{Path: resolvePath(dir, d.Path)}
	case manifest.DependencyLibrary:
		moduleMap := ""
		if d.SwiftModuleMap != "" {
			moduleMap = resolvePath(dir, d.SwiftModuleMap)
		}
		return model.LibraryDependency{
			Path:           resolvePath(dir, d.Path),
			PublicHeaders:  resolvePath(dir, d.PublicHeaders),
			SwiftModuleMap: moduleMap,
		}
	default:
		panic(fmt.Sprintf("unhandled dependency type %q", d.Type))
	}
}

// translateCoreDataModel resolves the model bundle, requires it to
// exist, and discovers its version sub-bundles. The declared current
// version is carried through without checking it against the discovered
// set.
func (s *session) translateCoreDataModel(m manifest.CoreDataModel, dir string) (model.CoreDataModel, error) {
	path := resolvePath(dir, m.Path)
	if err := s.ensureExists(path); err != nil {
		return model.CoreDataModel{}, err
	}

	versions, err := s.glob(path, "*.xcdatamodel", nil)
	if err != nil {
		return model.CoreDataModel{}, err
	}

	return model.CoreDataModel{
		Path:           path,
		Versions:       versions,
		CurrentVersion: m.CurrentVersion,
	}, nil
}

// translateHeaders resolves each visibility group independently; a
// group the manifest omitted stays empty.
func (s *session) translateHeaders(h *manifest.Headers, dir string) (*model.Headers, error) {
	if h == nil {
		return nil, nil
	}

	public, err := s.globAll(dir, h.Public, s.isFile)
	if err != nil {
		return nil, err
	}
	private, err := s.globAll(dir, h.Private, s.isFile)
	if err != nil {
		return nil, err
	}
	project, err := s.globAll(dir, h.Project, s.isFile)
	if err != nil {
		return nil, err
	}

	return &model.Headers{
		Public:  public,
		Private: private,
		Project: project,
	}, nil
}

// translateTargetAction maps a target action, anchoring its script path
// at dir.
func translateTargetAction(a manifest.TargetAction, dir string) model.TargetAction {
	order := model.ActionOrderPre
	if a.Order == manifest.ActionOrderPost {
		order = model.ActionOrderPost
	}

	path := ""
	if a.Path != "" {
		path = resolvePath(dir, a.Path)
	}

	return model.TargetAction{
		Name:      a.Name,
		Order:     order,
		Path:      path,
		Tool:      a.Tool,
		Arguments: a.Arguments,
	}
}

// translateFileElements maps loose file declarations. Globs expand to
// individual file references; folder references must denote existing
// directories or they resolve to nothing with a warning.
func (s *session) translateFileElements(elements []manifest.FileElement, dir string) ([]model.FileElement, error) {
	var out []model.FileElement
	for _, fe := range elements {
		resolved, err := s.translateFileElement(fe, dir)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved...)
	}
	return out, nil
}

func (s *session) translateFileElement(fe manifest.FileElement, dir string) ([]model.FileElement, error) {
	if fe.FolderReference != "" {
		path := resolvePath(dir, fe.FolderReference)
		isDir, err := s.fs.IsDirectory(path)
		if err != nil {
			return nil, fmt.Errorf("folder reference %q: %w", path, err)
		}
		if !isDir {
			s.sink.Warn(diag.Warning{
				Message: "folder reference path is not an existing directory",
				Path:    path,
			})
			return nil, nil
		}
		return []model.FileElement{model.FolderReference{Path: path}}, nil
	}

	matches, err := s.glob(dir, fe.Glob, s.isFile)
	if err != nil {
		return nil, err
	}
	out := make([]model.FileElement, 0, len(matches))
	for _, m := range matches {
		out = append(out, model.FileReference{Path: m})
	}
	return out, nil
}

// translateSettings maps build settings, anchoring xcconfig paths at
// dir.
func translateSettings(st *manifest.Settings, dir string) *model.Settings {
	if st == nil {
		return nil
	}
	return &model.Settings{
		Base:    st.Base,
		Debug:   translateConfiguration(st.Debug, dir),
		Release: translateConfiguration(st.Release, dir),
	}
}

// translateConfiguration maps a single configuration overlay.
func translateConfiguration(c *manifest.Configuration, dir string) *model.Configuration {
	if c == nil {
		return nil
	}
	xcconfig := ""
	if c.XCConfig != "" {
		xcconfig = resolvePath(dir, c.XCConfig)
	}
	return &model.Configuration{
		Settings: c.Settings,
		XCConfig: xcconfig,
	}
}

// translateScheme maps a scheme and its actions; schemes carry no
// filesystem references.
func translateScheme(sc manifest.Scheme) model.Scheme {
	out := model.Scheme{
		Name:   sc.Name,
		Shared: sc.Shared,
	}
	if sc.BuildAction != nil {
		out.BuildAction = &model.BuildAction{Targets: sc.BuildAction.Targets}
	}
	if sc.TestAction != nil {
		out.TestAction = &model.TestAction{
			Targets:   sc.TestAction.Targets,
			Config:    translateBuildConfiguration(sc.TestAction.Config),
			Coverage:  sc.TestAction.Coverage,
			Arguments: translateArguments(sc.TestAction.Arguments),
		}
	}
	if sc.RunAction != nil {
		out.RunAction = &model.RunAction{
			Config:     translateBuildConfiguration(sc.RunAction.Config),
			Executable: sc.RunAction.Executable,
			Arguments:  translateArguments(sc.RunAction.Arguments),
		}
	}
	return out
}

// translateArguments maps scheme action arguments.
func translateArguments(a *manifest.Arguments) *model.Arguments {
	if a == nil {
		return nil
	}
	return &model.Arguments{
		Environment:     a.Environment,
		LaunchArguments: a.LaunchArguments,
	}
}
