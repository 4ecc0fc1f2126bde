package model

// Platform identifies the platform a target is built for.
type Platform string

const (
	// PlatformIOS targets iOS devices and simulators.
	PlatformIOS Platform = "ios"

	// PlatformMacOS targets macOS.
	PlatformMacOS Platform = "macos"

	// PlatformTvOS targets tvOS.
	PlatformTvOS Platform = "tvos"
)

// Product identifies the kind of artifact a target produces.
type Product string

const (
	ProductApp            Product = "app"
	ProductStaticLibrary  Product = "staticLibrary"
	ProductDynamicLibrary Product = "dynamicLibrary"
	ProductFramework      Product = "framework"
	ProductUnitTests      Product = "unitTests"
	ProductUITests        Product = "uiTests"
)

// BuildConfiguration selects a build configuration.
type BuildConfiguration string

const (
	ConfigurationDebug   BuildConfiguration = "debug"
	ConfigurationRelease BuildConfiguration = "release"
)

// ActionOrder places a target action before or after the build.
type ActionOrder string

const (
	ActionOrderPre  ActionOrder = "pre"
	ActionOrderPost ActionOrder = "post"
)
