package model

// Arguments holds the environment and launch arguments passed to a
// scheme action.
type Arguments struct {
	// Environment maps variable names to values.
	Environment map[string]string `json:"environment,omitempty"`

	// LaunchArguments maps each argument to whether it is enabled.
	LaunchArguments map[string]bool `json:"launch_arguments,omitempty"`
}

// BuildAction lists the targets a scheme builds.
type BuildAction struct {
	Targets []string `json:"targets"`
}

// TestAction describes how a scheme runs tests.
type TestAction struct {
	// Targets are the test targets to run.
	Targets []string `json:"targets"`

	// Config is the build configuration tests run under.
	Config BuildConfiguration `json:"config"`

	// Coverage enables code coverage gathering.
	Coverage bool `json:"coverage"`

	// Arguments are passed to the test runner, when declared.
	Arguments *Arguments `json:"arguments,omitempty"`
}

// RunAction describes how a scheme launches the built product.
type RunAction struct {
	// Config is the build configuration the product runs under.
	Config BuildConfiguration `json:"config"`

	// Executable is the name of the target to launch, when declared.
	Executable string `json:"executable,omitempty"`

	// Arguments are passed to the launched product, when declared.
	Arguments *Arguments `json:"arguments,omitempty"`
}

// Scheme groups build, test and run behavior under one name.
type Scheme struct {
	Name   string `json:"name"`
	Shared bool   `json:"shared"`

	BuildAction *BuildAction `json:"build_action,omitempty"`
	TestAction  *TestAction  `json:"test_action,omitempty"`
	RunAction   *RunAction   `json:"run_action,omitempty"`
}
