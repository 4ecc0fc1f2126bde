package model

// Configuration holds build settings for a single build configuration,
// optionally backed by an xcconfig file.
type Configuration struct {
	// Settings are the build settings for this configuration.
	Settings map[string]string `json:"settings,omitempty"`

	// XCConfig is the absolute path to a settings file layered under
	// Settings, or empty when the manifest declared none.
	XCConfig string `json:"xcconfig,omitempty"`
}

// Settings holds base build settings plus per-configuration overlays.
type Settings struct {
	// Base applies to every configuration.
	Base map[string]string `json:"base,omitempty"`

	// Debug overlays Base for the debug configuration.
	Debug *Configuration `json:"debug,omitempty"`

	// Release overlays Base for the release configuration.
	Release *Configuration `json:"release,omitempty"`
}
