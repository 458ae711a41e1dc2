package domain

// ProjectSettings is the project-level settings snapshot carried by the
// cache. The cache never interprets these values; it only keeps the most
// recently applied copy so that a workspace save persists a consistent
// pair of content and settings.
type ProjectSettings struct {
	ApplicationName       string `json:"application_name"`
	ApplicationVersion    string `json:"application_version"`
	ApplicationIdentifier string `json:"application_identifier"`
	ApplicationLibrary    string `json:"application_library"`
	WorkingFolder         string `json:"working_folder"`
	WindowWidth           uint   `json:"window_width"`
	WindowHeight          uint   `json:"window_height"`
	WindowCanResize       bool   `json:"window_can_resize"`
	WindowVsync           bool   `json:"window_vsync"`
	MultisampleCount      uint   `json:"multisample_sample_count"`
	TicksPerSecond        uint   `json:"ticks_per_second"`
	UpdatesPerSecond      uint   `json:"updates_per_second"`
}

// DefaultProjectSettings returns the settings a freshly created workspace
// starts with.
func DefaultProjectSettings() ProjectSettings {
	return ProjectSettings{
		ApplicationLibrary: "app://libGameEngine.so",
		WorkingFolder:      "${workspace}",
		WindowWidth:        1024,
		WindowHeight:       768,
		WindowCanResize:    true,
		MultisampleCount:   4,
		TicksPerSecond:     1,
		UpdatesPerSecond:   60,
	}
}
