package config

// emberFile represents the structure of the .ember.yaml configuration file.
type emberFile struct {
	AppDir         string `yaml:"appDir"`
	TickInterval   string `yaml:"tickInterval"`
	DebounceWindow string `yaml:"debounceWindow"`
	LogJSON        bool   `yaml:"logJson"`
}
