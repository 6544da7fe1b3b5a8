package domain

// Config is the full application configuration declared in the config file.
// The core treats a loaded Config as an immutable value.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Logging             LoggingSettings `yaml:"logging"`
	History             HistorySettings `yaml:"history"`
	Input               InputSettings   `yaml:"input"`
}

// LoggingSettings controls where the application log is written.
type LoggingSettings struct {
	Dir     string `yaml:"dir"`
	Verbose bool   `yaml:"verbose"`
}

// HistorySettings controls the calculation history and its persistence.
type HistorySettings struct {
	Dir      string `yaml:"dir"`
	MaxSize  int    `yaml:"max_size"`
	AutoSave bool   `yaml:"auto_save"`
	Backend  string `yaml:"backend"`
	Encoding string `yaml:"encoding"`
}

// InputSettings bounds user-supplied operands and result rounding.
type InputSettings struct {
	Precision     int     `yaml:"precision"`
	MaxInputValue float64 `yaml:"max_input_value"`
}
