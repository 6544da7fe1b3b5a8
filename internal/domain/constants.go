package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for the config file (rw-------)
	ConfigFilePermissions = 0o600
)

// Defaults applied when the config file omits a setting.
const (
	DefaultMaxHistorySize = 1000
	DefaultPrecision      = 6
	DefaultMaxInputValue  = 1e12
	DefaultEncoding       = "utf-8"
	DefaultBackend        = BackendCSV
)

// Rounding precision bounds (decimal places).
const (
	MinPrecision = 0
	MaxPrecision = 18
)

// History storage backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Names of the files kept under the configured directories.
const (
	HistoryCSVFileName    = "history.csv"
	HistorySQLiteFileName = "history.db"
	LogFileName           = "calcli.log"
)
