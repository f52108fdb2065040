package config

// Engine defaults.
const (
	DefaultEngineKind = "basic"
)

// Input defaults.
const (
	DefaultInputMaxSize     = "16MB"
	DefaultInputSchemaCheck = true
)

// Export defaults.
const (
	DefaultExportFormat    = "json"
	DefaultExportCompress  = false
	DefaultExportDirectory = "."
)

// Report defaults.
const (
	DefaultReportWidth         = 0
	DefaultReportNoColor       = false
	DefaultReportShowBenchmark = true
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)
