package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".mtr"
	// EnvOutputDir overrides the output directory
	EnvOutputDir = "MTR_OUTPUT_DIR"
	// EnvOutputFile overrides the output file name
	EnvOutputFile = "MTR_OUTPUT_FILE"
	// EnvHistoryDSN enables the MySQL run-history sink when set
	EnvHistoryDSN = "MTR_HISTORY_DSN"
)
