// export_test.go exports private functions for white-box testing.
package app

// LogFileEvent exports logFileEvent for testing.
var LogFileEvent = logFileEvent
