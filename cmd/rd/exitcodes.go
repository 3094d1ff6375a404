package main

// Exit codes for rd commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (not in a library, invalid paths)
	ExitDataError   = 3 // Data error (malformed input, validation failure)
)
