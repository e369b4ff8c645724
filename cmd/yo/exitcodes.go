package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // Usage error, missing notes home or I/O failure
	ExitConfigError = 2 // Config file unreadable or malformed
)
