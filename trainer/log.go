package trainer

// Verbosity is set once at process startup, before any Manager or
// operation is constructed, and read-only afterwards. 0 keeps warnings
// and errors, 1 adds info, 2 and above adds debug.
var verbosity int

// SetVerbosity configures how chatty the trainer's loggers are. Call it
// exactly once, before building the Manager.
func SetVerbosity(v int) {
	verbosity = v
}

func infoEnabled() bool {
	return verbosity >= 1
}

func debugEnabled() bool {
	return verbosity >= 2
}
