package domain

import "go.trai.ch/zerr"

var (
	// ErrFatal marks an unrecoverable condition that must halt the whole build.
	ErrFatal = zerr.New("fatal build error")

	// ErrToolMissing is returned when a required external binary is not on the search path.
	ErrToolMissing = zerr.New("tool not found in PATH")

	// ErrBuildStepFailed is returned when an external build step exits with a non-zero status.
	ErrBuildStepFailed = zerr.New("build step failed")

	// ErrInvalidDependencyName is returned when a dependency name cannot be used as a path component.
	ErrInvalidDependencyName = zerr.New("invalid dependency name, expected alphanumeric characters, dots, hyphens and underscores")

	// ErrActionExists is returned when an action declares a target that is already registered.
	ErrActionExists = zerr.New("action target already registered")

	// ErrEmptyAction is returned when an action has neither a command nor a function.
	ErrEmptyAction = zerr.New("action has no command")

	// ErrCommandFailed is returned when a subprocess cannot be started or exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrEmptyCommand is returned when a command has no arguments.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrInvalidPattern is returned when a glob pattern cannot be compiled.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrWalkFailed is returned when a directory tree cannot be traversed.
	ErrWalkFailed = zerr.New("failed to walk directory")

	// ErrMarkerStatFailed is returned when a completion marker cannot be inspected.
	ErrMarkerStatFailed = zerr.New("failed to stat completion marker")

	// ErrBuildLogCreateFailed is returned when the builder log file cannot be created.
	ErrBuildLogCreateFailed = zerr.New("failed to create build log")

	// ErrStoreCreateFailed is returned when the bootstrap record directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create bootstrap record directory")

	// ErrStoreReadFailed is returned when a bootstrap record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read bootstrap record")

	// ErrStoreUnmarshalFailed is returned when a bootstrap record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal bootstrap record")

	// ErrStoreMarshalFailed is returned when a bootstrap record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal bootstrap record")

	// ErrStoreWriteFailed is returned when a bootstrap record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write bootstrap record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find envkit.yaml")

	// ErrInvalidPrettyMode is returned when the pretty setting is not one of auto, true or false.
	ErrInvalidPrettyMode = zerr.New("invalid pretty mode, expected 'auto', 'true' or 'false'")

	// ErrInvalidCheck is returned when a capability check is missing its header or expression.
	ErrInvalidCheck = zerr.New("invalid capability check")

	// ErrUnsupportedLanguage is returned when a capability check uses a language without a known compiler.
	ErrUnsupportedLanguage = zerr.New("unsupported check language")

	// ErrCleanFailed is returned when removing a directory or file fails.
	ErrCleanFailed = zerr.New("failed to clean path")

	// ErrCheckFailed is returned when a capability check reports the capability as unavailable.
	ErrCheckFailed = zerr.New("capability check failed")

	// ErrNoDependencies is returned when bootstrap is requested without any dependency names.
	ErrNoDependencies = zerr.New("no dependencies specified")
)
