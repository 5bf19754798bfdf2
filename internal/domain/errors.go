package domain

import "errors"

// Error kinds surfaced by the dispatch pipeline. Concrete errors wrap one of
// these; match them with errors.Is.
var (
	// ErrConfigFileNotFound means a declared config path does not exist.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrConfigLoad means a config file exists but is not valid YAML.
	ErrConfigLoad = errors.New("config file could not be loaded")
	// ErrActionAttrsMissing means verb, object or params is missing.
	ErrActionAttrsMissing = errors.New("action attributes missing")
	// ErrActionPathMissing means the action's executable is not a regular file.
	ErrActionPathMissing = errors.New("action path missing")
	// ErrWrongSyntax means the command does not match verb:object[:context] params.
	ErrWrongSyntax = errors.New("wrong syntax")
	// ErrActionNotFound means no action is registered for the command.
	ErrActionNotFound = errors.New("no matching action")
)
