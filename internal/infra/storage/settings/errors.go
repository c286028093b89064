package settings

import "errors"

var (
	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrDecode is returned when a stored settings document cannot be
	// decoded into its typed form
	ErrDecode = errors.New("settings.repository: failed to decode setting")

	// ErrEncode is returned when a settings document cannot be serialized
	ErrEncode = errors.New("settings.repository: failed to encode setting")
)
