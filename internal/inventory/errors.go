package inventory

// Every failure in a build is fatal: the run exits non-zero rather than
// emitting a partial inventory. The three error types below classify where
// in the pipeline the failure happened; each wraps the underlying cause.

// ConfigError reports an unusable inventory source: the file could not be
// found, read or parsed, or required options are missing.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "inventory source configuration: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ClientInitError reports that the API client could not be constructed from
// the source configuration. Nothing has touched the network yet.
type ClientInitError struct {
	Err error
}

func (e *ClientInitError) Error() string {
	return "api client setup: " + e.Err.Error()
}

func (e *ClientInitError) Unwrap() error {
	return e.Err
}

// FetchError reports that the single list-peers request failed: connection,
// TLS, timeout, a non-2xx status or an undecodable body. There is no retry.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "peer fetch: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
