// Package service wires one inventory build end to end.
//
// A build walks a fixed pipeline: recognize and load the source file,
// construct the management API client, fetch the peer list exactly once,
// map peers into an inventory through the sink contract, then run the
// configured grouping stages over the result.
//
// Failures are classified by where they happen. Source problems surface as
// inventory.ConfigError, client construction problems as
// inventory.ClientInitError and the fetch itself as inventory.FetchError,
// each wrapping its cause. Every failure aborts the build; a partial
// inventory is never returned.
package service
