// Package inventory holds the core model: an ordered collection of hosts
// with their variables and groups, the sink contract through which hosts are
// registered, and the builder that maps a remote peer list into a sink.
//
// The package deliberately knows nothing about output formats or source
// configuration. Codecs consume a populated Inventory; grouping stages
// rearrange one; the builder only ever writes through the Sink interface, so
// an embedding program can substitute its own registry for the in-memory
// implementation.
package inventory
