package inventory

import (
	"context"

	"github.com/sirupsen/logrus"

	"netbird-inventory/internal/netbird"
)

// PeerSource provides the peer list for one build. *netbird.PeersService is
// the production implementation; tests substitute a stub.
type PeerSource interface {
	List(ctx context.Context) ([]netbird.Peer, error)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger routes the builder's progress logging. The default is the
// logrus standard logger.
func WithLogger(log logrus.FieldLogger) BuilderOption {
	return func(b *Builder) {
		b.log = log
	}
}

// Builder maps a remote peer list into a sink: one fetch, one pass over the
// peers in API order. It holds no state between builds.
type Builder struct {
	source PeerSource
	log    logrus.FieldLogger
}

// NewBuilder creates a builder reading from source.
func NewBuilder(source PeerSource, opts ...BuilderOption) *Builder {
	b := &Builder{
		source: source,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build fetches the peer list once and registers one host per peer that
// carries a usable identifier. The peer's mesh IP becomes ansible_host when
// present, then every peer attribute is copied onto the host under its own
// key, value untouched, so an attribute literally named ansible_host wins
// over the derived one. Peers without any identifier are skipped without
// failing the build. A failed fetch aborts with a FetchError before the
// sink sees anything.
func (b *Builder) Build(ctx context.Context, sink Sink) error {
	peers, err := b.source.List(ctx)
	if err != nil {
		return &FetchError{Err: err}
	}

	added, skipped := 0, 0
	for _, peer := range peers {
		hostname := peer.Hostname()
		if hostname == "" {
			skipped++
			continue
		}

		sink.AddHost(hostname)
		if ip := peer.IP(); ip != "" {
			sink.SetVariable(hostname, AnsibleHostVar, ip)
		}
		for key, value := range peer {
			sink.SetVariable(hostname, key, value)
		}
		added++
	}

	b.log.Debugf("Built inventory: %d hosts from %d peers (%d skipped)", added, len(peers), skipped)
	return nil
}
