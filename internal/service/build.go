package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"netbird-inventory/internal/config"
	"netbird-inventory/internal/grouping"
	"netbird-inventory/internal/inventory"
	"netbird-inventory/internal/netbird"
)

// InventoryService runs complete inventory builds. Each build is
// independent; the service keeps no state between runs and never reuses a
// previously fetched peer list.
type InventoryService struct {
	log logrus.FieldLogger
}

// Option configures an InventoryService.
type Option func(*InventoryService)

// WithLogger routes the service's progress logging. The default is the
// logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *InventoryService) {
		s.log = log
	}
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(opts ...Option) *InventoryService {
	s := &InventoryService{
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildFromSource loads the source file at path and runs Build on it. The
// path must carry a recognized source name; everything else is declined so
// other inventory sources in the same directory stay untouched.
func (s *InventoryService) BuildFromSource(ctx context.Context, path string) (*inventory.Inventory, error) {
	if !config.RecognizedPath(path) {
		return nil, &inventory.ConfigError{
			Err: fmt.Errorf("%s is not a netbird inventory source (want a name ending in %s or %s)",
				path, config.SourceFileYML, config.SourceFileYAML),
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, &inventory.ConfigError{Err: err}
	}
	s.log.Debugf("Loaded inventory source %s (host %s)", path, cfg.Host)

	return s.Build(ctx, cfg)
}

// Build runs one build from a parsed configuration: client construction,
// the single peer fetch, the mapping pass, then grouping.
func (s *InventoryService) Build(ctx context.Context, cfg *config.Config) (*inventory.Inventory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &inventory.ConfigError{Err: err}
	}
	if cfg.Cache {
		s.log.Debug("Source enables caching; builds always fetch fresh")
	}

	client, err := netbird.NewClient(&netbird.Config{
		Host:     cfg.Host,
		Token:    cfg.APIToken,
		BasePath: cfg.EffectiveBasePath(),
		Timeout:  cfg.EffectiveTimeout(),
		TLS: netbird.TLSConfig{
			CACert:   cfg.CACert,
			Insecure: !cfg.EffectiveValidateCerts(),
		},
	})
	if err != nil {
		return nil, &inventory.ClientInitError{Err: err}
	}

	inv := inventory.New()
	builder := inventory.NewBuilder(client.Peers(), inventory.WithLogger(s.log))
	if err := builder.Build(ctx, inv); err != nil {
		return nil, err
	}

	for _, stage := range s.stages(cfg) {
		if err := stage.Apply(inv); err != nil {
			return nil, fmt.Errorf("grouping stage %s: %w", stage.Name(), err)
		}
		s.log.Debugf("Applied grouping stage %s (%d groups)", stage.Name(), len(inv.GroupNames()))
	}

	return inv, nil
}

// stages assembles the post-processing pipeline for a configuration.
func (s *InventoryService) stages(cfg *config.Config) []grouping.Stage {
	var stages []grouping.Stage
	if len(cfg.KeyedGroups) > 0 {
		stages = append(stages, grouping.NewKeyedGroups(cfg.KeyedGroups, cfg.Strict))
	}
	return stages
}
