package netbird

import (
	"context"
	"fmt"
	"net/http"
)

// PeersService lists peers.
type PeersService struct {
	client *Client
}

// Peers returns the peers service.
func (c *Client) Peers() *PeersService {
	return &PeersService{client: c}
}

// List retrieves every peer known to the management server, in the order
// the API returns them. The endpoint delivers the full set in one response,
// so this is a single request with no pagination and no retries.
func (s *PeersService) List(ctx context.Context) ([]Peer, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "peers")
	if err != nil {
		return nil, fmt.Errorf("list peers: %w", err)
	}

	var peers []Peer
	if err := s.client.do(req, &peers); err != nil {
		return nil, fmt.Errorf("list peers: %w", err)
	}
	return peers, nil
}
