// Package redis contains a Redis-backed snapshot store for leads.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/example/leadfunnel/internal/ports/secondary"
)

// KeyPrefix namespaces every key this adapter writes.
const KeyPrefix = "leadfunnel"

// LeadRepository implements secondary.LeadRepository as one JSON document per app id.
type LeadRepository struct {
	client goredis.UniversalClient
}

var _ secondary.LeadRepository = (*LeadRepository)(nil)

// NewLeadRepository creates a new Redis lead repository.
func NewLeadRepository(client goredis.UniversalClient) *LeadRepository {
	return &LeadRepository{client: client}
}

// NewClient builds a client for a redis:// URL or host:port.
// No connection is made until the first command, so an unreachable server
// surfaces as a Load or Save error rather than a startup failure.
func NewClient(addr string) *goredis.Client {
	opts, err := goredis.ParseURL(addr)
	if err != nil {
		opts = &goredis.Options{Addr: addr}
	}
	return goredis.NewClient(opts)
}

// Key returns the key holding appID's leads.
func Key(appID string) string {
	return fmt.Sprintf("%s:%s:leads", KeyPrefix, appID)
}

// Load reads appID's leads. A missing key is an empty collection.
func (r *LeadRepository) Load(ctx context.Context, appID string) ([]*secondary.LeadRecord, error) {
	data, err := r.client.Get(ctx, Key(appID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []*secondary.LeadRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leads: %w", err)
	}

	var leads []*secondary.LeadRecord
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	if leads == nil {
		leads = []*secondary.LeadRecord{}
	}
	return leads, nil
}

// Save overwrites appID's leads. The key never expires.
func (r *LeadRepository) Save(ctx context.Context, appID string, leads []*secondary.LeadRecord) error {
	if leads == nil {
		leads = []*secondary.LeadRecord{}
	}
	data, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("failed to encode leads: %w", err)
	}

	if err := r.client.Set(ctx, Key(appID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set leads: %w", err)
	}
	return nil
}
