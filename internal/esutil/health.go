package esutil

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

const endpointClusterHealth = "_cluster/health?pretty"

// Health holds the cluster health fields the probe reports.
type Health struct {
	Status       string
	Nodes        int64
	ActiveShards int64
}

// GetHealth queries _cluster/health and extracts status, node count and active
// shard count from the response.
func (c *Client) GetHealth(ctx context.Context) (Health, error) {
	out, err := c.Query(ctx, endpointClusterHealth)
	if err != nil {
		return Health{}, fmt.Errorf("GetHealth: %w", err)
	}

	body := string(out)
	if !gjson.Valid(body) {
		return Health{}, fmt.Errorf("GetHealth: malformed response: %s", truncate(out, 200))
	}

	h := Health{
		Status:       gjson.Get(body, "status").String(),
		Nodes:        gjson.Get(body, "number_of_nodes").Int(),
		ActiveShards: gjson.Get(body, "active_shards").Int(),
	}
	if h.Status == "" {
		return Health{}, fmt.Errorf("GetHealth: response has no status field: %s", truncate(out, 200))
	}
	return h, nil
}
