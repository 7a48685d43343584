package sampler

import (
	"context"
	"sort"
	"strings"

	"github.com/mt/efkctl/internal/model"
)

const (
	// roleLabel is the dedicated role label checked first.
	roleLabel = "kubernetes.io/role"
	// roleKeyPrefix marks the role-indicator label keys used as fallback,
	// e.g. node-role.kubernetes.io/worker="".
	roleKeyPrefix = "node-role.kubernetes.io/"
)

// roleFromLabels resolves a node role from its labels: the dedicated role
// label wins; otherwise the role-indicator key suffixes, sorted and joined
// with commas; otherwise RoleUnknown.
func roleFromLabels(labels map[string]string) string {
	if role := labels[roleLabel]; role != "" {
		return role
	}

	var roles []string
	for k := range labels {
		if suffix, ok := strings.CutPrefix(k, roleKeyPrefix); ok && suffix != "" {
			roles = append(roles, suffix)
		}
	}
	if len(roles) == 0 {
		return model.RoleUnknown
	}
	sort.Strings(roles)
	return strings.Join(roles, ",")
}

// classify resolves the role of every node seen in the records. A failed
// label lookup leaves that node unknown rather than failing the pass.
func (s *Sampler) classify(ctx context.Context, records []model.SampleRecord) map[string]string {
	roles := make(map[string]string)
	for _, r := range records {
		if r.Node == "" {
			continue
		}
		if _, ok := roles[r.Node]; ok {
			continue
		}

		labels, err := s.cluster.GetNodeLabels(ctx, r.Node)
		if err != nil {
			s.debugf("node %s labels: %v", r.Node, err)
			roles[r.Node] = model.RoleUnknown
			continue
		}
		roles[r.Node] = roleFromLabels(labels)
	}
	return roles
}
