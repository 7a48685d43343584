package kibana

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mt/efkctl/internal/esutil"
)

// DefaultObjectTypes is the saved-object selection exported when the caller
// does not name one.
const DefaultObjectTypes = "visualization,dashboard,search"

// allowedObjectTypes are the saved-object document types Kibana stores.
var allowedObjectTypes = map[string]bool{
	"config":        true,
	"dashboard":     true,
	"index-pattern": true,
	"search":        true,
	"url":           true,
	"visualization": true,
}

// ParseObjectTypes splits and validates a comma-separated object type list.
func ParseObjectTypes(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("object type list is empty")
	}
	parts := strings.Split(list, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("object type list %q has an empty element", list)
		}
		if !allowedObjectTypes[p] {
			return nil, fmt.Errorf("unknown object type %q (allowed: config, dashboard, index-pattern, search, url, visualization)", p)
		}
		types = append(types, p)
	}
	return types, nil
}

// SearchPath builds the `<index>/<types>/_search?pretty` query path. Index and
// type segments are percent-encoded; the commas separating types stay literal,
// that is how Elasticsearch addresses multiple types at once.
func SearchPath(index string, types []string) string {
	escaped := make([]string, len(types))
	for i, t := range types {
		escaped[i] = url.PathEscape(t)
	}
	return url.PathEscape(index) + "/" + strings.Join(escaped, ",") + "/_search?pretty"
}

// Exporter streams a user's saved Kibana objects out of Elasticsearch.
type Exporter struct {
	es esutil.Querier
}

// NewExporter returns an Exporter that queries through es.
func NewExporter(es esutil.Querier) *Exporter {
	return &Exporter{es: es}
}

// Export resolves the user's index, validates the requested object types, runs
// the search and copies the raw response to w unchanged. Whatever partial
// output arrived before a failure is still written; the error carries the
// collaborator's exit status for the caller to propagate.
func (e *Exporter) Export(ctx context.Context, w io.Writer, username, objects string) error {
	types, err := ParseObjectTypes(objects)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	index := IndexForUser(username)

	out, queryErr := e.es.Query(ctx, SearchPath(index, types))
	if len(out) > 0 {
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("export: write response: %w", err)
		}
	}
	if queryErr != nil {
		return fmt.Errorf("export %s: %w", index, queryErr)
	}
	return nil
}
