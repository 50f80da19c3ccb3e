// Package permissions maps routes to the roles allowed to call them. The table
// is embedded from permissions.json and keyed by method and chi route pattern.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes one route. Skip marks it public; an empty role list
// admits any authenticated caller.
type Permission struct {
	Roles  []string `json:"permissions"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

// Allows reports whether role may call the route.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Roles) == 0 || slices.Contains(p.Roles, role)
}

type document struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// Table is an indexed permission set. A Table with SkipAll set admits every request.
type Table struct {
	SkipAll bool
	index   map[string]Permission
}

// key folds "/v1/rooms/" and "/v1/rooms" onto one entry.
func key(method, route string) string {
	if route != "" {
		route = path.Clean(route)
	}

	return strings.ToUpper(method) + " " + route
}

// New indexes endpoints. Later entries for the same route replace earlier ones.
func New(skipAll bool, endpoints ...Permission) *Table {
	table := &Table{
		SkipAll: skipAll,
		index:   make(map[string]Permission, len(endpoints)),
	}

	for _, endpoint := range endpoints {
		table.index[key(endpoint.Method, endpoint.Path)] = endpoint
	}

	return table
}

// Parse decodes a permissions document and rejects duplicate routes.
func Parse(data []byte) (*Table, error) {
	var doc document

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Endpoints))

	for _, endpoint := range doc.Endpoints {
		k := key(endpoint.Method, endpoint.Path)
		if _, ok := seen[k]; ok {
			return nil, fmt.Errorf("duplicate permission for %s", k)
		}

		seen[k] = struct{}{}
	}

	return New(doc.Skip, doc.Endpoints...), nil
}

// Lookup returns the permission registered for the route. A trailing slash is ignored.
func (t *Table) Lookup(method, path string) (Permission, bool) {
	if t == nil {
		return Permission{}, false
	}

	permission, ok := t.index[key(method, path)]

	return permission, ok
}

// Public reports whether the route needs no token.
func (t *Table) Public(method, path string) bool {
	if t == nil {
		return false
	}

	if t.SkipAll {
		return true
	}

	permission, _ := t.Lookup(method, path)

	return permission.Skip
}

var load = sync.OnceValue(func() *Table {
	table, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(table.index)).Msg("Successfully loaded embedded permissions")

	return table
})

// Get returns the embedded table, or nil when it cannot be decoded.
func Get() *Table {
	return load()
}
