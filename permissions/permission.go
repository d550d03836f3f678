package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles that may call one route. Skip routes need no
// token at all.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. A route missing from the
// file allows nobody.
func (p Permission) Allows(role string) bool {
	if p.Path == "" {
		return false
	}

	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up a chi route pattern such as /v1/hotels/{id}.
// Trailing slashes are ignored on both sides.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	path = strings.TrimSuffix(path, "/")

	for _, endpoint := range r.Endpoints {
		if endpoint.Method == method && strings.TrimSuffix(endpoint.Path, "/") == path {
			return endpoint
		}
	}

	return Permission{}
}

var load = sync.OnceValue(func() *PermissionData {
	var data PermissionData

	if err := json.Unmarshal(permissionsData, &data); err != nil {
		log.Error().Err(err).Msg("failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("embedded permissions loaded")

	return &data
})

// Get returns the embedded route table, decoded once per process.
func Get() *PermissionData {
	return load()
}
