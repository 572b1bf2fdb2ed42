package config

import (
	"fmt"
	"sort"
	"strings"
)

type ProjectRefKind int

const (
	// ProjectRefID holds a Clockify project ID.
	ProjectRefID ProjectRefKind = iota + 1
	// ProjectRefName holds a project name that must be looked up remotely.
	ProjectRefName
)

func (k ProjectRefKind) String() string {
	switch k {
	case ProjectRefID:
		return "id"
	case ProjectRefName:
		return "name"
	default:
		return "unknown"
	}
}

type ProjectRef struct {
	Kind  ProjectRefKind
	Value string
}

func ProjectID(id string) ProjectRef {
	return ProjectRef{Kind: ProjectRefID, Value: id}
}

func ProjectName(name string) ProjectRef {
	return ProjectRef{Kind: ProjectRefName, Value: name}
}

// ProjectMapping resolves Jira project keys. Keys are matched case-insensitively
// because Viper lowercases map keys on load. Build it with NewProjectMapping;
// the zero value maps nothing.
type ProjectMapping struct {
	refs map[string]ProjectRef
}

// NewProjectMapping merges name and ID mappings. A key configured in both, an
// empty key or an empty value is an error.
func NewProjectMapping(names, ids map[string]string) (ProjectMapping, error) {
	out := make(map[string]ProjectRef, len(names)+len(ids))
	for _, key := range sortedKeys(names) {
		normalized := normalizeKey(key)
		value := strings.TrimSpace(names[key])
		if normalized == "" {
			return ProjectMapping{}, fmt.Errorf("project_map contains an empty project key")
		}
		if value == "" {
			return ProjectMapping{}, fmt.Errorf("project_map.%s: project name is empty", key)
		}
		if _, exists := out[normalized]; exists {
			return ProjectMapping{}, fmt.Errorf("project_map.%s: duplicate project key", key)
		}
		out[normalized] = ProjectName(value)
	}
	for _, key := range sortedKeys(ids) {
		normalized := normalizeKey(key)
		value := strings.TrimSpace(ids[key])
		if normalized == "" {
			return ProjectMapping{}, fmt.Errorf("project_ids contains an empty project key")
		}
		if value == "" {
			return ProjectMapping{}, fmt.Errorf("project_ids.%s: project id is empty", key)
		}
		if _, exists := out[normalized]; exists {
			return ProjectMapping{}, fmt.Errorf("project key %q is configured in both project_map and project_ids", key)
		}
		out[normalized] = ProjectID(value)
	}
	return ProjectMapping{refs: out}, nil
}

func (m ProjectMapping) Lookup(projectKey string) (ProjectRef, bool) {
	ref, ok := m.refs[normalizeKey(projectKey)]
	return ref, ok
}

// Len reports the number of mapped project keys.
func (m ProjectMapping) Len() int {
	return len(m.refs)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
