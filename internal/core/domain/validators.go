package domain

import (
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const (
	RegistryPrefix         = "wandb-registry-"
	MaxNameLen             = 128
	MaxArtifactMetadataKey = 100

	ReservedArtifactTypePrefix = "wandb-"
)

// Typenames of the two concrete artifact collection kinds.
const (
	SourceArtifactCollectionType = "ArtifactSequence"
	LinkedArtifactCollectionType = "ArtifactPortfolio"
)

const (
	invalidArtifactChars = "/:"
	invalidURLChars      = "/\\#?%:\r\n"
)

var (
	validArtifactPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	validTagPattern      = regexp.MustCompile(`^[-\p{L}\p{N}_]+( +[-\p{L}\p{N}_]+)*$`)
)

// Artifact types that reserve artifact names starting with the given prefix.
// An empty prefix reserves the type for every name.
var reservedArtifactNamePrefixes = map[string]string{
	"job":       "",
	"run_table": "run-",
	"code":      "source-",
}

func truncate(name string, maxLen int) string {
	if len(name) <= maxLen+5 {
		return name
	}
	return name[:maxLen] + "..."
}

func joinReprs(chars []rune) string {
	reprs := make([]string, 0, len(chars))
	for _, c := range chars {
		reprs = append(reprs, "'"+strings.Trim(strconv.Quote(string(c)), `"`)+"'")
	}
	slices.Sort(reprs)
	return strings.Join(reprs, ", ")
}

func intersect(s, chars string) []rune {
	var found []rune
	for _, c := range chars {
		if strings.ContainsRune(s, c) {
			found = append(found, c)
		}
	}
	return found
}

// ValidateArtifactName returns name if it is a valid artifact name.
func ValidateArtifactName(name string) (string, error) {
	if len(name) > MaxNameLen {
		return "", invalid(ErrInvalidArtifactName, truncate(name, MaxNameLen),
			"artifact name is longer than %d characters", MaxNameLen)
	}
	if !validArtifactPattern.MatchString(name) {
		return "", invalid(ErrInvalidArtifactName, name,
			"artifact names may only contain alphanumeric characters, dashes, underscores, and dots")
	}
	if bad := intersect(name, invalidArtifactChars); len(bad) > 0 {
		return "", invalid(ErrInvalidArtifactName, name,
			"artifact names must not contain any of the following characters: %s", joinReprs([]rune(invalidArtifactChars)))
	}
	return name, nil
}

// ValidateProjectName checks a project or registry name.
func ValidateProjectName(name string) error {
	if name == "" {
		return invalid(ErrInvalidProjectName, name, "Project name cannot be empty")
	}
	if name == RegistryPrefix {
		return invalid(ErrInvalidProjectName, name, "Registry name cannot be empty")
	}

	validated, maxLen, kind := name, MaxNameLen, "project"
	if IsArtifactRegistryProject(name) {
		validated = name[len(RegistryPrefix):]
		maxLen = MaxNameLen - len(RegistryPrefix)
		kind = "registry"
	}

	if len(validated) > maxLen {
		return invalid(ErrInvalidProjectName, truncate(validated, maxLen),
			"Invalid %s name, must be %d characters or less", kind, maxLen)
	}
	if bad := intersect(validated, invalidURLChars); len(bad) > 0 {
		return invalid(ErrInvalidProjectName, validated,
			"Invalid %s name, cannot contain characters: %s", kind, joinReprs(bad))
	}
	return nil
}

// ValidateAliases rejects aliases containing path separators.
func ValidateAliases(aliases []string) ([]string, error) {
	for _, alias := range aliases {
		if len(intersect(alias, invalidArtifactChars)) > 0 {
			return nil, invalid(ErrInvalidAlias, alias,
				"aliases must not contain any of the following characters: %s", joinReprs([]rune(invalidArtifactChars)))
		}
	}
	return aliases, nil
}

// ValidateArtifactTypesList checks the names used to filter by artifact type.
func ValidateArtifactTypesList(types []string) ([]string, error) {
	for _, typ := range types {
		if len(intersect(typ, invalidArtifactChars)) > 0 || len(typ) > MaxNameLen {
			return nil, invalid(ErrInvalidArtifactType, typ,
				"artifact types must not contain any of the following characters: %s and must be less than equal to %d characters",
				joinReprs([]rune(invalidArtifactChars)), MaxNameLen)
		}
	}
	return types, nil
}

// ValidateTags returns tags deduplicated in order of first appearance.
func ValidateTags(tags []string) ([]string, error) {
	for _, tag := range tags {
		if !validTagPattern.MatchString(tag) {
			return nil, invalid(ErrInvalidTag, tag,
				"tags must only contain alphanumeric characters separated by hyphens, underscores, and/or spaces")
		}
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out, nil
}

// ValidateArtifactType returns typ unless it is reserved for the given
// artifact name.
func ValidateArtifactType(typ, name string) (string, error) {
	if strings.HasPrefix(typ, ReservedArtifactTypePrefix) {
		return "", invalid(ErrReservedArtifactType, typ, "please use a different type")
	}
	if prefix, ok := reservedArtifactNamePrefixes[typ]; ok && strings.HasPrefix(name, prefix) {
		return "", invalid(ErrReservedArtifactType, typ, "please use a different type")
	}
	return typ, nil
}

// ValidateMetadata decodes the JSON-encoded metadata of an artifact.
func ValidateMetadata(raw string) (map[string]any, error) {
	out := map[string]any{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, invalid(ErrInvalidMetadata, truncate(raw, MaxNameLen), "%v", err)
	}
	if len(out) > MaxArtifactMetadataKey {
		return nil, invalid(ErrInvalidMetadata, "metadata", "at most %d metadata keys are allowed", MaxArtifactMetadataKey)
	}
	return out, nil
}

// ValidateTTLDurationSeconds returns the TTL reported by the server, or nil
// when TTL is disabled (non-positive) or unsupported.
func ValidateTTLDurationSeconds(ttl *int64) *int64 {
	if ttl != nil && *ttl > 0 {
		return ttl
	}
	return nil
}

func IsArtifactRegistryProject(project string) bool {
	return strings.HasPrefix(project, RegistryPrefix)
}

// RemoveRegistryPrefix strips the registry prefix from a registry project name.
func RemoveRegistryPrefix(project string) (string, error) {
	if IsArtifactRegistryProject(project) {
		return project[len(RegistryPrefix):], nil
	}
	return "", invalid(ErrNotRegistryProject, project, "project does not have the prefix %s", RegistryPrefix)
}

// ArtifactPath is a name optionally qualified by a project and a prefix
// (usually an entity or org).
type ArtifactPath struct {
	Name    string
	Project string
	Prefix  string
}

// ParseArtifactPath parses `name`, `project/name` or `prefix/project/name`.
func ParseArtifactPath(path string) (ArtifactPath, error) {
	parts := strings.Split(path, "/")
	switch len(parts) {
	case 1:
		return ArtifactPath{Name: parts[0]}, nil
	case 2:
		return ArtifactPath{Project: parts[0], Name: parts[1]}, nil
	case 3:
		return ArtifactPath{Prefix: parts[0], Project: parts[1], Name: parts[2]}, nil
	}
	return ArtifactPath{}, invalid(ErrInvalidArtifactPath, path,
		"expected a valid path like `name`, `project/name`, or `prefix/project/name`")
}

func (p ArtifactPath) String() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Prefix, p.Project, p.Name} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

// WithDefaults fills the missing prefix and project.
func (p ArtifactPath) WithDefaults(prefix, project string) ArtifactPath {
	if p.Prefix == "" {
		p.Prefix = prefix
	}
	if p.Project == "" {
		p.Project = project
	}
	return p
}
