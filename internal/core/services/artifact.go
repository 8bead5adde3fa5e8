package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/verigle/wandb/internal/core/domain"
	ports "github.com/verigle/wandb/internal/core/ports/output"
	"github.com/verigle/wandb/internal/gen/enums"
	"github.com/verigle/wandb/internal/gen/fragments"
	"github.com/verigle/wandb/internal/gen/inputs"
	"github.com/verigle/wandb/internal/gen/operations"
	"github.com/verigle/wandb/internal/gqlbase"
)

var versionAlias = regexp.MustCompile(`^v\d+$`)

// Artifact is one logged artifact version. Description, metadata, TTL, tags
// and aliases are staged locally and written by Save.
type Artifact struct {
	client  ports.GraphQLClient
	entity  string
	project string
	name    string
	attrs   *fragments.ArtifactFragment

	description      *string
	metadata         map[string]any
	savedMetadata    string
	ttl              *int64
	ttlChanged       bool
	tags             []string
	savedTags        []string
	aliases          []string
	savedAliases     []string
	savedDescription *string
}

// NewArtifact wraps already fetched attributes. name is "collection:version".
func NewArtifact(client ports.GraphQLClient, entity, project, name string, attrs *fragments.ArtifactFragment) (*Artifact, error) {
	if attrs == nil {
		return nil, fmt.Errorf("artifact %q: %w", name, domain.ErrArtifactNotLoaded)
	}
	a := &Artifact{client: client, entity: entity, project: project, name: name}
	if err := a.apply(attrs); err != nil {
		return nil, err
	}
	return a, nil
}

// LoadArtifact fetches an artifact by "collection:alias" or
// "collection:vN".
func LoadArtifact(ctx context.Context, client ports.GraphQLClient, entity, project, name string) (*Artifact, error) {
	omit, err := artifactOmitFields(ctx, client)
	if err != nil {
		return nil, err
	}
	doc, err := compat(artifactByNameDoc, omit, nil)
	if err != nil {
		return nil, err
	}

	var res operations.ArtifactByName
	err = client.Execute(ctx, doc, map[string]any{
		"entityName":  entity,
		"projectName": project,
		"name":        name,
	}, &res)
	if err != nil {
		return nil, normalize(err)
	}
	if res.Project == nil {
		return nil, fmt.Errorf("%s/%s: %w", entity, project, domain.ErrProjectNotFound)
	}
	if res.Project.Artifact == nil {
		return nil, fmt.Errorf("artifact %q: %w", name, domain.ErrArtifactNotFound)
	}

	attrs := res.Project.Artifact
	collection, _, _ := strings.Cut(name, ":")
	return NewArtifact(client, entity, project, versionedName(collection, attrs.VersionIndex), attrs)
}

func versionedName(collection string, index *int) string {
	if index == nil {
		return collection
	}
	return collection + ":v" + strconv.Itoa(*index)
}

func (a *Artifact) apply(attrs *fragments.ArtifactFragment) error {
	metadata := map[string]any{}
	raw := ""
	if attrs.Metadata != nil {
		m, err := domain.ValidateMetadata(*attrs.Metadata)
		if err != nil {
			return err
		}
		metadata = m
		raw = *attrs.Metadata
	}

	a.attrs = attrs
	a.description = attrs.Description
	a.savedDescription = attrs.Description
	a.metadata = metadata
	a.savedMetadata = canonicalJSON(metadata, raw)
	a.ttl = domain.ValidateTTLDurationSeconds(attrs.TTLDurationSeconds)
	a.ttlChanged = false

	a.tags = make([]string, 0, len(attrs.Tags))
	for _, t := range attrs.Tags {
		a.tags = append(a.tags, t.Name)
	}
	a.savedTags = slices.Clone(a.tags)

	collection := a.CollectionName()
	a.aliases = nil
	for _, alias := range attrs.Aliases {
		if alias.ArtifactCollection == nil || alias.ArtifactCollection.Name != collection {
			continue
		}
		if versionAlias.MatchString(alias.Alias) {
			continue
		}
		a.aliases = append(a.aliases, alias.Alias)
	}
	a.savedAliases = slices.Clone(a.aliases)
	return nil
}

func canonicalJSON(m map[string]any, fallback string) string {
	b, err := json.Marshal(m)
	if err != nil {
		return fallback
	}
	return string(b)
}

func (a *Artifact) ID() string      { return a.attrs.ID }
func (a *Artifact) Entity() string  { return a.entity }
func (a *Artifact) Project() string { return a.project }

// Name is "collection:version".
func (a *Artifact) Name() string { return a.name }

// QualifiedName is "entity/project/collection:version".
func (a *Artifact) QualifiedName() string {
	return a.entity + "/" + a.project + "/" + a.name
}

// CollectionName is the name without the version.
func (a *Artifact) CollectionName() string {
	collection, _, _ := strings.Cut(a.name, ":")
	return collection
}

// Version is "vN" for the artifact's index in its source sequence.
func (a *Artifact) Version() string {
	if a.attrs.VersionIndex == nil {
		_, version, _ := strings.Cut(a.name, ":")
		return version
	}
	return "v" + strconv.Itoa(*a.attrs.VersionIndex)
}

func (a *Artifact) SourceEntity() string {
	if p := a.attrs.ArtifactSequence.Project; p != nil {
		return p.EntityName
	}
	return a.entity
}

func (a *Artifact) SourceProject() string {
	if p := a.attrs.ArtifactSequence.Project; p != nil {
		return p.Name
	}
	return a.project
}

// SourceName is the name in the sequence the artifact was logged to.
func (a *Artifact) SourceName() string {
	return versionedName(a.attrs.ArtifactSequence.Name, a.attrs.VersionIndex)
}

func (a *Artifact) Type() string              { return a.attrs.ArtifactType.Name }
func (a *Artifact) State() enums.ArtifactState { return a.attrs.State }
func (a *Artifact) Digest() string            { return a.attrs.Digest }
func (a *Artifact) Size() int64               { return a.attrs.Size }
func (a *Artifact) FileCount() int64          { return a.attrs.FileCount }
func (a *Artifact) CreatedAt() string         { return a.attrs.CreatedAt }

func (a *Artifact) UpdatedAt() string {
	if a.attrs.UpdatedAt == nil {
		return ""
	}
	return *a.attrs.UpdatedAt
}

func (a *Artifact) CommitHash() string {
	if a.attrs.CommitHash == nil {
		return ""
	}
	return *a.attrs.CommitHash
}

func (a *Artifact) Description() string {
	if a.description == nil {
		return ""
	}
	return *a.description
}

func (a *Artifact) Metadata() map[string]any { return a.metadata }

// TTL is the time-to-live in seconds, nil when the artifact does not expire.
func (a *Artifact) TTL() *int64 { return a.ttl }

func (a *Artifact) Tags() []string    { return slices.Clone(a.tags) }
func (a *Artifact) Aliases() []string { return slices.Clone(a.aliases) }

func (a *Artifact) SetDescription(description string) {
	a.description = &description
}

func (a *Artifact) SetMetadata(metadata map[string]any) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidMetadata, err)
	}
	m, err := domain.ValidateMetadata(string(raw))
	if err != nil {
		return err
	}
	a.metadata = m
	return nil
}

// SetTTL stages a new time-to-live. nil disables expiry.
func (a *Artifact) SetTTL(seconds *int64) {
	a.ttl = seconds
	a.ttlChanged = true
}

func (a *Artifact) SetTags(tags []string) error {
	tags, err := domain.ValidateTags(tags)
	if err != nil {
		return err
	}
	a.tags = tags
	return nil
}

func (a *Artifact) SetAliases(aliases []string) error {
	aliases, err := domain.ValidateAliases(aliases)
	if err != nil {
		return err
	}
	a.aliases = aliases
	return nil
}

// Save writes staged description, metadata, TTL and tag changes in one
// update, then adds and removes aliases.
func (a *Artifact) Save(ctx context.Context) error {
	if a.ID() == "" {
		return domain.ErrArtifactNotLoaded
	}

	input := inputs.UpdateArtifactInput{
		ArtifactID:  a.ID(),
		Description: a.description,
	}
	if raw := canonicalJSON(a.metadata, ""); raw != a.savedMetadata {
		input.Metadata = &raw
	}
	if a.ttlChanged {
		ttl := int64(-1)
		if a.ttl != nil {
			ttl = *a.ttl
		}
		input.TTLDurationSeconds = &ttl
	}
	add, del := domain.DiffTags(a.savedTags, a.tags)
	input.TagsToAdd = tagInputs(add)
	input.TagsToDelete = tagInputs(del)

	var res operations.UpdateArtifact
	if err := a.client.Execute(ctx, updateArtifactDoc, map[string]any{"input": input}, &res); err != nil {
		return normalize(err)
	}

	addAliases, delAliases := domain.DiffTags(a.savedAliases, a.aliases)
	if len(addAliases) > 0 {
		err := a.client.Execute(ctx, addAliasesDoc, map[string]any{
			"input": inputs.AddAliasesInput{ArtifactID: a.ID(), Aliases: a.aliasInputs(addAliases)},
		}, &operations.AddAliases{})
		if err != nil {
			return normalize(err)
		}
	}
	if len(delAliases) > 0 {
		err := a.client.Execute(ctx, deleteAliasesDoc, map[string]any{
			"input": inputs.DeleteAliasesInput{ArtifactID: a.ID(), Aliases: a.aliasInputs(delAliases)},
		}, &operations.DeleteAliases{})
		if err != nil {
			return normalize(err)
		}
	}

	aliases := slices.Clone(a.aliases)
	if res.UpdateArtifact != nil {
		updated := res.UpdateArtifact.Artifact
		if err := a.apply(&updated); err != nil {
			return err
		}
	} else {
		a.savedDescription = a.description
		a.savedMetadata = canonicalJSON(a.metadata, "")
		a.savedTags = slices.Clone(a.tags)
		a.ttlChanged = false
	}
	// The update payload predates the alias mutations.
	a.aliases = aliases
	a.savedAliases = slices.Clone(aliases)
	return nil
}

// Delete deletes the artifact version. With deleteAliases the server also
// drops its aliases; otherwise an aliased artifact cannot be deleted.
func (a *Artifact) Delete(ctx context.Context, deleteAliases bool) error {
	if a.ID() == "" {
		return domain.ErrArtifactNotLoaded
	}
	var res operations.DeleteArtifact
	err := a.client.Execute(ctx, deleteArtifactDoc, map[string]any{
		"input": inputs.DeleteArtifactInput{ArtifactID: a.ID(), DeleteAliases: &deleteAliases},
	}, &res)
	return normalize(err)
}

// Files lists the artifact's files, optionally restricted to names.
func (a *Artifact) Files(ctx context.Context, names []string, perPage int) (*ArtifactFiles, error) {
	return NewArtifactFiles(ctx, a.client, a, names, perPage)
}

func (a *Artifact) String() string {
	return fmt.Sprintf("<Artifact %s>", a.QualifiedName())
}

// Repr renders the loaded attributes, omitting ids.
func (a *Artifact) Repr() string {
	return gqlbase.Repr(a.attrs)
}

func (a *Artifact) aliasInputs(aliases []string) []inputs.ArtifactAliasInput {
	collection := a.CollectionName()
	out := make([]inputs.ArtifactAliasInput, 0, len(aliases))
	for _, alias := range aliases {
		out = append(out, inputs.ArtifactAliasInput{ArtifactCollectionName: collection, Alias: alias})
	}
	return out
}

func tagInputs(names []string) []inputs.TagInput {
	if len(names) == 0 {
		return nil
	}
	out := make([]inputs.TagInput, 0, len(names))
	for _, name := range names {
		out = append(out, inputs.TagInput{TagName: name})
	}
	return out
}
