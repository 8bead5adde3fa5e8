// Package wandb is a client for the artifact API of a W&B tracking server.
//
// Basic usage:
//
//	api, err := wandb.NewFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer api.Close()
//
//	art, err := api.Artifact(ctx, "my-team/mnist/digits:latest")
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = art.SetTags([]string{"clean"})
//	err = art.Save(ctx)
//
// Listings are lazy paginators:
//
//	colls, err := api.ArtifactCollections(ctx, "my-team/mnist", "dataset", 0)
//	for coll, err := range colls.All(ctx) {
//		...
//	}
package wandb

import (
	"context"
	"strings"

	"github.com/verigle/wandb/internal/adapters/secondary/graphql"
	"github.com/verigle/wandb/internal/config"
	"github.com/verigle/wandb/internal/core/domain"
	"github.com/verigle/wandb/internal/core/services"
)

// Re-export types from internal/core/services
type (
	ArtifactType        = services.ArtifactType
	ArtifactTypes       = services.ArtifactTypes
	ArtifactCollection  = services.ArtifactCollection
	ArtifactCollections = services.ArtifactCollections
	Artifact            = services.Artifact
	Artifacts           = services.Artifacts
	ArtifactsOptions    = services.ArtifactsOptions
	ArtifactFiles       = services.ArtifactFiles
	RunArtifacts        = services.RunArtifacts
)

// Re-export types from internal/core/domain
type (
	File             = domain.File
	RunRef           = domain.RunRef
	RunArtifactsMode = domain.RunArtifactsMode
	CommError        = domain.CommError
	ValidationError  = domain.ValidationError
)

// Re-export types from internal/config and the transport
type (
	Config       = config.Config
	APIConfig    = config.APIConfig
	RetryConfig  = config.RetryConfig
	ClientOption = graphql.Option
)

const (
	RunArtifactsLogged = domain.RunArtifactsLogged
	RunArtifactsUsed   = domain.RunArtifactsUsed
)

// Re-export errors
var (
	ErrProjectNotFound            = domain.ErrProjectNotFound
	ErrArtifactTypeNotFound       = domain.ErrArtifactTypeNotFound
	ErrArtifactCollectionNotFound = domain.ErrArtifactCollectionNotFound
	ErrArtifactNotFound           = domain.ErrArtifactNotFound
	ErrRunNotFound                = domain.ErrRunNotFound
	ErrIterationDone              = domain.ErrIterationDone
	ErrLengthUnknown              = domain.ErrLengthUnknown
	ErrInvalidArtifactPath        = domain.ErrInvalidArtifactPath
)

// API is the entry point to artifact types, collections and versions.
type API struct {
	client  *graphql.Client
	entity  string
	perPage int
}

// New returns an API talking to cfg.API.URL.
func New(cfg *Config, opts ...ClientOption) *API {
	return &API{
		client:  graphql.NewGraphQLClient(&cfg.API, &cfg.Retry, opts...),
		entity:  cfg.API.Entity,
		perPage: cfg.API.PerPage,
	}
}

// NewFromEnv loads the configuration from API_* and RETRY_* environment
// variables.
func NewFromEnv(opts ...ClientOption) (*API, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...), nil
}

// Close releases the transport's background resources.
func (a *API) Close() error {
	return a.client.Close()
}

// splitProject parses "entity/project" or "project", falling back to the
// configured entity.
func (a *API) splitProject(path string) (entity, project string, err error) {
	entity, project, ok := strings.Cut(path, "/")
	if !ok {
		entity, project = a.entity, path
	}
	if err := domain.ValidateProjectName(project); err != nil {
		return "", "", err
	}
	if entity == "" || strings.Contains(project, "/") {
		return "", "", &domain.ValidationError{
			Kind:   domain.ErrInvalidArtifactPath,
			Value:  path,
			Reason: "expected `entity/project` or a configured default entity",
		}
	}
	return entity, project, nil
}

// splitName parses "[entity/][project/]name" into its parts.
func (a *API) splitName(path string) (entity, project, name string, err error) {
	p, err := domain.ParseArtifactPath(path)
	if err != nil {
		return "", "", "", err
	}
	p = p.WithDefaults(a.entity, "")
	if p.Prefix == "" || p.Project == "" {
		return "", "", "", &domain.ValidationError{
			Kind:   domain.ErrInvalidArtifactPath,
			Value:  path,
			Reason: "expected `entity/project/name` or a configured default entity",
		}
	}
	return p.Prefix, p.Project, p.Name, nil
}

func (a *API) ArtifactTypes(project string) (*ArtifactTypes, error) {
	entity, project, err := a.splitProject(project)
	if err != nil {
		return nil, err
	}
	return services.NewArtifactTypes(a.client, entity, project, a.perPage), nil
}

func (a *API) ArtifactType(ctx context.Context, project, typeName string) (*ArtifactType, error) {
	entity, project, err := a.splitProject(project)
	if err != nil {
		return nil, err
	}
	t := services.NewArtifactType(a.client, entity, project, typeName, nil)
	if err := t.Load(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

func (a *API) ArtifactCollections(ctx context.Context, project, typeName string, perPage int) (*ArtifactCollections, error) {
	entity, project, err := a.splitProject(project)
	if err != nil {
		return nil, err
	}
	if perPage <= 0 {
		perPage = a.perPage
	}
	return services.NewArtifactCollections(ctx, a.client, entity, project, typeName, perPage)
}

// ArtifactCollection loads "entity/project/collection" of the given type.
func (a *API) ArtifactCollection(ctx context.Context, typeName, name string) (*ArtifactCollection, error) {
	entity, project, name, err := a.splitName(name)
	if err != nil {
		return nil, err
	}
	return services.LoadArtifactCollection(ctx, a.client, entity, project, name, typeName)
}

// Artifacts lists the versions of "entity/project/collection".
func (a *API) Artifacts(ctx context.Context, typeName, name string, opts ArtifactsOptions) (*Artifacts, error) {
	entity, project, name, err := a.splitName(name)
	if err != nil {
		return nil, err
	}
	if opts.PerPage <= 0 {
		opts.PerPage = a.perPage
	}
	return services.NewArtifacts(ctx, a.client, entity, project, name, typeName, opts)
}

// Artifact loads "entity/project/collection:alias". A missing alias means
// "latest".
func (a *API) Artifact(ctx context.Context, name string) (*Artifact, error) {
	entity, project, name, err := a.splitName(name)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(name, ":") {
		name += ":latest"
	}
	return services.LoadArtifact(ctx, a.client, entity, project, name)
}

// RunArtifacts lists the artifacts the run "entity/project/run-id" logged or
// used.
func (a *API) RunArtifacts(ctx context.Context, runPath string, mode RunArtifactsMode, perPage int) (*RunArtifacts, error) {
	entity, project, id, err := a.splitName(runPath)
	if err != nil {
		return nil, err
	}
	if perPage <= 0 {
		perPage = a.perPage
	}
	return services.NewRunArtifacts(ctx, a.client, RunRef{Entity: entity, Project: project, ID: id}, mode, perPage)
}
