package services

import (
	"github.com/verigle/wandb/internal/gen/documents"
	"github.com/verigle/wandb/internal/gql"
)

var (
	projectArtifactTypesDoc       = gql.MustParse(documents.ProjectArtifactTypesGQL)
	projectArtifactTypeDoc        = gql.MustParse(documents.ProjectArtifactTypeGQL)
	projectArtifactCollectionsDoc = gql.MustParse(documents.ProjectArtifactCollectionsGQL)
	projectArtifactCollectionDoc  = gql.MustParse(documents.ProjectArtifactCollectionGQL)
	projectArtifactsDoc           = gql.MustParse(documents.ProjectArtifactsGQL)
	artifactByNameDoc             = gql.MustParse(documents.ArtifactByNameGQL)
	runOutputArtifactsDoc         = gql.MustParse(documents.RunOutputArtifactsGQL)
	runInputArtifactsDoc          = gql.MustParse(documents.RunInputArtifactsGQL)
	artifactVersionFilesDoc       = gql.MustParse(documents.ArtifactVersionFilesGQL)
	artifactMembershipFilesDoc    = gql.MustParse(documents.ArtifactCollectionMembershipFilesGQL)
	updateArtifactCollectionDoc   = gql.MustParse(documents.UpdateArtifactCollectionGQL)
	moveArtifactCollectionDoc     = gql.MustParse(documents.MoveArtifactCollectionGQL)
	deleteArtifactCollectionDoc   = gql.MustParse(documents.DeleteArtifactCollectionGQL)
	createCollectionTagsDoc       = gql.MustParse(documents.CreateArtifactCollectionTagAssignmentsGQL)
	deleteCollectionTagsDoc       = gql.MustParse(documents.DeleteArtifactCollectionTagAssignmentsGQL)
	updateArtifactDoc             = gql.MustParse(documents.UpdateArtifactGQL)
	addAliasesDoc                 = gql.MustParse(documents.AddAliasesGQL)
	deleteAliasesDoc              = gql.MustParse(documents.DeleteAliasesGQL)
	deleteArtifactDoc             = gql.MustParse(documents.DeleteArtifactGQL)
)
