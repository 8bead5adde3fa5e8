package domain

import "time"

// File is a single file stored in a logged artifact version.
type File struct {
	ID          string
	Name        string
	URL         string
	DirectURL   string
	SizeBytes   int64
	Mimetype    string
	Digest      string
	MD5         string
	StoragePath string
	UpdatedAt   time.Time
}

// RunRef identifies a run by its entity, project and run id.
type RunRef struct {
	Entity  string
	Project string
	ID      string
}

func (r RunRef) Path() string {
	return r.Entity + "/" + r.Project + "/" + r.ID
}

// RunArtifactsMode selects which side of a run's lineage to list.
type RunArtifactsMode string

const (
	RunArtifactsLogged RunArtifactsMode = "logged"
	RunArtifactsUsed   RunArtifactsMode = "used"
)

// Server feature flags consulted by the compatibility shims.
const (
	FeatureArtifactTags                      = "ARTIFACT_TAGS"
	FeatureArtifactTTL                       = "ARTIFACT_TTL"
	FeatureArtifactCollectionMembershipFiles = "ARTIFACT_COLLECTION_MEMBERSHIP_FILES"
)

// Minimum server versions for fields that older servers do not know.
const (
	MinVersionArtifactCollections = "0.12.11"
	MinVersionFileStoragePath     = "0.12.21"
)
