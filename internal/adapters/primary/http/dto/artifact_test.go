package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/verigle/wandb/internal/core/domain"
)

func ptr[T any](v T) *T { return &v }

// ============================================================================
// Request Mapping Tests
// ============================================================================

func TestToCollectionUpdate(t *testing.T) {
	req := &UpdateCollectionRequest{
		Description: ptr("digits"),
		Tags:        &[]string{"a", "b"},
	}

	upd := ToCollectionUpdate(req)

	assert.Nil(t, upd.Name)
	assert.Nil(t, upd.Type)
	assert.Equal(t, "digits", *upd.Description)
	assert.Equal(t, []string{"a", "b"}, *upd.Tags)
}

func TestToArtifactUpdate_TTL(t *testing.T) {
	tests := []struct {
		name      string
		ttl       *int64
		wantTTL   *int64
		wantClear bool
	}{
		{name: "unset", ttl: nil},
		{name: "clear", ttl: ptr(int64(-1)), wantClear: true},
		{name: "set", ttl: ptr(int64(3600)), wantTTL: ptr(int64(3600))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upd := ToArtifactUpdate(&UpdateVersionRequest{TTLSeconds: tt.ttl})
			assert.Equal(t, tt.wantTTL, upd.TTL)
			assert.Equal(t, tt.wantClear, upd.ClearTTL)
		})
	}
}

// ============================================================================
// Response Mapping Tests
// ============================================================================

func TestToFileResponse(t *testing.T) {
	resp := ToFileResponse(domain.File{
		ID:        "RmlsZTox",
		Name:      "data.csv",
		SizeBytes: 42,
		UpdatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "data.csv", resp.Name)
	assert.Equal(t, int64(42), resp.SizeBytes)
	assert.Equal(t, "2024-03-01T10:00:00Z", resp.UpdatedAt)

	assert.Empty(t, ToFileResponse(domain.File{Name: "x"}).UpdatedAt)
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}
