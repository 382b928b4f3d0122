package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ArtifactBundle is the persisted form of a completed InfrastructureConfig.
type ArtifactBundle struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID string         `json:"project_id" gorm:"not null;index"`
	Version   string         `json:"version" gorm:"not null"`
	Artifacts datatypes.JSON `json:"artifacts" gorm:"type:jsonb"`
	CreatedAt string         `json:"created_at"`
}
