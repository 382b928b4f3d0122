package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kngsnwn/gigapress/entity"
)

type BundleRepository struct {
	db *gorm.DB
}

func NewBundleRepository(db *gorm.DB) *BundleRepository {
	return &BundleRepository{db: db}
}

// SaveBundle persists a completed generation's artifacts as one bundle row.
func (r *BundleRepository) SaveBundle(cfg *entity.InfrastructureConfig) (*entity.ArtifactBundle, error) {
	artifacts, err := json.Marshal(cfg.Categories())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal artifacts: %w", err)
	}

	bundle := &entity.ArtifactBundle{
		ID:        uuid.New(),
		ProjectID: cfg.ProjectID,
		Version:   cfg.Version,
		Artifacts: datatypes.JSON(artifacts),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := r.db.Create(bundle).Error; err != nil {
		return nil, err
	}
	return bundle, nil
}

func (r *BundleRepository) FindByProjectID(projectID string) ([]entity.ArtifactBundle, error) {
	var bundles []entity.ArtifactBundle
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *BundleRepository) FindLatestByProjectID(projectID string) (*entity.ArtifactBundle, error) {
	var bundle entity.ArtifactBundle
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").First(&bundle).Error
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}
