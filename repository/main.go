package repository

import (
	"github.com/kngsnwn/gigapress/infra"
)

type Repository struct {
	Bundles *BundleRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	return &Repository{
		Bundles: NewBundleRepository(infra.Postgres.DB),
	}
}
