package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/recreation-microservice/internal/domain/repository"
	"github.com/recreation-microservice/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRecreationResourceRepositoryForTest creates a public-only recreation resource repository
func NewRecreationResourceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RecreationResourceRepository {
	return postgres.NewRecreationResourceRepository(NewDBForTest(db, logger), logger, true)
}
