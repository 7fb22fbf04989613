package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bgcatalog/backend/internal/database/testdb"
	"bgcatalog/backend/internal/identity"
	"bgcatalog/backend/internal/repository"
)

type fixture struct {
	db       *gorm.DB
	ctx      context.Context
	owner    uuid.UUID
	games    *repository.GameRepository
	taxonomy *repository.TaxonomyRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	owner := uuid.New()
	return &fixture{
		db:       db,
		ctx:      identity.WithCaller(context.Background(), owner),
		owner:    owner,
		games:    repository.NewGameRepository(db, zerolog.Nop()),
		taxonomy: repository.NewTaxonomyRepository(db, zerolog.Nop()),
	}
}

func (f *fixture) category(t *testing.T, name string) uint {
	t.Helper()
	c, err := f.taxonomy.CreateCategory(f.ctx, repository.TaxonomyCommand{Name: name})
	require.NoError(t, err)
	return c.ID
}

func (f *fixture) mechanic(t *testing.T, name string) uint {
	t.Helper()
	m, err := f.taxonomy.CreateMechanic(f.ctx, repository.TaxonomyCommand{Name: name})
	require.NoError(t, err)
	return m.ID
}

func (f *fixture) game(t *testing.T, cmd repository.GameCommand) uint {
	t.Helper()
	if cmd.MinPlayers == 0 {
		cmd.MinPlayers = 1
	}
	if cmd.MaxPlayers == 0 {
		cmd.MaxPlayers = 4
	}
	g, err := f.games.Create(f.ctx, f.owner, cmd)
	require.NoError(t, err)
	return g.ID
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
