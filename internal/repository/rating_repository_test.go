package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bgcatalog/backend/internal/repository"
)

func TestRatingRepository_CreateUpdateList(t *testing.T) {
	f := newFixture(t)
	repo := repository.NewRatingRepository(f.db, zerolog.Nop())
	id := f.game(t, repository.GameCommand{Title: "Wingspan"})
	other := uuid.New()

	mine, err := repo.Create(f.ctx, id, f.owner, repository.RatingCommand{Rating: 7, Comment: strPtr("pretty birds")})
	require.NoError(t, err)
	_, err = repo.Create(f.ctx, id, other, repository.RatingCommand{Rating: 9})
	require.NoError(t, err)

	_, err = repo.Create(f.ctx, id, f.owner, repository.RatingCommand{Rating: 3})
	assert.ErrorIs(t, err, repository.ErrConflict)

	updated, err := repo.Update(f.ctx, id, f.owner, repository.RatingCommand{Rating: 8})
	require.NoError(t, err)
	assert.Equal(t, mine.ID, updated.ID)
	assert.Equal(t, 8, updated.Rating)
	assert.Nil(t, updated.Comment)

	ratings, total, err := repo.ListForGame(f.ctx, id, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, ratings, 1)
}

func TestRatingRepository_UnknownGameOrRating(t *testing.T) {
	f := newFixture(t)
	repo := repository.NewRatingRepository(f.db, zerolog.Nop())
	id := f.game(t, repository.GameCommand{Title: "Cascadia"})

	_, _, err := repo.ListForGame(f.ctx, 999, 1, 20)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Create(f.ctx, 999, f.owner, repository.RatingCommand{Rating: 5})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Update(f.ctx, id, f.owner, repository.RatingCommand{Rating: 5})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
