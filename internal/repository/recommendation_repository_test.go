package repository_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
)

func TestRecommendationRepository_RanksBySharedTaxonomy(t *testing.T) {
	f := newFixture(t)
	collections := repository.NewCollectionRepository(f.db, zerolog.Nop())
	recs := repository.NewRecommendationRepository(f.db, zerolog.Nop())

	coop := f.category(t, "Cooperative")
	horror := f.category(t, "Horror")
	dice := f.mechanic(t, "Dice Rolling")

	owned := f.game(t, repository.GameCommand{Title: "Arkham Horror", CategoryIDs: []uint{coop, horror}, MechanicIDs: []uint{dice}})
	f.game(t, repository.GameCommand{Title: "Eldritch Horror", CategoryIDs: []uint{coop, horror}, MechanicIDs: []uint{dice}})
	f.game(t, repository.GameCommand{Title: "Forbidden Island", CategoryIDs: []uint{coop}})
	f.game(t, repository.GameCommand{Title: "Chess"})

	_, err := collections.Add(f.ctx, f.owner, owned)
	require.NoError(t, err)

	titles, err := recs.Generate(f.ctx, f.owner, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eldritch Horror", "Forbidden Island"}, titles)

	stored, total, err := recs.List(f.ctx, f.owner, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, stored, 1)
	assert.Equal(t, titles, repository.ParseTitles(stored[0]))

	var input repository.RecommendationInput
	require.NoError(t, json.Unmarshal(stored[0].InputData, &input))
	assert.Equal(t, []uint{owned}, input.CollectionGameIDs)
	assert.Equal(t, []uint{coop, horror}, input.CategoryIDs)
	assert.Equal(t, []uint{dice}, input.MechanicIDs)
}

func TestRecommendationRepository_EmptyCollection(t *testing.T) {
	f := newFixture(t)
	recs := repository.NewRecommendationRepository(f.db, zerolog.Nop())
	f.game(t, repository.GameCommand{Title: "Catan"})

	titles, err := recs.Generate(f.ctx, uuid.New(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Catan"}, titles)
}

func TestParseTitles(t *testing.T) {
	text := `["Root","Azul"]`
	plain := "not json"

	assert.Equal(t, []string{"Root", "Azul"}, repository.ParseTitles(models.Recommendation{Text: &text}))
	assert.Equal(t, []string{"not json"}, repository.ParseTitles(models.Recommendation{Text: &plain}))
	assert.Empty(t, repository.ParseTitles(models.Recommendation{}))
}
