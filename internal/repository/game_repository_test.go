package repository_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bgcatalog/backend/internal/models"
	"bgcatalog/backend/internal/repository"
)

func TestGameRepository_CreateLoadsAssociations(t *testing.T) {
	f := newFixture(t)
	strategy := f.category(t, "Strategy")
	family := f.category(t, "Family")
	drafting := f.mechanic(t, "Drafting")

	created, err := f.games.Create(f.ctx, f.owner, repository.GameCommand{
		Title:       "7 Wonders",
		Publisher:   strPtr("Repos"),
		MinPlayers:  2,
		MaxPlayers:  7,
		PlayTime:    intPtr(30),
		CategoryIDs: []uint{family, strategy, family},
		MechanicIDs: []uint{drafting},
	})
	require.NoError(t, err)

	got, err := f.games.GetByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "7 Wonders", got.Title)
	assert.Equal(t, f.owner, got.UserID)
	assert.Equal(t, []uint{strategy, family}, got.CategoryIDs())
	assert.Equal(t, []uint{drafting}, got.MechanicIDs())
	require.NotNil(t, got.PlayTime)
	assert.Equal(t, 30, *got.PlayTime)
}

func TestGameRepository_CreateWithUnknownCategoryPersistsNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.games.Create(f.ctx, f.owner, repository.GameCommand{
		Title:       "Ghost",
		MinPlayers:  1,
		MaxPlayers:  2,
		CategoryIDs: []uint{999},
	})
	require.ErrorIs(t, err, repository.ErrUnknownReference)

	var games, audits int64
	require.NoError(t, f.db.Model(&models.Game{}).Count(&games).Error)
	require.NoError(t, f.db.Model(&models.AuditLog{}).Count(&audits).Error)
	assert.Zero(t, games)
	assert.Zero(t, audits)
}

func TestGameRepository_UpdateReplacesAssociationSets(t *testing.T) {
	f := newFixture(t)
	c1 := f.category(t, "Abstract")
	c2 := f.category(t, "Party")
	c3 := f.category(t, "Wargame")
	m1 := f.mechanic(t, "Bluffing")

	id := f.game(t, repository.GameCommand{
		Title:       "Coup",
		Publisher:   strPtr("Indie Boards"),
		PlayTime:    intPtr(15),
		CategoryIDs: []uint{c1, c2},
		MechanicIDs: []uint{m1},
	})

	updated, err := f.games.Update(f.ctx, id, f.owner, repository.GameCommand{
		Title:       "Coup: Reformation",
		MinPlayers:  2,
		MaxPlayers:  10,
		CategoryIDs: []uint{c3},
		MechanicIDs: []uint{},
	})
	require.NoError(t, err)

	assert.Equal(t, "Coup: Reformation", updated.Title)
	assert.Nil(t, updated.Publisher)
	assert.Nil(t, updated.PlayTime)
	assert.Equal(t, []uint{c3}, updated.CategoryIDs())
	assert.Empty(t, updated.MechanicIDs())
}

func TestGameRepository_WrongOwnerIsForbiddenAndRowUnchanged(t *testing.T) {
	f := newFixture(t)
	id := f.game(t, repository.GameCommand{Title: "Azul"})
	stranger := uuid.New()

	_, err := f.games.Update(f.ctx, id, stranger, repository.GameCommand{Title: "Hijacked", MinPlayers: 1, MaxPlayers: 1})
	assert.ErrorIs(t, err, repository.ErrForbidden)

	err = f.games.Delete(f.ctx, id, stranger)
	assert.ErrorIs(t, err, repository.ErrForbidden)

	got, err := f.games.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Azul", got.Title)
}

func TestGameRepository_DeleteTwice(t *testing.T) {
	f := newFixture(t)
	c := f.category(t, "Puzzle")
	id := f.game(t, repository.GameCommand{Title: "Patchwork", CategoryIDs: []uint{c}})

	require.NoError(t, f.games.Delete(f.ctx, id, f.owner))

	_, err := f.games.GetByID(f.ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, f.games.Delete(f.ctx, id, f.owner), repository.ErrNotFound)

	var joins int64
	require.NoError(t, f.db.Model(&models.GameCategory{}).Where("game_id = ?", id).Count(&joins).Error)
	assert.Zero(t, joins)
}

func TestGameRepository_UpdateMissingGame(t *testing.T) {
	f := newFixture(t)

	_, err := f.games.Update(f.ctx, 42, f.owner, repository.GameCommand{Title: "Nope", MinPlayers: 1, MaxPlayers: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGameRepository_ListPaginatesAndCountsAllMatches(t *testing.T) {
	f := newFixture(t)
	for _, title := range []string{"Carcassonne", "Agricola", "Brass", "Dominion", "Everdell"} {
		f.game(t, repository.GameCommand{Title: title})
	}

	games, total, err := f.games.List(f.ctx, repository.GameFilters{Page: 2, Limit: 2, SortBy: repository.SortByTitle, Order: repository.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, games, 2)
	assert.Equal(t, "Carcassonne", games[0].Title)
	assert.Equal(t, "Dominion", games[1].Title)

	games, _, err = f.games.List(f.ctx, repository.GameFilters{Page: 1, Limit: 1, SortBy: repository.SortByTitle, Order: repository.OrderDesc})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Everdell", games[0].Title)

	games, total, err = f.games.List(f.ctx, repository.GameFilters{Page: math.MaxInt, Limit: 20, SortBy: repository.SortByTitle, Order: repository.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, games)
}

func TestGameRepository_ListFilters(t *testing.T) {
	f := newFixture(t)
	coop := f.category(t, "Cooperative")
	euro := f.category(t, "Euro")
	dice := f.mechanic(t, "Dice Rolling")

	f.game(t, repository.GameCommand{Title: "Pandemic", MinPlayers: 2, MaxPlayers: 4, CategoryIDs: []uint{coop}})
	f.game(t, repository.GameCommand{Title: "Pandemic Legacy", MinPlayers: 2, MaxPlayers: 4, CategoryIDs: []uint{coop}, MechanicIDs: []uint{dice}})
	f.game(t, repository.GameCommand{Title: "Terraforming Mars", MinPlayers: 1, MaxPlayers: 5, CategoryIDs: []uint{euro}})

	tests := []struct {
		name    string
		filters repository.GameFilters
		want    []string
	}{
		{"title is case insensitive", repository.GameFilters{Title: "pandemic"}, []string{"Pandemic", "Pandemic Legacy"}},
		{"min players", repository.GameFilters{MinPlayers: intPtr(2)}, []string{"Pandemic", "Pandemic Legacy"}},
		{"max players", repository.GameFilters{MaxPlayers: intPtr(4)}, []string{"Pandemic", "Pandemic Legacy"}},
		{"any category", repository.GameFilters{CategoryIDs: []uint{coop, euro}}, []string{"Pandemic", "Pandemic Legacy", "Terraforming Mars"}},
		{"category and mechanic", repository.GameFilters{CategoryIDs: []uint{coop}, MechanicIDs: []uint{dice}}, []string{"Pandemic Legacy"}},
		{"no match", repository.GameFilters{CategoryIDs: []uint{euro}, MechanicIDs: []uint{dice}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filters.Page, tt.filters.Limit = 1, 20
			games, total, err := f.games.List(f.ctx, tt.filters)
			require.NoError(t, err)

			titles := []string{}
			for _, g := range games {
				titles = append(titles, g.Title)
			}
			assert.Equal(t, tt.want, titles)
			assert.Equal(t, int64(len(tt.want)), total)
			assert.NotNil(t, games)
		})
	}
}

func TestGameRepository_WritesAuditTrail(t *testing.T) {
	f := newFixture(t)
	id := f.game(t, repository.GameCommand{Title: "Root"})

	_, err := f.games.Update(f.ctx, id, f.owner, repository.GameCommand{Title: "Root", MinPlayers: 2, MaxPlayers: 4})
	require.NoError(t, err)
	require.NoError(t, f.games.Delete(f.ctx, id, f.owner))

	var entries []models.AuditLog
	require.NoError(t, f.db.Where("table_name = ? AND record_id = ?", "games", id).Order("id").Find(&entries).Error)
	require.Len(t, entries, 3)
	assert.Equal(t, models.AuditInsert, entries[0].Operation)
	assert.Equal(t, models.AuditUpdate, entries[1].Operation)
	assert.Equal(t, models.AuditDelete, entries[2].Operation)
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, f.owner, *entries[0].UserID)
	assert.Contains(t, string(entries[0].ChangedData), `"title":"Root"`)
}
