package repository_test

import (
	"context"
	"testing"

	otelMocks "hoteladmin/infras/otel/mocks"
	"hoteladmin/infras/postgres"
	"hoteladmin/infras/postgres/postgrestest"
	"hoteladmin/shared/dto"
	"hoteladmin/shared/model"
	"hoteladmin/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hotel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Status   string `db:"status"`
	model.Metadata
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq}},
	}
}

func newRepo(t *testing.T) (repository.Repository[hotel], *postgres.Connection) {
	t.Helper()

	db := postgrestest.NewSQLite(t)

	return repository.NewRepository[hotel]("hotel", "hotels", "id", db, otelMocks.NewOtel()), db
}

func seed(t *testing.T, repo repository.Repository[hotel], names ...string) {
	t.Helper()

	for idx, name := range names {
		h := hotel{ID: string(rune('a' + idx)), Name: name, Location: "Jakarta", Status: "active", Metadata: model.NewMetadata("admin")}
		require.NoError(t, repo.Insert(context.Background(), h))
	}
}

func TestRepository_InsertGetExist(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	seed(t, repo, "Grand Plaza")

	got, err := repo.Get(ctx, byID("a"))
	require.NoError(t, err)
	assert.Equal(t, "Grand Plaza", got.Name)
	assert.Equal(t, "admin", got.CreatedBy)

	exist, err := repo.Exist(ctx, byID("a"))
	require.NoError(t, err)
	assert.True(t, exist)

	missing, err := repo.Get(ctx, byID("zz"))
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	_, err = repo.Exist(ctx, dto.FilterGroup{})
	assert.Error(t, err, "an unfiltered existence check is refused")
}

func TestRepository_GetAllPagesAndCounts(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	seed(t, repo, "Alpha", "Bravo", "Charlie")

	page, err := repo.GetAll(ctx, dto.QueryParams{Page: 2, Limit: 2, SortBy: "name", SortDir: dto.SortDirAsc}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Charlie", page[0].Name)

	names, err := repo.GetAll(ctx, dto.QueryParams{SortBy: "name", SortDir: dto.SortDirDesc}, dto.FilterGroup{}, "id", "name")
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "Charlie", names[0].Name)
	assert.Empty(t, names[0].Location, "unselected columns stay empty")

	count, err := repo.Count(ctx, dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "name", Value: "ha", Operator: dto.FilterOperatorLike}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, db := newRepo(t)

	seed(t, repo, "Alpha", "Bravo")

	require.NoError(t, repo.Update(ctx, map[string]any{"status": "inactive"}, byID("a")))

	got, err := repo.Get(ctx, byID("a"))
	require.NoError(t, err)
	assert.Equal(t, "inactive", got.Status)

	assert.Error(t, repo.Update(ctx, map[string]any{"status": "inactive"}, dto.FilterGroup{}))

	require.NoError(t, db.Transaction(ctx, func(tx *sqlx.Tx) error {
		return repo.DeleteTx(ctx, tx, byID("b"))
	}))

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
