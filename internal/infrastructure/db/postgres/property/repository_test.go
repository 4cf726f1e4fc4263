package property

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "realty-office-api/internal/domain/property"
)

var propertyCols = []string{
	"id", "category", "title", "price", "address",
	"area", "exclusive_area", "approval_date", "purpose", "total_floors", "floor",
	"direction", "direction_standard", "transaction_type", "parking", "maintenance_fee",
	"power_supply", "hoist", "ceiling_height", "move_in_date", "description",
	"image_path", "youtube_url", "status", "created_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func sampleRow(id uint64) []any {
	area := 84.5
	floors := 15
	return []any{
		id, "주거용", "역세권 아파트", sql.NullString{String: "5억", Valid: true}, sql.NullString{String: "서울시", Valid: true},
		&area, (*float64)(nil), sql.NullString{}, sql.NullString{}, &floors, (*int)(nil),
		sql.NullString{String: "남향", Valid: true}, sql.NullString{}, sql.NullString{String: "매매", Valid: true}, (*int)(nil), (*int)(nil),
		sql.NullString{}, sql.NullString{}, (*float64)(nil), sql.NullString{}, sql.NullString{},
		sql.NullString{String: `["https://cdn.example.com/a_1_1.jpg"]`, Valid: true}, sql.NullString{}, "판매중", time.Now(),
	}
}

func TestRepository_FetchPropertyByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(SelectPropertyByID).
			WithArgs(uint64(7)).
			WillReturnRows(pgxmock.NewRows(propertyCols).AddRow(sampleRow(7)...))

		repo := NewRepository(mock)
		p, err := repo.FetchPropertyByID(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, uint64(7), p.ID)
		assert.Equal(t, "주거용", p.Category)
		assert.Equal(t, "5억", p.Price)
		require.NotNil(t, p.Area)
		assert.Equal(t, 84.5, *p.Area)
		assert.Nil(t, p.Parking)
		assert.Equal(t, `["https://cdn.example.com/a_1_1.jpg"]`, p.ImagePath)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(SelectPropertyByID).
			WithArgs(uint64(99)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		p, err := repo.FetchPropertyByID(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, p)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchProperties(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(SelectProperties).
		WithArgs("주거용", 2).
		WillReturnRows(pgxmock.NewRows(propertyCols).
			AddRow(sampleRow(1)...).
			AddRow(sampleRow(2)...))

	repo := NewRepository(mock)
	ps, err := repo.FetchProperties(context.Background(), "주거용", 2)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, uint64(1), ps[0].ID)
	assert.Equal(t, uint64(2), ps[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateProperty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(InsertProperty).
		WithArgs(
			"주거용", "역세권 아파트", sql.NullString{String: "5억", Valid: true}, sql.NullString{},
			(*float64)(nil), (*float64)(nil), sql.NullString{}, sql.NullString{}, (*int)(nil), (*int)(nil),
			sql.NullString{}, sql.NullString{}, sql.NullString{}, (*int)(nil), (*int)(nil),
			sql.NullString{}, sql.NullString{}, (*float64)(nil), sql.NullString{}, sql.NullString{},
			sql.NullString{String: `["https://cdn.example.com/a_1_1.jpg"]`, Valid: true}, sql.NullString{}, "판매중",
		).
		WillReturnRows(pgxmock.NewRows(propertyCols).AddRow(sampleRow(8)...))

	repo := NewRepository(mock)
	p, err := repo.CreateProperty(context.Background(), &domain.Property{
		Category:  "주거용",
		Title:     "역세권 아파트",
		Price:     "5억",
		ImagePath: `["https://cdn.example.com/a_1_1.jpg"]`,
		Status:    "판매중",
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, uint64(8), p.ID)
	assert.Equal(t, "판매중", p.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteProperty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(DeletePropertyByID).
		WithArgs(uint64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewRepository(mock)
	require.NoError(t, repo.DeleteProperty(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByCategory(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(CountProperties).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(CountByCategory).
		WillReturnRows(pgxmock.NewRows([]string{"category", "count"}).
			AddRow("주거용", int64(7)).
			AddRow("상업용", int64(5)))

	repo := NewRepository(mock)
	total, counts, err := repo.CountByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, counts, 2)
	assert.Equal(t, "주거용", counts[0].Category)
	assert.Equal(t, int64(7), counts[0].Count)
	require.NoError(t, mock.ExpectationsWereMet())
}
