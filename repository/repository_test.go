package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hbnb-api/db"
	"hbnb-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := db.OpenWithConn(conn, false)
	require.NoError(t, err)
	return gdb, mock
}

func TestUserRepository_GetByEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)
	query := regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "email", "first_name", "last_name", "password", "is_admin"}).
			AddRow("u-1", now, now, "john@example.com", "John", "Doe", "hash", true)
		mock.ExpectQuery(query).WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.True(t, user.IsAdmin)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityRepository_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAmenityRepository(gdb)
	insert := regexp.QuoteMeta(`INSERT INTO "amenities"`)

	t.Run("assigns an id", func(t *testing.T) {
		mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 1))

		amenity := &model.Amenity{Name: "Wifi"}
		require.NoError(t, repo.Create(context.Background(), amenity))
		assert.Len(t, amenity.ID, 36)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectExec(insert).WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

		err := repo.Create(context.Background(), &model.Amenity{Name: "Wifi"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_CreateWithMissingUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewReviewRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "reviews"`)).
		WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"reviews\" violates foreign key constraint"})

	err := repo.Create(context.Background(), &model.Review{PlaceID: "p-1", UserID: "deleted-user", Comment: "Nice", Rating: 4})
	assert.ErrorIs(t, err, ErrMissingReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityRepository_Delete(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAmenityRepository(gdb)
	del := regexp.QuoteMeta(`DELETE FROM "amenities" WHERE id = $1`)

	mock.ExpectExec(del).WithArgs("a-1").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), "a-1"))

	mock.ExpectExec(del).WithArgs("a-2").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "a-2"), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCityRepository_ListByCountry(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCityRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "country_code"}).
		AddRow("c-1", now, now, "Lyon", "FR").
		AddRow("c-2", now, now, "Paris", "FR")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cities" WHERE country_code = $1 ORDER BY name`)).
		WithArgs("FR").
		WillReturnRows(rows)

	cities, err := repo.ListByCountry(context.Background(), "FR")
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Lyon", cities[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}
