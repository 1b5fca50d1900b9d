package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(sqlx.NewDb(db, "sqlmock")), mock
}

var (
	userCols      = []string{"id", "full_name", "username", "email", "profile_image_url", "created_at"}
	portfolioCols = []string{"id", "user_id", "title", "description", "website", "slug", "is_public", "created_at", "updated_at"}
	imageCols     = []string{"id", "image_url", "portfolio_id", "user_id", "source", "created_at"}
)

func TestGetUser_NotFoundIsNil(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, full_name, username, email, profile_image_url, created_at FROM users WHERE id = $1`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := s.GetUser(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, u)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_SparseSet(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	name := "Jane"
	empty := ""
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET full_name = $1, profile_image_url = $2 WHERE id = $3 RETURNING id, full_name, username, email, profile_image_url, created_at`)).
		WithArgs("Jane", nil, "user-123").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("user-123", "Jane", nil, "", nil, now))

	u, err := s.UpdateUser(context.Background(), "user-123", models.UserUpdate{FullName: &name, ProfileImageURL: &empty})
	require.NoError(t, err)
	require.Equal(t, "Jane", *u.FullName)
	require.Nil(t, u.ProfileImageURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_EmptyIsInvalid(t *testing.T) {
	s, mock := newMockStore(t)
	_, err := s.UpdateUser(context.Background(), "user-123", models.UserUpdate{})
	require.Equal(t, store.KindInvalid, store.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePortfolio_DefaultsPublic(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	slug := "jane-doe"
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO portfolios (id, user_id, title, description, website, slug, is_public) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, user_id, title, description, website, slug, is_public, created_at, updated_at`)).
		WithArgs(sqlmock.AnyArg(), "user-123", "Jane Doe", nil, nil, "jane-doe", true).
		WillReturnRows(sqlmock.NewRows(portfolioCols).AddRow("p1", "user-123", "Jane Doe", nil, nil, "jane-doe", true, now, now))

	p, err := s.CreatePortfolio(context.Background(), models.PortfolioInput{UserID: "user-123", Title: "Jane Doe", Slug: &slug})
	require.NoError(t, err)
	require.True(t, p.IsPublic)
	require.Equal(t, "p1", p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePortfolio_DuplicateSlugIsConflict(t *testing.T) {
	s, mock := newMockStore(t)
	slug := "jane"
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO portfolios`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := s.CreatePortfolio(context.Background(), models.PortfolioInput{UserID: "u", Title: "t", Slug: &slug})
	require.Equal(t, store.KindConflict, store.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePortfolio_StampsUpdatedAt(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	public := false
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE portfolios SET is_public = $1, updated_at = now() WHERE id = $2 RETURNING`)).
		WithArgs(false, "p1").
		WillReturnRows(sqlmock.NewRows(portfolioCols).AddRow("p1", "u", "T", nil, nil, nil, false, now, now))

	p, err := s.UpdatePortfolio(context.Background(), "p1", models.PortfolioUpdate{IsPublic: &public})
	require.NoError(t, err)
	require.False(t, p.IsPublic)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePortfolio_EmptyReturnsCurrent(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, title, description, website, slug, is_public, created_at, updated_at FROM portfolios WHERE id = $1 ORDER BY created_at ASC LIMIT 1`)).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(portfolioCols).AddRow("p1", "u", "T", nil, nil, "t", true, now, now))

	p, err := s.UpdatePortfolio(context.Background(), "p1", models.PortfolioUpdate{})
	require.NoError(t, err)
	require.Equal(t, "t", *p.Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlugExists(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM portfolios WHERE slug = $1)`)).
		WithArgs("jane").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := s.SlugExists(context.Background(), "jane")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListImagesByUser_EmptyNotNil(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, image_url, portfolio_id, user_id, source, created_at FROM images WHERE user_id = $1 ORDER BY created_at ASC`)).
		WithArgs("u").
		WillReturnRows(sqlmock.NewRows(imageCols))

	imgs, err := s.ListImagesByUser(context.Background(), "u")
	require.NoError(t, err)
	require.NotNil(t, imgs)
	require.Empty(t, imgs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateImage(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	user := "u"
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO images (id, image_url, portfolio_id, user_id, source) VALUES ($1, $2, $3, $4, $5) RETURNING`)).
		WithArgs(sqlmock.AnyArg(), "http://x/a.png", nil, "u", "upload").
		WillReturnRows(sqlmock.NewRows(imageCols).AddRow("i1", "http://x/a.png", nil, "u", "upload", now))

	img, err := s.CreateImage(context.Background(), models.ImageInput{ImageURL: "http://x/a.png", UserID: &user})
	require.NoError(t, err)
	require.Equal(t, "i1", img.ID)
	require.Nil(t, img.PortfolioID)
	require.NoError(t, mock.ExpectationsWereMet())

	_, err = s.CreateImage(context.Background(), models.ImageInput{})
	require.Equal(t, store.KindInvalid, store.KindOf(err))
}

func TestDeleteImage_MissingSucceeds(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM images WHERE id = $1`)).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteImage(context.Background(), "gone"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserImage_ScopedToOwner(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	query := regexp.QuoteMeta(`DELETE FROM images WHERE id = $1 AND user_id = $2 RETURNING id, image_url, portfolio_id, user_id, source, created_at`)
	mock.ExpectQuery(query).
		WithArgs("i1", "u").
		WillReturnRows(sqlmock.NewRows(imageCols).AddRow("i1", "https://x/a.png", nil, "u", "upload", now))
	mock.ExpectQuery(query).
		WithArgs("i1", "intruder").
		WillReturnRows(sqlmock.NewRows(imageCols))

	img, err := s.DeleteUserImage(context.Background(), "u", "i1")
	require.NoError(t, err)
	require.Equal(t, "https://x/a.png", img.ImageURL)

	none, err := s.DeleteUserImage(context.Background(), "intruder", "i1")
	require.NoError(t, err)
	require.Nil(t, none)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent_ScopedToOwner(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM events WHERE id = $1 AND user_id = $2`)).
		WithArgs("e1", "u").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteEvent(context.Background(), "u", "e1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSocialConnection(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id, platform) DO UPDATE SET`)).
		WithArgs("u", "instagram", "jane", "tok", sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "platform", "username", "access_token", "connected_at", "last_fetched"}).
			AddRow("u", "instagram", "jane", "tok", now, nil))

	c, err := s.UpsertSocialConnection(context.Background(), &models.SocialConnection{UserID: "u", Platform: "instagram", Username: "jane", AccessToken: "tok"})
	require.NoError(t, err)
	require.Equal(t, "jane", c.Username)
	require.Nil(t, c.LastFetched)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	s, mock := newMockStore(t)
	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM images WHERE id = $1`)).
		WithArgs("i1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(tx store.Store) error {
		if err := tx.DeleteImage(context.Background(), "i1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_Commit(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE social_connections SET last_fetched = now() WHERE user_id = $1 AND platform = $2`)).
		WithArgs("u", "twitter").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(context.Background(), func(tx store.Store) error {
		return tx.TouchSocialConnection(context.Background(), "u", "twitter")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
