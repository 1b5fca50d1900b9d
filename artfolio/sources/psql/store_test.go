package psql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"artfolio/artfolio/sources/models"
	"artfolio/artfolio/sources/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := Open(context.Background(), sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	s := NewStore(database)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u, err := s.CreateUser(ctx, &models.User{ID: "user-123", FullName: strPtr("Test User"), Username: strPtr("test")})
	require.NoError(t, err)
	assert.Equal(t, "user-123", u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := s.GetUserByUsername(ctx, "test")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-123", got.ID)

	missing, err := s.GetUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := s.UpdateUser(ctx, "user-123", models.UserUpdate{FullName: strPtr(""), ProfileImageURL: strPtr("http://img")})
	require.NoError(t, err)
	assert.Nil(t, updated.FullName)
	assert.Equal(t, "http://img", *updated.ProfileImageURL)
	assert.Equal(t, "test", *updated.Username)

	none, err := s.UpdateUser(ctx, "nobody", models.UserUpdate{FullName: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = s.UpdateUser(ctx, "user-123", models.UserUpdate{})
	assert.Equal(t, store.KindInvalid, store.KindOf(err))

	_, err = s.CreateUser(ctx, &models.User{Username: strPtr("test")})
	assert.Equal(t, store.KindConflict, store.KindOf(err))
}

func TestPortfolios(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.CreatePortfolio(ctx, models.PortfolioInput{UserID: "u1", Title: "Jane", Slug: strPtr("jane")})
	require.NoError(t, err)
	assert.True(t, p.IsPublic)
	assert.NotEmpty(t, p.ID)

	private, err := s.CreatePortfolio(ctx, models.PortfolioInput{UserID: "u1", Title: "Later", IsPublic: boolPtr(false)})
	require.NoError(t, err)
	reread, err := s.GetPortfolio(ctx, private.ID)
	require.NoError(t, err)
	assert.False(t, reread.IsPublic)

	bySlug, err := s.GetPortfolioBySlug(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySlug.ID)

	first, err := s.GetPortfolioByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, first.ID)

	blank, err := s.CreatePortfolio(ctx, models.PortfolioInput{UserID: "u3", Title: "Blank", Description: strPtr(""), Website: strPtr(""), Slug: strPtr("")})
	require.NoError(t, err)
	blank, err = s.GetPortfolio(ctx, blank.ID)
	require.NoError(t, err)
	assert.Nil(t, blank.Description)
	assert.Nil(t, blank.Website)
	assert.Nil(t, blank.Slug)

	exists, err := s.SlugExists(ctx, "jane")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = s.CreatePortfolio(ctx, models.PortfolioInput{UserID: "u2", Title: "Dup", Slug: strPtr("jane")})
	assert.Equal(t, store.KindConflict, store.KindOf(err))

	time.Sleep(time.Millisecond)
	upd, err := s.UpdatePortfolio(ctx, p.ID, models.PortfolioUpdate{Description: strPtr("bio")})
	require.NoError(t, err)
	assert.Equal(t, "bio", *upd.Description)
	assert.Equal(t, "Jane", upd.Title)
	assert.Equal(t, "jane", *upd.Slug)
	assert.True(t, upd.UpdatedAt.After(p.UpdatedAt))

	same, err := s.UpdatePortfolio(ctx, p.ID, models.PortfolioUpdate{})
	require.NoError(t, err)
	assert.Equal(t, upd.UpdatedAt.Unix(), same.UpdatedAt.Unix())

	none, err := s.UpdatePortfolio(ctx, "missing", models.PortfolioUpdate{Title: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestImages(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateImage(ctx, models.ImageInput{})
	assert.Equal(t, store.KindInvalid, store.KindOf(err))

	a, err := s.CreateImage(ctx, models.ImageInput{ImageURL: "a", UserID: strPtr("u1"), PortfolioID: strPtr("p1")})
	require.NoError(t, err)
	assert.Equal(t, models.SourceUpload, a.Source)
	_, err = s.CreateImage(ctx, models.ImageInput{ImageURL: "b", UserID: strPtr("u1"), Source: models.SourceTwitter})
	require.NoError(t, err)

	byPortfolio, err := s.ListImagesByPortfolio(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, byPortfolio, 1)

	byUser, err := s.ListImagesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, "a", byUser[0].ImageURL)

	empty, err := s.ListImagesByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)

	foreign, err := s.DeleteUserImage(ctx, "u2", a.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)
	removed, err := s.DeleteUserImage(ctx, "u1", a.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "a", removed.ImageURL)

	require.NoError(t, s.DeleteImage(ctx, a.ID))
	require.NoError(t, s.DeleteImage(ctx, a.ID))

	n, err := s.DeleteImagesBySource(ctx, "u1", models.SourceTwitter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEventsAndSocial(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ev, err := s.CreateEvent(ctx, &models.Event{UserID: "u1", Title: "Show", Date: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC), Location: "Hall", Type: "performance"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteEvent(ctx, "other-user", ev.ID))
	evs, err := s.ListEvents(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, "2030-01-02", evs[0].DateString())
	require.NoError(t, s.DeleteEvent(ctx, "u1", ev.ID))
	evs, err = s.ListEvents(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, evs)

	_, err = s.UpsertSocialConnection(ctx, &models.SocialConnection{UserID: "u1", Platform: "instagram", Username: "old", AccessToken: "t1"})
	require.NoError(t, err)
	_, err = s.UpsertSocialConnection(ctx, &models.SocialConnection{UserID: "u1", Platform: "instagram", Username: "new", AccessToken: "t2"})
	require.NoError(t, err)
	require.NoError(t, s.TouchSocialConnection(ctx, "u1", "instagram"))

	c, err := s.GetSocialConnection(ctx, "u1", "instagram")
	require.NoError(t, err)
	assert.Equal(t, "new", c.Username)
	assert.NotNil(t, c.LastFetched)

	conns, err := s.ListSocialConnections(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Store) error {
		if _, err := tx.CreatePortfolio(ctx, models.PortfolioInput{UserID: "u1", Title: "T"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := s.GetPortfolioByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p)
}
