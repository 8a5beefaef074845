package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is 2026-10-18 10:00 local time.
var fixedNow = time.Date(2026, time.October, 18, 10, 0, 0, 0, time.Local)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(testRepo(t), WithClock(func() time.Time { return fixedNow }))
}

func TestCreateDefaultsNextFollow(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name       string
		nextFollow string
	}{
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.Create(context.Background(), Input{Name: "Lee", NextFollow: tt.nextFollow})
			require.NoError(t, err)
			assert.Equal(t, "2026-10-18", c.FirstContact.String())
			assert.Equal(t, "2026-11-01", c.NextFollow.String())
		})
	}
}

func TestCreateKeepsExplicitNextFollow(t *testing.T) {
	svc := testService(t)

	c, err := svc.Create(context.Background(), Input{
		Name:            "Lee",
		HouseAddress:    "1 Harbour Rd",
		RegisterAddress: "",
		NextFollow:      "2026-10-20",
		Notes:           "",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", c.NextFollow.String())
	assert.Equal(t, "2026-10-18", c.FirstContact.String())
	assert.Equal(t, "1 Harbour Rd", c.HouseAddress)
	assert.Equal(t, "", c.RegisterAddress)
}

func TestCreateValidation(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{"missing name", Input{Name: ""}, ErrNameRequired},
		{"blank name", Input{Name: "  "}, ErrNameRequired},
		{"bad date", Input{Name: "Lee", NextFollow: "next week"}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestUpdateNextFollow(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "Lee", NextFollow: "2026-10-25"})
	require.NoError(t, err)

	// blank keeps prior value
	updated, err := svc.Update(ctx, created.ID, Input{Name: "Lee Wang", NextFollow: "  ", Notes: "called"})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-25", updated.NextFollow.String())
	assert.Equal(t, "Lee Wang", updated.Name)
	assert.Equal(t, "called", updated.Notes)

	// non-empty overwrites
	updated, err = svc.Update(ctx, created.ID, Input{Name: "Lee Wang", NextFollow: "2026-12-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", updated.NextFollow.String())
	assert.Equal(t, "", updated.Notes)
}

func TestUpdateNeverTouchesFirstContact(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	day := fixedNow
	svc := NewService(repo, WithClock(func() time.Time { return day }))
	created, err := svc.Create(ctx, Input{Name: "Lee"})
	require.NoError(t, err)

	// a month later
	day = fixedNow.AddDate(0, 1, 0)
	updated, err := svc.Update(ctx, created.ID, Input{Name: "Lee", NextFollow: "2027-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", updated.FirstContact.String())
}

func TestUpdateNotFound(t *testing.T) {
	svc := testService(t)

	_, err := svc.Update(context.Background(), 404, Input{Name: "nobody"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateInvalidDateLeavesRecord(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "Lee", NextFollow: "2026-10-25"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, Input{Name: "Changed", NextFollow: "25/10/2026"})
	assert.True(t, errors.Is(err, ErrInvalidDate))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lee", got.Name)
}

func TestServiceDelete(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Name: "Lee"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestServiceList(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	for _, in := range []Input{
		{Name: "Lee Ming", NextFollow: "2026-10-18"},
		{Name: "Wong", Notes: "friend of Lee", NextFollow: "2026-10-19"},
		{Name: "Chan", NextFollow: "2026-10-18"},
		{Name: "Ho"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		query ListQuery
		want  []string
	}{
		{"all", ListQuery{}, []string{"Lee Ming", "Wong", "Chan", "Ho"}},
		{"search", ListQuery{Search: "Lee"}, []string{"Lee Ming", "Wong"}},
		{"search trimmed", ListQuery{Search: "  Lee "}, []string{"Lee Ming", "Wong"}},
		{"today", ListQuery{TodayOnly: true}, []string{"Lee Ming", "Chan"}},
		{"search and today", ListQuery{Search: "Lee", TodayOnly: true}, []string{"Lee Ming"}},
		{"no match", ListQuery{Search: "Zhou"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.List(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(res.Clients))
			// today count ignores the search term
			assert.Equal(t, 2, res.TodayCount)
			assert.Equal(t, "2026-10-18", res.Today.String())
			assert.Equal(t, tt.query.TodayOnly, res.TodayOnly)
		})
	}
}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (f failingStore) Insert(context.Context, *Client) (*Client, error)    { return nil, f.err }
func (f failingStore) Update(context.Context, *Client) error                { return f.err }
func (f failingStore) Delete(context.Context, int64) error                  { return f.err }
func (f failingStore) GetByID(context.Context, int64) (*Client, error)      { return nil, f.err }
func (f failingStore) List(context.Context, ListOptions) ([]*Client, error) { return nil, f.err }
func (f failingStore) CountFollowUps(context.Context, Date) (int, error)    { return 0, f.err }

func TestServiceStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(failingStore{err: boom})
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Name: "x"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "saving client")

	_, err = svc.Update(ctx, 1, Input{Name: "x"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.List(ctx, ListQuery{})
	assert.ErrorIs(t, err, boom)

	_, err = svc.All(ctx)
	assert.ErrorIs(t, err, boom)
}
