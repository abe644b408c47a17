package courts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosscourts/court-booking-service/internal/domain"
)

type fakeCourtRepo struct {
	courts      []*domain.Court
	err         error
	gotCategory *domain.CourtCategory
}

func (f *fakeCourtRepo) List(_ context.Context, category *domain.CourtCategory) ([]*domain.Court, error) {
	f.gotCategory = category
	return f.courts, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func strPtr(s string) *string { return &s }

func TestList(t *testing.T) {
	repo := &fakeCourtRepo{
		courts: []*domain.Court{
			{ID: 1, Name: "Court 1", Category: domain.CategoryCricket},
			{ID: 2, Name: "Court 2", Category: domain.CategoryFutsal},
		},
	}
	service := NewService(repo, nopLogger{})

	resp, err := service.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, repo.gotCategory)
	require.Len(t, resp.Courts, 2)
	assert.EqualValues(t, 1, resp.Courts[0].ID)
	assert.Equal(t, "cricket", resp.Courts[0].Category)
}

func TestList_FiltersByCategory(t *testing.T) {
	repo := &fakeCourtRepo{
		courts: []*domain.Court{
			{ID: 3, Name: "Court 3", Category: domain.CategoryPadel},
		},
	}
	service := NewService(repo, nopLogger{})

	resp, err := service.List(context.Background(), strPtr("padel"))
	require.NoError(t, err)

	require.NotNil(t, repo.gotCategory)
	assert.Equal(t, domain.CategoryPadel, *repo.gotCategory)
	require.Len(t, resp.Courts, 1)
}

func TestList_InvalidCategory(t *testing.T) {
	service := NewService(&fakeCourtRepo{}, nopLogger{})

	_, err := service.List(context.Background(), strPtr("tennis"))
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestList_RepositoryError(t *testing.T) {
	service := NewService(&fakeCourtRepo{err: errors.New("db is down")}, nopLogger{})

	_, err := service.List(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
