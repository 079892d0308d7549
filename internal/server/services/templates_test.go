package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/dmitrijs2005/runaudit/internal/server/repositories/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const novaSeqID = "0b6c3c55-8b3a-4c47-9c1e-5f2f0c0e2a11"

func novaSeqTemplate() *models.Template {
	return &models.Template{
		ID:      novaSeqID,
		Name:    "Illumina NovaSeq",
		Columns: []string{"Flowcell ID", "Sample ID", "Lane", "Index"},
	}
}

func TestTemplateService_List(t *testing.T) {
	rm := newFakeRepoManager()
	rm.t = newFakeTemplatesRepo(
		novaSeqTemplate(),
		&models.Template{ID: "5d8e0a4e-2c1b-4d7e-8f00-7a6b5c4d3e2f", Name: "10x Chromium"},
	)
	s := NewTemplateService(nil, rm)

	items, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "10x Chromium", items[0].Name)
	assert.Equal(t, "Illumina NovaSeq", items[1].Name)

	rm.t.listErr = errors.New("boom")
	_, err = s.List(context.Background())
	assert.Error(t, err)
}

func TestTemplateService_Get(t *testing.T) {
	rm := newFakeRepoManager()
	rm.t = newFakeTemplatesRepo(novaSeqTemplate())
	s := NewTemplateService(nil, rm)
	ctx := context.Background()

	got, err := s.Get(ctx, novaSeqID)
	require.NoError(t, err)
	assert.Equal(t, "Illumina NovaSeq", got.Name)

	for _, id := range []string{"urn:uuid:" + novaSeqID, "{" + novaSeqID + "}", strings.ReplaceAll(novaSeqID, "-", ""), strings.ToUpper(novaSeqID)} {
		got, err := s.Get(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, novaSeqID, got.ID)
	}

	_, err = s.Get(ctx, "not-an-id")
	require.ErrorIs(t, err, common.ErrInvalidID)
	assert.Equal(t, DetailInvalidID, err.Error())

	_, err = s.Get(ctx, "7f000000-0000-4000-8000-000000000000")
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, DetailTemplateNotFound, err.Error())
}

func TestTemplateService_Seed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	rm.t = newFakeTemplatesRepo(novaSeqTemplate())
	s := NewTemplateService(db, rm)

	res, err := s.Seed(context.Background(), []*models.Template{
		{Name: "Illumina NovaSeq", Columns: []string{"Flowcell ID"}},
		{Name: "10x Chromium", Columns: []string{"GemCode"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []SeedResult{
		{Name: "Illumina NovaSeq", Result: templates.Updated},
		{Name: "10x Chromium", Result: templates.Created},
	}, res)
	assert.Equal(t, []string{"Flowcell ID"}, rm.t.items[novaSeqID].Columns)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateService_Seed_Unchanged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	rm.t = newFakeTemplatesRepo(novaSeqTemplate())
	s := NewTemplateService(db, rm)

	res, err := s.Seed(context.Background(), []*models.Template{novaSeqTemplate()})
	require.NoError(t, err)
	assert.Equal(t, []SeedResult{{Name: "Illumina NovaSeq", Result: templates.Unchanged}}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateService_Seed_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.t.upsertErr = errors.New("constraint")
	s := NewTemplateService(db, rm)

	_, err = s.Seed(context.Background(), []*models.Template{{Name: "A"}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateService_Seed_RequiresName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	s := NewTemplateService(db, newFakeRepoManager())
	_, err = s.Seed(context.Background(), []*models.Template{{Columns: []string{"A"}}})
	require.ErrorIs(t, err, common.ErrValidation)
	require.NoError(t, mock.ExpectationsWereMet())
}
