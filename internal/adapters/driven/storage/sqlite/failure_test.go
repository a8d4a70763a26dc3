package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return newStoreWithDB(db), mock
}

func TestStorageFailures_WrapErrStorage(t *testing.T) {
	diskErr := errors.New("disk I/O error")
	ctx := context.Background()

	t.Run("job description insert", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO job_descriptions")).WillReturnError(diskErr)

		_, err := store.JobDescriptionStore().Add(ctx, &domain.JobDescription{RawText: "x"})

		assert.ErrorIs(t, err, domain.ErrStorage)
		assert.ErrorIs(t, err, diskErr)
	})

	t.Run("resume insert", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO resumes")).WillReturnError(diskErr)

		_, err := store.ResumeStore().Add(ctx, &domain.OptimizedResume{JobDescriptionID: 1})

		assert.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("resume list", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM resumes ORDER BY")).WillReturnError(diskErr)

		_, err := store.ResumeStore().List(ctx)

		assert.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("resume delete", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM resumes")).WithArgs(int64(3)).WillReturnError(diskErr)

		err := store.ResumeStore().Delete(ctx, 3)

		assert.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("profile put", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO master_profile")).WillReturnError(diskErr)

		err := store.ProfileStore().Put(ctx, domain.NewProfile())

		assert.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("cover letter list", func(t *testing.T) {
		store, mock := setupMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM cover_letters")).WillReturnError(diskErr)

		_, err := store.CoverLetterStore().List(ctx)

		assert.ErrorIs(t, err, domain.ErrStorage)
	})
}

func TestStorageFailures_NoRowsIsNotFound(t *testing.T) {
	store, mock := setupMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM job_descriptions WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "company", "raw_text", "created_at"}))

	_, err := store.JobDescriptionStore().Get(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrStorage)
}

func TestStorageFailures_CorruptJSONColumn(t *testing.T) {
	store, mock := setupMockStore(t)
	rows := sqlmock.NewRows([]string{"id", "job_description_id", "content", "key_matches", "created_at"}).
		AddRow(int64(1), int64(1), "letter", "{not json", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM cover_letters WHERE id = ?")).WillReturnRows(rows)

	_, err := store.CoverLetterStore().Get(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrStorage)
}
