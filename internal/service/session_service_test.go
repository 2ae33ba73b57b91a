package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/alexanderramin/rumbo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (
	repository.ObjectiveRepo,
	repository.SessionRepo,
	repository.ProjectRepo,
	repository.BookRepo,
	repository.NoteRepo,
	repository.ReviewRepo,
	db.UnitOfWork,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteObjectiveRepo(database),
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteBookRepo(database),
		repository.NewSQLiteNoteRepo(database),
		repository.NewSQLiteReviewRepo(database),
		testutil.NewTestUoW(database)
}

func TestCommitTimer_DiscardsBelowMinimum(t *testing.T) {
	_, sessions, _, _, _, _, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewSessionService(sessions)

	session, err := svc.CommitTimer(ctx, 59, domain.BlockStudy, nil, "")
	require.NoError(t, err)
	assert.Nil(t, session, "runs under a minute should be discarded, not saved")

	recent, err := sessions.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent, "discarded run should not reach storage")
}

func TestCommitTimer_PersistsWholeMinutes(t *testing.T) {
	objectives, sessions, _, _, _, _, _ := setupRepos(t)
	ctx := context.Background()

	obj := testutil.NewTestObjective("Finish the course")
	require.NoError(t, objectives.Create(ctx, obj))

	svc := NewSessionService(sessions)

	session, err := svc.CommitTimer(ctx, 190, domain.BlockProject, &obj.ID, "good run")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 3, session.DurationMinutes, "190s rounds down to 3 minutes")
	assert.Equal(t, "good run", session.Notes)

	recent, err := sessions.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.NotNil(t, recent[0].ObjectiveTitle)
	assert.Equal(t, "Finish the course", *recent[0].ObjectiveTitle)
}

func TestCommitTimer_ExactMinimumCommitsOneMinute(t *testing.T) {
	_, sessions, _, _, _, _, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewSessionService(sessions)

	session, err := svc.CommitTimer(ctx, 60, domain.BlockDocs, nil, "")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, 1, session.DurationMinutes)
}

func TestLog_RejectsInvalidInput(t *testing.T) {
	_, sessions, _, _, _, _, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewSessionService(sessions)

	err := svc.Log(ctx, testutil.NewTestSession("gardening", 30))
	assert.Error(t, err, "unknown block type should be rejected")

	err = svc.Log(ctx, testutil.NewTestSession(domain.BlockStudy, 0))
	assert.Error(t, err, "zero-minute sessions should be rejected")
}

func TestLog_AssignsIDAndPersists(t *testing.T) {
	_, sessions, _, _, _, _, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewSessionService(sessions)

	session := testutil.NewTestSession(domain.BlockOutreach, 25)
	session.ID = ""
	require.NoError(t, svc.Log(ctx, session))
	require.NotEmpty(t, session.ID)

	fetched, err := sessions.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, fetched.DurationMinutes)
}
