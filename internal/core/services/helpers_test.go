package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpolls/internal/adapters/idgen"
	"github.com/vncsmyrnk/quickpolls/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
	"github.com/vncsmyrnk/quickpolls/internal/core/services"
	"github.com/vncsmyrnk/quickpolls/internal/testutil"
)

type testApp struct {
	Users       ports.UserService
	Polls       ports.PollService
	Submissions ports.SubmissionService
	Results     ports.ResultService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	ids := idgen.NewUUIDGenerator()

	userRepo := sqlstore.NewUserRepository(db)
	pollRepo := sqlstore.NewPollRepository(db)
	submissionRepo := sqlstore.NewSubmissionRepository(db, ids)
	resultRepo := sqlstore.NewPollResultRepository(db)

	return &testApp{
		Users:       services.NewUserService(userRepo, ids),
		Polls:       services.NewPollService(pollRepo, ids),
		Submissions: services.NewSubmissionService(pollRepo, submissionRepo, ids),
		Results:     services.NewResultService(pollRepo, resultRepo),
	}
}

func (a *testApp) createPoll(t *testing.T, restricted bool) *domain.Poll {
	t.Helper()
	poll, err := a.Polls.Create(context.Background(), testutil.PollInput(restricted))
	require.NoError(t, err)
	return poll
}

func strPtr(s string) *string { return &s }

func sqlstoreUsers(db *sql.DB) ports.UserRepository {
	return sqlstore.NewUserRepository(db)
}
