package facade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpolls/internal/adapters/idgen"
	"github.com/vncsmyrnk/quickpolls/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
	"github.com/vncsmyrnk/quickpolls/internal/core/services"
	"github.com/vncsmyrnk/quickpolls/internal/testutil"
)

func setupFacade(t *testing.T) *facade.Facade {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	ids := idgen.NewUUIDGenerator()
	pollRepo := sqlstore.NewPollRepository(db)

	return facade.New(
		services.NewUserService(sqlstore.NewUserRepository(db), ids),
		services.NewPollService(pollRepo, ids),
		services.NewSubmissionService(pollRepo, sqlstore.NewSubmissionRepository(db, ids), ids),
		services.NewResultService(pollRepo, sqlstore.NewPollResultRepository(db)),
	)
}

func TestSignupAndLogin(t *testing.T) {
	f := setupFacade(t)
	ctx := context.Background()

	res := f.Signup(ctx, "alice", "pw")
	require.True(t, res.Success)
	assert.Equal(t, facade.MsgSignupSuccess, res.Message)
	assert.Empty(t, res.Code)

	res = f.Signup(ctx, "alice", "pw2")
	assert.False(t, res.Success)
	assert.Equal(t, "Username already taken. Please choose another one.", res.Message)
	assert.Equal(t, "USERNAME_TAKEN", res.Code)

	login := f.Login(ctx, "alice", "pw")
	require.True(t, login.Success)
	assert.Equal(t, facade.MsgLoginSuccess, login.Message)
	require.NotNil(t, login.Data)

	bad := f.Login(ctx, "alice", "wrong")
	assert.False(t, bad.Success)
	assert.Equal(t, "Invalid username or password.", bad.Message)
	assert.Equal(t, "INVALID_CREDENTIALS", bad.Code)

	me := f.GetUser(ctx, login.Data.ID)
	require.True(t, me.Success)
	assert.Equal(t, "alice", me.Data.Username)

	none := f.GetUser(ctx, "missing")
	assert.False(t, none.Success)
	assert.Equal(t, "USER_NOT_FOUND", none.Code)
}

// Anonymous user answers an open poll.
func TestAnonymousOpenPollScenario(t *testing.T) {
	f := setupFacade(t)
	ctx := context.Background()

	created := f.CreatePoll(ctx, testutil.PollInput(false))
	require.True(t, created.Success)

	poll := f.GetPoll(ctx, created.Data.ID)
	require.True(t, poll.Success)

	res := f.SubmitPollAnswers(ctx, poll.Data.ID, testutil.CompleteAnswers(poll.Data), nil)
	require.True(t, res.Success)
	assert.Equal(t, "Thank you for completing the poll!", res.Message)

	completed := f.CheckCompleted(ctx, poll.Data.ID, nil)
	require.True(t, completed.Success)
	assert.False(t, completed.Data)

	results := f.GetResults(ctx, poll.Data.ID)
	require.True(t, results.Success)
	assert.Equal(t, int64(1), results.Data.Submissions)
}

// Logged-in user answers a restricted poll exactly once.
func TestRestrictedPollScenario(t *testing.T) {
	f := setupFacade(t)
	ctx := context.Background()

	created := f.CreatePoll(ctx, testutil.PollInput(true))
	require.True(t, created.Success)
	poll := created.Data
	answers := testutil.CompleteAnswers(poll)

	anon := f.SubmitPollAnswers(ctx, poll.ID, answers, nil)
	assert.False(t, anon.Success)
	assert.Equal(t, "Authentication required to answer this poll", anon.Message)
	assert.Equal(t, "AUTH_REQUIRED", anon.Code)

	signup := f.Signup(ctx, "bob", "pw")
	require.True(t, signup.Success)
	userID := signup.Data.ID

	assert.False(t, f.CheckCompleted(ctx, poll.ID, &userID).Data)

	first := f.SubmitPollAnswers(ctx, poll.ID, answers, &userID)
	require.True(t, first.Success)
	assert.True(t, f.CheckCompleted(ctx, poll.ID, &userID).Data)

	second := f.SubmitPollAnswers(ctx, poll.ID, answers, &userID)
	assert.False(t, second.Success)
	assert.Equal(t, "You have already completed this poll", second.Message)
	assert.Equal(t, "ALREADY_COMPLETED", second.Code)
}

func TestSubmitValidationMessages(t *testing.T) {
	f := setupFacade(t)
	ctx := context.Background()
	poll := f.CreatePoll(ctx, testutil.PollInput(false)).Data
	q1 := poll.Questions[0]
	complete := testutil.CompleteAnswers(poll)

	tests := []struct {
		name    string
		answers []domain.Answer
		message string
		code    string
	}{
		{
			name:    "incomplete",
			answers: complete[:1],
			message: "Please answer all questions. Missing 2 question(s).",
			code:    "INCOMPLETE_SUBMISSION",
		},
		{
			name:    "unknown question",
			answers: append(append([]domain.Answer{}, complete...), domain.Answer{QuestionID: "nope", SelectedOptions: []string{"x"}}),
			message: "Invalid question ID: nope",
			code:    "UNKNOWN_QUESTION",
		},
		{
			name: "two answers on single choice",
			answers: append([]domain.Answer{
				{QuestionID: q1.ID, SelectedOptions: []string{q1.Options[0].ID, q1.Options[1].ID}},
			}, complete[1:]...),
			message: "Question 'Favorite color?' requires exactly one answer.",
			code:    "INVALID_SINGLE_CHOICE",
		},
		{
			name: "foreign option",
			answers: append([]domain.Answer{
				{QuestionID: q1.ID, SelectedOptions: []string{"not-an-option"}},
			}, complete[1:]...),
			message: "Invalid option selected for question 'Favorite color?'.",
			code:    "INVALID_OPTION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := f.SubmitPollAnswers(ctx, poll.ID, tt.answers, nil)
			assert.False(t, res.Success)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, tt.code, res.Code)
		})
	}
}

func TestPollNotFound(t *testing.T) {
	f := setupFacade(t)
	ctx := context.Background()

	get := f.GetPoll(ctx, "missing")
	assert.False(t, get.Success)
	assert.Equal(t, "Poll not found", get.Message)
	assert.Equal(t, "POLL_NOT_FOUND", get.Code)

	submit := f.SubmitPollAnswers(ctx, "missing", nil, nil)
	assert.Equal(t, "Poll not found", submit.Message)

	results := f.GetResults(ctx, "missing")
	assert.Equal(t, "POLL_NOT_FOUND", results.Code)
}

func TestListPolls(t *testing.T) {
	f := setupFacade(t)
	ctx := context.Background()

	empty := f.ListPolls(ctx)
	require.True(t, empty.Success)
	assert.Empty(t, empty.Data)

	f.CreatePoll(ctx, testutil.PollInput(false))
	f.CreatePoll(ctx, testutil.PollInput(true))

	list := f.ListPolls(ctx)
	require.True(t, list.Success)
	assert.Len(t, list.Data, 2)
}

type brokenPolls struct{}

func (brokenPolls) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	return nil, domain.ErrStorageUnavailable
}

func (brokenPolls) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	return nil, domain.ErrStorageUnavailable
}

func (brokenPolls) ListPolls(ctx context.Context) ([]domain.PollSummary, error) {
	return nil, domain.ErrStorageUnavailable
}

func TestStorageFailuresUseGenericMessages(t *testing.T) {
	f := facade.New(nil, brokenPolls{}, nil, nil)
	ctx := context.Background()

	created := f.CreatePoll(ctx, testutil.PollInput(false))
	assert.False(t, created.Success)
	assert.Equal(t, facade.MsgCreatePollFailed, created.Message)
	assert.Equal(t, "STORAGE_UNAVAILABLE", created.Code)

	get := f.GetPoll(ctx, "p1")
	assert.Equal(t, facade.MsgGetPollFailed, get.Message)

	list := f.ListPolls(ctx)
	assert.Equal(t, facade.MsgListPollsFailed, list.Message)
}
