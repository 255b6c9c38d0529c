// Package facade exposes the poll operations as calls that always return a
// response value. Failures are reported through Success, Message and Code
// rather than as Go errors.
package facade

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

const (
	MsgSignupSuccess    = "Signup successful!"
	MsgLoginSuccess     = "Login successful!"
	MsgSubmitSuccess    = "Thank you for completing the poll!"
	MsgPollCreated      = "Poll created successfully"
	MsgSubmitFailed     = "Error submitting answers"
	MsgGetPollFailed    = "Error retrieving poll"
	MsgCreatePollFailed = "Failed to create poll"
	MsgListPollsFailed  = "Failed to retrieve polls"
	MsgSignupFailed     = "Failed to create user"
	MsgLoginFailed      = "Error logging in"
	MsgCompletedFailed  = "Error checking poll completion"
	MsgResultsFailed    = "Error retrieving results"
	MsgGetUserFailed    = "Error retrieving user"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Data    T      `json:"data"`
}

type Facade struct {
	users       ports.UserService
	polls       ports.PollService
	submissions ports.SubmissionService
	results     ports.ResultService
}

func New(users ports.UserService, polls ports.PollService, submissions ports.SubmissionService, results ports.ResultService) *Facade {
	return &Facade{
		users:       users,
		polls:       polls,
		submissions: submissions,
		results:     results,
	}
}

func (f *Facade) Signup(ctx context.Context, username, password string) Response[*domain.User] {
	user, err := f.users.CreateUser(ctx, username, password)
	if err != nil {
		return fail[*domain.User]("signup", err, MsgSignupFailed)
	}
	return ok(user, MsgSignupSuccess)
}

func (f *Facade) Login(ctx context.Context, username, password string) Response[*domain.User] {
	user, err := f.users.Authenticate(ctx, username, password)
	if err != nil {
		return fail[*domain.User]("login", err, MsgLoginFailed)
	}
	if user == nil {
		return fail[*domain.User]("login", domain.ErrInvalidCredentials, MsgLoginFailed)
	}
	return ok(user, MsgLoginSuccess)
}

func (f *Facade) GetUser(ctx context.Context, userID string) Response[*domain.User] {
	user, err := f.users.GetUserByID(ctx, userID)
	if err != nil {
		return fail[*domain.User]("get user", err, MsgGetUserFailed)
	}
	if user == nil {
		return fail[*domain.User]("get user", domain.ErrUserNotFound, MsgGetUserFailed)
	}
	return ok(user, "")
}

func (f *Facade) GetPoll(ctx context.Context, pollID string) Response[*domain.Poll] {
	poll, err := f.polls.GetPoll(ctx, pollID)
	if err != nil {
		return fail[*domain.Poll]("get poll", err, MsgGetPollFailed)
	}
	return ok(poll, "")
}

// CreatePoll stores the poll as given. Authoring rules are checked by the
// transport before it calls here.
func (f *Facade) CreatePoll(ctx context.Context, input ports.CreatePollInput) Response[*domain.Poll] {
	poll, err := f.polls.Create(ctx, input)
	if err != nil {
		return fail[*domain.Poll]("create poll", err, MsgCreatePollFailed)
	}
	return ok(poll, MsgPollCreated)
}

func (f *Facade) ListPolls(ctx context.Context) Response[[]domain.PollSummary] {
	polls, err := f.polls.ListPolls(ctx)
	if err != nil {
		return fail[[]domain.PollSummary]("list polls", err, MsgListPollsFailed)
	}
	return ok(polls, "")
}

// SubmitPollAnswers records answers on behalf of userID, or anonymously when
// userID is nil.
func (f *Facade) SubmitPollAnswers(ctx context.Context, pollID string, answers []domain.Answer, userID *string) Response[*domain.Submission] {
	submission, err := f.submissions.Submit(ctx, ports.SubmitInput{
		PollID:  pollID,
		Answers: answers,
		UserID:  userID,
	})
	if err != nil {
		return fail[*domain.Submission]("submit answers", err, MsgSubmitFailed)
	}
	return ok(submission, MsgSubmitSuccess)
}

func (f *Facade) CheckCompleted(ctx context.Context, pollID string, userID *string) Response[bool] {
	completed, err := f.submissions.HasCompleted(ctx, pollID, userID)
	if err != nil {
		return fail[bool]("check completed", err, MsgCompletedFailed)
	}
	return Response[bool]{Success: true, Data: completed}
}

func (f *Facade) GetResults(ctx context.Context, pollID string) Response[*domain.PollResults] {
	results, err := f.results.GetResults(ctx, pollID)
	if err != nil {
		return fail[*domain.PollResults]("get results", err, MsgResultsFailed)
	}
	return ok(results, "")
}

func ok[T any](data T, message string) Response[T] {
	return Response[T]{Success: true, Message: message, Data: data}
}

// fail reports err by its kind. Errors without a user facing message are
// logged and replaced by generic.
func fail[T any](op string, err error, generic string) Response[T] {
	msg, known := userMessage(err)
	if !known {
		slog.Error("operation failed", "op", op, "error", err)
		msg = generic
	}
	return Response[T]{Success: false, Message: msg, Code: domain.Code(err)}
}

var userFacing = []error{
	domain.ErrUsernameTaken,
	domain.ErrInvalidCredentials,
	domain.ErrUserNotFound,
	domain.ErrPollNotFound,
	domain.ErrAuthRequired,
	domain.ErrAlreadyCompleted,
}

func userMessage(err error) (string, bool) {
	var (
		incomplete *domain.IncompleteSubmissionError
		unknown    *domain.UnknownQuestionError
		duplicate  *domain.DuplicateAnswerError
		single     *domain.InvalidSingleChoiceError
		option     *domain.InvalidOptionError
	)
	switch {
	case errors.As(err, &incomplete):
		return incomplete.Error(), true
	case errors.As(err, &unknown):
		return unknown.Error(), true
	case errors.As(err, &duplicate):
		return duplicate.Error(), true
	case errors.As(err, &single):
		return single.Error(), true
	case errors.As(err, &option):
		return option.Error(), true
	}

	for _, kind := range userFacing {
		if errors.Is(err, kind) {
			return kind.Error(), true
		}
	}
	return "", false
}
