package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrUsernameTaken        = errors.New("Username already taken. Please choose another one.")
	ErrInvalidCredentials   = errors.New("Invalid username or password.")
	ErrUserNotFound         = errors.New("User not found")
	ErrPollNotFound         = errors.New("Poll not found")
	ErrInvalidPoll          = errors.New("invalid poll")
	ErrAuthRequired         = errors.New("Authentication required to answer this poll")
	ErrAlreadyCompleted     = errors.New("You have already completed this poll")
	ErrIncompleteSubmission = errors.New("incomplete submission")
	ErrUnknownQuestion      = errors.New("unknown question")
	ErrDuplicateAnswer      = errors.New("duplicate answer")
	ErrInvalidSingleChoice  = errors.New("invalid single choice")
	ErrInvalidOption        = errors.New("invalid option")
)

// IncompleteSubmissionError lists the poll questions a submission left unanswered.
type IncompleteSubmissionError struct {
	Missing []string
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("Please answer all questions. Missing %d question(s).", len(e.Missing))
}

func (e *IncompleteSubmissionError) Is(target error) bool {
	return target == ErrIncompleteSubmission
}

type UnknownQuestionError struct {
	QuestionID string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("Invalid question ID: %s", e.QuestionID)
}

func (e *UnknownQuestionError) Is(target error) bool {
	return target == ErrUnknownQuestion
}

type DuplicateAnswerError struct {
	QuestionID string
}

func (e *DuplicateAnswerError) Error() string {
	return fmt.Sprintf("Question %s was answered more than once.", e.QuestionID)
}

func (e *DuplicateAnswerError) Is(target error) bool {
	return target == ErrDuplicateAnswer
}

type InvalidSingleChoiceError struct {
	QuestionID string
	Text       string
	Selected   int
}

func (e *InvalidSingleChoiceError) Error() string {
	return fmt.Sprintf("Question '%s' requires exactly one answer.", e.Text)
}

func (e *InvalidSingleChoiceError) Is(target error) bool {
	return target == ErrInvalidSingleChoice
}

// InvalidOptionError reports selected option ids that are unknown to the
// question or repeated within one answer.
type InvalidOptionError struct {
	QuestionID string
	Text       string
	OptionIDs  []string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("Invalid option selected for question '%s'.", e.Text)
}

func (e *InvalidOptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// Code returns a stable machine readable code for the error kind of err, or
// an empty string when err is nil.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUsernameTaken):
		return "USERNAME_TAKEN"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrPollNotFound):
		return "POLL_NOT_FOUND"
	case errors.Is(err, ErrInvalidPoll):
		return "INVALID_POLL"
	case errors.Is(err, ErrAuthRequired):
		return "AUTH_REQUIRED"
	case errors.Is(err, ErrAlreadyCompleted):
		return "ALREADY_COMPLETED"
	case errors.Is(err, ErrIncompleteSubmission):
		return "INCOMPLETE_SUBMISSION"
	case errors.Is(err, ErrUnknownQuestion):
		return "UNKNOWN_QUESTION"
	case errors.Is(err, ErrDuplicateAnswer):
		return "DUPLICATE_ANSWER"
	case errors.Is(err, ErrInvalidSingleChoice):
		return "INVALID_SINGLE_CHOICE"
	case errors.Is(err, ErrInvalidOption):
		return "INVALID_OPTION"
	case errors.Is(err, ErrDuplicateKey):
		return "DUPLICATE_KEY"
	default:
		return "STORAGE_UNAVAILABLE"
	}
}
