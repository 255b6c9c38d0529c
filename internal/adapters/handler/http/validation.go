package http

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	minQuestions = 5
	maxQuestions = 20
	minOptions   = 3
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func firstFieldError(err error) (validator.FieldError, bool) {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0], true
	}
	return nil, false
}

func describeSignupError(err error) string {
	fe, ok := firstFieldError(err)
	if !ok {
		return err.Error()
	}

	switch fe.Field() {
	case "username":
		switch fe.Tag() {
		case "required":
			return "Username is required"
		case "min":
			return "Username must be at least 3 characters"
		case "max":
			return "Username must be at most 20 characters"
		default:
			return "Username can only contain letters, numbers, and underscores"
		}
	case "password":
		switch fe.Tag() {
		case "required":
			return "Password is required"
		case "min":
			return "Password must be at least 8 characters"
		}
		switch {
		case strings.HasPrefix(fe.Param(), "abc"):
			return "Password must contain at least one lowercase letter"
		case strings.HasPrefix(fe.Param(), "ABC"):
			return "Password must contain at least one uppercase letter"
		case strings.HasPrefix(fe.Param(), "012"):
			return "Password must contain at least one number"
		default:
			return "Password must contain at least one special character"
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// validatePoll checks the request shape and the authoring rules of the poll
// editor. It returns the first problem found in the editor's own wording.
func validatePoll(req *createPollRequest) string {
	if err := validate.Struct(req); err != nil {
		fe, ok := firstFieldError(err)
		if !ok {
			return err.Error()
		}
		switch {
		case fe.Field() == "title":
			return "Poll title is required."
		case fe.Field() == "questions" && fe.Tag() == "max":
			return fmt.Sprintf("At most %d questions allowed.", maxQuestions)
		case fe.Field() == "questions":
			return fmt.Sprintf("At least %d questions required.", minQuestions)
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}

	for i := range req.Questions {
		n := i + 1
		if err := validate.Struct(&req.Questions[i]); err != nil {
			fe, ok := firstFieldError(err)
			if !ok {
				return err.Error()
			}
			switch {
			case fe.Field() == "text":
				return fmt.Sprintf("Question %d prompt required.", n)
			case fe.Field() == "type":
				return fmt.Sprintf("Question %d type must be single or multiple.", n)
			case fe.Field() == "options" && fe.Tag() == "unique":
				return fmt.Sprintf("Duplicate options in question %d.", n)
			case fe.Field() == "options":
				return fmt.Sprintf("Each question needs at least %d options.", minOptions)
			default:
				return fmt.Sprintf("No empty options allowed in question %d.", n)
			}
		}
	}
	return ""
}
