package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

const (
	SampleAdminUsername = "admin"
	SampleAdminPassword = "admin123"
)

// InsertSampleData creates an admin account and two example polls when the
// store holds no polls yet. It is a no-op otherwise.
func InsertSampleData(ctx context.Context, users ports.UserService, polls ports.PollService) error {
	existing, err := polls.ListPolls(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("sample data already exists, skipping insertion", "polls", len(existing))
		return nil
	}

	admin, err := users.CreateUser(ctx, SampleAdminUsername, SampleAdminPassword)
	if errors.Is(err, domain.ErrUsernameTaken) {
		admin, err = users.Authenticate(ctx, SampleAdminUsername, SampleAdminPassword)
		if err == nil && admin == nil {
			return fmt.Errorf("user %q exists with a different password", SampleAdminUsername)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	for _, input := range samplePolls(admin.ID) {
		if _, err := polls.Create(ctx, input); err != nil {
			return fmt.Errorf("failed to create sample poll %q: %w", input.Title, err)
		}
	}

	slog.Info("sample data inserted", "admin_id", admin.ID)
	return nil
}

func samplePolls(adminID string) []ports.CreatePollInput {
	return []ports.CreatePollInput{
		{
			Title:        "Programming Languages Survey",
			Description:  "Help us understand which programming languages are most popular among developers.",
			CreatedBy:    &adminID,
			IsRestricted: false,
			Questions: []ports.QuestionInput{
				{
					Text:    "What is your primary programming language?",
					Type:    domain.QuestionSingle,
					Options: []string{"JavaScript/TypeScript", "Python", "Java", "C#", "Other"},
				},
				{
					Text:    "Which frameworks do you use regularly?",
					Type:    domain.QuestionMultiple,
					Options: []string{"React", "Angular", "Vue", "Django", "Spring"},
				},
				{
					Text:    "How many years of experience do you have?",
					Type:    domain.QuestionSingle,
					Options: []string{"Less than 1 year", "1-3 years", "4-6 years", "7-10 years", "More than 10 years"},
				},
			},
		},
		{
			Title:        "Remote Work Preferences",
			Description:  "Share your thoughts on remote work vs. office work.",
			CreatedBy:    &adminID,
			IsRestricted: true,
			Questions: []ports.QuestionInput{
				{
					Text:    "What is your preferred work arrangement?",
					Type:    domain.QuestionSingle,
					Options: []string{"Fully remote", "Hybrid (some days remote, some in office)", "Fully in-office"},
				},
				{
					Text:    "Which aspects of remote work do you enjoy?",
					Type:    domain.QuestionMultiple,
					Options: []string{"No commute", "Flexible schedule", "Better work-life balance", "Increased productivity", "Cost savings"},
				},
				{
					Text:    "What challenges do you face with remote work?",
					Type:    domain.QuestionMultiple,
					Options: []string{"Isolation/loneliness", "Difficulty collaborating", "Distractions at home", "Blurred work/life boundaries", "Technical issues"},
				},
			},
		},
	}
}
