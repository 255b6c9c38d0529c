package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/vncsmyrnk/quickpolls/internal/adapters/handler/http"
	"github.com/vncsmyrnk/quickpolls/internal/adapters/idgen"
	"github.com/vncsmyrnk/quickpolls/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
	"github.com/vncsmyrnk/quickpolls/internal/core/services"
	"github.com/vncsmyrnk/quickpolls/internal/testutil"
)

const testPassword = "Passw0rd!"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	*httptest.Server
	t *testing.T
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	ids := idgen.NewUUIDGenerator()
	pollRepo := sqlstore.NewPollRepository(db)

	api := facade.New(
		services.NewUserService(sqlstore.NewUserRepository(db), ids),
		services.NewPollService(pollRepo, ids),
		services.NewSubmissionService(pollRepo, sqlstore.NewSubmissionRepository(db, ids), ids),
		services.NewResultService(pollRepo, sqlstore.NewPollResultRepository(db)),
	)
	sessions := services.NewSessionService("test-secret")

	server := httptest.NewServer(handler.NewHandler(api, sessions, handler.Config{AllowedOrigins: []string{"*"}}))
	t.Cleanup(server.Close)

	return &testServer{Server: server, t: t}
}

// do sends body as JSON and decodes the JSON reply into out when out is set.
func (s *testServer) do(method, path string, body any, session *http.Cookie, out any) *http.Response {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.AddCookie(session)
	}

	resp, err := s.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *testServer) signupAndLogin(username string) *http.Cookie {
	s.t.Helper()
	resp := s.do("POST", "/api/signup", map[string]string{"username": username, "password": testPassword}, nil, nil)
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)

	resp = s.do("POST", "/api/login", map[string]string{"username": username, "password": testPassword}, nil, nil)
	require.Equal(s.t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "session_token" {
			return &http.Cookie{Name: c.Name, Value: c.Value}
		}
	}
	s.t.Fatal("session_token cookie not set")
	return nil
}

func pollBody(questions int, restricted bool) map[string]any {
	qs := make([]map[string]any, 0, questions)
	for i := 0; i < questions; i++ {
		qType := "single"
		if i%2 == 1 {
			qType = "multiple"
		}
		qs = append(qs, map[string]any{
			"text":    fmt.Sprintf("Question %d", i+1),
			"type":    qType,
			"options": []string{"A", "B", "C"},
		})
	}
	return map[string]any{
		"title":         "Weekly survey",
		"description":   "desc",
		"is_restricted": restricted,
		"questions":     qs,
	}
}

func (s *testServer) createPoll(restricted bool, session *http.Cookie) *domain.Poll {
	s.t.Helper()
	var res envelope
	resp := s.do("POST", "/api/polls", pollBody(5, restricted), session, &res)
	require.Equal(s.t, http.StatusCreated, resp.StatusCode, res.Message)

	var poll domain.Poll
	require.NoError(s.t, json.Unmarshal(res.Data, &poll))
	return &poll
}

func TestHealth(t *testing.T) {
	s := setupServer(t)
	var body map[string]string
	resp := s.do("GET", "/health", nil, nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestSignup(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name    string
		body    map[string]string
		status  int
		message string
	}{
		{"created", map[string]string{"username": "alice", "password": testPassword}, http.StatusCreated, "Signup successful!"},
		{"taken", map[string]string{"username": "alice", "password": testPassword}, http.StatusConflict, "Username already taken. Please choose another one."},
		{"short username", map[string]string{"username": "al", "password": testPassword}, http.StatusBadRequest, "Username must be at least 3 characters"},
		{"bad characters", map[string]string{"username": "al ice", "password": testPassword}, http.StatusBadRequest, "Username can only contain letters, numbers, and underscores"},
		{"short password", map[string]string{"username": "bob", "password": "Pa1!"}, http.StatusBadRequest, "Password must be at least 8 characters"},
		{"no uppercase", map[string]string{"username": "bob", "password": "passw0rd!"}, http.StatusBadRequest, "Password must contain at least one uppercase letter"},
		{"no special", map[string]string{"username": "bob", "password": "Passw0rdd"}, http.StatusBadRequest, "Password must contain at least one special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res envelope
			resp := s.do("POST", "/api/signup", tt.body, nil, &res)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := setupServer(t)

	var res envelope
	resp := s.do("GET", "/api/me", nil, nil, &res)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do("POST", "/api/login", map[string]string{"username": "ghost", "password": testPassword}, nil, &res)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid username or password.", res.Message)

	session := s.signupAndLogin("alice")

	var me envelope
	resp = s.do("GET", "/api/me", nil, session, &me)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user domain.User
	require.NoError(t, json.Unmarshal(me.Data, &user))
	assert.Equal(t, "alice", user.Username)
	assert.NotContains(t, string(me.Data), testPassword)

	// The same token works as a bearer token.
	req, err := http.NewRequest("GET", s.URL+"/api/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+session.Value)
	bearerResp, err := s.Client().Do(req)
	require.NoError(t, err)
	bearerResp.Body.Close()
	assert.Equal(t, http.StatusOK, bearerResp.StatusCode)

	resp = s.do("GET", "/api/me", nil, &http.Cookie{Name: "session_token", Value: "forged"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do("POST", "/api/logout", nil, session, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var expired bool
	for _, c := range resp.Cookies() {
		if c.Name == "session_token" && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired)
}

func TestCreatePollValidation(t *testing.T) {
	s := setupServer(t)

	duplicate := pollBody(5, false)
	duplicate["questions"].([]map[string]any)[2]["options"] = []string{"A", "A", "B"}

	blankOption := pollBody(5, false)
	blankOption["questions"].([]map[string]any)[1]["options"] = []string{"A", "  ", "B"}

	twoOptions := pollBody(5, false)
	twoOptions["questions"].([]map[string]any)[0]["options"] = []string{"A", "B"}

	badType := pollBody(5, false)
	badType["questions"].([]map[string]any)[3]["type"] = "ranking"

	noTitle := pollBody(5, false)
	noTitle["title"] = "   "

	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{"too few questions", pollBody(4, false), "At least 5 questions required."},
		{"too many questions", pollBody(21, false), "At most 20 questions allowed."},
		{"missing title", noTitle, "Poll title is required."},
		{"duplicate options", duplicate, "Duplicate options in question 3."},
		{"blank option", blankOption, "No empty options allowed in question 2."},
		{"two options", twoOptions, "Each question needs at least 3 options."},
		{"unknown type", badType, "Question 4 type must be single or multiple."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res envelope
			resp := s.do("POST", "/api/polls", tt.body, nil, &res)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, "INVALID_POLL", res.Code)
			assert.Equal(t, tt.message, res.Message)
		})
	}

	var list envelope
	s.do("GET", "/api/polls", nil, nil, &list)
	assert.JSONEq(t, "[]", string(list.Data))
}

func TestPollLifecycle(t *testing.T) {
	s := setupServer(t)
	session := s.signupAndLogin("alice")

	poll := s.createPoll(true, session)
	require.NotNil(t, poll.CreatedBy)
	require.Len(t, poll.Questions, 5)

	var list envelope
	resp := s.do("GET", "/api/polls", nil, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summaries []domain.PollSummary
	require.NoError(t, json.Unmarshal(list.Data, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, poll.ID, summaries[0].ID)

	var got envelope
	resp = s.do("GET", "/api/polls/"+poll.ID, nil, nil, &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var missing envelope
	resp = s.do("GET", "/api/polls/does-not-exist", nil, nil, &missing)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Poll not found", missing.Message)

	answers := map[string]any{"answers": testutil.CompleteAnswers(poll)}

	var res envelope
	resp = s.do("POST", "/api/polls/"+poll.ID+"/submissions", answers, nil, &res)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_REQUIRED", res.Code)

	var completed map[string]bool
	s.do("GET", "/api/polls/"+poll.ID+"/completed", nil, session, &completed)
	assert.False(t, completed["completed"])

	resp = s.do("POST", "/api/polls/"+poll.ID+"/submissions", answers, session, &res)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Thank you for completing the poll!", res.Message)

	s.do("GET", "/api/polls/"+poll.ID+"/completed", nil, session, &completed)
	assert.True(t, completed["completed"])

	resp = s.do("POST", "/api/polls/"+poll.ID+"/submissions", answers, session, &res)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ALREADY_COMPLETED", res.Code)

	var results envelope
	resp = s.do("GET", "/api/polls/"+poll.ID+"/results", nil, nil, &results)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tally domain.PollResults
	require.NoError(t, json.Unmarshal(results.Data, &tally))
	assert.Equal(t, int64(1), tally.Submissions)
}

func TestSubmitAnonymousAndInvalid(t *testing.T) {
	s := setupServer(t)
	poll := s.createPoll(false, nil)
	assert.Nil(t, poll.CreatedBy)

	var res envelope
	resp := s.do("POST", "/api/polls/"+poll.ID+"/submissions", map[string]any{"answers": []domain.Answer{}}, nil, &res)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Please answer all questions. Missing 5 question(s).", res.Message)

	resp = s.do("POST", "/api/polls/"+poll.ID+"/submissions", map[string]any{"answers": testutil.CompleteAnswers(poll)}, nil, &res)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var completed map[string]bool
	s.do("GET", "/api/polls/"+poll.ID+"/completed", nil, nil, &completed)
	assert.False(t, completed["completed"])

	req, err := http.NewRequest("POST", s.URL+"/api/polls/"+poll.ID+"/submissions", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	bad, err := s.Client().Do(req)
	require.NoError(t, err)
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}
