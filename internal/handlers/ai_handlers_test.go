package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/launchpilot/launchpilot-golang/internal/ai"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testHandlers builds a Handlers value whose AI service talks to a
// fake generation endpoint and a mocked database.
func testHandlers(t *testing.T, upstreamBody string, upstreamStatus int) (*Handlers, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(upstreamStatus)
		fmt.Fprint(w, upstreamBody)
	}))
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &Handlers{
		DB:        db,
		AIService: ai.NewAIService(db, ai.NewGateway(server.URL), log),
		Log:       log,
	}, mock
}

// jsonRequest prepares a test context carrying an authenticated user
// and a JSON body.
func jsonRequest(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", int64(7))
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestRefineContentHandlerSuccess(t *testing.T) {
	h, mock := testHandlers(t, `{"response":"Polished text"}`, http.StatusOK)

	mock.ExpectQuery("SELECT (.+) FROM subscriptions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan", "status", "tokens_used", "tokens_limit"}).
			AddRow(1, 7, "standard", "active", 0, 100))
	mock.ExpectExec("UPDATE subscriptions SET tokens_used").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO activities").
		WillReturnResult(sqlmock.NewResult(1, 1))

	c, w := jsonRequest(t, `{"content":"rough text"}`)
	h.RefineContent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Polished text")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefineContentHandlerValidation(t *testing.T) {
	h, _ := testHandlers(t, "", http.StatusOK)

	c, w := jsonRequest(t, `{"tone":"formal"}`) // content missing
	h.RefineContent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateIntelHandlerQuotaExceeded(t *testing.T) {
	h, mock := testHandlers(t, "never called", http.StatusOK)

	mock.ExpectQuery("SELECT (.+) FROM subscriptions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan", "status", "tokens_used", "tokens_limit"}).
			AddRow(1, 7, "standard", "active", 100, 100))

	c, w := jsonRequest(t, `{"market":"candles"}`)
	h.GenerateIntel(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Token limit reached. Please upgrade your plan.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateBriefHandlerServiceUnavailable(t *testing.T) {
	h, mock := testHandlers(t, "oops", http.StatusInternalServerError)

	mock.ExpectQuery("SELECT (.+) FROM subscriptions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan", "status", "tokens_used", "tokens_limit"}).
			AddRow(1, 7, "standard", "active", 0, 100))

	c, w := jsonRequest(t, `{"objective":"launch a bakery"}`)
	h.GenerateBrief(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "AI service unavailable")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateIntelHandlerUnauthenticated(t *testing.T) {
	h, _ := testHandlers(t, "", http.StatusOK)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"market":"m"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.GenerateIntel(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
