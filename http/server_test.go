package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
	agenthttp "github.com/pswitchy/CDP-Support-Chatbot/http"
	"github.com/pswitchy/CDP-Support-Chatbot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *cdpagent.Catalog {
	return cdpagent.NewCatalog(map[string]map[string]cdpagent.TaskDescriptor{
		"Segment":   {"source setup": {URL: "https://segment.com/docs/connections/sources/"}},
		"mParticle": {},
	})
}

func strPtr(s string) *string { return &s }

func TestServer_Ask(t *testing.T) {
	t.Parallel()

	t.Run("returns the pipeline answer", func(t *testing.T) {
		t.Parallel()

		agent := &mock.QuestionAnswerer{
			AnswerFn: func(ctx context.Context, question string) (*cdpagent.Answer, error) {
				assert.Equal(t, "How do I set up a new source in Segment?", question)
				return &cdpagent.Answer{
					Answer: "Open the Sources page and click Add Source.",
					CDP:    strPtr("Segment"),
					Task:   strPtr("source setup"),
				}, nil
			},
		}
		server := agenthttp.NewServer(testCatalog(), agent)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ask",
			strings.NewReader(`{"question": "How do I set up a new source in Segment?"}`))
		req.Header.Set("Content-Type", "application/json")
		server.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Answer string  `json:"answer"`
			CDP    *string `json:"cdp"`
			Task   *string `json:"task"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Open the Sources page and click Add Source.", got.Answer)
		require.NotNil(t, got.CDP)
		assert.Equal(t, "Segment", *got.CDP)
		require.NotNil(t, got.Task)
		assert.Equal(t, "source setup", *got.Task)
	})

	t.Run("serializes absent cdp and task as null", func(t *testing.T) {
		t.Parallel()

		agent := &mock.QuestionAnswerer{
			AnswerFn: func(ctx context.Context, question string) (*cdpagent.Answer, error) {
				return &cdpagent.Answer{Answer: "Which platform are you asking about?"}, nil
			},
		}
		server := agenthttp.NewServer(testCatalog(), agent)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "hello"}`))
		req.Header.Set("Content-Type", "application/json")
		server.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cdp":null`)
		assert.Contains(t, rec.Body.String(), `"task":null`)
	})

	t.Run("rejects a missing question", func(t *testing.T) {
		t.Parallel()

		agent := &mock.QuestionAnswerer{
			AnswerFn: func(ctx context.Context, question string) (*cdpagent.Answer, error) {
				t.Fatal("pipeline must not run")
				return nil, nil
			},
		}
		server := agenthttp.NewServer(testCatalog(), agent)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hides unexpected errors behind a generic 500", func(t *testing.T) {
		t.Parallel()

		agent := &mock.QuestionAnswerer{
			AnswerFn: func(ctx context.Context, question string) (*cdpagent.Answer, error) {
				return nil, errors.New("catalog index corrupted at offset 42")
			},
		}
		server := agenthttp.NewServer(testCatalog(), agent)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "hi"}`))
		req.Header.Set("Content-Type", "application/json")
		server.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "An unexpected error occurred. Please try again later.")
		assert.NotContains(t, rec.Body.String(), "corrupted")
	})

	t.Run("recovers from panics with a generic 500", func(t *testing.T) {
		t.Parallel()

		agent := &mock.QuestionAnswerer{
			AnswerFn: func(ctx context.Context, question string) (*cdpagent.Answer, error) {
				panic("nil map write in classifier")
			},
		}
		server := agenthttp.NewServer(testCatalog(), agent)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question": "hi"}`))
		req.Header.Set("Content-Type", "application/json")
		server.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "An unexpected error occurred. Please try again later.")
		assert.NotContains(t, rec.Body.String(), "nil map write")
	})
}

func TestServer_SupportedCDPs(t *testing.T) {
	t.Parallel()

	server := agenthttp.NewServer(testCatalog(), &mock.QuestionAnswerer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/supported-cdps", nil)
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		CDPs []string `json:"cdps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Segment", "mParticle"}, got.CDPs)
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	server := agenthttp.NewServer(testCatalog(), &mock.QuestionAnswerer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy", "version": "1.0.0"}`, rec.Body.String())
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	t.Run("serves the landing page when present", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>CDP Support Agent</html>"), 0644))

		server := agenthttp.NewServer(testCatalog(), &mock.QuestionAnswerer{}, agenthttp.WithStaticDir(dir))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		server.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "CDP Support Agent")
	})

	t.Run("404s when the landing page is absent", func(t *testing.T) {
		t.Parallel()

		server := agenthttp.NewServer(testCatalog(), &mock.QuestionAnswerer{}, agenthttp.WithStaticDir(t.TempDir()))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		server.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_RequestIDEchoed(t *testing.T) {
	t.Parallel()

	server := agenthttp.NewServer(testCatalog(), &mock.QuestionAnswerer{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
