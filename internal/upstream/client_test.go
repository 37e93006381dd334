package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(server.URL, 5*time.Second), server
}

func TestClient_SendsCredentialHeader(t *testing.T) {
	var gotToken, gotAccept string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(TokenHeader)
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"projects":[]}`))
	})
	defer server.Close()

	_, err := client.ListProjects(context.Background(), "secret-token")
	require.NoError(t, err)
	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		expected   string
	}{
		{
			name:       "vendor error field",
			statusCode: http.StatusNotFound,
			body:       `{"error":{"message":"project not found","code":404}}`,
			expected:   "project not found",
		},
		{
			name:       "generic message field",
			statusCode: http.StatusBadRequest,
			body:       `{"message":"bad key payload"}`,
			expected:   "bad key payload",
		},
		{
			name:       "non-json body falls back to status text",
			statusCode: http.StatusBadGateway,
			body:       "<html>oops</html>",
			expected:   "Bad Gateway",
		},
		{
			name:       "empty json body falls back to status text",
			statusCode: http.StatusInternalServerError,
			body:       `{}`,
			expected:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			})
			defer server.Close()

			_, err := client.ListProjects(context.Background(), "tok")
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.expected, apiErr.Message)
		})
	}
}

func TestClient_NeverRetries(t *testing.T) {
	var calls int32
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"flaky"}`))
	})
	defer server.Close()

	_, err := client.CreateKeys(context.Background(), "tok", "123.abc", map[string]any{"keys": []any{}})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_ListKeys(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/123.abc/keys", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("include_translations"))
		assert.Equal(t, "5000", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"project_id": "123.abc",
			"keys": [
				{
					"key_id": 1,
					"key_name": {"web": "home.title"},
					"translations": [
						{"translation_id": 10, "language_iso": "fr", "translation": "Accueil"}
					]
				},
				{"key_id": 2, "key_name": "cta.buy", "translations": []}
			]
		}`))
	})
	defer server.Close()

	keys, err := client.ListKeys(context.Background(), "tok", "123.abc", 5000)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "home.title", string(keys[0].KeyName))
	assert.Equal(t, "fr", keys[0].Translations[0].LanguageISO)
	assert.Equal(t, "cta.buy", string(keys[1].KeyName))
}

func TestClient_GetProjectPreservesTopLevelFields(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/123.abc", r.URL.Path)
		_, _ = w.Write([]byte(`{"project_id":"123.abc","name":"Site","base_language_iso":"en","statistics":{"keys_total":12}}`))
	})
	defer server.Close()

	record, err := client.GetProject(context.Background(), "tok", "123.abc")
	require.NoError(t, err)
	assert.Equal(t, "123.abc", record["project_id"])
	assert.Equal(t, "Site", record["name"])
	assert.Contains(t, record, "statistics")
}

func TestClient_ListLanguages(t *testing.T) {
	t.Run("decodes languages array", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"languages":[{"lang_id":640,"lang_iso":"fr","lang_name":"French"}]}`))
		})
		defer server.Close()

		langs, err := client.ListLanguages(context.Background(), "tok", "123.abc")
		require.NoError(t, err)
		require.Len(t, langs, 1)
		assert.Equal(t, "fr", langs[0].LangISO)
	})

	t.Run("missing array defaults to empty slice", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"project_id":"123.abc"}`))
		})
		defer server.Close()

		langs, err := client.ListLanguages(context.Background(), "tok", "123.abc")
		require.NoError(t, err)
		assert.NotNil(t, langs)
		assert.Empty(t, langs)
	})
}

func TestClient_WriteEndpointsUseExpectedRoutes(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var got call
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = call{method: r.Method, path: r.URL.Path}
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{}`))
	})
	defer server.Close()

	ctx := context.Background()
	body := map[string]any{"x": 1}

	tests := []struct {
		name     string
		invoke   func() error
		expected call
	}{
		{
			name: "upload file",
			invoke: func() error {
				_, err := client.UploadFile(ctx, "tok", "p1", body)
				return err
			},
			expected: call{http.MethodPost, "/projects/p1/files/upload"},
		},
		{
			name: "download files",
			invoke: func() error {
				_, err := client.DownloadFiles(ctx, "tok", "p1", body)
				return err
			},
			expected: call{http.MethodPost, "/projects/p1/files/download"},
		},
		{
			name: "update translation",
			invoke: func() error {
				_, err := client.UpdateTranslation(ctx, "tok", "p1", "42", body)
				return err
			},
			expected: call{http.MethodPut, "/projects/p1/translations/42"},
		},
		{
			name: "create task",
			invoke: func() error {
				_, err := client.CreateTask(ctx, "tok", "p1", body)
				return err
			},
			expected: call{http.MethodPost, "/projects/p1/tasks"},
		},
		{
			name: "create contributors",
			invoke: func() error {
				_, err := client.CreateContributors(ctx, "tok", "p1", body)
				return err
			},
			expected: call{http.MethodPost, "/projects/p1/contributors"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.invoke())
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.ListProjects(ctx, "tok")
	assert.Error(t, err)
}
