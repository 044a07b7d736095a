package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrytoplate/backend/config"
)

// countingTransport fails every request and records how often it was asked.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("transport must not be used")
}

func testLLMConfig(apiURL string) *config.Config {
	return &config.Config{
		OpenRouterAPIKey: "test-api-key",
		OpenRouterAPIURL: apiURL,
		OpenRouterModel:  "mistralai/mistral-7b-instruct",
		LLMTimeout:       5 * time.Second,
	}
}

func completionBody(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestLLMService_GenerateRecipes_MissingAPIKey(t *testing.T) {
	cfg := testLLMConfig("http://localhost:0")
	cfg.OpenRouterAPIKey = ""

	svc := NewLLMService(cfg, zap.NewNop())
	transport := &countingTransport{}
	svc.client = &http.Client{Transport: transport}

	result, err := svc.GenerateRecipes(context.Background(), []string{"eggs"}, nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, 0, transport.calls, "no network call may be attempted without a credential")
}

func TestLLMService_GenerateRecipes_Success(t *testing.T) {
	content := "Here you go:\n```json\n" +
		`{"recipes":[{"name":"Spinach Omelette","instructions":"Whisk eggs, add spinach, cook."}],"meal_plan":{"Monday":"Spinach Omelette"},"grocery_list":["eggs","spinach"]}` +
		"\n```"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("HTTP-Referer"))
		assert.NotEmpty(t, r.Header.Get("X-Title"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistralai/mistral-7b-instruct", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Contains(t, req.Messages[1].Content, "eggs, spinach")
		assert.Contains(t, req.Messages[1].Content, "vegetarian")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completionBody(t, content))
	}))
	defer server.Close()

	svc := NewLLMService(testLLMConfig(server.URL), zap.NewNop())

	result, err := svc.GenerateRecipes(context.Background(), []string{"eggs", "spinach"}, []string{"vegetarian"})
	require.NoError(t, err)

	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "Spinach Omelette", result.Recipes[0].Name)
	assert.Equal(t, map[string]string{"Monday": "Spinach Omelette"}, result.MealPlan)
	assert.Equal(t, []string{"eggs", "spinach"}, result.GroceryList)
}

func TestLLMService_GenerateRecipes_UpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	svc := NewLLMService(testLLMConfig(server.URL), zap.NewNop())

	result, err := svc.GenerateRecipes(context.Background(), []string{"eggs"}, nil)
	assert.Nil(t, result)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestLLMService_GenerateRecipes_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	svc := NewLLMService(testLLMConfig(server.URL), zap.NewNop())

	_, err := svc.GenerateRecipes(context.Background(), []string{"eggs"}, nil)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
	assert.Equal(t, "upstream exploded", upstreamErr.Body)
}

func TestLLMService_GenerateRecipes_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	svc := NewLLMService(testLLMConfig(server.URL), zap.NewNop())

	_, err := svc.GenerateRecipes(context.Background(), []string{"eggs"}, nil)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Zero(t, upstreamErr.StatusCode)
	assert.NotNil(t, upstreamErr.Err)
}

func TestLLMService_GenerateRecipes_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := NewLLMService(testLLMConfig(server.URL), zap.NewNop())

	_, err := svc.GenerateRecipes(context.Background(), []string{"eggs"}, nil)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusOK, upstreamErr.StatusCode)
}

func TestLLMService_GenerateRecipes_UnparseableContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completionBody(t, "Sorry, I can only answer cooking questions."))
	}))
	defer server.Close()

	svc := NewLLMService(testLLMConfig(server.URL), zap.NewNop())

	_, err := svc.GenerateRecipes(context.Background(), []string{"eggs"}, nil)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Raw, "cooking questions")
}
