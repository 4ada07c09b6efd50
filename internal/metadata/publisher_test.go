package metadata

import (
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"tainan-restaurant/internal/openapi"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Info:    openapi.Info{Title: "Tainan Restaurant API", Version: "0.1.0"},
	}
}

func testOperations() []openapi.Operation {
	return []openapi.Operation{
		{
			Method:      "GET",
			Path:        "/restaurant/{name}",
			OperationID: "restaurant_by_name",
			Summary:     "Restaurants by name",
			Responses:   []openapi.Response{{Status: "200", Description: "Successful Response"}},
		},
	}
}

func TestPublisher_Manifest(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		expectedURL string
	}{
		{
			name:        "Base URL without trailing slash",
			baseURL:     "http://10.11.60.2:8102",
			expectedURL: "http://10.11.60.2:8102/.well-known/openapi.yaml",
		},
		{
			name:        "Trailing slash is normalised",
			baseURL:     "https://food.example.com/",
			expectedURL: "https://food.example.com/.well-known/openapi.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPublisher(testConfig(tt.baseURL), nil, nil, zerolog.Nop())

			manifest := p.Manifest()

			assert.Equal(t, "tainan_restaurant", manifest.ID)
			assert.Equal(t, "v1", manifest.SchemaVersion)
			assert.Equal(t, "台南餐飲", manifest.NameForHuman)
			assert.Equal(t, "tainan_restaurant", manifest.NameForModel)
			assert.Equal(t, "Tainan Restaurant API", manifest.DescriptionForHuman)
			assert.Equal(t, DescriptionForModel, manifest.DescriptionForModel)
			assert.Equal(t, "openapi", manifest.API.Type)
			assert.Equal(t, tt.expectedURL, manifest.API.URL)
		})
	}
}

func TestPublisher_ManifestJSONKeyOrder(t *testing.T) {
	p := NewPublisher(testConfig("http://localhost:8102"), nil, nil, zerolog.Nop())

	out, err := json.Marshal(p.Manifest())
	require.NoError(t, err)

	keys := []string{`"id"`, `"schema_version"`, `"name_for_human"`, `"name_for_model"`,
		`"description_for_human"`, `"description_for_model"`, `"api"`}
	last := -1
	for _, key := range keys {
		idx := strings.Index(string(out), key)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
}

func TestPublisher_OpenAPIYAML(t *testing.T) {
	p := NewPublisher(testConfig("http://localhost:8102"), testOperations, nil, zerolog.Nop())

	out, err := p.OpenAPIYAML()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &doc))

	assert.Equal(t, "3.1.0", doc["openapi"])
	info := doc["info"].(map[string]interface{})
	assert.Equal(t, "Tainan Restaurant API", info["title"])
	servers := doc["servers"].([]interface{})
	assert.Equal(t, "http://localhost:8102", servers[0].(map[string]interface{})["url"])
	paths := doc["paths"].(map[string]interface{})
	assert.Contains(t, paths, "/restaurant/{name}")
}

func TestPublisher_OpenAPIJSON(t *testing.T) {
	p := NewPublisher(testConfig("http://localhost:8102"), testOperations, nil, zerolog.Nop())

	out, err := p.OpenAPIJSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "3.1.0", doc["openapi"])
	assert.Contains(t, doc["paths"], "/restaurant/{name}")
}

func TestPublisher_OpenAPIComputedOnce(t *testing.T) {
	var calls atomic.Int32
	source := func() []openapi.Operation {
		calls.Add(1)
		return testOperations()
	}

	p := NewPublisher(testConfig("http://localhost:8102"), source, nil, zerolog.Nop())

	var wg sync.WaitGroup
	results := make([][]byte, 50)
	for i := range results {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			out, err := p.OpenAPIYAML()
			assert.NoError(t, err)
			results[index] = out
		}(i)
	}
	wg.Wait()

	_, err := p.OpenAPIJSON()
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	for _, out := range results {
		assert.Equal(t, results[0], out)
	}
}

func TestPublisher_OperationsResolvedLazily(t *testing.T) {
	var declared []openapi.Operation
	p := NewPublisher(testConfig("http://localhost:8102"), func() []openapi.Operation { return declared }, nil, zerolog.Nop())

	// Routes declared after the publisher was created still appear.
	declared = testOperations()

	out, err := p.OpenAPIYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "/restaurant/{name}")
}
