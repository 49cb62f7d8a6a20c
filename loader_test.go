package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPISource(base string) *apiSource {
	return &apiSource{base: base, client: &http.Client{Timeout: time.Second}}
}

func TestAPISource_LoadsCollection(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"slug":"a","title":"Portfolio","summary":"x"}]`))
	}))
	defer ts.Close()

	src := newTestAPISource(ts.URL)
	records := src.Collection(context.Background(), collectionProjects)

	assert.Equal(t, "/api/projects", gotPath)
	require.Len(t, records, 1)

	var p Project
	require.NoError(t, json.Unmarshal(records[0], &p))
	assert.Equal(t, "Portfolio", p.Title)
}

func TestAPISource_TrailingSlashBase(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	src := newTestAPISource(ts.URL + "/")
	src.Collection(context.Background(), collectionPosts)
	assert.Equal(t, "/api/posts", gotPath)
}

func TestAPISource_EmptyListStaysEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	records := newTestAPISource(ts.URL).Collection(context.Background(), collectionProjects)
	assert.Empty(t, records)
}

func TestAPISource_FailsSoftOnServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	records := newTestAPISource(ts.URL).Collection(context.Background(), collectionProjects)
	assert.Empty(t, records)
}

func TestAPISource_FailsSoftOnMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	records := newTestAPISource(ts.URL).Collection(context.Background(), collectionProjects)
	assert.Empty(t, records)
}

func TestAPISource_FailsSoftOnNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	records := newTestAPISource(ts.URL).Collection(context.Background(), collectionProjects)
	assert.Empty(t, records)
}

func TestAPISource_FailsSoftOnCanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := newTestAPISource(ts.URL).Collection(ctx, collectionProjects)
	assert.Empty(t, records)
}

func TestLoadCollection_SkipsRecordsThatDoNotDecode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"slug":"a","title":"ok","summary":"s"}, 42]`))
	}))
	defer ts.Close()

	projects := loadCollection[Project](context.Background(), newTestAPISource(ts.URL), collectionProjects)
	require.Len(t, projects, 1)
	assert.Equal(t, "ok", projects[0].Title)
}

// stubSource serves canned payloads per collection name.
type stubSource map[string][]json.RawMessage

func (s stubSource) Collection(_ context.Context, name string) []json.RawMessage {
	return s[name]
}

func TestLoadSections_AllCollectionsIndependent(t *testing.T) {
	src := stubSource{
		collectionProjects:   {json.RawMessage(`{"slug":"a","title":"A","summary":"s"}`)},
		collectionExperience: {json.RawMessage(`{"id":1,"role":"Engineer","org":"Acme"}`)},
		// education fails soft to nothing
		collectionPosts: {json.RawMessage(`{"id":1,"title":"P","excerpt":"e","read_time":3}`)},
	}

	content := loadSections(context.Background(), src)

	assert.Len(t, content.Projects, 1)
	assert.Len(t, content.Experience, 1)
	assert.Empty(t, content.Education)
	assert.Len(t, content.Posts, 1)
}

func TestStoreSource_ReadsLocalStore(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, insertSeed(seedContent{
		Projects: []Project{{Slug: "a", Title: "Local", Summary: "s"}},
	}))

	projects := loadCollection[Project](context.Background(), storeSource{}, collectionProjects)
	require.Len(t, projects, 1)
	assert.Equal(t, "Local", projects[0].Title)

	assert.Empty(t, loadCollection[Post](context.Background(), storeSource{}, collectionPosts))
	assert.Empty(t, storeSource{}.Collection(context.Background(), "unknown"))
}

func TestNewContentSource_PicksImplementationFromBaseURL(t *testing.T) {
	assert.IsType(t, storeSource{}, newContentSource(Config{}))
	assert.IsType(t, &apiSource{}, newContentSource(Config{ContentBaseURL: "https://api.example.com"}))
}
