package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"
)

// CollectionSource hands back the raw records of a named collection.
// Implementations never return an error: any failure resolves to an
// empty list so the page shows absence of content, not an error state.
type CollectionSource interface {
	Collection(ctx context.Context, name string) []json.RawMessage
}

// apiSource loads collections from a remote backend with a single
// GET to <base>/api/<name>. One attempt, no retry.
type apiSource struct {
	base   string
	client *http.Client
}

func (s *apiSource) Collection(ctx context.Context, name string) []json.RawMessage {
	url := strings.TrimSuffix(s.base, "/") + "/api/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Debug().Err(err).Str("collection", name).Msg("collection request build failed")
		metrics.recordCollectionLoad(name, "error")
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Debug().Err(err).Str("collection", name).Msg("collection fetch failed")
		metrics.recordCollectionLoad(name, "error")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug().Int("status", resp.StatusCode).Str("collection", name).Msg("collection fetch returned non-success status")
		metrics.recordCollectionLoad(name, "error")
		return nil
	}

	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		logger.Debug().Err(err).Str("collection", name).Msg("collection body is not a JSON list")
		metrics.recordCollectionLoad(name, "error")
		return nil
	}

	metrics.recordCollectionLoad(name, "ok")
	return records
}

// storeSource serves the same-origin case: no base URL configured, so
// collections come straight out of the local store.
type storeSource struct{}

func (storeSource) Collection(ctx context.Context, name string) []json.RawMessage {
	var (
		v   any
		err error
	)
	switch name {
	case collectionProjects:
		v, err = listProjects(ctx)
	case collectionExperience:
		v, err = listExperience(ctx)
	case collectionEducation:
		v, err = listEducation(ctx)
	case collectionPosts:
		v, err = listPosts(ctx)
	default:
		return nil
	}
	if err != nil {
		logger.Debug().Err(err).Str("collection", name).Msg("store read failed")
		metrics.recordCollectionLoad(name, "error")
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	metrics.recordCollectionLoad(name, "ok")
	return records
}

// newContentSource picks the loader implementation from the configured
// base URL. Empty means same-origin.
func newContentSource(cfg Config) CollectionSource {
	if cfg.ContentBaseURL == "" {
		return storeSource{}
	}
	return &apiSource{
		base:   cfg.ContentBaseURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// loadCollection decodes a collection into its record type. Records
// that do not decode are skipped rather than failing the section.
func loadCollection[T any](ctx context.Context, src CollectionSource, name string) []T {
	records := src.Collection(ctx, name)
	out := make([]T, 0, len(records))
	for _, raw := range records {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// sections holds one page view's worth of content.
type sections struct {
	Projects   []Project
	Experience []ExperienceEntry
	Education  []EducationEntry
	Posts      []Post
}

// loadSections fetches all four collections concurrently. Each section
// owns its own slice, so no section waits on or depends on another; a
// canceled context just yields empty sections.
func loadSections(ctx context.Context, src CollectionSource) sections {
	var s sections
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		s.Projects = loadCollection[Project](ctx, src, collectionProjects)
	}()
	go func() {
		defer wg.Done()
		s.Experience = loadCollection[ExperienceEntry](ctx, src, collectionExperience)
	}()
	go func() {
		defer wg.Done()
		s.Education = loadCollection[EducationEntry](ctx, src, collectionEducation)
	}()
	go func() {
		defer wg.Done()
		s.Posts = loadCollection[Post](ctx, src, collectionPosts)
	}()

	wg.Wait()
	return s
}
