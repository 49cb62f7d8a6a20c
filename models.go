package main

// Content records served by the collection API. All of them are
// read-only from the page's perspective: created by whoever maintains
// the content file, fetched once per page view, never mutated.

type Project struct {
	Slug    string `json:"slug" yaml:"slug"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
	DemoURL string `json:"demo_url,omitempty" yaml:"demo_url"`
	RepoURL string `json:"repo_url,omitempty" yaml:"repo_url"`
}

type ExperienceEntry struct {
	ID      int    `json:"id" yaml:"id"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Role    string `json:"role" yaml:"role"`
	Org     string `json:"org" yaml:"org"`
	Summary string `json:"summary" yaml:"summary"`
}

type EducationEntry struct {
	ID      int    `json:"id" yaml:"id"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Degree  string `json:"degree" yaml:"degree"`
	School  string `json:"school" yaml:"school"`
	Summary string `json:"summary" yaml:"summary"`
}

type Post struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	ReadTime int      `json:"read_time" yaml:"read_time"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// The four collection names the loader and the API agree on.
const (
	collectionProjects   = "projects"
	collectionExperience = "experience"
	collectionEducation  = "education"
	collectionPosts      = "posts"
)
