package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The collection API the page (or any remote frontend) reads from.
// Reads are fail-soft like the rest of the site: a store error serves
// an empty list rather than a 5xx.
func registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/projects", func(c *gin.Context) {
		projects, err := listProjects(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Msg("error listing projects")
			projects = []Project{}
		}
		c.JSON(http.StatusOK, projects)
	})

	api.GET("/experience", func(c *gin.Context) {
		entries, err := listExperience(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Msg("error listing experience")
			entries = []ExperienceEntry{}
		}
		c.JSON(http.StatusOK, entries)
	})

	api.GET("/education", func(c *gin.Context) {
		entries, err := listEducation(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Msg("error listing education")
			entries = []EducationEntry{}
		}
		c.JSON(http.StatusOK, entries)
	})

	api.GET("/posts", func(c *gin.Context) {
		posts, err := listPosts(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Msg("error listing posts")
			posts = []Post{}
		}
		c.JSON(http.StatusOK, posts)
	})
}
