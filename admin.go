// admin.go - privacy-conscious admin dashboard and visitor tracking
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Visitor tracking is privacy-conscious: IPs are hashed with a
// per-boot salt before they ever touch the database.
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type AdminStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	Projects         int64           `json:"projects"`
	ExperienceRows   int64           `json:"experience"`
	EducationRows    int64           `json:"education"`
	Posts            int64           `json:"posts"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

var adminToken string
var hashingSalt string

func initAdminToken() {
	adminToken = generateAdminToken()
	hashingSalt = generateAdminToken() // reused as the IP hashing salt

	logger.Info().Msg("Admin access available at: /admin/login")
	logger.Info().Msg("Privacy: visitor tracking enabled with hashed IP addresses")
}

func generateAdminToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate admin token")
	}
	return hex.EncodeToString(bytes)
}

// hashIP produces a consistent per-IP hash, truncated for storage.
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorTrackingMiddleware records page views. Static assets, the
// admin area, the API, and metrics scrapes are skipped, and the Do Not
// Track header is respected.
func visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/metrics") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go trackVisitor(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func trackVisitor(ip, userAgent, path string) {
	_, err := db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashIP(ip), userAgent, path, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("error recording visitor")
	}
}

// cleanupOldVisitorData drops visitor rows older than 12 months.
func cleanupOldVisitorData() {
	result, err := db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		logger.Error().Err(err).Msg("error cleaning up old visitor data")
		return
	}

	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		logger.Info().Int64("rows", rowsDeleted).Msg("privacy cleanup removed visitor records older than 12 months")
	}
}

func getAdminStats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitorsThisWeek); err != nil {
		return nil, err
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&stats.Projects); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM experience").Scan(&stats.ExperienceRows); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM education").Scan(&stats.EducationRows); err != nil {
		return nil, err
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&stats.Posts); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var visitor VisitorMetric
		if err := rows.Scan(&visitor.ID, &visitor.HashedIP, &visitor.UserAgent, &visitor.Path, &visitor.Timestamp); err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, visitor)
	}

	return stats, nil
}

func setupAdminRoutes(r *gin.Engine, cfg Config) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if cfg.AdminPassword == "" {
			logger.Warn().Msg("admin login disabled: ADMIN_PASSWORD not set")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Admin login is not configured",
			})
			return
		}

		if username == cfg.AdminUsername && password == cfg.AdminPassword {
			c.SetCookie("admin_token", adminToken, 3600*24, "/admin", "", false, true)
			logger.Info().Str("ip", hashIP(c.ClientIP())).Msg("admin login successful")
			c.Redirect(http.StatusFound, "/admin/dashboard")
		} else {
			logger.Warn().Str("ip", hashIP(c.ClientIP())).Msg("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
		}
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := getAdminStats(c.Request.Context())
		if err != nil {
			logger.Error().Err(err).Msg("error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := getAdminStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		go cleanupOldVisitorData()
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})
}
