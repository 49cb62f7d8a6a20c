package main

import (
	"fmt"
	"net/http"
	"net/smtp"

	"github.com/gin-gonic/gin"
)

// HTMX contact form endpoints. Failures come back as an HTML fragment
// inside the form, never as an error page.
func registerContactRoutes(r *gin.Engine, cfg Config) {
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.POST("/contact", func(c *gin.Context) {
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		if err := sendContactEmail(cfg, name, email, message); err != nil {
			logger.Error().Err(err).Msg("error sending contact email")
			metrics.recordContactMessage("error")
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		logger.Info().Str("from", email).Msg("contact email sent")
		metrics.recordContactMessage("ok")
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})
}

func sendContactEmail(cfg Config, name, email, message string) error {
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if cfg.ToEmail == "" {
		return fmt.Errorf("TO_EMAIL not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + cfg.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.SMTPUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	return smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.SMTPUser, []string{cfg.ToEmail}, msg)
}
