package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errSMTPNotConfigured = errors.New("SMTP credentials not configured")
	errInvalidContact    = errors.New("invalid contact form")
)

const maxMessageLength = 5000

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(m ContactMessage) error
}

type smtpMailer struct {
	cfg SMTPConfig
	to  string
}

func (m smtpMailer) Send(msg ContactMessage) error {
	// Validate required fields
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return errSMTPNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	if msg.Subject != "" {
		subject += " - " + msg.Subject
	}
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	// Compose email
	raw := []byte("To: " + m.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.to}, raw); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// contactFromForm reads and validates the form. Header-breaking
// characters are rejected so fields can't inject mail headers.
func contactFromForm(c *gin.Context) (ContactMessage, []string) {
	msg := ContactMessage{
		Name:    strings.TrimSpace(c.PostForm("fullName")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Subject: strings.TrimSpace(c.PostForm("subject")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}

	var problems []string
	if msg.Name == "" {
		problems = append(problems, "Please tell me your name.")
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil || !strings.Contains(msg.Email, "@") {
		problems = append(problems, "Please enter a valid email address.")
	}
	if msg.Message == "" {
		problems = append(problems, "Please write a message.")
	}
	if len(msg.Message) > maxMessageLength {
		problems = append(problems, fmt.Sprintf("Messages are limited to %d characters.", maxMessageLength))
	}
	for _, field := range []string{msg.Name, msg.Email, msg.Subject} {
		if strings.ContainsAny(field, "\r\n") {
			problems = append(problems, "Name, email and subject must be a single line.")
			break
		}
	}
	return msg, problems
}

func (s *server) setupContactRoutes(r *gin.Engine) {
	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		msg, problems := contactFromForm(c)
		if len(problems) > 0 {
			log.Printf("Rejected contact form from %s: %v", s.hashIP(c.ClientIP()), errInvalidContact)
			c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{
				"error":    "Please fix the following and try again.",
				"problems": problems,
			})
			return
		}

		msg.HashedIP = s.hashIP(c.ClientIP())
		msg.CreatedAt = s.clock.Now()
		if err := s.store.saveMessage(&msg); err != nil {
			log.Printf("Error saving contact message: %v", err)
			c.HTML(http.StatusInternalServerError, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		// The message is stored either way; undelivered ones show up in
		// the admin dashboard.
		if err := s.mailer.Send(msg); err != nil {
			log.Printf("Error sending email for message %d: %v", msg.ID, err)
		} else if err := s.store.markDelivered(msg.ID); err != nil {
			log.Printf("Error marking message %d delivered: %v", msg.ID, err)
		} else {
			log.Printf("Email sent successfully for message %d", msg.ID)
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})
}
