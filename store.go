package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Privacy-conscious visitor record
type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // Hashed instead of raw IP for privacy
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactMessage is one contact form submission.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	HashedIP  string    `json:"hashed_ip"`
	CreatedAt time.Time `json:"created_at"`
	Delivered bool      `json:"delivered"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type AdminStats struct {
	TotalVisitors       int64            `json:"total_visitors"`
	UniqueVisitors      int64            `json:"unique_visitors"`
	TotalMessages       int64            `json:"total_messages"`
	UndeliveredMessages int64            `json:"undelivered_messages"`
	TopPaths            []PathStat       `json:"top_paths"`
	RecentVisitors      []VisitorMetric  `json:"recent_visitors"`
	RecentMessages      []ContactMessage `json:"recent_messages"`
	VisitorsToday       int64            `json:"visitors_today"`
	VisitorsThisWeek    int64            `json:"visitors_this_week"`
}

type store struct {
	db *sql.DB
}

// openStore opens (or creates) the sqlite database and applies the
// schema. Times are written in sqlite's own format so its date
// functions and plain string comparison both work.
func openStore(path string) (*store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_time_format=sqlite", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serializes writers anyway; one connection also keeps
	// ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	s := &store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) migrate() error {
	createVisitorTable := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,  -- Store hashed IP instead of raw IP
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := s.db.Exec(createVisitorTable); err != nil {
		return fmt.Errorf("create visitors table: %w", err)
	}

	createMessageTable := `
	CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT,
		message TEXT NOT NULL,
		hashed_ip TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		delivered INTEGER NOT NULL DEFAULT 0
	)`
	if _, err := s.db.Exec(createMessageTable); err != nil {
		return fmt.Errorf("create contact_messages table: %w", err)
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors(timestamp)`); err != nil {
		return fmt.Errorf("create visitors index: %w", err)
	}
	return nil
}

func (s *store) recordVisit(hashedIP, userAgent, path string, at time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, dbTime(at))
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// cleanupVisitors removes visitor rows older than cutoff.
func (s *store) cleanupVisitors(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM visitors WHERE timestamp < ?`, dbTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

func (s *store) saveMessage(m *ContactMessage) error {
	result, err := s.db.Exec(`
		INSERT INTO contact_messages (name, email, subject, message, hashed_ip, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.Name, m.Email, m.Subject, m.Message, m.HashedIP, dbTime(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	m.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (s *store) markDelivered(id int64) error {
	if _, err := s.db.Exec(`UPDATE contact_messages SET delivered = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}

// deleteMessage reports whether a row was removed.
func (s *store) deleteMessage(id int64) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (s *store) listMessages(limit int) ([]ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, COALESCE(subject, ''), message, COALESCE(hashed_ip, ''), created_at, delivered
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.HashedIP, &m.CreatedAt, &m.Delivered); err != nil {
			log.Printf("Skipping unreadable contact message: %v", err)
			continue
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *store) listVisitors(limit int) ([]VisitorMetric, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	var visitors []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			log.Printf("Skipping unreadable visitor row: %v", err)
			continue
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// stats gathers the dashboard numbers relative to now.
func (s *store) stats(now time.Time) (*AdminStats, error) {
	stats := &AdminStats{}
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM contact_messages`, nil},
		{&stats.UndeliveredMessages, `SELECT COUNT(*) FROM contact_messages WHERE delivered = 0`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{dbTime(midnight)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{dbTime(now.AddDate(0, 0, -7))}},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = s.topPaths(10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.listVisitors(50); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = s.listMessages(10); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *store) topPaths(limit int) ([]PathStat, error) {
	rows, err := s.db.Query(`
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	var paths []PathStat
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			continue
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
