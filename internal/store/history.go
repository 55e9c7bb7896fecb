package store

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// HistoryStore keeps the fallback conversation transcript in sqlite so
// context survives restarts.
type HistoryStore struct {
	DB *sql.DB
}

func NewHistoryStore(dbPath string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	query := `CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		role TEXT,
		content TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create messages table: %w", err)
	}

	return &HistoryStore{DB: db}, nil
}

func (h *HistoryStore) Close() error {
	return h.DB.Close()
}

func (h *HistoryStore) AddMessage(role string, content string) error {
	query := `INSERT INTO messages (role, content) VALUES (?, ?)`
	_, err := h.DB.Exec(query, role, content)
	return err
}

// GetHistory returns the most recent limit messages in chronological order,
// converted for direct use as LLM context.
func (h *HistoryStore) GetHistory(limit int) ([]llms.MessageContent, error) {
	query := `SELECT role, content FROM messages ORDER BY id DESC LIMIT ?`
	rows, err := h.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []llms.MessageContent
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, err
		}

		// Convert role string to schema.ChatMessageType
		var msgRole schema.ChatMessageType
		switch role {
		case "human":
			msgRole = schema.ChatMessageTypeHuman
		case "ai":
			msgRole = schema.ChatMessageTypeAI
		case "system":
			msgRole = schema.ChatMessageTypeSystem
		default:
			msgRole = schema.ChatMessageTypeHuman
		}

		history = append(history, llms.MessageContent{
			Role: msgRole,
			Parts: []llms.ContentPart{
				llms.TextPart(content),
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse to get chronological order
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	return history, nil
}
