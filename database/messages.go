package database

import (
	"context"
	"folio/models"
	"log"
	"time"
)

// CreateMessage inserts one message; id and created_at are assigned by postgres.
func (db *DB) CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error) {
	start := time.Now()

	query := `
		INSERT INTO messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, message, created_at
	`

	message, err := scanMessage(db.Pool.QueryRow(ctx, query, req.Name, req.Email, req.Message))
	if err != nil {
		return nil, storageErr("create message", err)
	}

	log.Printf("CreateMessage: duration=%v id=%d", time.Since(start), message.ID)
	return message, nil
}

func scanMessage(row rowScanner) (*models.Message, error) {
	var message models.Message
	err := row.Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Message,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}
