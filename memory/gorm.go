package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// turnRecord is the persisted shape of a Turn. Metadata is stored as JSON
// text so the model works on any GORM dialector.
type turnRecord struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	ID        string `gorm:"uniqueIndex;size:36"`
	SessionID string `gorm:"index;size:64"`
	Role      string `gorm:"size:16"`
	Content   string
	Metadata  string
	CreatedAt time.Time `gorm:"index"`
}

func (turnRecord) TableName() string { return "conversation_turns" }

// GormHistory stores a session's turns in a SQL database through GORM.
type GormHistory struct {
	db        *gorm.DB
	sessionID string
}

var _ HistoryProvider = (*GormHistory)(nil)

// NewGormHistory migrates the turn table and binds a provider to
// sessionID.
func NewGormHistory(db *gorm.DB, sessionID string) (*GormHistory, error) {
	if err := db.AutoMigrate(&turnRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return &GormHistory{db: db, sessionID: sessionID}, nil
}

func (h *GormHistory) GetRecentTurns(ctx context.Context, limit int) ([]Turn, error) {
	query := h.db.WithContext(ctx).
		Where("session_id = ?", h.sessionID).
		Order("seq DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []turnRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	// Records arrive newest-first; callers expect chronological order.
	turns := make([]Turn, len(records))
	for i, rec := range records {
		turn := Turn{
			ID:        rec.ID,
			Role:      rec.Role,
			Content:   rec.Content,
			CreatedAt: rec.CreatedAt,
		}
		if rec.Metadata != "" {
			if err := json.Unmarshal([]byte(rec.Metadata), &turn.Metadata); err != nil {
				return nil, fmt.Errorf("corrupt turn metadata: %w", err)
			}
		}
		turns[len(records)-1-i] = turn
	}
	return turns, nil
}

func (h *GormHistory) StoreTurn(ctx context.Context, turn Turn) error {
	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}

	rec := turnRecord{
		ID:        turn.ID,
		SessionID: h.sessionID,
		Role:      turn.Role,
		Content:   turn.Content,
		CreatedAt: turn.CreatedAt,
	}
	if len(turn.Metadata) > 0 {
		data, err := json.Marshal(turn.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode turn metadata: %w", err)
		}
		rec.Metadata = string(data)
	}
	if err := h.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to store turn: %w", err)
	}
	return nil
}
