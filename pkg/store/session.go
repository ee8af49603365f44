package store

import (
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StateIdle    = "IDLE"
	StateRunning = "RUNNING"
)

// Session holds one chat conversation: the serialized transcript blob and
// a coarse state tag. The whole row is overwritten on every turn.
type Session struct {
	SessionID string         `gorm:"primaryKey;column:session_id" json:"session_id"`
	Context   datatypes.JSON `gorm:"column:context" json:"context"`
	State     string         `gorm:"column:state" json:"state"`
}

// GetSession returns the session row, or nil when the id is unknown.
func (s *Store) GetSession(sessionID string) (*Session, error) {
	var sess Session
	err := s.DB.Where("session_id = ?", sessionID).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}
	return &sess, nil
}

// SaveSession upserts the full session row keyed by session id. Last
// write wins; callers are expected to run at most one turn per session
// at a time.
func (s *Store) SaveSession(sessionID string, context []byte, state string) error {
	sess := Session{
		SessionID: sessionID,
		Context:   datatypes.JSON(context),
		State:     state,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"context", "state"}),
	}).Create(&sess).Error
	if err != nil {
		return errors.Wrap(err, "save session")
	}
	return nil
}
