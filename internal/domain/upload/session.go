package upload

import (
	"fmt"
	"time"
)

// Status of an upload session.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusCompleted, StatusAborted:
		return true
	}
	return false
}

// Session tracks a chunked file upload. Chunks are appended to the object
// under StorageKey until the received size matches the declared size.
type Session struct {
	id            uint
	sid           string
	sellerID      uint
	versionID     uint
	fileName      string
	storageKey    string
	declaredSize  int64
	receivedBytes int64
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSession opens an upload session for a version file.
func NewSession(sid string, sellerID, versionID uint, fileName, storageKey string, declaredSize int64) (*Session, error) {
	if sellerID == 0 {
		return nil, fmt.Errorf("seller ID is required")
	}
	if versionID == 0 {
		return nil, fmt.Errorf("version ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if storageKey == "" {
		return nil, fmt.Errorf("storage key is required")
	}
	if declaredSize <= 0 {
		return nil, fmt.Errorf("declared size must be positive")
	}

	now := time.Now()
	return &Session{
		sid:           sid,
		sellerID:      sellerID,
		versionID:     versionID,
		fileName:      fileName,
		storageKey:    storageKey,
		declaredSize:  declaredSize,
		status:        StatusOpen,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructSession reconstructs a session from persistence.
func ReconstructSession(
	id uint,
	sid string,
	sellerID, versionID uint,
	fileName, storageKey string,
	declaredSize, receivedBytes int64,
	status Status,
	createdAt, updatedAt time.Time,
) (*Session, error) {
	if id == 0 {
		return nil, fmt.Errorf("session ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid session status: %s", status)
	}

	return &Session{
		id:            id,
		sid:           sid,
		sellerID:      sellerID,
		versionID:     versionID,
		fileName:      fileName,
		storageKey:    storageKey,
		declaredSize:  declaredSize,
		receivedBytes: receivedBytes,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Session) ID() uint             { return s.id }
func (s *Session) SID() string          { return s.sid }
func (s *Session) SellerID() uint       { return s.sellerID }
func (s *Session) VersionID() uint      { return s.versionID }
func (s *Session) FileName() string     { return s.fileName }
func (s *Session) StorageKey() string   { return s.storageKey }
func (s *Session) DeclaredSize() int64  { return s.declaredSize }
func (s *Session) ReceivedBytes() int64 { return s.receivedBytes }
func (s *Session) Status() Status       { return s.status }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// GetOwnerID implements the OwnedResource interface
func (s *Session) GetOwnerID() uint { return s.sellerID }

func (s *Session) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("session ID already set")
	}
	s.id = id
	return nil
}

// AppendChunk records size bytes received. The running total may not exceed
// the declared size.
func (s *Session) AppendChunk(size int64) error {
	if s.status != StatusOpen {
		return ErrSessionNotOpen
	}
	if size <= 0 {
		return fmt.Errorf("chunk size must be positive")
	}
	if s.receivedBytes+size > s.declaredSize {
		return ErrSizeExceeded
	}
	s.receivedBytes += size
	s.updatedAt = time.Now()
	return nil
}

// Complete closes the session. All declared bytes must have arrived.
func (s *Session) Complete() error {
	if s.status != StatusOpen {
		return ErrSessionNotOpen
	}
	if s.receivedBytes != s.declaredSize {
		return ErrIncompleteUpload
	}
	s.status = StatusCompleted
	s.updatedAt = time.Now()
	return nil
}

// Abort closes the session without producing a file.
func (s *Session) Abort() error {
	if s.status != StatusOpen {
		return ErrSessionNotOpen
	}
	s.status = StatusAborted
	s.updatedAt = time.Now()
	return nil
}
