package product

import (
	"fmt"
	"time"
)

// SequenceFile is a single downloadable file inside a product version. The
// checksum identifies identical uploads; files with the same checksum from
// the same seller share one storage object.
type SequenceFile struct {
	id         uint
	sid        string
	versionID  uint
	fileName   string
	storageKey string
	sizeBytes  int64
	checksum   string
	createdAt  time.Time
}

// NewSequenceFile creates a file record bound to a product version.
func NewSequenceFile(sid string, versionID uint, fileName, storageKey string, sizeBytes int64, checksum string) (*SequenceFile, error) {
	if sid == "" {
		return nil, fmt.Errorf("file SID is required")
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
	if sizeBytes <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}
	if checksum == "" {
		return nil, fmt.Errorf("checksum is required")
	}

	return &SequenceFile{
		sid:        sid,
		versionID:  versionID,
		fileName:   fileName,
		storageKey: storageKey,
		sizeBytes:  sizeBytes,
		checksum:   checksum,
		createdAt:  time.Now(),
	}, nil
}

// ReconstructSequenceFile reconstructs a file from persistence.
func ReconstructSequenceFile(id uint, sid string, versionID uint, fileName, storageKey string, sizeBytes int64, checksum string, createdAt time.Time) (*SequenceFile, error) {
	if id == 0 {
		return nil, fmt.Errorf("file ID cannot be zero")
	}
	return &SequenceFile{
		id:         id,
		sid:        sid,
		versionID:  versionID,
		fileName:   fileName,
		storageKey: storageKey,
		sizeBytes:  sizeBytes,
		checksum:   checksum,
		createdAt:  createdAt,
	}, nil
}

func (f *SequenceFile) ID() uint             { return f.id }
func (f *SequenceFile) SID() string          { return f.sid }
func (f *SequenceFile) VersionID() uint      { return f.versionID }
func (f *SequenceFile) FileName() string     { return f.fileName }
func (f *SequenceFile) StorageKey() string   { return f.storageKey }
func (f *SequenceFile) SizeBytes() int64     { return f.sizeBytes }
func (f *SequenceFile) Checksum() string     { return f.checksum }
func (f *SequenceFile) CreatedAt() time.Time { return f.createdAt }

func (f *SequenceFile) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("file ID already set")
	}
	if id == 0 {
		return fmt.Errorf("file ID cannot be zero")
	}
	f.id = id
	return nil
}
