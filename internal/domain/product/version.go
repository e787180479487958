package product

import (
	"fmt"
	"regexp"
	"time"
)

var versionRe = regexp.MustCompile(`^v?\d+(\.\d+){0,2}$`)

// Version is one published revision of a product's file bundle. Buyers are
// entitled to a specific version; new versions do not retroactively change
// what an existing entitlement covers.
type Version struct {
	id        uint
	sid       string
	productID uint
	label     string
	changelog string
	createdAt time.Time
}

// NewVersion creates a version with a vN(.N(.N)) label.
func NewVersion(sid string, productID uint, label, changelog string) (*Version, error) {
	if sid == "" {
		return nil, fmt.Errorf("version SID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if !versionRe.MatchString(label) {
		return nil, fmt.Errorf("invalid version label: %s", label)
	}

	return &Version{
		sid:       sid,
		productID: productID,
		label:     label,
		changelog: changelog,
		createdAt: time.Now(),
	}, nil
}

// ReconstructVersion reconstructs a version from persistence.
func ReconstructVersion(id uint, sid string, productID uint, label, changelog string, createdAt time.Time) (*Version, error) {
	if id == 0 {
		return nil, fmt.Errorf("version ID cannot be zero")
	}
	return &Version{
		id:        id,
		sid:       sid,
		productID: productID,
		label:     label,
		changelog: changelog,
		createdAt: createdAt,
	}, nil
}

func (v *Version) ID() uint             { return v.id }
func (v *Version) SID() string          { return v.sid }
func (v *Version) ProductID() uint      { return v.productID }
func (v *Version) Label() string        { return v.label }
func (v *Version) Changelog() string    { return v.changelog }
func (v *Version) CreatedAt() time.Time { return v.createdAt }

func (v *Version) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("version ID already set")
	}
	if id == 0 {
		return fmt.Errorf("version ID cannot be zero")
	}
	v.id = id
	return nil
}
