package audit

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/domain/audit"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// RequestInfo carries the caller context attached to audit entries.
type RequestInfo struct {
	IPAddress string
	UserAgent string
}

// Recorder writes audit entries best-effort. A failed write is logged and
// swallowed so the business operation it annotates never fails because of it.
type Recorder struct {
	repo   audit.Repository
	logger logger.Interface
}

// NewRecorder creates a new audit recorder
func NewRecorder(repo audit.Repository, logger logger.Interface) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record appends an audit entry for the given action.
func (r *Recorder) Record(ctx context.Context, action string, userID *uint, entityType, entityID string, metadata map[string]any, req RequestInfo) {
	entry, err := audit.NewEntry(action, userID, entityType, entityID, metadata)
	if err != nil {
		r.logger.Warnw("failed to build audit entry", "action", action, "error", err)
		return
	}
	entry.SetRequestContext(req.IPAddress, req.UserAgent)

	if err := r.repo.Insert(ctx, entry); err != nil {
		r.logger.Warnw("failed to write audit entry", "action", action, "error", err)
	}
}
