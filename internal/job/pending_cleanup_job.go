package job

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/campuslab/printbooth/internal/repo"
)

// PendingCleanupJob removes signups past their 24h lifetime. The store's
// TTL index already does this on real deployments; the job is the
// backstop for stores running without a TTL monitor.
type PendingCleanupJob struct {
	pending repo.PendingAccountRepository
}

func NewPendingCleanupJob(pending repo.PendingAccountRepository) *PendingCleanupJob {
	return &PendingCleanupJob{pending: pending}
}

func (j *PendingCleanupJob) Name() string {
	return "pending_account_cleanup"
}

func (j *PendingCleanupJob) Run(ctx context.Context) error {
	if j.pending == nil {
		return nil
	}
	deleted, err := j.pending.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logutil.GetLogger(ctx).Info("expired pending accounts removed", zap.Int64("count", deleted))
	}
	return nil
}
