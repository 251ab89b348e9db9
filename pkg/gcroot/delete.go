package gcroot

import (
	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/logging"
)

// DeleteStatus is the outcome of one deletion attempt
type DeleteStatus string

const (
	StatusDeleted     DeleteStatus = "deleted"
	StatusWouldDelete DeleteStatus = "would-delete"
	StatusSkipped     DeleteStatus = "skipped"
	StatusFailed      DeleteStatus = "failed"
)

// DeleteResult reports what happened to a single root
type DeleteResult struct {
	Location string
	Root     Root
	Status   DeleteStatus
	Err      error
}

// DeleteReport collects per-root results in the order they were attempted
type DeleteReport struct {
	DryRun  bool
	Results []DeleteResult
}

// Count returns the number of results with the given status
func (r *DeleteReport) Count(status DeleteStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// HasFailures is true when any root could not be removed
func (r *DeleteReport) HasFailures() bool {
	return r.Count(StatusFailed) > 0
}

// DeleteOptions configures DeleteAll
type DeleteOptions struct {
	DryRun bool
}

// DeleteAll removes each root independently and in order. A root the policy
// refuses is skipped; a root whose unlink fails is reported as failed. Neither
// stops the remaining roots from being processed.
func DeleteAll(policy *Policy, roots []Root, opts DeleteOptions) *DeleteReport {
	logger := logging.GetLogger("gcroot.delete")
	report := &DeleteReport{DryRun: opts.DryRun}

	for _, root := range roots {
		result := DeleteResult{Location: root.Location(), Root: root}

		switch {
		case !root.Deletable(policy):
			result.Status = StatusSkipped
			result.Err = errors.Newf(errors.ErrNotDeletable, "%s is not deletable", root.Location())
		case opts.DryRun:
			result.Status = StatusWouldDelete
		default:
			if err := root.Delete(policy); err != nil {
				result.Status = StatusFailed
				result.Err = err
				logger.Warn().Err(err).Str("location", root.Location()).Msg("Failed to delete root")
			} else {
				result.Status = StatusDeleted
				logger.Info().Str("location", root.Location()).Str("target", root.Target()).Msg("Deleted root")
			}
		}

		report.Results = append(report.Results, result)
	}

	return report
}
