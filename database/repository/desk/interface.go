package deskRepo

import (
	"context"

	"enersense/models"
)

// DeskRepository holds the four unrelated append-only capture logs (leads,
// feedback, monitoring requests, report requests). The logs share no
// invariants with the consultation calendar; each append is independent.
type DeskRepository interface {
	AppendLead(ctx context.Context, lead models.Lead) error
	AppendFeedback(ctx context.Context, feedback models.Feedback) error
	AppendMonitoringRequest(ctx context.Context, req models.MonitoringRequest) error
	AppendReportRequest(ctx context.Context, req models.ReportRequest) error
}
