package desk

import (
	"context"

	"enersense/models"
)

// DeskService captures leads, feedback, monitoring requests and report
// requests. Each method appends one record and returns the confirmation
// wording the chatbot relays to the user.
type DeskService interface {
	RecordLead(ctx context.Context, lead models.Lead) (string, error)
	RecordFeedback(ctx context.Context, feedback models.Feedback) (string, error)
	RecordMonitoringRequest(ctx context.Context, req models.MonitoringRequest) (string, error)
	RecordReportRequest(ctx context.Context, req models.ReportRequest) (string, error)
}
