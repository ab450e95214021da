package deskRepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"enersense/models"
)

const deskTimeLayout = "2006-01-02 15:04:05"

const (
	leadsLogFile      = "leads_log.txt"
	feedbackLogFile   = "feedback_log.txt"
	monitoringLogFile = "monitoring_requests.txt"
	reportsLogFile    = "report_requests.txt"
)

// fileDeskRepo appends one timestamped line per record to plain-text files
// under a data directory.
type fileDeskRepo struct {
	dir string
}

// NewFileDeskRepo returns a DeskRepository writing under dir, creating the
// directory if needed.
func NewFileDeskRepo(dir string) (DeskRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &fileDeskRepo{dir: dir}, nil
}

func (r *fileDeskRepo) appendLine(file, line string) error {
	f, err := os.OpenFile(filepath.Join(r.dir, file), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", file, err)
	}
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format(deskTimeLayout)
}

func (r *fileDeskRepo) AppendLead(ctx context.Context, lead models.Lead) error {
	line := fmt.Sprintf("[%s] Lead | Name: %s | Email: %s | Message: %s",
		timestamp(), lead.Name, lead.Email, lead.Message)
	return r.appendLine(leadsLogFile, line)
}

func (r *fileDeskRepo) AppendFeedback(ctx context.Context, feedback models.Feedback) error {
	line := fmt.Sprintf("[%s] Feedback | Question: %s", timestamp(), feedback.Question)
	return r.appendLine(feedbackLogFile, line)
}

func (r *fileDeskRepo) AppendMonitoringRequest(ctx context.Context, req models.MonitoringRequest) error {
	line := fmt.Sprintf("[%s] Monitoring Request | Customer: %s | Site: %s | Parameters: %s",
		timestamp(), req.CustomerName, req.SiteName, req.Parameters)
	return r.appendLine(monitoringLogFile, line)
}

func (r *fileDeskRepo) AppendReportRequest(ctx context.Context, req models.ReportRequest) error {
	line := fmt.Sprintf("[%s] Report Request | Company: %s | Period: %s",
		timestamp(), req.CompanyName, req.Period)
	return r.appendLine(reportsLogFile, line)
}
