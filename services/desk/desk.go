package desk

import (
	"context"
	"fmt"

	deskRepo "enersense/database/repository/desk"
	"enersense/models"
	"enersense/utils"

	"go.uber.org/zap"
)

// DefaultDeskService implements DeskService over a DeskRepository.
type DefaultDeskService struct {
	Repo deskRepo.DeskRepository
}

func NewDefaultDeskService(repo deskRepo.DeskRepository) *DefaultDeskService {
	return &DefaultDeskService{Repo: repo}
}

func (s *DefaultDeskService) RecordLead(ctx context.Context, lead models.Lead) (string, error) {
	if err := s.Repo.AppendLead(ctx, lead); err != nil {
		return "", fmt.Errorf("record lead: %w", err)
	}
	utils.GetLogger().Info("Lead recorded",
		zap.String("name", lead.Name), zap.String("email", lead.Email))
	return fmt.Sprintf("Thank you %s, your interest has been recorded. Our energy team will reach out shortly.", lead.Name), nil
}

func (s *DefaultDeskService) RecordFeedback(ctx context.Context, feedback models.Feedback) (string, error) {
	if err := s.Repo.AppendFeedback(ctx, feedback); err != nil {
		return "", fmt.Errorf("record feedback: %w", err)
	}
	utils.GetLogger().Info("Feedback logged", zap.String("question", feedback.Question))
	return "Thank you for your feedback. I've noted your question for our energy experts.", nil
}

func (s *DefaultDeskService) RecordMonitoringRequest(ctx context.Context, req models.MonitoringRequest) (string, error) {
	if err := s.Repo.AppendMonitoringRequest(ctx, req); err != nil {
		return "", fmt.Errorf("record monitoring request: %w", err)
	}
	utils.GetLogger().Info("Monitoring request logged",
		zap.String("customer", req.CustomerName), zap.String("site", req.SiteName))
	return fmt.Sprintf("Monitoring request for '%s' by %s has been recorded. Our engineers will contact you soon.", req.SiteName, req.CustomerName), nil
}

func (s *DefaultDeskService) RecordReportRequest(ctx context.Context, req models.ReportRequest) (string, error) {
	if err := s.Repo.AppendReportRequest(ctx, req); err != nil {
		return "", fmt.Errorf("record report request: %w", err)
	}
	utils.GetLogger().Info("Report request logged",
		zap.String("company", req.CompanyName), zap.String("period", req.Period))
	return fmt.Sprintf("Energy report request for %s (%s) recorded successfully.", req.CompanyName, req.Period), nil
}
