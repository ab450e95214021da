// File: enersense/services/intelligence/tools.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"enersense/models"
	"enersense/services/slotbook"

	genai "github.com/google/generative-ai-go/genai"
)

// chatbotTool declares the six functions the model may call.
func chatbotTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "record_customer_interest",
				Description: "Record a potential customer's interest or inquiry for follow-up.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":    {Type: genai.TypeString, Description: "Full name of the customer."},
						"email":   {Type: genai.TypeString, Description: "Contact email address."},
						"message": {Type: genai.TypeString, Description: "Inquiry or description of interest."},
					},
					Required: []string{"name", "email", "message"},
				},
			},
			{
				Name:        "record_feedback",
				Description: "Log customer feedback or a question the assistant could not answer.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question": {Type: genai.TypeString, Description: "Feedback or question text from the user."},
					},
					Required: []string{"question"},
				},
			},
			{
				Name:        "log_site_monitoring_request",
				Description: "Record a customer request to set up monitoring for a specific site.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"customer_name": {Type: genai.TypeString, Description: "Name of the customer requesting monitoring."},
						"site_name":     {Type: genai.TypeString, Description: "Name of the facility or site."},
						"parameters":    {Type: genai.TypeString, Description: "Parameters to monitor, e.g. 'temperature, current'."},
					},
					Required: []string{"customer_name", "site_name", "parameters"},
				},
			},
			{
				Name:        "log_energy_report_request",
				Description: "Log a customer's request for an energy performance report.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"company_name": {Type: genai.TypeString, Description: "Name of the company requesting the report."},
						"period":       {Type: genai.TypeString, Description: "Reporting frequency, e.g. 'weekly' or 'monthly'."},
					},
					Required: []string{"company_name", "period"},
				},
			},
			{
				Name:        "schedule_consultation",
				Description: "Book a consultation slot if the requested time is still free.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"client_name": {Type: genai.TypeString, Description: "Client's full name."},
						"date":        {Type: genai.TypeString, Description: "Requested date in YYYY-MM-DD format."},
						"time":        {Type: genai.TypeString, Description: "Requested hourly slot label, e.g. '11:00'."},
						"topic":       {Type: genai.TypeString, Description: "Main topic or purpose of the consultation."},
					},
					Required: []string{"client_name", "date", "time", "topic"},
				},
			},
			{
				Name:        "list_available_slots",
				Description: "List the free consultation slots for a given date.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {Type: genai.TypeString, Description: "Date in YYYY-MM-DD format."},
					},
					Required: []string{"date"},
				},
			},
		},
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// executeTool runs one function call against the real services and returns
// the payload fed back to the model. Domain failures (conflicts, bad
// dates) come back as polite messages, not errors: the model is expected
// to relay them and keep the conversation going.
func (s *DefaultChatService) executeTool(ctx context.Context, call genai.FunctionCall) (map[string]any, error) {
	switch call.Name {
	case "record_customer_interest":
		msg, err := s.Desk.RecordLead(ctx, models.Lead{
			Name:    stringArg(call.Args, "name"),
			Email:   stringArg(call.Args, "email"),
			Message: stringArg(call.Args, "message"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"message": msg}, nil

	case "record_feedback":
		msg, err := s.Desk.RecordFeedback(ctx, models.Feedback{
			Question: stringArg(call.Args, "question"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"message": msg}, nil

	case "log_site_monitoring_request":
		msg, err := s.Desk.RecordMonitoringRequest(ctx, models.MonitoringRequest{
			CustomerName: stringArg(call.Args, "customer_name"),
			SiteName:     stringArg(call.Args, "site_name"),
			Parameters:   stringArg(call.Args, "parameters"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"message": msg}, nil

	case "log_energy_report_request":
		msg, err := s.Desk.RecordReportRequest(ctx, models.ReportRequest{
			CompanyName: stringArg(call.Args, "company_name"),
			Period:      stringArg(call.Args, "period"),
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{"message": msg}, nil

	case "schedule_consultation":
		return s.executeSchedule(ctx, call.Args)

	case "list_available_slots":
		return s.executeListSlots(ctx, call.Args)

	default:
		return map[string]any{"message": fmt.Sprintf("unknown function %q", call.Name)}, nil
	}
}

func (s *DefaultChatService) executeSchedule(ctx context.Context, args map[string]any) (map[string]any, error) {
	date := stringArg(args, "date")
	timeLabel := stringArg(args, "time")
	booking, err := s.SlotBook.Schedule(ctx, date, timeLabel,
		stringArg(args, "client_name"), stringArg(args, "topic"))

	var conflict *slotbook.SlotConflictError
	var badDate *slotbook.MalformedDateError
	var badTime *slotbook.InvalidTimeError
	switch {
	case err == nil:
		return map[string]any{
			"booked":  true,
			"message": fmt.Sprintf("Consultation booked for %s on %s at %s about '%s'. Our team will confirm shortly.", booking.ClientName, booking.Date, booking.Time, booking.Topic),
		}, nil
	case errors.As(err, &conflict):
		return map[string]any{
			"booked":  false,
			"message": fmt.Sprintf("That time slot on %s is already reserved. Please choose another time that day.", conflict.Date),
		}, nil
	case errors.As(err, &badDate):
		return map[string]any{
			"booked":  false,
			"message": "That date was not understood. Please give the date as YYYY-MM-DD.",
		}, nil
	case errors.As(err, &badTime):
		return map[string]any{
			"booked":  false,
			"message": fmt.Sprintf("Consultations are booked on the hour between %s and %s. Please pick one of those times.", slotbook.SlotLabels[0], slotbook.SlotLabels[len(slotbook.SlotLabels)-1]),
		}, nil
	default:
		return nil, err
	}
}

func (s *DefaultChatService) executeListSlots(ctx context.Context, args map[string]any) (map[string]any, error) {
	date := stringArg(args, "date")
	slots, err := s.SlotBook.ListAvailable(ctx, date)

	var badDate *slotbook.MalformedDateError
	switch {
	case err == nil:
		if len(slots) == 0 {
			return map[string]any{
				"slots":   []string{},
				"message": fmt.Sprintf("No slots are available on %s. Please try another day.", date),
			}, nil
		}
		return map[string]any{
			"slots":   slots,
			"message": fmt.Sprintf("Available slots on %s: %s.", date, strings.Join(slots, ", ")),
		}, nil
	case errors.As(err, &badDate):
		return map[string]any{
			"slots":   []string{},
			"message": "That date was not understood. Please give the date as YYYY-MM-DD.",
		}, nil
	default:
		return nil, err
	}
}
