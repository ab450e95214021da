package models

// Lead is a potential customer inquiry captured for follow-up.
type Lead struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Feedback is a user question or comment logged for internal review.
type Feedback struct {
	Question string `json:"question" binding:"required"`
}

// MonitoringRequest is a customer request to set up site monitoring.
type MonitoringRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	SiteName     string `json:"site_name" binding:"required"`
	Parameters   string `json:"parameters" binding:"required"` // e.g. "temperature, current"
}

// ReportRequest is a customer request for an energy performance report.
type ReportRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Period      string `json:"period" binding:"required"` // e.g. "weekly", "monthly"
}
