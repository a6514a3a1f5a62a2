package contact

import (
	"regexp"
	"strings"

	"github.com/lb-platform/core/internal/pkg/response"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Services the lb_services site offers; the contact_service field must be one
// of these.
var ServiceCatalog = []string{
	"AC Repair & Installation",
	"Electrician Service",
	"Plumber Service",
	"Home Cleaning",
	"Pest Control",
	"Carpenter Service",
	"Painter Service",
	"Other",
}

func knownService(s string) bool {
	for _, svc := range ServiceCatalog {
		if s == svc {
			return true
		}
	}
	return false
}

// ServicesDTO is the public lead form for the services marketplace site.
type ServicesDTO struct {
	Name     string `json:"contact_name"`
	Phone    string `json:"contact_phone"`
	Email    string `json:"contact_email"`
	Service  string `json:"contact_service"`
	Location string `json:"contact_location"`
	Message  string `json:"contact_message"`
}

func (d *ServicesDTO) validate() []response.FieldError {
	var errs []response.FieldError
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.Service = strings.TrimSpace(d.Service)
	d.Location = strings.TrimSpace(d.Location)
	d.Message = strings.TrimSpace(d.Message)

	if d.Name == "" {
		errs = append(errs, response.FieldError{Field: "contact_name", Message: "Name is required"})
	}
	errs = append(errs, validatePhone(d.Phone)...)
	if d.Email != "" && !emailPattern.MatchString(d.Email) {
		errs = append(errs, response.FieldError{Field: "contact_email", Message: "Invalid email format"})
	}
	if d.Service == "" {
		errs = append(errs, response.FieldError{Field: "contact_service", Message: "Service is required"})
	} else if !knownService(d.Service) {
		errs = append(errs, response.FieldError{Field: "contact_service", Message: "Invalid service selected"})
	}
	return errs
}

// InteriorsDTO is the public consultation form for the interior-design site.
type InteriorsDTO struct {
	Name           string `json:"contact_name"`
	Phone          string `json:"contact_phone"`
	Email          string `json:"contact_email"`
	ProjectDetails string `json:"contact_project_details"`
}

func (d *InteriorsDTO) validate() []response.FieldError {
	var errs []response.FieldError
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.ProjectDetails = strings.TrimSpace(d.ProjectDetails)

	if d.Name == "" {
		errs = append(errs, response.FieldError{Field: "contact_name", Message: "Name is required"})
	}
	errs = append(errs, validatePhone(d.Phone)...)
	if d.Email != "" && !emailPattern.MatchString(d.Email) {
		errs = append(errs, response.FieldError{Field: "contact_email", Message: "Invalid email format"})
	}
	if d.ProjectDetails == "" {
		errs = append(errs, response.FieldError{Field: "contact_project_details", Message: "Project details are required"})
	} else if len(d.ProjectDetails) < 10 {
		errs = append(errs, response.FieldError{Field: "contact_project_details", Message: "Please provide more details about your project (minimum 10 characters)"})
	}
	return errs
}

func validatePhone(phone string) []response.FieldError {
	if phone == "" {
		return []response.FieldError{{Field: "contact_phone", Message: "Phone number is required"}}
	}
	if !phonePattern.MatchString(phone) {
		return []response.FieldError{{Field: "contact_phone", Message: "Invalid phone number format"}}
	}
	return nil
}

// UpdateStatusDTO is the admin status-change body.
type UpdateStatusDTO struct {
	Site   string `json:"contact_site"`
	Status string `json:"contact_status"`
}

// Stats aggregates lead counts by status and by recency.
type Stats struct {
	Total           int64 `json:"total"`
	NewCount        int64 `json:"new_count"`
	InProgressCount int64 `json:"in_progress_count"`
	CompletedCount  int64 `json:"completed_count"`
	ClosedCount     int64 `json:"closed_count"`
	TodayCount      int64 `json:"today_count"`
	ThisWeekCount   int64 `json:"this_week_count"`
	ThisMonthCount  int64 `json:"this_month_count"`
}
