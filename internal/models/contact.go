package models

// Contact statuses accepted by the status-update endpoint.
const (
	ContactNew        = "new"
	ContactInProgress = "in_progress"
	ContactCompleted  = "completed"
	ContactClosed     = "closed"
)

// ValidContactStatus reports whether s is a known contact status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactNew, ContactInProgress, ContactCompleted, ContactClosed:
		return true
	}
	return false
}

// ContactModel is a lead submitted through one of the public forms. The two
// sites capture different fields: services leads carry a service category and
// an optional message, interiors leads carry mandatory project details.
type ContactModel struct {
	Base
	Site           Site   `json:"contact_site"            gorm:"type:varchar(20);not null;index"`
	Name           string `json:"contact_name"            gorm:"not null"`
	Phone          string `json:"contact_phone"           gorm:"type:varchar(20);not null"`
	Email          string `json:"contact_email,omitempty"`
	Service        string `json:"contact_service,omitempty"`
	Location       string `json:"contact_location,omitempty"`
	Message        string `json:"contact_message,omitempty"         gorm:"type:text"`
	ProjectDetails string `json:"contact_project_details,omitempty" gorm:"type:text"`
	IP             string `json:"contact_ip"              gorm:"type:varchar(45)"`
	Status         string `json:"contact_status"          gorm:"type:varchar(20);default:new;index"`
}

func (ContactModel) TableName() string { return "contacts" }
