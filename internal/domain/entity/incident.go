package entity

// IncidentReport is the archived snapshot taken when an SOS is raised.
type IncidentReport struct {
	Alert    *AlertLogEntry `json:"alert"`
	Profile  *UserProfile   `json:"profile"`
	Contacts []*Contact     `json:"contacts"`
}
