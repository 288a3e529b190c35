package entity

// UserProfile holds the medical and contact details shown to responders.
type UserProfile struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	BloodGroup        string `json:"bloodGroup"`
	MedicalConditions string `json:"medicalConditions"`
	EmergencyNote     string `json:"emergencyNote"`
}

// DefaultProfile returns the profile used when nothing has been stored yet.
func DefaultProfile() *UserProfile {
	return &UserProfile{
		Name:              "Jane Doe",
		Phone:             "",
		BloodGroup:        "O+",
		MedicalConditions: "None",
		EmergencyNote:     "Please contact my family immediately.",
	}
}
