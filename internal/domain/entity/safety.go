// Package entity contains the core business objects of the project.
package entity

// SafetyStatus represents the current safety state of the session.
type SafetyStatus string

const (
	// SafetyStatusSecure means no monitoring is active and no alert is raised.
	SafetyStatusSecure SafetyStatus = "SECURE"
	// SafetyStatusMonitoring means the sentries are armed.
	SafetyStatusMonitoring SafetyStatus = "MONITORING"
	// SafetyStatusDistress is reserved for a suspected but unconfirmed emergency.
	SafetyStatusDistress SafetyStatus = "DISTRESS"
	// SafetyStatusSOSTriggered means an alert is active until the user dismisses it.
	SafetyStatusSOSTriggered SafetyStatus = "SOS_TRIGGERED"
)

// String returns the string representation of the SafetyStatus.
func (s SafetyStatus) String() string {
	return string(s)
}

// IsValid checks if the SafetyStatus is a valid value.
func (s SafetyStatus) IsValid() bool {
	switch s {
	case SafetyStatusSecure, SafetyStatusMonitoring, SafetyStatusDistress, SafetyStatusSOSTriggered:
		return true
	default:
		return false
	}
}
