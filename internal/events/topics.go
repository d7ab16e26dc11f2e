package events

const (
	AssignmentLifecycleTopic = "innout.assignment.lifecycle.v1"
	DocumentAlertsTopic      = "innout.document.alerts.v1"
	EmployeeLifecycleTopic   = "innout.employee.lifecycle.v1"
)

// Topics lists every topic the services publish to.
func Topics() []string {
	return []string{
		AssignmentLifecycleTopic,
		DocumentAlertsTopic,
		EmployeeLifecycleTopic,
	}
}
