package services

// statusBadgeClasses maps each application lifecycle status to its display
// badge class. Statuses outside this set fall back to the default class so
// unknown values still render.
var statusBadgeClasses = map[string]string{
	"submitted":    "badge badge-blue",
	"approved":     "badge badge-green",
	"rejected":     "badge badge-red",
	"dispatched":   "badge badge-purple",
	"card_arrived": "badge badge-orange",
	"collected":    "badge badge-emerald",
}

const defaultBadgeClass = "badge badge-gray"

// StatusBadgeClass returns the badge class for a lifecycle status. It is
// total: any input maps to a defined class.
func StatusBadgeClass(status string) string {
	if class, ok := statusBadgeClasses[status]; ok {
		return class
	}
	return defaultBadgeClass
}
