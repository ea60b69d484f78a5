package models

// BusEdit bundles every change submitted from the admin edit form.
type BusEdit struct {
	BusNumber      string                `json:"bus_number"`
	TotalSeats     int                   `json:"total_seats"`
	AvailableSeats int                   `json:"available_seats"`
	RouteUpdates   map[int64]RouteFields `json:"route_updates"`
	NewStops       []RouteFields         `json:"new_stops"`
	DeleteRouteIDs []int64               `json:"delete_route_ids"`
}

// RouteFields is a stop_name/stop_time pair.
type RouteFields struct {
	StopName string `json:"stop_name"`
	StopTime string `json:"stop_time"`
}

// EditStep outcomes.
const (
	StepApplied = "applied"
	StepSkipped = "skipped"
	StepFailed  = "failed"
)

// EditStep is one sub-operation of an admin edit batch.
type EditStep struct {
	Op     string `json:"op"`
	Target string `json:"target"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// EditResult collects the outcome of every sub-operation, in issue order.
type EditResult struct {
	BusID int64      `json:"bus_id"`
	Steps []EditStep `json:"steps"`
}

func (r *EditResult) record(op, target, status, reason string) {
	r.Steps = append(r.Steps, EditStep{Op: op, Target: target, Status: status, Reason: reason})
}

func (r *EditResult) Applied(op, target string)         { r.record(op, target, StepApplied, "") }
func (r *EditResult) Skipped(op, target, reason string) { r.record(op, target, StepSkipped, reason) }
func (r *EditResult) Failed(op, target string, err error) {
	r.record(op, target, StepFailed, err.Error())
}

// Count returns the number of steps with the given status.
func (r EditResult) Count(status string) int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == status {
			n++
		}
	}
	return n
}

// FailedTargets lists op:target for every failed step.
func (r EditResult) FailedTargets() []string {
	out := []string{}
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			out = append(out, s.Op+":"+s.Target)
		}
	}
	return out
}
