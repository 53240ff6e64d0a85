package booking

// Step is one page of the linear booking wizard.
type Step struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// The canonical wizard order. Users may skip a talent step from the UI, but
// the sequence itself never branches.
var bookingSteps = []Step{
	{Name: "Location & Date", Path: "/booking/location"},
	{Name: "Photographers", Path: "/booking/photographers"},
	{Name: "Videographers", Path: "/booking/videographers"},
	{Name: "Equipment", Path: "/booking/equipment"},
	{Name: "Transport", Path: "/booking/transport"},
	{Name: "Cart", Path: "/booking/cart"},
	{Name: "Checkout", Path: "/booking/checkout"},
}

// BookingSteps returns the wizard steps in canonical order.
func BookingSteps() []Step {
	out := make([]Step, len(bookingSteps))
	copy(out, bookingSteps)
	return out
}

// NextStep returns the step following currentPath. The second return is
// false at the last step and for unknown paths, so walking from the first
// step always terminates.
func NextStep(currentPath string) (Step, bool) {
	for i, step := range bookingSteps {
		if step.Path == currentPath && i+1 < len(bookingSteps) {
			return bookingSteps[i+1], true
		}
	}
	return Step{}, false
}
