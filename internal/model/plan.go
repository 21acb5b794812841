package model

// PlanSection is one narrative block of a generated plan.
type PlanSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// PlanOutput is the terminal deliverable of a completed workflow.
// Widgets request domain search data (flights, hotels, attractions);
// fulfilling them is the job of external collaborators, not the core.
type PlanOutput struct {
	Domain   Domain            `json:"domain"`
	Title    string            `json:"title"`
	Sections []PlanSection     `json:"sections"`
	Widgets  []WidgetDirective `json:"widgets,omitempty"`
}
