package models

// PersonaOption describes one selectable persona for the dashboard form.
type PersonaOption struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Personas is the list of personas the recommendation matrix supports.
type Personas struct {
	Items []PersonaOption `json:"items"`
}
