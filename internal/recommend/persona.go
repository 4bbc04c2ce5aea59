// Package recommend maps population personas and air-quality categories to
// protection guidance. It carries two independent sources of guidance: a
// static persona matrix resolved at render time, and NO2-threshold advice
// computed by the aggregation pipeline.
package recommend

// Persona identifies a population segment.
type Persona string

// Selectable personas, offered as dashboard input.
const (
	PersonaChildren       Persona = "children"
	PersonaElderly        Persona = "elderly"
	PersonaAdults         Persona = "adults"
	PersonaAsthmatics     Persona = "asthmatics"
	PersonaOutdoorWorkers Persona = "outdoor_workers"
	PersonaSchools        Persona = "schools"
	PersonaHospitals      Persona = "hospitals"
)

// Display-only personas. They appear in vulnerability group lists but are
// never selectable and have no matrix entries.
const (
	PersonaLowIncome          Persona = "low_income"
	PersonaElderlyCommunities Persona = "elderly_communities"
)

// SelectablePersonas returns the personas offered as input, in display order.
func SelectablePersonas() []Persona {
	return []Persona{
		PersonaChildren,
		PersonaElderly,
		PersonaAdults,
		PersonaAsthmatics,
		PersonaOutdoorWorkers,
		PersonaSchools,
		PersonaHospitals,
	}
}

// Selectable reports whether the persona can be chosen as dashboard input.
func (p Persona) Selectable() bool {
	switch p {
	case PersonaChildren, PersonaElderly, PersonaAdults, PersonaAsthmatics,
		PersonaOutdoorWorkers, PersonaSchools, PersonaHospitals:
		return true
	}
	return false
}

// displayNames covers the selectable and display-only personas. Unknown
// personas fall back to "General".
var displayNames = map[Persona]string{
	PersonaChildren:           "Children",
	PersonaElderly:            "Elderly",
	PersonaAdults:             "Adults",
	PersonaAsthmatics:         "Asthmatics",
	PersonaOutdoorWorkers:     "Outdoor Workers",
	PersonaSchools:            "Schools",
	PersonaHospitals:          "Hospitals",
	PersonaLowIncome:          "Low Income",
	PersonaElderlyCommunities: "Elderly Communities",
}

// DisplayName returns the human-readable name for the persona.
func (p Persona) DisplayName() string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return "General"
}
