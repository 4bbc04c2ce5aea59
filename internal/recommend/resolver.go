package recommend

// Bundle is a set of guidance lists for one persona and quality category.
// The three for_* fields expose the matrix cell's single specific list under
// the field names the dashboard contract requires; ImmediateActions renders
// emphasized.
type Bundle struct {
	General          []string `json:"general"`
	ForSchools       []string `json:"for_schools"`
	ForElderly       []string `json:"for_elderly"`
	ForHealthCenters []string `json:"for_health_centers"`
	ImmediateActions []string `json:"immediate_actions"`
}

// Resolve returns the guidance bundle for a persona and quality category.
// Any persona outside the selectable set, or any category outside the four
// known ones, yields the fallback bundle. Pure function of its inputs.
func Resolve(persona Persona, qualityIndex string) Bundle {
	byCategory, ok := matrix[persona]
	if !ok {
		return FallbackBundle()
	}
	c, ok := byCategory[qualityIndex]
	if !ok {
		return FallbackBundle()
	}

	specific := cloneList(c.specific)
	return Bundle{
		General:          cloneList(c.general),
		ForSchools:       specific,
		ForElderly:       specific,
		ForHealthCenters: specific,
		ImmediateActions: cloneList(c.immediate),
	}
}

// FallbackBundle is returned for unknown persona/category combinations.
func FallbackBundle() Bundle {
	return Bundle{
		General:          []string{"No recommendations available for this combination"},
		ForSchools:       []string{},
		ForElderly:       []string{},
		ForHealthCenters: []string{},
		ImmediateActions: []string{},
	}
}

// cloneList copies a matrix list so callers can never mutate the table.
func cloneList(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
