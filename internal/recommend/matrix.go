package recommend

import "github.com/aireclaro/aireclaro/internal/tempo"

// cell is one persona/category entry of the guidance matrix. The specific
// list is surfaced under all three for_* bundle fields; the renderer decides
// which one to read per persona.
type cell struct {
	general   []string
	specific  []string
	immediate []string
}

// matrix is the static guidance table: 7 selectable personas x 4 quality
// categories. Peligrosa readings intentionally have no entries and resolve to
// the fallback bundle.
var matrix = map[Persona]map[string]cell{
	PersonaChildren: {
		tempo.QualityBuena: {
			general:   []string{"Air quality is good for outdoor play", "Keep windows open for fresh air"},
			specific:  []string{"Normal outdoor recess and sports", "Good day for field activities"},
			immediate: []string{"No special measures needed", "Continue routine monitoring"},
		},
		tempo.QualityModerada: {
			general:   []string{"Limit very long outdoor play sessions", "Watch for coughing or eye irritation"},
			specific:  []string{"Shorten outdoor recess for sensitive children", "Keep inhalers accessible for asthmatic students"},
			immediate: []string{"Check air quality again before afternoon activities", "Ventilate classrooms during low-traffic hours"},
		},
		tempo.QualityMala: {
			general:   []string{"Avoid prolonged outdoor activities", "Keep children indoors during rush hours"},
			specific:  []string{"Suspend outdoor physical education", "Move recess indoors"},
			immediate: []string{"Close classroom windows facing traffic", "Activate air purifiers where available"},
		},
		tempo.QualityMuyMala: {
			general:   []string{"Keep children indoors", "Seek medical advice if breathing difficulties appear"},
			specific:  []string{"Cancel all outdoor school activities", "Screen students for respiratory symptoms"},
			immediate: []string{"Seal windows and doors", "Notify parents about pickup precautions"},
		},
	},
	PersonaElderly: {
		tempo.QualityBuena: {
			general:   []string{"Good conditions for outdoor walks", "Enjoy parks during morning hours"},
			specific:  []string{"Normal outdoor exercise is safe", "Keep your routine medication schedule"},
			immediate: []string{"No special measures needed", "Stay hydrated as usual"},
		},
		tempo.QualityModerada: {
			general:   []string{"Prefer morning hours for errands", "Avoid walking along heavy-traffic avenues"},
			specific:  []string{"Limit outdoor time to short periods", "Keep respiratory medication at hand"},
			immediate: []string{"Monitor for shortness of breath", "Plan indoor alternatives for exercise"},
		},
		tempo.QualityMala: {
			general:   []string{"Avoid non-essential outings", "Exercise indoors only"},
			specific:  []string{"Stay indoors with windows closed", "Have emergency contacts ready"},
			immediate: []string{"Check on elderly neighbors living alone", "Use masks for unavoidable trips"},
		},
		tempo.QualityMuyMala: {
			general:   []string{"Do not leave home unless essential", "Contact a doctor at the first respiratory symptom"},
			specific:  []string{"Remain indoors with filtered air if possible", "Postpone medical visits that can wait"},
			immediate: []string{"Arrange delivery of medication and groceries", "Keep rescue inhalers within reach"},
		},
	},
	PersonaAdults: {
		tempo.QualityBuena: {
			general:   []string{"Air quality is good for all activities", "Great conditions for outdoor exercise"},
			specific:  []string{"No restrictions on commuting or sport", "Cycling and running are safe"},
			immediate: []string{"No special measures needed", "Keep up normal routines"},
		},
		tempo.QualityModerada: {
			general:   []string{"Reduce intense outdoor workouts", "Prefer routes away from heavy traffic"},
			specific:  []string{"Shift runs to early morning", "Consider indoor training on high-traffic days"},
			immediate: []string{"Monitor symptoms during exercise", "Carry water and take breaks"},
		},
		tempo.QualityMala: {
			general:   []string{"Avoid outdoor exercise", "Telework if your employer allows it"},
			specific:  []string{"Use public transport instead of walking along avenues", "Wear a mask during unavoidable commutes"},
			immediate: []string{"Keep windows closed at home and in the car", "Reschedule outdoor plans"},
		},
		tempo.QualityMuyMala: {
			general:   []string{"Stay indoors as much as possible", "Avoid all physical exertion outdoors"},
			specific:  []string{"Work from home if at all possible", "Seal gaps around windows and doors"},
			immediate: []string{"Run air purifiers on a high setting", "Watch household members for symptoms"},
		},
	},
	PersonaAsthmatics: {
		tempo.QualityBuena: {
			general:   []string{"Conditions are stable for outdoor activity", "Carry your inhaler as usual"},
			specific:  []string{"Normal activity with routine medication", "Good day for prescribed exercise"},
			immediate: []string{"No special measures needed", "Keep your rescue inhaler accessible"},
		},
		tempo.QualityModerada: {
			general:   []string{"Limit exposure near busy roads", "Shorten outdoor activities"},
			specific:  []string{"Pre-medicate before exertion if prescribed", "Track peak-flow readings today"},
			immediate: []string{"Keep your rescue inhaler within reach", "Avoid known personal triggers"},
		},
		tempo.QualityMala: {
			general:   []string{"Stay indoors with windows closed", "Avoid all outdoor exertion"},
			specific:  []string{"Follow your asthma action plan", "Adjust controller medication only per plan"},
			immediate: []string{"Keep rescue medication next to you", "Seek care if symptoms do not subside"},
		},
		tempo.QualityMuyMala: {
			general:   []string{"Do not go outdoors", "Treat any symptom as urgent"},
			specific:  []string{"Activate the severe stage of your action plan", "Alert a companion about your condition"},
			immediate: []string{"Call emergency services if the inhaler does not relieve symptoms", "Move to a filtered-air room if available"},
		},
	},
	PersonaOutdoorWorkers: {
		tempo.QualityBuena: {
			general:   []string{"Normal work conditions", "Standard breaks are sufficient"},
			specific:  []string{"No respiratory protection required", "Keep hydration at regular intervals"},
			immediate: []string{"No special measures needed", "Report any unusual smoke or dust"},
		},
		tempo.QualityModerada: {
			general:   []string{"Schedule heavy tasks for early morning", "Increase break frequency"},
			specific:  []string{"Rotate crews on strenuous tasks", "Provide masks for sensitive workers"},
			immediate: []string{"Watch for dizziness or coughing in the crew", "Move breaks away from traffic"},
		},
		tempo.QualityMala: {
			general:   []string{"Minimize outdoor shift length", "Use respiratory protection"},
			specific:  []string{"Require N95-class masks for road crews", "Double break time in ventilated areas"},
			immediate: []string{"Suspend non-urgent outdoor tasks", "Report symptoms to the site supervisor"},
		},
		tempo.QualityMuyMala: {
			general:   []string{"Suspend outdoor work where possible", "Only safety-critical tasks should continue"},
			specific:  []string{"Limit exposure to short monitored intervals", "Provide filtered rest areas"},
			immediate: []string{"Stop work for anyone with symptoms", "Document exposure time per worker"},
		},
	},
	PersonaSchools: {
		tempo.QualityBuena: {
			general:   []string{"Full outdoor schedule is safe", "Air out classrooms during the day"},
			specific:  []string{"Hold physical education outdoors", "Plan field trips normally"},
			immediate: []string{"No special measures needed", "Keep the air-quality board updated"},
		},
		tempo.QualityModerada: {
			general:   []string{"Shorten outdoor periods", "Keep sensitive students indoors"},
			specific:  []string{"Move intense sports indoors", "Check students with asthma before recess"},
			immediate: []string{"Prepare indoor recess spaces", "Inform teachers of the current level"},
		},
		tempo.QualityMala: {
			general:   []string{"Suspend outdoor physical education", "Keep students indoors during recess"},
			specific:  []string{"Activate classroom air purification", "Close windows facing traffic"},
			immediate: []string{"Notify families of restrictions", "Postpone outdoor events"},
		},
		tempo.QualityMuyMala: {
			general:   []string{"Keep all activities indoors", "Consider shortened schedules"},
			specific:  []string{"Seal classrooms and run purifiers", "Screen students for respiratory distress"},
			immediate: []string{"Coordinate early pickup with families", "Escalate to the education authority"},
		},
	},
	PersonaHospitals: {
		tempo.QualityBuena: {
			general:   []string{"Normal operations", "Routine respiratory caseload expected"},
			specific:  []string{"Standard triage protocols apply", "Restock inhaler supplies as scheduled"},
			immediate: []string{"No special measures needed", "Maintain routine air-intake filtering"},
		},
		tempo.QualityModerada: {
			general:   []string{"Expect a mild rise in respiratory visits", "Brief triage staff on air conditions"},
			specific:  []string{"Review asthma medication inventory", "Prepare nebulization stations"},
			immediate: []string{"Flag incoming patients with respiratory history", "Verify oxygen supply levels"},
		},
		tempo.QualityMala: {
			general:   []string{"Prepare for increased respiratory admissions", "Reinforce emergency staffing"},
			specific:  []string{"Open additional nebulization capacity", "Pre-position respiratory specialists"},
			immediate: []string{"Alert staff about environmental conditions", "Activate surge protocols for ER intake"},
		},
		tempo.QualityMuyMala: {
			general:   []string{"Activate contingency plans for a respiratory surge", "Coordinate with nearby facilities"},
			specific:  []string{"Expand respiratory isolation capacity", "Defer elective procedures if needed"},
			immediate: []string{"Issue a staff-wide environmental alert", "Report caseload to public-health authorities"},
		},
	},
}
