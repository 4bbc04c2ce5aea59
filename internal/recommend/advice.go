package recommend

// ThresholdAdvice builds the NO2-threshold guidance included in the dashboard
// payload's recommendations block. Group-specific lists are filled only when
// the group is present in the area's vulnerable groups. Texts are the wire
// values consumed by downstream dashboards and must not be reworded.
func ThresholdAdvice(no2 float64, vulnerableGroups []string) Bundle {
	advice := Bundle{
		General:          []string{},
		ForSchools:       []string{},
		ForElderly:       []string{},
		ForHealthCenters: []string{},
		ImmediateActions: []string{},
	}

	switch {
	case no2 > 80:
		advice.General = append(advice.General,
			"Evitar actividades al aire libre prolongadas",
			"Usar mascarilla en exteriores",
			"Mantener ventanas cerradas",
		)
		advice.ImmediateActions = append(advice.ImmediateActions,
			"Activar protocolos de calidad del aire",
		)
	case no2 > 50:
		advice.General = append(advice.General,
			"Limitar actividades físicas intensas al aire libre",
			"Monitorear síntomas respiratorios",
		)
	default:
		advice.General = append(advice.General,
			"Calidad del aire aceptable, tomar precauciones normales",
		)
	}

	groups := make(map[string]bool, len(vulnerableGroups))
	for _, g := range vulnerableGroups {
		groups[g] = true
	}

	if groups[string(PersonaSchools)] {
		switch {
		case no2 > 70:
			advice.ForSchools = append(advice.ForSchools,
				"Suspender educación física al aire libre",
				"Mantener estudiantes en interiores durante recreo",
				"Activar sistema de purificación de aire en aulas",
			)
		case no2 > 50:
			advice.ForSchools = append(advice.ForSchools,
				"Reducir tiempo de actividades al aire libre",
				"Monitorear estudiantes con asma o condiciones respiratorias",
			)
		}
	}

	if groups[string(PersonaElderly)] {
		switch {
		case no2 > 60:
			advice.ForElderly = append(advice.ForElderly,
				"Evitar salidas no esenciales",
				"Realizar ejercicios en interiores",
				"Monitorear síntomas respiratorios",
			)
		case no2 > 50:
			advice.ForElderly = append(advice.ForElderly,
				"Limitar tiempo al aire libre",
				"Tener medicamentos respiratorios a mano",
			)
		}
	}

	if groups[string(PersonaHospitals)] && no2 > 60 {
		advice.ForHealthCenters = append(advice.ForHealthCenters,
			"Prepararse para posible aumento de casos respiratorios",
			"Revisar inventario de medicamentos para asma",
			"Alertar personal sobre condiciones ambientales",
		)
	}

	return advice
}
