package roster

// TeacherDutyLoad derives a teacher's duty counts from the slot log relative to (week, year).
//
// Only active slots of the teacher are counted. The month comparison uses the
// week start dates. LastDutyDate is the week start of the last matching slot in
// the order given, not the most recent by date.
func TeacherDutyLoad(teacherID string, slots []DutySlot, week, year int) TeacherDutyStats {
	stats := TeacherDutyStats{TeacherID: teacherID}

	current := WeekStart(week, year)

	var last *DutySlot
	for i := range slots {
		slot := &slots[i]
		if !slot.IsActive || slot.TeacherID != teacherID {
			continue
		}

		stats.TotalDuties++
		if slot.Week == week && slot.Year == year {
			stats.WeeklyDuties++
		}

		slotStart := WeekStart(slot.Week, slot.Year)
		if slotStart.Month() == current.Month() && slotStart.Year() == current.Year() {
			stats.MonthlyDuties++
		}

		last = slot
	}

	if last != nil {
		lastDate := WeekStart(last.Week, last.Year)
		stats.LastDutyDate = &lastDate
	}

	return stats
}
