package scheduling

// SelectAssignee picks the candidate with the smallest day load.
// Ties go to the lowest StaffID so the choice does not depend on input order.
func SelectAssignee(candidates []Candidate) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, ErrNoCandidates
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.DayLoad < best.DayLoad || (c.DayLoad == best.DayLoad && c.StaffID < best.StaffID) {
			best = c
		}
	}

	return best, nil
}
