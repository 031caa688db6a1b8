package player

// SelectInitial resolves the lecture to show when the player opens.
//
// requestedID is a caller-supplied hint (usually a URL query parameter). It
// is honored only for enrolled viewers, and only when it resolves inside the
// filtered tree. A non-enrolled viewer always gets the tree's single preview
// lecture: a crafted deep link must never steer an unenrolled viewer to a
// different lecture.
//
// Returns 0 when the tree has no lectures at all.
func SelectInitial(tree *ContentTree, st EnrollmentState, requestedID uint) uint {
	if tree == nil {
		return 0
	}

	if !st.Enrolled {
		if lec := tree.FirstPreview(); lec != nil {
			return lec.ID
		}
		return 0
	}

	if requestedID != 0 {
		if lec := tree.Find(requestedID); lec != nil {
			return lec.ID
		}
	}

	if lec := tree.First(); lec != nil {
		return lec.ID
	}
	return 0
}
