package player

// EnrollmentState is derived exactly once per content load, from the
// server's enrollment object. It is never reconstructed from anything the
// client controls (URL parameters, cached component state).
type EnrollmentState struct {
	Enrolled        bool
	EnrollmentID    uint
	ProgressPercent float64
}

// EnrollmentInfo is the enrollment object as the content endpoint returns
// it. A nil value or a zero id means the viewer is not enrolled.
type EnrollmentInfo struct {
	ID              uint    `json:"id"`
	Status          string  `json:"status"`
	ProgressPercent float64 `json:"progress_percent"`
}

// EnrollmentFromPayload derives the session's EnrollmentState from the
// server payload.
func EnrollmentFromPayload(info *EnrollmentInfo) EnrollmentState {
	if info == nil || info.ID == 0 {
		return EnrollmentState{}
	}
	return EnrollmentState{
		Enrolled:        true,
		EnrollmentID:    info.ID,
		ProgressPercent: info.ProgressPercent,
	}
}

// CanAccess is the single accessibility predicate. Every component that
// needs an access decision goes through it; nothing else is allowed to
// decide on its own.
func CanAccess(lec *Lecture, st EnrollmentState) bool {
	if lec == nil {
		return false
	}
	return st.Enrolled || lec.IsPreview
}

// FilterForViewer produces the tree the viewer is allowed to see.
//
// Enrolled viewers get the tree unchanged. Non-enrolled viewers get a
// synthetic single-section tree holding only the FIRST preview lecture in
// section/lecture order - at most one lecture no matter how many previews
// the backend flagged - or an empty tree when none exists. Collapsing to one
// lecture keeps the unenrolled surface minimal: nothing gated is ever
// present in the structure handed to selection or navigation.
func FilterForViewer(tree *ContentTree, st EnrollmentState) *ContentTree {
	if tree == nil {
		return &ContentTree{}
	}
	if st.Enrolled {
		return tree
	}

	for _, s := range tree.Sections {
		for _, lec := range s.Lectures {
			if lec.IsPreview {
				return &ContentTree{
					CourseID: tree.CourseID,
					Sections: []Section{{
						ID:            s.ID,
						Title:         s.Title,
						Order:         s.Order,
						Lectures:      []Lecture{lec},
						TotalLectures: 1,
					}},
				}
			}
		}
	}

	return &ContentTree{CourseID: tree.CourseID}
}
