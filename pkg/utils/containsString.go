package utils

// ContainsString reports whether the slice carries the search term. Used for
// small lists only (roles, consent names, questionnaire options).
func ContainsString(slice []string, searchTerm string) bool {
	for _, s := range slice {
		if searchTerm == s {
			return true
		}
	}
	return false
}
