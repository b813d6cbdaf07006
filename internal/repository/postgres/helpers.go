package postgres

// nullIfEmpty maps optional form fields to SQL NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
