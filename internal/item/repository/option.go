package repository

// ListSamplesOptions holds pagination parameters for listing samples.
// Offsets past the end yield an empty page.
type ListSamplesOptions struct {
	Offset int
	Limit  int
}
