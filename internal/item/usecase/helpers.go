package usecase

// nonEmpty drops empty optional strings, so "?q=" behaves like no q at all.
func (uc *implUseCase) nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
