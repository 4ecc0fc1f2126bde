package resolver

import "fmt"

// ensureExists validates a mandatory singular asset reference. Unlike
// an empty glob, absence here is fatal to the whole resolution call.
func (s *session) ensureExists(path string) error {
	ok, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("check %q: %w", path, err)
	}
	if !ok {
		return NewMissingFileError(path)
	}
	return nil
}
