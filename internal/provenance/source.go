package provenance

// Source is a loaded, immutable starting buffer. If a Source value exists,
// it is guaranteed to hold its original bytes untouched.
//
// Create a Source exclusively through LoadSource().
type Source struct {
	content []byte
}

// LoadSource copies buf and returns a ready-to-use Source.
func LoadSource(buf []byte) Source {
	content := make([]byte, len(buf))
	copy(content, buf)
	return Source{content: content}
}

// Content returns the original bytes this Source was loaded from.
func (s Source) Content() []byte {
	out := make([]byte, len(s.content))
	copy(out, s.content)
	return out
}
