package pkguid

// StringID generates identifiers that travel as text, such as the
// correlation id echoed in X-Correlation-ID.
type StringID interface {
	Generate() string
}

// NumberID generates sortable numeric identifiers, such as note ids.
type NumberID interface {
	Generate() int64
}
