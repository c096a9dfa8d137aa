package model

// ListingEntry is one line of a suite listing. Directory entries carry a
// readme; spec file entries carry none.
type ListingEntry struct {
	File   []string `json:"file" yaml:"file"`
	Readme string   `json:"readme,omitempty" yaml:"readme,omitempty"`
}

// IsReadme reports whether the entry describes a directory.
func (e ListingEntry) IsReadme() bool {
	return e.Readme != ""
}

// Expectation is the declared outcome of the cases under a query.
type Expectation string

// Expectations.
const (
	ExpectPass Expectation = "pass"
	ExpectFail Expectation = "fail"
	ExpectSkip Expectation = "skip"
)

// Valid reports whether e is a known expectation.
func (e Expectation) Valid() bool {
	switch e {
	case ExpectPass, ExpectFail, ExpectSkip:
		return true
	default:
		return false
	}
}

// QueryExpectation binds an expectation to a query string.
type QueryExpectation struct {
	Query       string      `json:"query" yaml:"query" msgpack:"query"`
	Expectation Expectation `json:"expectation" yaml:"expectation" msgpack:"expectation"`
}
