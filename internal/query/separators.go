package query

// Reserved characters of the query grammar.
const (
	BigSeparator     = ":"
	PathSeparator    = ","
	ParamSeparator   = ";"
	ParamKVSeparator = "="
	Wildcard         = "*"
	ReservedPercent  = "%"
)

// legacyCaseWildcard is accepted in place of ";*" at the end of a params part.
const legacyCaseWildcard = PathSeparator + Wildcard
