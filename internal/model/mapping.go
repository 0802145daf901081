package model

// MappingEntry is one row of the reference mapping table that assigns a GL
// account to its statutory categories. Either GLCode or Description may be
// empty (entries with only a description participate in the fallback join),
// but the three category labels are always present.
type MappingEntry struct {
	GLCode        string
	Description   string
	CategoryBSPL  string
	CategoryMajor string
	CategoryMinor string
}
