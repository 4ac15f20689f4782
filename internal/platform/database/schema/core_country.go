package schema

// RefCountryTable represents the 'core.country' table
type RefCountryTable struct {
	Table string
	ID    string
	Value string
}

// RefCountry is the schema definition for core.country
var RefCountry = RefCountryTable{
	Table: "core.country",
	ID:    "id",
	Value: "value",
}
