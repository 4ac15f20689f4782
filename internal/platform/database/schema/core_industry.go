package schema

// RefIndustryTable represents the 'core.industry' table
type RefIndustryTable struct {
	Table string
	ID    string
	Value string
}

// RefIndustry is the schema definition for core.industry
var RefIndustry = RefIndustryTable{
	Table: "core.industry",
	ID:    "id",
	Value: "value",
}
