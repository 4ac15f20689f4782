package schema

// CreatorIndustryTable represents the 'core.creatorindustry' junction table
type CreatorIndustryTable struct {
	Table      string
	CreatorID  string
	IndustryID string
}

// CreatorIndustry is the schema definition for core.creatorindustry
var CreatorIndustry = CreatorIndustryTable{
	Table:      "core.creatorindustry",
	CreatorID:  "creatorid",
	IndustryID: "industryid",
}
