package schema

// CoreCreatorTable represents the 'core.creator' table
type CoreCreatorTable struct {
	Table         string
	ID            string
	Username      string
	Nickname      string
	AvatarURL     string
	CountryID     string
	Visibility    string
	FollowerCount string
	ViewCount     string
	LikeCount     string
	CommentCount  string
	ShareCount    string
	CreatedAt     string
	UpdatedAt     string
}

// CoreCreator is the schema definition for core.creator
var CoreCreator = CoreCreatorTable{
	Table:         "core.creator",
	ID:            "id",
	Username:      "username",
	Nickname:      "nickname",
	AvatarURL:     "avatarurl",
	CountryID:     "countryid",
	Visibility:    "visibility",
	FollowerCount: "followercount",
	ViewCount:     "viewcount",
	LikeCount:     "likecount",
	CommentCount:  "commentcount",
	ShareCount:    "sharecount",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns the projected creator columns in scan order.
func (t CoreCreatorTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Nickname, t.AvatarURL, t.CountryID, t.Visibility, t.FollowerCount,
		t.ViewCount, t.LikeCount, t.CommentCount, t.ShareCount, t.CreatedAt, t.UpdatedAt,
	}
}
