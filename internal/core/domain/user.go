package domain

// User is a GitHub user profile.
type User struct {
	// Login is the GitHub username.
	Login string

	// Name is the display name, possibly empty.
	Name string

	// Bio is the profile bio, possibly empty.
	Bio string

	// Company is the profile company field, possibly empty.
	Company string

	// Location is the profile location field, possibly empty.
	Location string

	// AvatarURL is the avatar image URL.
	AvatarURL string

	// HTMLURL is the web URL of the profile.
	HTMLURL string

	// PublicRepos is the public repository count.
	PublicRepos int

	// Followers is the follower count.
	Followers int

	// Following is the following count.
	Following int
}
