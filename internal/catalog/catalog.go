// Package catalog holds the closed value sets a game record may carry.
// Both request validation and the schema bootstrap consult these, so the
// sets exist exactly once.
package catalog

// Genres lists every genre a game may be filed under.
var Genres = []string{
	"Action",
	"Adventure",
	"RPG",
	"Strategy",
	"Simulation",
	"Sports",
	"Racing",
	"Puzzle",
	"Fighting",
	"Platformer",
	"Shooter",
	"Other",
}

// Platforms lists every platform a game may be released on.
var Platforms = []string{
	"PC",
	"Xbox",
	"PlayStation",
	"Switch",
	"Mobile",
	"Other",
}

var (
	genreSet    = toSet(Genres)
	platformSet = toSet(Platforms)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ValidGenre reports whether s is a member of Genres.
func ValidGenre(s string) bool {
	_, ok := genreSet[s]
	return ok
}

// ValidPlatform reports whether s is a member of Platforms.
func ValidPlatform(s string) bool {
	_, ok := platformSet[s]
	return ok
}
