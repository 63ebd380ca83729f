// Place for pure domain logic that doesn't depend on Gin/GORM.
package core

import "strings"

// NormalizeNickname cleans a user-supplied nickname: trims surrounding
// whitespace and collapses internal runs of spaces. An empty result
// falls back to the species name, matching the admin add-pokemon
// behavior where an unnamed capture keeps its species name.
func NormalizeNickname(nick, species string) string {
	nick = strings.Join(strings.Fields(nick), " ")
	if nick == "" {
		return species
	}
	return nick
}
