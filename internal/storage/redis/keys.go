package redis

import (
	"fmt"

	"github.com/betleague/sportsbet-hub/internal/model"
)

// Key prefix for all hub data
const keyPrefix = "sbhub"

// sessionKey returns the Redis key for the single persisted session
// slot. One logical session per deployment, mirroring the browser
// local-storage slot this replaces.
func sessionKey() string {
	return fmt.Sprintf("%s:session:user", keyPrefix)
}

// credentialsKey returns the Redis key for a Credentials record,
// indexed by email
func credentialsKey(email string) string {
	return fmt.Sprintf("%s:credentials:%s", keyPrefix, email)
}

// communityKey returns the Redis key for a Community
func communityKey(id model.CommunityID) string {
	return fmt.Sprintf("%s:community:%s", keyPrefix, id)
}

// communityIndexKey returns the Redis key for the SET of community keys
func communityIndexKey() string {
	return fmt.Sprintf("%s:idx:communities", keyPrefix)
}

// betKey returns the Redis key for a Bet
func betKey(id model.BetID) string {
	return fmt.Sprintf("%s:bet:%s", keyPrefix, id)
}

// betIndexKey returns the Redis key for the SET of bet keys
func betIndexKey() string {
	return fmt.Sprintf("%s:idx:bets", keyPrefix)
}

// outcomesKey returns the Redis key for a user's chronological outcome
// LIST
func outcomesKey(userID model.UserID) string {
	return fmt.Sprintf("%s:outcomes:%s", keyPrefix, userID)
}

// leaderboardKey returns the Redis key for the serialized leaderboard
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}
