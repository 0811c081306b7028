package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionResult:
		o.printSession(v)
	case UserResult:
		o.printUser(v.User)
	case CommunityList:
		o.printCommunities(v.Communities)
	case Community:
		o.printCommunity(v)
	case BetList:
		o.printBets(v.Bets)
	case Bet:
		o.printBet(v)
	case LeaderboardResult:
		o.printLeaderboard(v.Entries)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SessionResult is the session snapshot response type
type SessionResult struct {
	Status  string `json:"status"`
	User    *User  `json:"user,omitempty"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// UserResult wraps a user record
type UserResult struct {
	User User `json:"user"`
}

// User response type (matches API)
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Level   int    `json:"level"`
	Points  int    `json:"points"`
	Rank    int    `json:"rank"`
	WinRate int    `json:"win_rate"`

	TotalBets  int `json:"total_bets"`
	ActiveBets int `json:"active_bets"`

	JoinedCommunities []string `json:"joined_communities"`
}

// Community response type
type Community struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	MemberCount int    `json:"member_count"`
	TotalBets   int    `json:"total_bets"`
	WinRate     int    `json:"win_rate"`
}

// CommunityList wraps a list of communities
type CommunityList struct {
	Communities []Community `json:"communities"`
}

// BetOption response type
type BetOption struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Participants int    `json:"participants"`
	Odds         string `json:"odds,omitempty"`
}

// Bet response type
type Bet struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Category     string      `json:"category"`
	Status       string      `json:"status"`
	EndDate      time.Time   `json:"end_date"`
	Participants int         `json:"participants"`
	PointsPool   int         `json:"points_pool"`
	Options      []BetOption `json:"options"`
	UserChoice   string      `json:"user_choice,omitempty"`
}

// BetList wraps a list of bets
type BetList struct {
	Bets []Bet `json:"bets"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	Points        int    `json:"points"`
	WinRate       int    `json:"win_rate"`
	Streak        int    `json:"streak"`
	IsCurrentUser bool   `json:"is_current_user,omitempty"`
}

// LeaderboardResult wraps the standings
type LeaderboardResult struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// HealthResult is the health check response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s SessionResult) {
	fmt.Printf("Status: %s\n", s.Status)
	if s.Error != "" {
		fmt.Printf("Error: %s\n", s.Error)
	}
	if s.User != nil {
		fmt.Println()
		o.printUser(*s.User)
	}
}

func (o *Output) printUser(u User) {
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
	fmt.Printf("  Level %d | %d points | rank #%d | %d%% win rate\n",
		u.Level, u.Points, u.Rank, u.WinRate)
	fmt.Printf("  Bets: %d total, %d active\n", u.TotalBets, u.ActiveBets)
	if len(u.JoinedCommunities) > 0 {
		fmt.Printf("  Communities: %s\n", strings.Join(u.JoinedCommunities, ", "))
	}
}

func (o *Output) printCommunities(communities []Community) {
	for i, c := range communities {
		if i > 0 {
			fmt.Println()
		}
		o.printCommunity(c)
	}
}

func (o *Output) printCommunity(c Community) {
	fmt.Printf("%s (%s) [%s]\n", c.Name, c.ID, c.Category)
	fmt.Printf("  %d members | %d bets | %d%% win rate\n",
		c.MemberCount, c.TotalBets, c.WinRate)
}

func (o *Output) printBets(bets []Bet) {
	for i, b := range bets {
		if i > 0 {
			fmt.Println()
		}
		o.printBet(b)
	}
}

func (o *Output) printBet(b Bet) {
	fmt.Printf("%s (%s) [%s, %s]\n", b.Title, b.ID, b.Category, b.Status)
	fmt.Printf("  %d participants | %d point pool | ends %s\n",
		b.Participants, b.PointsPool, b.EndDate.Format(time.RFC3339))
	for _, opt := range b.Options {
		marker := " "
		if b.UserChoice == opt.ID {
			marker = "*"
		}
		fmt.Printf("  %s %s (%s): %d picks %s\n",
			marker, opt.Label, opt.ID, opt.Participants, opt.Odds)
	}
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	for _, e := range entries {
		marker := " "
		if e.IsCurrentUser {
			marker = "*"
		}
		fmt.Printf("%s #%-3d %-20s lvl %-3d %7d pts  %d%% wr  streak %d\n",
			marker, e.Rank, e.Name, e.Level, e.Points, e.WinRate, e.Streak)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Server status: %s\n", h.Status)
}
