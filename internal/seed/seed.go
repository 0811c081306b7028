// Package seed provides the demo dataset the hub ships with: the demo
// user template, the initial communities, sample bets, and the global
// leaderboard. There is no real backend behind the hub; this data
// stands in for one.
package seed

import (
	"context"
	"time"

	"github.com/betleague/sportsbet-hub/internal/model"
	"github.com/betleague/sportsbet-hub/internal/storage"
)

// DemoUser returns the demo user template used for auto-login and as
// the sign-in base
func DemoUser() model.User {
	return model.User{
		ID:     "user-8",
		Name:   "SportsBetKing",
		Email:  "sportsbetking@example.com",
		Avatar: "/avatars/sportsbetking.jpg",

		Level:   44,
		Points:  22670,
		Rank:    3,
		WinRate: 71,

		TotalBets:     76,
		ActiveBets:    12,
		Notifications: 5,

		JoinedCommunities: []model.CommunityID{"community-1", "community-3"},
		Badges: []model.Badge{
			{ID: "badge-5", Label: "Multi-Sport", Color: model.BadgeGreen},
			{ID: "badge-8", Label: "Veteran", Color: model.BadgeSilver},
		},

		Stats: model.Stats{
			ThisWeek: model.WindowStats{
				BetsPlaced: 8, BetsWon: 5, PointsEarned: 567, WinRate: 63,
			},
			ThisMonth: model.WindowStats{
				BetsPlaced: 23, BetsWon: 16, PointsEarned: 1890, WinRate: 70,
			},
			AllTime: model.AllTimeStats{
				WindowStats: model.WindowStats{
					BetsPlaced: 76, BetsWon: 54, PointsEarned: 22670, WinRate: 71,
				},
				LongestStreak: 9,
				CurrentStreak: 5,
			},
		},
	}
}

// Communities returns the initial community set
func Communities() []*model.Community {
	return []*model.Community{
		{
			ID:          "community-1",
			Name:        "NBA Finals Fanatics",
			Description: "The ultimate destination for NBA championship betting and discussion.",
			Category:    model.CategoryNBA,

			MemberCount:   2547,
			ActiveMembers: 89,
			TotalBets:     1432,
			WinRate:       67,

			TopMembers: []model.MemberSummary{
				{ID: "user-1", Name: "CourtVision", Avatar: "/avatars/courtvision.jpg", Points: 15420},
				{ID: "user-2", Name: "DunkMaster", Avatar: "/avatars/dunkmaster.jpg", Points: 12890},
				{ID: "user-3", Name: "ThreePointKing", Avatar: "/avatars/threepointking.jpg", Points: 11650},
			},
			RecentActivity: "3 new bets created in the last hour",
		},
		{
			ID:          "community-2",
			Name:        "NFL RedZone Warriors",
			Description: "Sunday football betting community focused on RedZone action and touchdown props.",
			Category:    model.CategoryNFL,

			MemberCount:   3821,
			ActiveMembers: 127,
			TotalBets:     2108,
			WinRate:       58,

			TopMembers: []model.MemberSummary{
				{ID: "user-4", Name: "GridironGuru", Avatar: "/avatars/gridironguru.jpg", Points: 18930},
				{ID: "user-5", Name: "TouchdownTitan", Avatar: "/avatars/touchdowntitan.jpg", Points: 16750},
			},
			RecentActivity: "GameWinner just won 2,500 points on Chiefs vs Bills over/under",
		},
		{
			ID:          "community-3",
			Name:        "Baseball Diamond Bets",
			Description: "America's pastime meets modern betting. World Series predictions and MVP races.",
			Category:    model.CategoryMLB,

			MemberCount:   1876,
			ActiveMembers: 52,
			TotalBets:     987,
			WinRate:       61,

			TopMembers: []model.MemberSummary{
				{ID: "user-6", Name: "HomeRunHero", Avatar: "/avatars/homerrunhero.jpg", Points: 9870},
			},
			RecentActivity: "New World Series prediction bet opened",
		},
		{
			ID:          "community-4",
			Name:        "Hockey Puck Predictions",
			Description: "Ice-cold takes and red-hot betting opportunities for hockey fans.",
			Category:    model.CategoryNHL,

			MemberCount:   1245,
			ActiveMembers: 31,
			TotalBets:     654,
			WinRate:       55,

			TopMembers: []model.MemberSummary{
				{ID: "user-7", Name: "PuckMaster", Avatar: "/avatars/puckmaster.jpg", Points: 7650},
			},
			RecentActivity: "IceBreaker predicted correct playoff upset",
		},
	}
}

// Bets returns the initial sample bets
func Bets() []*model.Bet {
	return []*model.Bet{
		{
			ID:          "bet-1",
			Title:       "Lakers vs Warriors - Who Wins Game 7?",
			Description: "The ultimate showdown between two Western Conference powerhouses. Winner takes all!",
			Category:    model.CategoryNBA,
			Creator:     model.BetCreator{ID: "user-1", Name: "CourtVision", Avatar: "/avatars/courtvision.jpg"},
			Status:      model.BetActive,
			EndDate:     time.Date(2025, 5, 15, 21, 0, 0, 0, time.UTC),

			Participants:    247,
			MaxParticipants: 500,
			PointsPool:      124350,
			Options: []model.BetOption{
				{ID: "option-1", Label: "Los Angeles Lakers", Participants: 142, Odds: "-110"},
				{ID: "option-2", Label: "Golden State Warriors", Participants: 105, Odds: "+105"},
			},
			UserChoice: "option-1",
		},
		{
			ID:          "bet-2",
			Title:       "NFL MVP 2025 Season Winner",
			Description: "Who will take home the Most Valuable Player award for the 2025 NFL season?",
			Category:    model.CategoryNFL,
			Creator:     model.BetCreator{ID: "user-4", Name: "GridironGuru", Avatar: "/avatars/gridironguru.jpg"},
			Status:      model.BetActive,
			EndDate:     time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),

			Participants: 1834,
			PointsPool:   918700,
			Options: []model.BetOption{
				{ID: "option-3", Label: "Josh Allen (Bills)", Participants: 487, Odds: "+350"},
				{ID: "option-4", Label: "Patrick Mahomes (Chiefs)", Participants: 623, Odds: "+280"},
				{ID: "option-5", Label: "Lamar Jackson (Ravens)", Participants: 312, Odds: "+450"},
				{ID: "option-6", Label: "Other Quarterback", Participants: 412, Odds: "+600"},
			},
		},
		{
			ID:          "bet-3",
			Title:       "World Series 2025 Champion",
			Description: "Which team will hoist the Commissioner's Trophy in October?",
			Category:    model.CategoryMLB,
			Creator:     model.BetCreator{ID: "user-6", Name: "HomeRunHero", Avatar: "/avatars/homerrunhero.jpg"},
			Status:      model.BetActive,
			EndDate:     time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),

			Participants: 567,
			PointsPool:   283500,
			Options: []model.BetOption{
				{ID: "option-7", Label: "Los Angeles Dodgers", Participants: 89, Odds: "+400"},
				{ID: "option-8", Label: "New York Yankees", Participants: 102, Odds: "+380"},
				{ID: "option-9", Label: "Field (any other team)", Participants: 376, Odds: "+150"},
			},
		},
	}
}

// Leaderboard returns the initial global standings
func Leaderboard() []model.LeaderboardEntry {
	return []model.LeaderboardEntry{
		{
			UserID: "user-1", Name: "CourtVision", Avatar: "/avatars/courtvision.jpg", Level: 47,
			Rank: 1, Points: 25890, WeeklyChange: 1240, WinRate: 73, TotalBets: 89, Streak: 7,
			Badges: []model.Badge{
				{ID: "badge-1", Label: "NBA Expert", Color: model.BadgeGold},
				{ID: "badge-2", Label: "Hot Streak", Color: model.BadgeRed},
			},
		},
		{
			UserID: "user-4", Name: "GridironGuru", Avatar: "/avatars/gridironguru.jpg", Level: 52,
			Rank: 2, Points: 24150, WeeklyChange: 890, WinRate: 68, TotalBets: 134, Streak: 4,
			Badges: []model.Badge{
				{ID: "badge-3", Label: "NFL Master", Color: model.BadgeGold},
				{ID: "badge-4", Label: "Consistent", Color: model.BadgeBlue},
			},
		},
		{
			UserID: "user-8", Name: "SportsBetKing", Avatar: "/avatars/sportsbetking.jpg", Level: 44,
			Rank: 3, Points: 22670, WeeklyChange: 567, WinRate: 71, TotalBets: 76, Streak: 5,
			Badges: []model.Badge{
				{ID: "badge-5", Label: "Multi-Sport", Color: model.BadgeGreen},
			},
			IsCurrentUser: true,
		},
		{
			UserID: "user-2", Name: "DunkMaster", Avatar: "/avatars/dunkmaster.jpg", Level: 39,
			Rank: 4, Points: 12890, WeeklyChange: -120, WinRate: 64, TotalBets: 58, Streak: 0,
		},
		{
			UserID: "user-6", Name: "HomeRunHero", Avatar: "/avatars/homerrunhero.jpg", Level: 33,
			Rank: 5, Points: 9870, WeeklyChange: 210, WinRate: 59, TotalBets: 41, Streak: 2,
		},
	}
}

// Apply writes the full demo dataset to storage. The session slot is
// left untouched; demo auto-login is the session manager's decision.
func Apply(ctx context.Context, store storage.Storage) error {
	for _, community := range Communities() {
		if err := store.SaveCommunity(ctx, community); err != nil {
			return err
		}
	}
	for _, bet := range Bets() {
		if err := store.SaveBet(ctx, bet); err != nil {
			return err
		}
	}
	return store.SaveLeaderboard(ctx, Leaderboard())
}
