package cli

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newBetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Bet creation and wagering commands",
	}

	cmd.AddCommand(newBetListCmd())
	cmd.AddCommand(newBetGetCmd())
	cmd.AddCommand(newBetCreateCmd())
	cmd.AddCommand(newBetWagerCmd())
	cmd.AddCommand(newBetOutcomeCmd())

	return cmd
}

func newBetListCmd() *cobra.Command {
	var category, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bets",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if category != "" {
				query.Set("category", category)
			}
			if status != "" {
				query.Set("status", status)
			}

			path := "/api/v1/bets"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var result BetList

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (nba, nfl, mlb, nhl, soccer, general)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active, closed, settled)")

	return cmd
}

func newBetGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get bet details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result Bet

			if err := client.Get(fmt.Sprintf("/api/v1/bets/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBetCreateCmd() *cobra.Command {
	var (
		title           string
		description     string
		category        string
		endDate         string
		maxParticipants int
		options         []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new bet",
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := time.Parse(time.RFC3339, endDate)
			if err != nil {
				return fmt.Errorf("invalid --end-date, expected RFC3339: %w", err)
			}

			opts := make([]map[string]string, 0, len(options))
			for _, o := range options {
				// "label" or "label:odds"
				label, odds, _ := strings.Cut(o, ":")
				opt := map[string]string{"label": label}
				if odds != "" {
					opt["odds"] = odds
				}
				opts = append(opts, opt)
			}

			req := map[string]any{
				"title":       title,
				"description": description,
				"category":    category,
				"end_date":    end,
				"options":     opts,
			}
			if maxParticipants > 0 {
				req["max_participants"] = maxParticipants
			}

			var result Bet

			if err := client.Post("/api/v1/bets", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Bet title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Bet description (required)")
	cmd.Flags().StringVar(&category, "category", "", "Bet category (required)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date, RFC3339 (required)")
	cmd.Flags().IntVar(&maxParticipants, "max-participants", 0, "Max participants (default: unlimited)")
	cmd.Flags().StringArrayVar(&options, "option", nil, "Bet option as label or label:odds (repeatable, at least 2)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("end-date")
	_ = cmd.MarkFlagRequired("option")

	return cmd
}

func newBetWagerCmd() *cobra.Command {
	var optionID string
	var amount int

	cmd := &cobra.Command{
		Use:   "wager <id>",
		Short: "Place a wager on a bet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			req := map[string]any{
				"option_id": optionID,
				"amount":    amount,
			}

			var result Bet

			if err := client.Post(fmt.Sprintf("/api/v1/bets/%s/wager", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&optionID, "option", "", "Option ID to back (required)")
	cmd.Flags().IntVar(&amount, "amount", 0, "Points to wager (required)")
	_ = cmd.MarkFlagRequired("option")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBetOutcomeCmd() *cobra.Command {
	var result string
	var pointsDelta int

	cmd := &cobra.Command{
		Use:   "outcome <id>",
		Short: "Record a bet outcome for the current user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			req := map[string]any{
				"bet_id":       id,
				"result":       result,
				"points_delta": pointsDelta,
			}

			var user UserResult

			if err := client.Post("/api/v1/outcomes", req, &user); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(user)
			return nil
		},
	}

	cmd.Flags().StringVar(&result, "result", "", "Outcome result: won, lost, pending (required)")
	cmd.Flags().IntVar(&pointsDelta, "points", 0, "Points delta for the outcome")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}
