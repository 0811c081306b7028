package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommunityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Community membership commands",
	}

	cmd.AddCommand(newCommunityListCmd())
	cmd.AddCommand(newCommunityGetCmd())
	cmd.AddCommand(newCommunityJoinCmd())
	cmd.AddCommand(newCommunityLeaveCmd())

	return cmd
}

func newCommunityListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all communities",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CommunityList

			if err := client.Get("/api/v1/communities", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCommunityGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get community details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result Community

			if err := client.Get(fmt.Sprintf("/api/v1/communities/%s", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCommunityJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <id>",
		Short: "Join a community",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			var result Community

			if err := client.Post(fmt.Sprintf("/api/v1/communities/%s/join", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCommunityLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <id>",
		Short: "Leave a community",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Post(fmt.Sprintf("/api/v1/communities/%s/leave", id), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Left community %s", id))
			return nil
		},
	}
}
