package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio/backend/internal/admin"
)

func createAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Review received contact messages",
	}
	cmd.AddCommand(createAdminListCmd(a))
	cmd.AddCommand(createAdminReplyCmd(a))
	return cmd
}

func (a *app) newView() *admin.View {
	return admin.NewView(admin.NewClient(a.apiURL(), a.adminToken(), a.timeout()))
}

func createAdminListCmd(a *app) *cobra.Command {
	var (
		query string
		watch time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List received messages with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.newView()
			v.SetQuery(query)
			if err := v.Refresh(cmd.Context()); err != nil {
				return err
			}
			if err := admin.Render(cmd.OutOrStdout(), v, time.Now()); err != nil {
				return err
			}
			if watch <= 0 {
				return nil
			}
			return watchLoop(cmd.Context(), watch, func(ctx context.Context) error {
				if err := v.Refresh(ctx); err != nil {
					// Keep showing the last good list.
					slog.WarnContext(ctx, "refresh failed", "error", err)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return admin.Render(cmd.OutOrStdout(), v, time.Now())
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only show messages whose name, email or text contains this")
	cmd.Flags().DurationVar(&watch, "watch", 0, "refresh at this interval until interrupted (e.g. 30s)")

	return cmd
}

// watchLoop calls tick every interval until ctx is done.
func watchLoop(ctx context.Context, interval time.Duration, tick func(context.Context) error) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := tick(ctx); err != nil {
				return err
			}
		}
	}
}

func createAdminReplyCmd(a *app) *cobra.Command {
	var emailOnly bool

	cmd := &cobra.Command{
		Use:   "reply <id>",
		Short: "Print a mailto: link for replying to a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			v := a.newView()
			if err := v.Refresh(cmd.Context()); err != nil {
				return err
			}
			msg, ok := v.Find(id)
			if !ok {
				return fmt.Errorf("no message with id %d", id)
			}
			if emailOnly {
				fmt.Fprintln(cmd.OutOrStdout(), msg.Email)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), admin.ReplyLink(msg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&emailOnly, "email-only", false, "print just the sender's address, e.g. for the clipboard")

	return cmd
}
