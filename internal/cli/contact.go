package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/folio/backend/internal/contactform"
)

func createContactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Contact form commands",
	}
	cmd.AddCommand(createContactSendCmd(a))
	return cmd
}

func createContactSendCmd(a *app) *cobra.Command {
	var (
		form     contactform.Form
		simulate bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a message through the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if simulate && a.isProduction() {
				return errors.New("--simulate is not allowed when APP_ENV=production")
			}
			s, err := contactform.NewSubmitter(contactform.Config{
				BaseURL:  a.apiURL(),
				Timeout:  a.timeout(),
				Simulate: simulate,
			})
			if err != nil {
				return err
			}

			out, err := s.Submit(cmd.Context(), &form)
			w := cmd.OutOrStdout()
			switch out.Status {
			case contactform.StatusSuccess:
				fmt.Fprintln(w, out.Message)
				if out.Contact != nil {
					fmt.Fprintf(w, "id: %d\n", out.Contact.ID)
				}
				if out.Simulated {
					fmt.Fprintln(w, "(simulated, nothing was sent)")
				}
				return nil
			case contactform.StatusInvalid:
				printFieldErrors(cmd, out.FieldErrors)
				return errors.New(out.Message)
			default:
				printFieldErrors(cmd, out.FieldErrors)
				fmt.Fprintln(cmd.ErrOrStderr(), out.Message)
				return err
			}
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "your email address")
	cmd.Flags().StringVar(&form.Message, "message", "", "the message")
	cmd.Flags().BoolVar(&simulate, "simulate", false, "report success without sending (development only)")

	return cmd
}

func printFieldErrors(cmd *cobra.Command, fe contactform.FieldErrors) {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f, fe[f])
	}
}
