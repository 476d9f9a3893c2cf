package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"fleetdesk/internal/contact"
)

var contactFlags struct {
	recipient  string
	suggestion bool
	open       bool
	msg        contact.Message
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Compose a message or suggestion in your mail client",
	Long: `Builds the email and hands it to your mail client as a mailto link.
Nothing is sent by fleetdesk itself; the message goes out only when you
send it from your mail client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := contact.VariantDefault
		if contactFlags.suggestion {
			variant = contact.VariantSuggestions
		}

		opener := contact.OpenerFunc(func(link string) error {
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		})
		if contactFlags.open {
			opener = openInMailClient
		}

		form := contact.NewForm(contactFlags.recipient, variant, opener)
		defer form.Close()

		if _, err := form.Submit(contactFlags.msg); err != nil {
			_, notice := form.Status()
			return fmt.Errorf("%s (%w)", notice, err)
		}
		_, notice := form.Status()
		fmt.Fprintln(cmd.ErrOrStderr(), notice)
		return nil
	},
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactFlags.recipient, "to", envOr("CONTACT_RECIPIENT", "support@fleetdesk.example"), "recipient address")
	f.BoolVar(&contactFlags.suggestion, "suggestion", false, "use the suggestion template")
	f.BoolVar(&contactFlags.open, "open", false, "open the link in the default mail client instead of printing it")
	f.StringVar(&contactFlags.msg.Name, "name", "", "your name")
	f.StringVar(&contactFlags.msg.Email, "email", "", "your email address")
	f.StringVar(&contactFlags.msg.Subject, "subject", "", "subject line")
	f.StringVarP(&contactFlags.msg.Message, "message", "m", "", "message text")
}

var openInMailClient = contact.OpenerFunc(func(link string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", link)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		c = exec.Command("xdg-open", link)
	}
	return c.Start()
})
