package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/api"
)

func newLoginCommand(a *app) *cobra.Command {
	var password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in to the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.client.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := a.tokens.Set(token.AccessToken, remember); err != nil {
				return err
			}
			user, err := a.client.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", user.Email)
			if !remember {
				fmt.Println("Token held for this invocation only; pass --remember to persist it.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("password")
	cmd.Flags().BoolVar(&remember, "remember", true, "persist the token across invocations")

	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.tokens.Token() == "" {
				fmt.Println("Not logged in (guest).")
				return nil
			}
			user, err := a.client.Me(cmd.Context())
			if err != nil {
				if api.IsUnauthorized(err) {
					if clearErr := a.tokens.Clear(); clearErr != nil {
						return clearErr
					}
					fmt.Println("Session expired; token discarded.")
					return nil
				}
				return err
			}
			fmt.Printf("Logged in as %s (id %d)\n", user.Email, user.ID)
			return nil
		},
	}
}

// Registration is a three-step flow: start emails an OTP, verify exchanges
// it for a short-lived token, set-password completes the account.
func newRegisterCommand(a *app) *cobra.Command {
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Account registration flow",
	}
	registerCmd.AddCommand(newRegisterStartCommand(a))
	registerCmd.AddCommand(newRegisterVerifyCommand(a))
	registerCmd.AddCommand(newRegisterResendCommand(a))
	registerCmd.AddCommand(newRegisterPasswordCommand(a))
	return registerCmd
}

func newRegisterStartCommand(a *app) *cobra.Command {
	var params api.RegisterParams

	cmd := &cobra.Command{
		Use:   "start <email>",
		Short: "Begin registration; the server emails an OTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Email = args[0]
			if err := a.client.RegisterStart(cmd.Context(), params); err != nil {
				return err
			}
			fmt.Printf("OTP sent to %s. Continue with \"pocketfin register verify\".\n", params.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&params.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&params.Phone, "phone", "", "phone number")

	return cmd
}

func newRegisterVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <email> <code>",
		Short: "Verify the emailed OTP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.VerifyOTP(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println("Email verified. Finish with:")
			fmt.Printf("  pocketfin register set-password %s <password>\n", result.RegistrationToken)
			return nil
		},
	}
}

func newRegisterResendCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resend <email>",
		Short: "Re-send the registration OTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.ResendOTP(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("OTP re-sent.")
			return nil
		},
	}
}

func newRegisterPasswordCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-password <registration-token> <password>",
		Short: "Set the password and complete registration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.SetPassword(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Account created. You can log in now.")
			return nil
		},
	}
}

func newResetPasswordCommand(a *app) *cobra.Command {
	resetCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Password reset flow",
	}

	resetCmd.AddCommand(&cobra.Command{
		Use:   "start <email>",
		Short: "Begin the reset; the server emails an OTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.ResetStart(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Reset OTP sent.")
			return nil
		},
	})
	resetCmd.AddCommand(&cobra.Command{
		Use:   "verify <email> <code>",
		Short: "Verify the reset OTP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.ResetVerify(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println("Code verified. Finish with:")
			fmt.Printf("  pocketfin reset-password confirm %s <new-password>\n", result.ResetToken)
			return nil
		},
	})
	resetCmd.AddCommand(&cobra.Command{
		Use:   "confirm <reset-token> <new-password>",
		Short: "Set the new password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.ResetConfirm(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("Password updated.")
			return nil
		},
	})

	return resetCmd
}
