package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/chatbot"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/scratch"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newChatCommand(a *app) *cobra.Command {
	chatCmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the demo advisor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(a, cmd, strings.Join(args, " "))
		},
	}
	chatCmd.AddCommand(newChatHistoryCommand(a))
	chatCmd.AddCommand(newChatClearCommand(a))
	return chatCmd
}

func runChat(a *app, cmd *cobra.Command, prompt string) error {
	userKey := a.userKey(cmd.Context())
	a.applyPrefs(userKey)

	store := scratch.NewChatStore(a.dataDir)
	reply := chatbot.Reply(prompt)

	now := time.Now()
	if _, err := store.Upsert(userKey, model.ChatMessage{
		Role: model.RoleUser, Content: prompt, CreatedAt: now,
	}); err != nil {
		return err
	}
	if _, err := store.Upsert(userKey, model.ChatMessage{
		Role: model.RoleAssistant, Content: reply, CreatedAt: now.Add(time.Millisecond),
	}); err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func newChatHistoryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the chat thread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			a.applyPrefs(userKey)

			messages := scratch.NewChatStore(a.dataDir).List(userKey)
			if len(messages) == 0 {
				fmt.Println(ui.Muted().Render(chatbot.Greeting))
				return nil
			}
			// Stored newest-first; the thread reads oldest-first.
			for i := len(messages) - 1; i >= 0; i-- {
				msg := messages[i]
				who := ui.Accent().Render("you")
				if msg.Role == model.RoleAssistant {
					who = ui.Positive().Render("bot")
				}
				fmt.Printf("%s %s  %s\n", who, ui.Muted().Render(msg.CreatedAt.Format("15:04")), msg.Content)
			}
			return nil
		},
	}
}

func newChatClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the chat thread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			if err := scratch.NewChatStore(a.dataDir).Replace(userKey, nil); err != nil {
				return err
			}
			fmt.Println("Chat history cleared.")
			return nil
		},
	}
}
