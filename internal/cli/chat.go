package cli

import (
	"fmt"
	"strings"

	"github.com/ariseapp/arise/internal/assistant"
)

type ChatCmd struct {
	Send    ChatSendCmd    `cmd:"" default:"withargs" help:"Send a message to the assistant."`
	History ChatHistoryCmd `cmd:"" help:"Show the conversation history."`
}

type ChatSendCmd struct {
	Message []string `arg:"" help:"Message for the assistant."`
}

func (c *ChatSendCmd) Run(ctx *Context) error {
	input := strings.TrimSpace(strings.Join(c.Message, " "))
	if input == "" {
		return fmt.Errorf("message must not be empty")
	}

	reply, err := assistant.New(ctx.Store).Respond(input)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

type ChatHistoryCmd struct {
	Limit int `short:"n" help:"Show at most this many messages." default:"20"`
}

func (c *ChatHistoryCmd) Run(ctx *Context) error {
	msgs := ctx.Store.State().AIMessages
	if c.Limit > 0 && len(msgs) > c.Limit {
		msgs = msgs[len(msgs)-c.Limit:]
	}
	for _, m := range msgs {
		fmt.Printf("[%s] %s\n", m.Role, m.Content)
	}
	return nil
}
