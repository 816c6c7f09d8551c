// Package telegram provides an optional chat front-end over the Telegram Bot
// API. Incoming text messages are forwarded verbatim to the query handler and
// the rendered estimate is sent back to the same chat.
//
// Replies are plain text (no Markdown) since estimates are already
// human-readable sentences. Outgoing sends retry with linear backoff.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/citypulse/trafficq/internal/logger"
)

// Responder answers a free-text question with a rendered reply.
type Responder interface {
	HandleUserQuery(message string) string
}

// Client wraps the Telegram bot connection.
type Client struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewClient creates a new Telegram client. chatID is the announcement target
// for startup notices; questions are answered in whichever chat they arrive.
func NewClient(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Client{
		bot:            bot,
		chatID:         chatIDInt,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// Announce sends a notice to the configured chat.
func (c *Client) Announce(text string) error {
	return c.send(tgbotapi.NewMessage(c.chatID, text))
}

// ListenForQuestions long-polls for updates and answers each text message
// using the responder. Blocks until the context is cancelled.
func (c *Client) ListenForQuestions(ctx context.Context, responder Responder) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := c.bot.GetUpdatesChan(u)

	logger.Info("Telegram front-end listening as @%s", c.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			c.bot.StopReceivingUpdates()
			return

		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}

			question := update.Message.Text
			logger.Debug("Telegram question from chat %d: %s", update.Message.Chat.ID, summarize(question))

			reply := responder.HandleUserQuery(question)
			msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
			msg.ReplyToMessageID = update.Message.MessageID
			if err := c.send(msg); err != nil {
				logger.Error("Failed to answer Telegram question: %v", err)
			}
		}
	}
}

// send delivers a message with retry and linear backoff.
func (c *Client) send(msg tgbotapi.MessageConfig) error {
	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(c.retryDelayBase * time.Duration(i+1))
	}
	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// summarize shortens a question for log lines.
func summarize(text string) string {
	const limit = 64
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
