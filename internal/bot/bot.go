// Package bot implements the Telegram command surface and notification
// fan-out for the catalog watcher.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veloruze/shop-comofootball-bot/internal/engine"
	"github.com/Veloruze/shop-comofootball-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// optionSizeType is the size-type label the /sizetype command reports on.
const optionSizeType = "option"

// Bot dispatches Telegram commands and broadcasts notifications to
// subscribers.
type Bot struct {
	api     *tgbotapi.BotAPI
	storage service.Storage
	engine  *engine.RefreshEngine
}

// New creates a bot connected to the Telegram API.
func New(token string, storage service.Storage, eng *engine.RefreshEngine) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	slog.Info("Connected to Telegram", "username", api.Self.UserName)

	return &Bot{
		api:     api,
		storage: storage,
		engine:  eng,
	}, nil
}

// Run processes incoming updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	slog.Debug("Handling command", "command", msg.Command(), "chat_id", chatID)

	switch msg.Command() {
	case "start":
		b.reply(chatID, formatWelcome())
	case "help":
		b.reply(chatID, formatHelp())
	case "sizesequence":
		b.handleSizeSequence(ctx, chatID)
	case "sizetype":
		b.handleSizeType(ctx, chatID)
	case "refresh":
		b.handleRefresh(ctx, chatID)
	case "subscribe":
		b.handleSubscribe(ctx, chatID)
	case "unsubscribe":
		b.handleUnsubscribe(ctx, chatID)
	}
}

func (b *Bot) handleSizeSequence(ctx context.Context, chatID int64) {
	snapshot, err := b.storage.GetLatestSnapshot(ctx)
	if err != nil {
		slog.Error("Failed to load snapshot", "error", err)
		b.reply(chatID, "❌ Error loading product data. Please try again later.")
		return
	}
	for _, text := range formatNonSequential(snapshot) {
		b.reply(chatID, text)
	}
}

func (b *Bot) handleSizeType(ctx context.Context, chatID int64) {
	snapshot, err := b.storage.GetLatestSnapshot(ctx)
	if err != nil {
		slog.Error("Failed to load snapshot", "error", err)
		b.reply(chatID, "❌ Error loading product data. Please try again later.")
		return
	}
	for _, text := range formatSizeType(snapshot, optionSizeType) {
		b.reply(chatID, text)
	}
}

func (b *Bot) handleRefresh(ctx context.Context, chatID int64) {
	b.reply(chatID, "🔄 Refreshing data from Como Football shop...")

	result, err := b.engine.Refresh(ctx)
	if err != nil {
		slog.Error("Manual refresh failed", "error", err)
		b.reply(chatID, fmt.Sprintf("❌ Error refreshing data:\n\n%v", err))
		return
	}

	b.reply(chatID, formatRefreshSummary(result))

	if len(result.Messages) == 0 {
		b.reply(chatID, "📋 No changes since last update")
		return
	}
	b.reply(chatID, "📢 Changes detected:")
	for _, text := range result.Messages {
		b.reply(chatID, text)
	}
}

func (b *Bot) handleSubscribe(ctx context.Context, chatID int64) {
	added, err := b.storage.Subscribe(ctx, chatID)
	if err != nil {
		slog.Error("Failed to subscribe", "chat_id", chatID, "error", err)
		b.reply(chatID, "❌ Error saving your subscription. Please try again later.")
		return
	}
	if !added {
		b.reply(chatID, "✅ You're already subscribed to notifications!")
		return
	}
	b.reply(chatID, "🔔 Subscribed! You'll receive notifications for:\n\n"+
		"🆕 New products\n"+
		"📐 Size sequence changes\n"+
		"💰 New discounts\n\n"+
		"Use /unsubscribe to stop notifications")
}

func (b *Bot) handleUnsubscribe(ctx context.Context, chatID int64) {
	removed, err := b.storage.Unsubscribe(ctx, chatID)
	if err != nil {
		slog.Error("Failed to unsubscribe", "chat_id", chatID, "error", err)
		b.reply(chatID, "❌ Error removing your subscription. Please try again later.")
		return
	}
	if !removed {
		b.reply(chatID, "You're not currently subscribed to notifications")
		return
	}
	b.reply(chatID, "❌ Unsubscribed from notifications")
}

// SendMessage delivers one message to one chat, implementing
// service.Notifier.
func (b *Bot) SendMessage(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) reply(chatID int64, text string) {
	if err := b.SendMessage(chatID, text); err != nil {
		slog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}

// Broadcast fans out notification messages to every subscriber. Chats that
// blocked the bot are dropped from the subscriber list.
func (b *Bot) Broadcast(ctx context.Context, messages []string) {
	if len(messages) == 0 {
		return
	}

	subscribers, err := b.storage.GetSubscribers(ctx)
	if err != nil {
		slog.Error("Failed to load subscribers", "error", err)
		return
	}
	if len(subscribers) == 0 {
		return
	}

	slog.Info("Broadcasting notifications", "subscribers", len(subscribers), "messages", len(messages))

	for _, chatID := range subscribers {
		if err := b.SendMessage(chatID, "🔔 Auto-Update Notification"); err != nil {
			b.handleSendFailure(ctx, chatID, err)
			continue
		}
		for _, text := range messages {
			if err := b.SendMessage(chatID, text); err != nil {
				b.handleSendFailure(ctx, chatID, err)
				break
			}
		}
	}
}

func (b *Bot) handleSendFailure(ctx context.Context, chatID int64, err error) {
	slog.Error("Failed to send notification", "chat_id", chatID, "error", err)
	if !isBlockedErr(err) {
		return
	}
	if _, unsubErr := b.storage.Unsubscribe(ctx, chatID); unsubErr != nil {
		slog.Error("Failed to drop blocked subscriber", "chat_id", chatID, "error", unsubErr)
		return
	}
	slog.Info("Dropped blocked subscriber", "chat_id", chatID)
}

func isBlockedErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "blocked")
}
