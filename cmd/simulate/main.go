// Command simulate runs the chat pipeline in a terminal REPL against the
// configured catalog, no HTTP involved. Handy for tuning replies and trying
// typo repair by hand.
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"keelie-chatbot-be/internal/config"
	"keelie-chatbot-be/internal/dto"
	"keelie-chatbot-be/internal/pkg/logger"
	"keelie-chatbot-be/internal/repository/memory"
	"keelie-chatbot-be/internal/service"
	"keelie-chatbot-be/pkg/catalog"
	"keelie-chatbot-be/pkg/dialogue/faq"
	"keelie-chatbot-be/pkg/dialogue/frustration"
	"keelie-chatbot-be/pkg/dialogue/intent"
	"keelie-chatbot-be/pkg/dialogue/reply"
	"keelie-chatbot-be/pkg/dialogue/stock"
	"keelie-chatbot-be/pkg/dialogue/topic"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	texts := reply.NewTexts(
		cfg.Bot.CompanyName,
		cfg.Bot.BotName,
		cfg.Bot.SupportContactURL,
		cfg.Bot.MinOrderFirst,
		cfg.Bot.MinOrderRepeat,
	)
	selector := reply.RandomSelector(rand.New(rand.NewSource(time.Now().UnixNano())))

	chatService := service.NewChatService(
		memory.NewSessionRepository(time.Hour),
		catalog.NewJSONProvider(cfg.Catalog.JSONPath),
		texts,
		topic.NewSet(texts, topic.DefaultCollections()),
		frustration.NewMonitor(nil),
		intent.NewScorer(intent.DefaultIntents(texts), selector),
		faq.NewMatcher(faq.DefaultEntries(cfg.Bot.CompanyName)),
		stock.NewResolver(texts),
		nil, // escalations stay local in the REPL
		logger.NewIsolatedLogger("logs/simulate.log"),
	)

	ctx := context.Background()
	created, err := chatService.CreateSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create session: %v\n", err)
		os.Exit(1)
	}

	botName := color.New(color.FgCyan, color.Bold)
	botText := color.New(color.FgCyan)
	youName := color.New(color.FgGreen, color.Bold)
	meta := color.New(color.FgHiBlack)

	botName.Printf("%s: ", cfg.Bot.BotName)
	botText.Println(texts.Greeting())
	meta.Printf("(session %s, type /quit to exit)\n\n", created.SessionId)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		youName.Print("you: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			break
		}
		if line == "" {
			botName.Printf("%s: ", cfg.Bot.BotName)
			botText.Println(texts.EmptyMessage())
			continue
		}

		res, err := chatService.Respond(ctx, &dto.SendMessageRequest{
			SessionId: created.SessionId,
			Message:   line,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		botName.Printf("%s: ", cfg.Bot.BotName)
		botText.Println(res.Reply)
		meta.Printf("(topic=%s escalated=%v)\n\n", res.Topic, res.Escalated)
	}
}
