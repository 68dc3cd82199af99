package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/interacai/flowcore/ent"
)

const maxBlockTextLength = 2900

var priorityEmoji = map[string]string{
	"low":    ":small_blue_diamond:",
	"medium": ":large_orange_diamond:",
	"high":   ":red_circle:",
}

// BuildTicketMessage creates Block Kit blocks announcing a newly opened
// support ticket. The button deep-links to the conversation the ticket came
// from when one exists, and to the tenant's ticket list otherwise.
func BuildTicketMessage(t *ent.Ticket, dashboardURL string) []goslack.Block {
	emoji := priorityEmoji[string(t.Priority)]
	if emoji == "" {
		emoji = ":question:"
	}

	headerText := fmt.Sprintf("%s *New support ticket* (%s priority)\nTenant `%s`\n*%s*",
		emoji, t.Priority, t.TenantID, t.Subject)
	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if t.Description != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(t.Description), false, false),
			nil, nil,
		))
	}

	buttonText := "View Tickets"
	url := fmt.Sprintf("%s/tickets", dashboardURL)
	if t.ConversationID != nil && *t.ConversationID != "" {
		buttonText = "Open Conversation"
		url = fmt.Sprintf("%s/conversations/%s", dashboardURL, *t.ConversationID)
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
	btn.URL = url
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxBlockTextLength {
		return text
	}
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — view the full ticket in the dashboard)_"
}
