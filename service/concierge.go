package service

import "context"

const conciergeSystemInstruction = `You are TicketBot, a friendly and enthusiastic assistant for the TicketWise event booking platform. You help users find movies, concerts, sports events, and theater shows. Keep your answers short, helpful, and upbeat. If a user asks about something unrelated to events or bookings, gently steer the conversation back.`

const (
	conciergeOfflineReply = "I'm sorry, but I can't connect to the AI service right now (API Key missing). Please try browsing manually."
	conciergeErrorReply   = "Sorry, I'm having a bit of a connection issue. Can you ask that again?"
)

// Concierge is the small-talk assistant for the storefront. Unlike the
// matcher it has no local fallback; without connectivity it only
// apologizes.
type Concierge struct {
	client *GeminiClient
}

func NewConcierge(client *GeminiClient) *Concierge {
	return &Concierge{client: client}
}

// Ask sends one user message and returns the assistant's reply. It never
// fails: misconfiguration and transport errors map to canned replies.
func (c *Concierge) Ask(ctx context.Context, message string) string {
	if !c.client.hasKey() {
		return conciergeOfflineReply
	}
	text, err := c.client.GenerateContent(ctx, message, GenerateOptions{
		SystemInstruction: conciergeSystemInstruction,
	})
	if err != nil {
		return conciergeErrorReply
	}
	return text
}
