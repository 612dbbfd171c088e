// Package prompt turns a chat request into the single linear prompt sent
// to the model. Both functions are pure: history arrives from the client
// on every call and nothing is kept between requests.
package prompt

import (
	"strings"
	"unicode"

	"fitness-ai-backend/internal/models"
)

// historyWindow bounds how many prior turns are included, keeping prompt
// size flat no matter how much history the client accumulates.
const historyWindow = 12

const persona = "You are a friendly, factual fitness & diet assistant. "

// Preamble builds the system preamble for a request. An empty profile
// yields the generic instruction; otherwise the persona is followed by a
// labeled profile block. Values are rendered verbatim, no unit conversion.
func Preamble(p models.Profile) string {
	if p.IsEmpty() {
		return persona + "Answer clearly and helpfully for general questions."
	}

	allergies := p.Allergies.String()
	if allergies == "" {
		allergies = "none"
	}

	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("Personalize suggestions using this user profile when relevant.\n\n")
	b.WriteString("User Profile:\n")
	b.WriteString("- Age: " + p.Age.String() + "\n")
	b.WriteString("- Gender: " + p.Gender.String() + "\n")
	b.WriteString("- Height: " + p.Height.String() + " cm\n")
	b.WriteString("- Weight: " + p.Weight.String() + " kg\n")
	b.WriteString("- Goal: " + p.Goal.String() + "\n")
	b.WriteString("- Diet Preference: " + p.Diet.String() + "\n")
	b.WriteString("- Activity Level: " + p.Activity.String() + "\n")
	b.WriteString("- Allergies: " + allergies + "\n")
	return b.String()
}

// Build assembles the full prompt: preamble, a bounded window of prior
// turns, the new user message, the optional variation instruction, and a
// closing style instruction that is always last.
func Build(history []models.ChatMessage, message, preamble, intentHint string) string {
	lines := []string{preamble, "\nConversation so far:"}

	if n := len(history); n > historyWindow {
		history = history[n-historyWindow:]
	}
	for _, turn := range history {
		role := turn.Role
		if role == "" {
			role = "user"
		}
		lines = append(lines, capitalize(role)+": "+turn.Content)
	}

	lines = append(lines, "User: "+message)

	if intentHint == "variation" {
		lines = append(lines,
			"\nInstruction: Provide a different variation from the last plan or suggestion. "+
				"Keep it consistent with the user's profile & preferences.")
	}

	lines = append(lines,
		"\nAssistant: Respond concisely. Use bullet points for plans/steps. "+
			"If giving a day plan, include approximate calories/macros when helpful.")

	return strings.Join(lines, "\n")
}

// capitalize upper-cases the first rune only; the rest of the role string
// passes through untouched.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
