package chat

import "strings"

const systemPrompt = `You are an educational assistant specialized in Cloud Computing, DevOps and AWS.

GUIDELINES:
1. Answer in a clear and didactic way
2. Use practical examples whenever possible
3. Explain technical concepts in an accessible way
4. If the question is too broad, focus on the main points
5. Include best practices when relevant
6. Use markdown formatting for better readability

`

// BuildPrompt assembles the prompt sent to the model. The question must
// already be validated; topic is optional and skipped when empty.
func BuildPrompt(question, topic string) string {
	var b strings.Builder
	b.Grow(len(systemPrompt) + len(question) + len(topic) + 64)

	b.WriteString(systemPrompt)

	if topic != "" {
		b.WriteString("\nSPECIFIC TOPIC: ")
		b.WriteString(topic)
		b.WriteString("\n")
	}

	b.WriteString("\nSTUDENT QUESTION: ")
	b.WriteString(question)
	b.WriteString("\n\nANSWER:")

	return b.String()
}
