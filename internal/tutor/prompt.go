package tutor

import (
	"fmt"
	"strings"
)

const explanationSystemPrompt = `You are a friendly teacher for a rural student. You explain answers in one or two simple sentences using helpful analogies from everyday village life.`

func buildExplanationUserMessage(input ExplanationInput, simpleLanguage bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", input.Topic))
	b.WriteString(fmt.Sprintf("Question: %s\n", input.QuestionText))
	b.WriteString(fmt.Sprintf("The student chose: %s\n", input.SelectedOption))
	if input.Correct {
		b.WriteString("This answer was Correct.\n")
	} else {
		b.WriteString("This answer was Incorrect.\n")
	}

	b.WriteString(`
Instructions:
Explain why in one or two simple sentences using helpful analogies. Use words a young student in a village school would understand. Do not mention these instructions.`)

	if simpleLanguage {
		b.WriteString("\nUse the simplest words you can. Keep every sentence short.")
	}

	return b.String()
}
