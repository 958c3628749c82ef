package rag

import "fmt"

// The instruction carries its own fallback: with an empty context block the
// model is told to answer from general F1 knowledge.
const promptTemplate = `
You are an AI assistant that is an expert in Formula 1 racing.
Use the following context to answer the user's question.
If the answer is not in the context, respond from general F1 knowledge.

--------------------
CONTEXT:
%s
--------------------
QUESTION: %s
ANSWER:
`

func buildPrompt(contextBlock, question string) string {
	return fmt.Sprintf(promptTemplate, contextBlock, question)
}
