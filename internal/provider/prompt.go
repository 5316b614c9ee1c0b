// Package provider holds what the translation adapters share: the prompt
// they send and the way they read the answer back.
package provider

import (
	"fmt"
	"strings"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

const (
	instructionToDialect  = "以下の標準語を指定の方言に翻訳してください。"
	instructionToStandard = "以下の方言を標準語に翻訳してください。"
	answerOnly            = "翻訳結果のみを簡潔に返してください。"
)

// BuildPrompt renders the translation request for a generative model.
func BuildPrompt(text string, dialect domain.Dialect, dir domain.Direction) string {
	instruction := instructionToDialect
	if dir == domain.DirectionDialectToStandard {
		instruction = instructionToStandard
	}

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n方言: ")
	b.WriteString(dialect.String())
	b.WriteString("\nテキスト: \"")
	b.WriteString(text)
	b.WriteString("\"\n")
	b.WriteString(answerOnly)
	return b.String()
}

// ExtractText trims a model answer. A blank answer is ErrEmptyResult.
func ExtractText(name, raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("%s: %w", name, domain.ErrEmptyResult)
	}
	return text, nil
}
