package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"career-guide/internal/domain/matching"
)

const maxPromptChars = 20000

// SkillExtractor asks a language model which catalog skills a resume
// mentions. Answers are folded back onto catalog spelling; anything outside
// the catalog is dropped. Provider failures fall back to keyword matching.
type SkillExtractor struct {
	gen      JSONGenerator
	catalog  []string
	fallback matching.Extractor
	log      *log.Logger
}

func NewSkillExtractor(gen JSONGenerator, catalog []string, logger *log.Logger) *SkillExtractor {
	if logger == nil {
		logger = log.Default()
	}
	cp := append([]string(nil), catalog...)
	return &SkillExtractor{
		gen:      gen,
		catalog:  cp,
		fallback: matching.NewKeywordExtractor(cp),
		log:      logger,
	}
}

func (e *SkillExtractor) Name() string { return "llm" }

func (e *SkillExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	if e.gen == nil {
		return e.fallback.Extract(ctx, text)
	}

	raw, err := e.gen.GenerateJSON(ctx, buildPrompt(text, e.catalog))
	if err != nil {
		e.log.Printf("llm extract status=fallback reason=provider err=%v", err)
		return e.fallback.Extract(ctx, text)
	}

	candidates, err := parseSkills(raw)
	if err != nil {
		e.log.Printf("llm extract status=fallback reason=decode err=%v", err)
		return e.fallback.Extract(ctx, text)
	}

	return matching.RestrictToCatalog(candidates, e.catalog), nil
}

func buildPrompt(text string, catalog []string) string {
	text = truncateUTF8(text, maxPromptChars)
	quoted, _ := json.Marshal(catalog)

	var sb strings.Builder
	sb.WriteString("You extract skills from a student's resume.\n")
	sb.WriteString("Choose ONLY from this list of skill names and copy them exactly:\n")
	sb.Write(quoted)
	sb.WriteString("\n\nReturn JSON of the form {\"skills\": [\"...\"]}. ")
	sb.WriteString("Include a skill only when the resume shows the student has it. ")
	sb.WriteString("Return an empty list when none apply.\n\nResume:\n")
	sb.WriteString(text)
	return sb.String()
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// parseSkills accepts either {"skills": [...]} or a bare array.
func parseSkills(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty response")
	}

	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return nil, fmt.Errorf("decode skill list: %w", err)
		}
		return list, nil
	}

	var payload struct {
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode skill object: %w", err)
	}
	return payload.Skills, nil
}
