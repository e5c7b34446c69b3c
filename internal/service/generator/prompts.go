package generator

import (
	"fmt"
	"strings"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const safetyPrompt = "Safety: Keep content appropriate for K–12. Avoid slurs, profanity, and explicit content."

const samplePrompt = `You generate a short, kid-safe example sentence (1–2 lines) that clearly exhibits %s bias.
Constraints:
- Audience: K–12. Avoid profanity, slurs, or explicit content.
- Keep vocabulary simple and age-appropriate (grade 4–7).
- Make the bias detectable for teaching, but not hateful or offensive.
- Output only the sentence, no quotes, no prefixes, no explanations.`

const constrainedPrompt = `You are a careful, kid-friendly editor.
Task: Apply the user's instruction to the ORIGINAL sentence with the **minimum** necessary edits.
Rules:
- Preserve the original factual meaning and intent.
- Keep named entities, roles, and specifics intact unless the instruction requires changing them.
- Keep style and length similar (±15%% words).
- Avoid adding new claims, facts, or extra details not in the original.
- Do not generalize away or rewrite from scratch.
- Output **only** the revised sentence, no quotes, no extra text.

ORIGINAL:
%s

INSTRUCTION:
%s
`

const (
	sampleNudge  = "Please provide one example."
	rewriteNudge = "Return only the revised sentence."
)

func sampleSystem(bt domain.BiasType) string {
	return safetyPrompt + "\n\n" + fmt.Sprintf(samplePrompt, bt)
}

func constrainedSystem(original, instruction string) string {
	return safetyPrompt + "\n\n" + fmt.Sprintf(constrainedPrompt,
		strings.TrimSpace(original), strings.TrimSpace(instruction))
}
