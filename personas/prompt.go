package personas

import "strings"

// LearnerContext carries the optional per-request fields describing the
// student. Empty fields are omitted from the prompt entirely rather than
// rendered with placeholder values.
type LearnerContext struct {
	Topic        string
	Education    string
	Grade        string
	PriorContext string
}

// additionalInstructions is appended to every prompt regardless of persona.
// The arithmetic rules exist because the answer may be read aloud by speech
// synthesis; symbol-literal phrasing produces nonsensical audio, so the
// model is forced to spell math out in words at generation time.
const additionalInstructions = `ADDITIONAL INSTRUCTIONS:
- Provide comprehensive, thorough explanations that fully address the question
- Include multiple examples (2-3) that illustrate different aspects of the concept
- For any problem-solving: provide detailed step-by-step solutions with explanations for each step
- Use your personality's unique style consistently throughout the response
- Ensure answers are accurate, educational, and age-appropriate
- If including quizzes or exercises, provide complete solutions and explanations
- Make learning engaging while maintaining educational integrity
- **READ ARITHMETIC PROPERLY**: When reading mathematical expressions:
  - Say '3 divided by 6' NOT '3 forwardslash 6'
  - Say '5 times 2' or '5 multiplied by 2' NOT '5 star 2'
  - Say '2 plus 3' NOT '2 plus sign 3'
  - Say '8 minus 4' NOT '8 dash 4'
  - Say 'x squared' NOT 'x caret 2'
  - Say 'the square root of 16' NOT 'sqrt 16'
  - Always read mathematical symbols using proper mathematical terms
  - Write fractions as '1/2' but say 'one half' or '1 divided by 2'
  - Write equations clearly but describe them using proper mathematical language`

// BuildPrompt assembles the single instruction text sent to the generative
// model. The block order is fixed and significant: the model weighs earlier
// text as stronger framing, so the persona contract comes first and the
// universal requirements last. The function is pure; identical arguments
// always produce byte-identical output.
//
// An unregistered personaKey silently falls back to the default persona via
// Lookup. This is a second fallback layer, independent of alias resolution;
// callers that want to reject unknown personas must do so before calling.
func (r *Registry) BuildPrompt(question, personaKey string, learner LearnerContext) string {
	persona := r.Lookup(personaKey)

	parts := []string{
		"ROLE AND PERSONA:\n" + persona.SystemPrompt + "\n",
	}

	var ctxLines []string
	if learner.Topic != "" {
		ctxLines = append(ctxLines, "Learning Topic: "+learner.Topic)
	}
	if learner.Education != "" {
		ctxLines = append(ctxLines, "Education Level: "+learner.Education)
	}
	if learner.Grade != "" {
		ctxLines = append(ctxLines, "Grade/Academic Level: "+learner.Grade)
	}
	if learner.PriorContext != "" {
		ctxLines = append(ctxLines, "Prior Knowledge/Context: "+learner.PriorContext)
	}
	if len(ctxLines) > 0 {
		parts = append(parts, "LEARNER CONTEXT:\n"+strings.Join(ctxLines, "\n")+"\n")
	}

	parts = append(parts,
		"STUDENT'S QUESTION:\n"+question+"\n",
		"RESPONSE REQUIREMENTS:\n"+persona.ResponseFormat+"\n",
		additionalInstructions,
	)

	return strings.Join(parts, "\n")
}
