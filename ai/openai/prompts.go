package openai

import "fmt"

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "findings": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {
            "type": "string",
            "pattern": "^[a-z0-9]+([ -][a-z0-9]+)*$"
          },
          "value": {
            "type": "string"
          },
          "context": {
            "type": "string"
          }
        },
        "required": ["name"],
        "additionalProperties": false
      }
    }
  },
  "required": ["findings"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `Extract discrete clinical findings from the given patient notes and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- A finding is a symptom, physical sign, demographic fact, vital sign, or risk factor that is explicitly stated in the notes.
- Finding names must be lowercase, 1-4 words. Use the term as it appears in the notes, not a coded synonym.
- Put measured or stated quantities in "value" (e.g. age "67", temperature "38.9C"). Leave "value" empty for findings with no quantity.
- Put the sentence the finding appeared in into "context".
- Include only findings explicitly present in the notes. Do not infer diagnoses and do not hallucinate.
- If no findings can be identified, return "findings": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "A 67-year-old male presents with fever and productive cough for 3 days."
Output:
{
  "findings": [
    {"name":"age","value":"67","context":"A 67-year-old male presents with fever and productive cough for 3 days."},
    {"name":"sex","value":"male","context":"A 67-year-old male presents with fever and productive cough for 3 days."},
    {"name":"fever","value":"","context":"A 67-year-old male presents with fever and productive cough for 3 days."},
    {"name":"productive cough","value":"","context":"A 67-year-old male presents with fever and productive cough for 3 days."}
  ]
}

Example (no recognizable findings):
Input: "Please schedule a follow-up appointment next week."
Output:
{
  "findings": []
}`

const reportPromptTemplate = `You are a clinical decision-support assistant. Using ONLY the evidence passages
provided, write a ranked differential diagnosis report for the patient findings below.

Rules:
- Rank candidate conditions from most to least likely given the findings.
- Assign each condition a confidence of High, Moderate, or Low.
- Quote or paraphrase supporting evidence, and cite every piece of evidence
  inline in the form [Source: <article title>] using the exact titles given.
- Do not cite sources that are not in the evidence list. Do not invent evidence.
- If the evidence supports no condition, say so plainly and ask for more clinical detail.
- This is decision support, not a diagnosis. Do not address the patient directly.

Patient findings:
%s

Evidence passages:
%s`

// buildExtractionPrompt creates the system prompt for finding extraction.
func buildExtractionPrompt() string {
	return fmt.Sprintf(extractionPromptTemplate, extractionResponseSchema)
}

// buildReportPrompt creates the user prompt for report generation.
func buildReportPrompt(findings, evidence string) string {
	return fmt.Sprintf(reportPromptTemplate, findings, evidence)
}
