package analysis

import "fmt"

const thesisResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "primary_hypothesis": {
      "type": "string",
      "description": "The main hypothesis, claim, or objective of the paper."
    },
    "methodology_keywords": {
      "type": "array",
      "items": { "type": "string" },
      "minItems": 5,
      "maxItems": 7,
      "description": "5-7 technical keywords representing the methods used (e.g. 'Transformer-XL', 'Monte Carlo Simulation')."
    },
    "key_findings": {
      "type": "string",
      "description": "The single most important conclusion or result achieved."
    }
  },
  "required": ["primary_hypothesis", "methodology_keywords", "key_findings"],
  "additionalProperties": false
}`

const thesisPromptTemplate = `You are an expert thesis extractor. Analyze the provided academic text and strictly extract the main hypothesis, the key findings, and the technical methodology used.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Every field is required; never emit empty strings or placeholder values.
- methodology_keywords must contain between 5 and 7 short technical terms actually used in the text.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

TEXT SAMPLE:
%s`

const summaryResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "novel_title": {
      "type": "string",
      "description": "A concise, attention-grabbing title for the paper summary."
    },
    "executive_summary": {
      "type": "string",
      "description": "A one-paragraph summary detailing the motivation, method, and conclusion."
    },
    "discussion_points": {
      "type": "array",
      "items": { "type": "string" },
      "minItems": 3,
      "maxItems": 5,
      "description": "3-5 critical discussion points or future research directions."
    }
  },
  "required": ["novel_title", "executive_summary", "discussion_points"],
  "additionalProperties": false
}`

const summaryPromptTemplate = `You are an expert academic synthesizer. Your task is to analyze the core thesis data and the detailed context, and generate a highly structured, objective, and concise summary. Use the RETRIEVED CONTEXT to ensure the summary is grounded in the document's facts, focusing on novelty and academic rigor.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Every field is required; never emit empty strings or placeholder values.
- executive_summary must be a single paragraph covering motivation, method, and conclusion.
- discussion_points must contain between 3 and 5 entries.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

CORE THESIS DATA (from the extraction stage):
%s

RETRIEVED CONTEXT (detailed passages from the paper):
%s`

// buildExtractionPrompt embeds the thesis schema and the truncated document
// text into the extraction prompt.
func buildExtractionPrompt(content string) string {
	return fmt.Sprintf(thesisPromptTemplate, thesisResponseSchema, content)
}

// buildSynthesisPrompt embeds the summary schema, the extracted thesis data,
// and the retrieved grounding context into the synthesis prompt.
func buildSynthesisPrompt(thesisJSON, retrievedContext string) string {
	return fmt.Sprintf(summaryPromptTemplate, summaryResponseSchema, thesisJSON, retrievedContext)
}
