package gemini

import "fmt"

const analysisSystemPrompt = `Você cria materiais de estudo completos e objetivos em português brasileiro, estritamente baseados no conteúdo fornecido e enriquecidos com referências confiáveis quando necessário. Use LaTeX para variáveis e unidades quando aparecerem em fórmulas ou explicações técnicas. Não invente fatos sem referência. Retorne JSON válido.`

func buildAnalysisPrompt(text, filename string) string {
	return fmt.Sprintf(`Arquivo: "%s"

Texto extraído:
%s

Formato obrigatório (JSON puro, sem texto fora do JSON):
{
  "summary": string,
  "references": [{ "title": string, "url": string, "source"?: string }],
  "conceptMap": string,
  "keyConcepts": [{ "concept": string, "explanation": string, "details"?: string, "example"?: string, "imageUrl"?: string, "values"?: [{"label": string, "valueNumber"?: number, "unitPrefix"?: "m"|"k"|"M"|"G"|"" , "unitSymbol"?: "V"|"A"|"Ω"|"F"|"H"|"W"|"s", "formatted"?: string}], "formula"?: string }],
  "flashcards": [{ "front": string, "back": string }],
  "quiz": [{ "type": "multiple_choice" | "true_false" | "essay", "question": string, "options"?: string[], "correctAnswer": string | boolean, "explanation"?: string }],
  "studySchedules": [{ "type": "quick" | "standard" | "deep", "duration": string, "description": string, "activities": string[] }]
}
Instruções específicas para "keyConcepts":
- "formula": se houver, use LaTeX (display) com $$...$$ para a expressão geral do conceito.
- "example": inclua um exemplo resolvido: 1) apresente a fórmula em $$...$$, 2) mostre a substituição numérica com unidades e o resultado final, usando matemática inline $...$ quando apropriado.
- "values": liste os valores usados no exemplo (rótulo e valor com unidade).
Regras gerais:
- Baseie-se no texto extraído e complemente com referências confiáveis quando necessário.
- Nas strings de "explanation", "details" e "example", sempre use notação LaTeX para variáveis (ex: $V_{GS}$, $I_D$) e unidades (ex: $5\,V$, $10\,\Omega$). Não duplique valores (evitar padrões como "0V 0V").
- Retorne exclusivamente JSON válido.`, filename, text)
}

const explainSystemPrompt = `Explique termos técnicos de forma objetiva em português. Use LaTeX para variáveis e unidades. Inclua um exemplo numérico (com substituição e resultado) quando aplicável. Sugira imagem via URL pública.`

func buildExplainPrompt(term string) string {
	return fmt.Sprintf(`Explique o termo: %s. Responda com JSON {"explanation": string, "imageUrl"?: string} e use $...$ / $$...$$ onde necessário.`, term)
}

const normalizeSystemPrompt = `Normalize em português um conceito técnico. Use LaTeX para variáveis/unidades em fórmula e exemplo. Retorne JSON puro conforme schema.`

const conceptSchema = `{
  "concept": string,
  "explanation": string,
  "details"?: string,
  "formula"?: string,
  "example"?: string,
  "values"?: [{"label": string, "valueNumber"?: number, "unitPrefix"?: "m"|"k"|"M"|"G"|"", "unitSymbol"?: "V"|"A"|"Ω"|"F"|"H"|"W"|"s", "formatted"?: string}]
}`

func buildNormalizePrompt(conceptJSON []byte) string {
	return fmt.Sprintf("Schema: %s\n\nEntrada:\n%s\n\nSaída: JSON puro conforme schema, com $$...$$ na fórmula e substituições com unidades no exemplo.", conceptSchema, conceptJSON)
}

const (
	transcribeSystemPrompt = "Você extrai texto puro de documentos PDF. Retorne apenas o texto contínuo, sem metadados, sem comentários."
	transcribeUserPrompt   = "Extraia todo o texto legível do PDF fornecido. Retorne somente texto puro."
)
