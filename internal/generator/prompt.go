package generator

import "fmt"

// AnalysisSystemPrompt is the system instruction for chat-style providers.
const AnalysisSystemPrompt = "Você é um assistente educacional especializado em criar materiais de estudo. Responda sempre em português brasileiro."

// BuildAnalysisPrompt returns the user prompt embedding the extracted text and the
// JSON schema every provider must answer with.
func BuildAnalysisPrompt(text, filename string) string {
	return fmt.Sprintf(`Você é um assistente de estudos especializado em criar materiais educacionais.
Analise o seguinte texto extraído do arquivo "%s" e gere um conteúdo educacional completo em português brasileiro.

Texto extraído:
%s

Gere a seguinte estrutura obrigatoriamente nesta ordem exata:

1. **Resumo Geral do Material**: Um resumo completo e objetivo do conteúdo principal.

2. **Mapa Conceitual**: Liste hierarquicamente os principais tópicos e subtópicos em formato markdown.

3. **Conceitos Mais Importantes**: Máximo de 12 itens, cada um com explicação simplificada de 2-4 frases.

4. **Palavras-chave e Termos Técnicos**: Entre 15 e 30 termos. Formato obrigatório para cada termo:
   **Palavra** - [Ver definição rápida](link_wikipedia_pt) | [Estudar mais](link_adicional)
   Use links do Wikipedia em português e um segundo link relevante (Khan Academy, Brasil Escola, YouTube, etc.)

5. **Flashcards Automáticos**: Mínimo 15 flashcards no formato:
   Frente: [pergunta]
   Verso: [resposta]

6. **Quiz de Fixação**: Exatamente 10 questões:
   - 6 múltipla escolha (4 alternativas, 1 correta)
   - 2 verdadeiro/falso
   - 2 dissertativas curtas
   Inclua gabarito completo com explicações.

7. **Sugestões de Cronograma de Estudos**: 3 opções:
   - Revisão rápida (1 dia)
   - Padrão (3 dias)
   - Aprofundamento (7 dias)

Formate o resultado em JSON válido com esta estrutura:
{
  "summary": "string",
  "conceptMap": "string",
  "keyConcepts": [{"concept": "string", "explanation": "string"}],
  "keywords": [{"term": "string", "definitionLinks": {"wikipedia": "string", "additional": "string"}}],
  "flashcards": [{"front": "string", "back": "string"}],
  "quiz": [{"type": "string", "question": "string", "options": ["string"], "correctAnswer": "string", "explanation": "string"}],
  "studySchedules": [{"type": "string", "duration": "string", "description": "string", "activities": ["string"]}]
}`, filename, text)
}
