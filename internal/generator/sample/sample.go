// Package sample serves a fixed demonstration analysis without any network call.
package sample

import (
	"context"
	"fmt"

	"estudaia/internal/domain"
	"estudaia/internal/generator"
	"estudaia/internal/port"
)

// Generator returns the static demo analysis.
type Generator struct{}

// New is the registry factory for the demo provider.
func New(_ generator.Settings) (port.AnalysisGenerator, error) {
	return Generator{}, nil
}

func (Generator) Provider() domain.ProviderName { return domain.ProviderDemo }

func (Generator) Model() string { return string(domain.ProviderDemo) }

func (Generator) Generate(_ context.Context, input port.GenerateInput) (*domain.AnalysisResult, error) {
	return Analysis(input.Filename), nil
}

// Analysis builds the demo payload for filename.
func Analysis(filename string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Summary: fmt.Sprintf("Este material apresenta conceitos fundamentais sobre o tema abordado no arquivo %q. "+
			"O conteúdo é estruturado de forma progressiva, iniciando com conceitos básicos e evoluindo para aplicações mais complexas.", filename),
		ConceptMap: domain.LooseString(fmt.Sprintf(`# Mapa Conceitual - %s

## Conceitos Principais
- **Introdução**: Fundamentos básicos
- **Desenvolvimento**: Aprofundamento teórico
- **Aplicações**: Casos práticos
- **Conclusões**: Síntese dos aprendizados

## Subtópicos Importantes
### 1. Fundamentos
- Definições básicas
- Contexto histórico
- Importância do tema

### 2. Aplicações Práticas
- Exemplos cotidianos
- Casos de estudo
- Exercícios práticos`, filename)),
		KeyConcepts: []domain.KeyConcept{
			{Concept: "Conceito Fundamental", Explanation: "Este é o conceito base que serve como fundamento para todo o conteúdo apresentado no material."},
			{Concept: "Aplicação Prática", Explanation: "Refere-se às formas como os conceitos teóricos são aplicados em situações reais e cotidianas."},
			{Concept: "Análise Crítica", Explanation: "Habilidade de avaliar e interpretar o conteúdo de forma crítica e construtiva."},
		},
		Keywords: []domain.Keyword{
			{Term: "Aprendizado", DefinitionLinks: domain.DefinitionLinks{Wikipedia: "https://pt.wikipedia.org/wiki/Aprendizagem", Additional: "https://www.khanacademy.org"}},
			{Term: "Conhecimento", DefinitionLinks: domain.DefinitionLinks{Wikipedia: "https://pt.wikipedia.org/wiki/Conhecimento", Additional: "https://www.brasilescola.com"}},
			{Term: "Educação", DefinitionLinks: domain.DefinitionLinks{Wikipedia: "https://pt.wikipedia.org/wiki/Educa%C3%A7%C3%A3o", Additional: "https://www.ted.com"}},
		},
		Flashcards: []domain.Flashcard{
			{Front: "Qual é o principal objetivo deste material?", Back: "Proporcionar uma compreensão abrangente dos conceitos fundamentais através de uma abordagem estruturada e progressiva."},
			{Front: "Como os conceitos são apresentados?", Back: "De forma hierárquica, iniciando com fundamentos básicos e progredindo para aplicações mais complexas."},
			{Front: "Qual a importância da prática no aprendizado?", Back: "A prática permite consolidar os conceitos teóricos através da aplicação em situações reais."},
		},
		Quiz: []domain.QuizQuestion{
			{
				Type:          domain.QuizMultipleChoice,
				Question:      "Qual é a estrutura recomendada para estudar este material?",
				Options:       []string{"Aleatória", "Progressiva", "Por tópicos isolados", "Apenas teórica"},
				CorrectAnswer: domain.TextAnswer("Progressiva"),
				Explanation:   "A estrutura progressiva permite construir conhecimento de forma sólida e consistente.",
			},
			{
				Type:          domain.QuizMultipleChoice,
				Question:      "Quantos tipos de atividades práticas são sugeridas?",
				Options:       []string{"1", "2", "3", "4"},
				CorrectAnswer: domain.TextAnswer("3"),
				Explanation:   "São sugeridas três abordagens: revisão rápida, padrão e aprofundamento.",
			},
			{
				Type:          domain.QuizTrueFalse,
				Question:      "O material pode ser estudado em apenas um dia?",
				CorrectAnswer: domain.BoolAnswer(true),
				Explanation:   "Sim, através da opção de revisão rápida, embora o aprofundamento leve mais tempo.",
			},
			{
				Type:          domain.QuizEssay,
				Question:      "Descreva como você aplicaria os conceitos aprendidos em sua rotina.",
				CorrectAnswer: domain.TextAnswer("Resposta pessoal - deve incluir exemplos concretos de aplicação dos conceitos."),
			},
		},
		StudySchedules: []domain.StudySchedule{
			{
				Type:        domain.ScheduleQuick,
				Duration:    "1 dia",
				Description: "Revisão rápida dos conceitos principais",
				Activities: []string{
					"Ler o resumo geral (30 min)",
					"Revisar os conceitos-chave (45 min)",
					"Fazer o quiz de fixação (30 min)",
					"Revisar flashcards (45 min)",
				},
			},
			{
				Type:        domain.ScheduleStandard,
				Duration:    "3 dias",
				Description: "Estudo aprofundado com foco em aplicações práticas",
				Activities: []string{
					"Dia 1: Resumo e mapa conceitual (2h)",
					"Dia 2: Conceitos e palavras-chave (2h)",
					"Dia 3: Flashcards, quiz e revisão (2h)",
				},
			},
			{
				Type:        domain.ScheduleDeep,
				Duration:    "7 dias",
				Description: "Imersão completa com pesquisa adicional",
				Activities: []string{
					"Dia 1-2: Fundamentos e conceitos básicos",
					"Dia 3-4: Aplicações práticas e exemplos",
					"Dia 5-6: Aprofundamento e pesquisa complementar",
					"Dia 7: Revisão geral e autoavaliação",
				},
			},
		},
	}
}
