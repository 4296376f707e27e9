package search

import "fmt"

// The three providers get semantically equivalent instructions worded the
// way each API works best: OpenAI takes a system message plus user turn,
// Claude and Cohere get a single self-contained prompt.

const openAISystemPrompt = `Você é um assistente especializado em gastronomia brasileira. Interprete desejos gastronômicos de usuários e retorne JSON estruturado.

Tipos conhecidos: café, pizzaria, bar, restaurante, lanchonete, sorveteria, padaria, churrascaria, japonês, italiano, mexicano, árabe, vegetariano, vegano, fast-food.

Tags comuns: romântico, família, tranquilo, agitado, pet-friendly, wi-fi, música ao vivo, karaoke, vista, terraço, entrega, delivery, casual, fino, barato, caro, tradicional, moderno.

Retorne apenas JSON válido com esta estrutura:
{
  "tipo": "string opcional",
  "tags": ["array de strings"],
  "localizacao": "string opcional",
  "ambiente": "string opcional",
  "faixaPreco": "number opcional",
  "horario": "string opcional",
  "confianca": "number de 0 a 1"
}`

func buildOpenAIUserPrompt(input string) string {
	return fmt.Sprintf("Interprete: %q", input)
}

func buildClaudePrompt(input string) string {
	return fmt.Sprintf(`Você é um assistente especializado em gastronomia brasileira. Interprete o seguinte desejo gastronômico e retorne apenas um JSON válido:

Input: %q

Retorne JSON com: tipo, tags, localizacao, ambiente, faixaPreco, horario, confianca (0-1).`, input)
}

func buildCoherePrompt(input string) string {
	return fmt.Sprintf(`Você é um assistente gastronômico. Interprete %q e retorne JSON com: tipo, tags, localizacao, ambiente, faixaPreco, horario, confianca.`, input)
}
