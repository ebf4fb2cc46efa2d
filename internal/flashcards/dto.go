package flashcards

type GenerateRequest struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	NumCards int    `json:"numCards"`
}

type SaveRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Cards   []Card `json:"cards"`
}

// SetSummaryDTO é a listagem da tela de atividade: o baralho completo só é
// carregado quando o usuário abre o conjunto.
type SetSummaryDTO struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Topic     string `json:"topic"`
	NumCards  int    `json:"num_cards"`
	PdfURL    string `json:"pdf_url,omitempty"`
	CreatedAt string `json:"created_at"`
}
