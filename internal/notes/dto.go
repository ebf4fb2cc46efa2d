package notes

type GenerateRequest struct {
	Topic  string `json:"topic"`
	Length string `json:"length"`
	Focus  string `json:"focus"`
}

type SaveRequest struct {
	Topic    string    `json:"topic"`
	Sections []Section `json:"sections"`
}

type SetSummaryDTO struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	NumSections int    `json:"num_sections"`
	PdfURL      string `json:"pdf_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}
