package gform

import "github.com/studyforge/studyforge-lambda/internal/quizsession"

type SaveRequest struct {
	FormID       string                 `json:"formID"`
	Title        string                 `json:"title"`
	ResponderURL string                 `json:"responderURL"`
	Definition   quizsession.Definition `json:"definition"`
}

type ReviewRequest struct {
	FormID     string `json:"formID"`
	ResponseID string `json:"responseID"`
}

type ReviewDTO struct {
	FormID     string              `json:"form_id"`
	ResponseID string              `json:"response_id"`
	Result     *quizsession.Result `json:"result"`
}

type SavePdfRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
