package rest

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/heartmarshall/haiku-judge/internal/haiku"
)

type scorer interface {
	Score(raw string) haiku.Result
}

// ScoreHandler scores text without storing anything.
type ScoreHandler struct {
	svc          scorer
	maxBodyBytes int64
}

// NewScoreHandler creates a ScoreHandler that rejects bodies over maxBodyBytes.
func NewScoreHandler(svc scorer, maxBodyBytes int64) *ScoreHandler {
	return &ScoreHandler{svc: svc, maxBodyBytes: maxBodyBytes}
}

type scoreRequest struct {
	Text string `json:"text"`
}

// Score handles POST /api/v1/score. A JSON body is read as {"text": ...};
// any other content type is scored as raw text.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var text string
	if isJSON(r) {
		var req scoreRequest
		if !decodeJSON(w, r, h.maxBodyBytes, &req) {
			return
		}
		text = req.Text
	} else {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		text = string(body)
	}

	writeJSON(w, http.StatusOK, h.svc.Score(text))
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
