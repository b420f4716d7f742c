package judging

import "github.com/heartmarshall/haiku-judge/internal/haiku"

// Score parses and scores raw model output without touching storage.
func (s *Service) Score(raw string) haiku.Result {
	res := haiku.Parse(raw)
	s.rec.TextScored(res.Point)
	return res
}
