package haiku

// Result is the scored outcome of one submission. It is built once by Score
// and not modified afterwards. Its JSON form is the stored result shape.
type Result struct {
	Output Output `json:"output"`
	Point  int    `json:"point"`
	Points Points `json:"points"`
}

// Output holds the extracted token lists. A nil list marshals as null.
type Output struct {
	Haiku []string `json:"haiku"`
	Ruby  []string `json:"ruby"`
}

// Points is the per-component breakdown.
type Points struct {
	Haiku      int `json:"haiku"`
	Ruby       int `json:"ruby"`
	Jiamari    int `json:"jiamari"`
	Extraneous int `json:"extraneous"`
}

// Total sums the components.
func (p Points) Total() int {
	return p.Haiku + p.Ruby + p.Jiamari + p.Extraneous
}

// Unparseable returns the result for a submission with no haiku line:
// both token lists nil and every component zero.
func Unparseable() Result {
	return Result{}
}

// Parsed reports whether a haiku line was found.
func (r Result) Parsed() bool {
	return r.Output.Haiku != nil
}
