package haiku

// Starting points per component. Extraneous is awarded whole or not at all.
const (
	MaxHaikuPoints      = 15
	MaxRubyPoints       = 15
	MaxJiamariPoints    = 15
	MaxExtraneousPoints = 5
	MaxTotalPoints      = MaxHaikuPoints + MaxRubyPoints + MaxJiamariPoints + MaxExtraneousPoints
)

// TargetMorae is the 5-7-5 pattern a reading is measured against.
var TargetMorae = [fieldsPerLine]int{5, 7, 5}

// penalty is one independent deduction: it costs points when it applies.
type penalty struct {
	applies bool
	points  int
}

// deduct subtracts every applicable penalty from start, floored at zero.
func deduct(start int, penalties ...penalty) int {
	points := start
	for _, p := range penalties {
		if p.applies {
			points -= p.points
		}
	}
	return max(points, 0)
}

// structurePenalties are shared by the haiku and reading lines.
func structurePenalties(l ClassifiedLine) []penalty {
	return []penalty{
		{applies: l.HadExtraFields, points: 5},
		{applies: l.HadNonStandardComma, points: 5},
		{applies: l.HadUntrimmedField, points: 5},
	}
}

// excessPenalty maps the total number of surplus morae to a deduction.
func excessPenalty(excess int) int {
	switch {
	case excess <= 1:
		return 0
	case excess == 2:
		return 5
	case excess == 3:
		return 10
	default:
		return 15
	}
}

// jiamariPoints scores reading length against TargetMorae. A field shorter
// than its target costs 10 once, however many fields are short. Surplus morae
// are summed across fields and priced by excessPenalty. Both may apply.
func jiamariPoints(fields []string) int {
	short := false
	excess := 0
	for i, target := range TargetMorae {
		n, _ := CountMorae(fields[i])
		if n < target {
			short = true
		}
		if n > target {
			excess += n - target
		}
	}
	return deduct(MaxJiamariPoints,
		penalty{applies: short, points: 10},
		penalty{applies: excess > 0, points: excessPenalty(excess)},
	)
}

// Score applies the rubric to a classified submission.
func Score(c Classification) Result {
	haikuLine, ok := c.Haiku()
	if !ok {
		return Unparseable()
	}

	res := Result{
		Output: Output{Haiku: haikuLine.Fields},
		Points: Points{
			Haiku: deduct(MaxHaikuPoints, structurePenalties(haikuLine)...),
		},
	}

	if reading, ok := c.Reading(); ok {
		res.Output.Ruby = reading.Fields
		res.Points.Ruby = deduct(MaxRubyPoints, structurePenalties(reading)...)
		res.Points.Jiamari = jiamariPoints(reading.Fields)
	}

	if !c.Extraneous {
		res.Points.Extraneous = MaxExtraneousPoints
	}

	res.Point = res.Points.Total()
	return res
}

// Parse classifies and scores raw model output in one step.
func Parse(raw string) Result {
	return Score(Classify(raw))
}
