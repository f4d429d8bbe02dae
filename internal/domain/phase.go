package domain

// Phase is one of the four named sub-intervals of a menstrual cycle.
type Phase string

// Known phases, in cycle order. PhaseNone is the "undefined" result returned
// when no last period start has been recorded.
const (
	PhaseNone       Phase = ""
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulatory  Phase = "ovulatory"
	PhaseLuteal     Phase = "luteal"
)

// Label returns the human readable label shown by the tracker screen.
func (p Phase) Label() string {
	switch p {
	case PhaseMenstrual:
		return "Menstrual Phase"
	case PhaseFollicular:
		return "Follicular Phase"
	case PhaseOvulatory:
		return "Ovulatory Phase"
	case PhaseLuteal:
		return "Luteal Phase"
	default:
		return ""
	}
}
