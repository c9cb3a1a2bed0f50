package wizard

// Step is one stage of the transfer wizard.
type Step int

const (
	StepWelcome Step = iota
	StepLogin
	StepOtp
	StepBeneficiary
	StepAmount
	StepReview
	StepSuccess
)

// StageCount is the number of stages shown by the step indicator.
const StageCount = 4

// String returns the upper-case step name.
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "WELCOME"
	case StepLogin:
		return "LOGIN"
	case StepOtp:
		return "OTP"
	case StepBeneficiary:
		return "BENEFICIARY"
	case StepAmount:
		return "AMOUNT"
	case StepReview:
		return "REVIEW"
	case StepSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// Predecessor returns the step a back action leads to.
// The second result is false for steps without a back transition.
func (s Step) Predecessor() (Step, bool) {
	switch s {
	case StepLogin:
		return StepWelcome, true
	case StepOtp:
		return StepLogin, true
	case StepBeneficiary:
		return StepLogin, true
	case StepAmount:
		return StepBeneficiary, true
	case StepReview:
		return StepAmount, true
	default:
		return s, false
	}
}

// HasBack reports whether the step offers a back action.
func (s Step) HasBack() bool {
	_, ok := s.Predecessor()
	return ok
}

// CanEndSession reports whether the explicit "end session" affordance is
// offered. Success has its own close action instead.
func (s Step) CanEndSession() bool {
	return s != StepWelcome && s != StepSuccess
}

// Stage maps a step onto the four-stage progress indicator.
// Welcome returns -1 (no indicator).
func (s Step) Stage() int {
	switch s {
	case StepLogin, StepOtp:
		return 0
	case StepBeneficiary:
		return 1
	case StepAmount:
		return 2
	case StepReview, StepSuccess:
		return 3
	default:
		return -1
	}
}
