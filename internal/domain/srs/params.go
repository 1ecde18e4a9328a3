package srs

// Params defines all configurable parameters for the SM-2 scheduler.
// The defaults reproduce the canonical algorithm constants; the ease-factor
// adjustment formula itself is fixed and not configurable.
type Params struct {
	// MinEaseFactor is the hard floor for the ease factor. No sequence of
	// failed reviews can push the ease factor below this value.
	MinEaseFactor float64

	// FirstInterval and SecondInterval are the fixed intervals, in days,
	// after the first and second consecutive successful review. They are
	// independent of the ease factor.
	FirstInterval  int
	SecondInterval int

	// LapseInterval is the interval, in days, forced by any failed review.
	LapseInterval int

	// Status classification thresholds.
	LearningMaxInterval   int     // Below this interval a started word is still "learning"
	MasteredMinInterval   int     // Interval must exceed this for "mastered"
	MasteredMinEaseFactor float64 // Ease factor must strictly exceed this for "mastered"
	MasteredMinReps       int     // At least this many consecutive successes for "mastered"
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	MinEaseFactor float64

	FirstInterval  int
	SecondInterval int
	LapseInterval  int

	LearningMaxInterval   int
	MasteredMinInterval   int
	MasteredMinEaseFactor float64
	MasteredMinReps       int
}

// NewDefaultParams creates a new Params instance with the canonical SM-2
// constants and the standard status thresholds.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: 1.3,

		FirstInterval:  1,
		SecondInterval: 6,
		LapseInterval:  1,

		LearningMaxInterval:   7,
		MasteredMinInterval:   30,
		MasteredMinEaseFactor: 2.5,
		MasteredMinReps:       5,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}

	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.LapseInterval > 0 {
		params.LapseInterval = config.LapseInterval
	}

	if config.LearningMaxInterval > 0 {
		params.LearningMaxInterval = config.LearningMaxInterval
	}
	if config.MasteredMinInterval > 0 {
		params.MasteredMinInterval = config.MasteredMinInterval
	}
	if config.MasteredMinEaseFactor > 0 {
		params.MasteredMinEaseFactor = config.MasteredMinEaseFactor
	}
	if config.MasteredMinReps > 0 {
		params.MasteredMinReps = config.MasteredMinReps
	}

	return params
}
