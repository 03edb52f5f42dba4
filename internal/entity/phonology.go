package entity

// StressPattern is the primary stress rule offered by the wizard.
type StressPattern string

const (
	StressNoFixed         StressPattern = "no-fixed"
	StressInitial         StressPattern = "initial"
	StressSecond          StressPattern = "second"
	StressAntepenultimate StressPattern = "antepenultimate"
	StressPenultimate     StressPattern = "penultimate"
	StressUltimate        StressPattern = "ultimate"
	StressNone            StressPattern = "no-stress"
	StressCustomFoot      StressPattern = "custom-foot"
)

var stressLabels = []struct {
	pattern StressPattern
	label   string
}{
	{StressNoFixed, "No Fixed Stress"},
	{StressInitial, "Initial Syllable"},
	{StressSecond, "Second Syllable"},
	{StressAntepenultimate, "Antepenultimate"},
	{StressPenultimate, "Penultimate"},
	{StressUltimate, "Ultimate"},
	{StressNone, "No Stress"},
	{StressCustomFoot, "Custom Foot-Based Pattern"},
}

// AllStressPatterns returns the patterns in wizard order.
func AllStressPatterns() []StressPattern {
	out := make([]StressPattern, 0, len(stressLabels))
	for _, item := range stressLabels {
		out = append(out, item.pattern)
	}
	return out
}

// ParseStressPattern accepts the code ("penultimate") or the label ("Penultimate").
func ParseStressPattern(value string) (StressPattern, bool) {
	for _, item := range stressLabels {
		if equalFoldTrim(string(item.pattern), value) || equalFoldTrim(item.label, value) {
			return item.pattern, true
		}
	}
	return "", false
}

func (p StressPattern) String() string {
	for _, item := range stressLabels {
		if item.pattern == p {
			return item.label
		}
	}
	return string(p)
}

func (p StressPattern) Valid() bool {
	for _, item := range stressLabels {
		if item.pattern == p {
			return true
		}
	}
	return false
}

// FootDirection is the direction in which feet are built across a word.
type FootDirection string

const (
	FootLeftToRight FootDirection = "left"
	FootRightToLeft FootDirection = "right"
)

func (d FootDirection) String() string {
	switch d {
	case FootLeftToRight:
		return "Left to Right"
	case FootRightToLeft:
		return "Right to Left"
	default:
		return string(d)
	}
}

func (d FootDirection) Valid() bool {
	return d == FootLeftToRight || d == FootRightToLeft
}

// MainStressPosition selects which foot carries primary stress.
type MainStressPosition string

const (
	MainStressLeftMost  MainStressPosition = "left-most"
	MainStressRightMost MainStressPosition = "right-most"
)

func (m MainStressPosition) String() string {
	switch m {
	case MainStressLeftMost:
		return "Left-most foot"
	case MainStressRightMost:
		return "Right-most foot"
	default:
		return string(m)
	}
}

func (m MainStressPosition) Valid() bool {
	return m == MainStressLeftMost || m == MainStressRightMost
}

// CustomStressPattern configures a foot-based stress rule.
type CustomStressPattern struct {
	FootSize               int                `json:"foot_size" yaml:"foot_size"`
	FootDirection          FootDirection      `json:"foot_direction" yaml:"foot_direction"`
	StressedSyllableInFoot int                `json:"stressed_syllable_in_foot" yaml:"stressed_syllable_in_foot"`
	MainStressPosition     MainStressPosition `json:"main_stress_position" yaml:"main_stress_position"`
}

// DefaultCustomStressPattern mirrors the wizard's initial selections.
func DefaultCustomStressPattern() CustomStressPattern {
	return CustomStressPattern{
		FootSize:               2,
		FootDirection:          FootLeftToRight,
		StressedSyllableInFoot: 1,
		MainStressPosition:     MainStressRightMost,
	}
}

// Validate checks that the foot parameters are internally consistent.
func (c CustomStressPattern) Validate() error {
	if c.FootSize != 2 && c.FootSize != 3 {
		return &ValidationError{Field: "stress.custom.foot_size", Err: ErrInvalidFootSize}
	}
	if c.StressedSyllableInFoot < 1 || c.StressedSyllableInFoot > c.FootSize {
		return &ValidationError{Field: "stress.custom.stressed_syllable_in_foot", Err: ErrInvalidStressedSyllable}
	}
	return nil
}

// StressSettings pairs the chosen pattern with its custom parameters.
type StressSettings struct {
	Pattern StressPattern        `json:"pattern" yaml:"pattern"`
	Custom  *CustomStressPattern `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Normalize defaults the pattern and drops custom parameters that do not apply.
func (s *StressSettings) Normalize() {
	if s.Pattern == "" {
		s.Pattern = StressNoFixed
	}
	if s.Pattern != StressCustomFoot {
		s.Custom = nil
	}
}

// Validate requires a valid custom pattern exactly when the custom label is selected.
func (s StressSettings) Validate() error {
	if !s.Pattern.Valid() {
		return &ValidationError{Field: "stress.pattern", Err: ErrInvalidStressPattern}
	}
	if s.Pattern != StressCustomFoot {
		return nil
	}
	if s.Custom == nil {
		return &ValidationError{Field: "stress.custom", Err: ErrMissingCustomPattern}
	}
	return s.Custom.Validate()
}

// PhonotacticProfile holds the sound inventory and positional restrictions.
type PhonotacticProfile struct {
	Consonants       []string `json:"consonants" yaml:"consonants"`
	Vowels           []string `json:"vowels" yaml:"vowels"`
	OnsetClusters    []string `json:"onset_clusters,omitempty" yaml:"onset_clusters,omitempty"`
	MedialClusters   []string `json:"medial_clusters,omitempty" yaml:"medial_clusters,omitempty"`
	CodaClusters     []string `json:"coda_clusters,omitempty" yaml:"coda_clusters,omitempty"`
	IllegalSequences []string `json:"illegal_sequences,omitempty" yaml:"illegal_sequences,omitempty"`
}

// Validate requires non-empty consonant and vowel inventories.
func (p PhonotacticProfile) Validate() error {
	if len(p.Consonants) == 0 {
		return &ValidationError{Field: "phonotactics.consonants", Err: ErrNoConsonants}
	}
	if len(p.Vowels) == 0 {
		return &ValidationError{Field: "phonotactics.vowels", Err: ErrNoVowels}
	}
	return nil
}

func (p PhonotacticProfile) clone() PhonotacticProfile {
	return PhonotacticProfile{
		Consonants:       cloneStrings(p.Consonants),
		Vowels:           cloneStrings(p.Vowels),
		OnsetClusters:    cloneStrings(p.OnsetClusters),
		MedialClusters:   cloneStrings(p.MedialClusters),
		CodaClusters:     cloneStrings(p.CodaClusters),
		IllegalSequences: cloneStrings(p.IllegalSequences),
	}
}
