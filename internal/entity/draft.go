package entity

// LanguageDraft is the raw input of one creation-wizard run. Text blocks are
// parsed with the lexparse line formats when the profile is created.
type LanguageDraft struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Tagline string `json:"tagline,omitempty" yaml:"tagline,omitempty"`

	Consonants       []string `json:"consonants" yaml:"consonants"`
	Vowels           []string `json:"vowels" yaml:"vowels"`
	OnsetClusters    []string `json:"onset_clusters,omitempty" yaml:"onset_clusters,omitempty"`
	MedialClusters   []string `json:"medial_clusters,omitempty" yaml:"medial_clusters,omitempty"`
	CodaClusters     []string `json:"coda_clusters,omitempty" yaml:"coda_clusters,omitempty"`
	IllegalSequences string   `json:"illegal_sequences,omitempty" yaml:"illegal_sequences,omitempty"`

	StressPattern string               `json:"stress_pattern,omitempty" yaml:"stress_pattern,omitempty"`
	CustomStress  *CustomStressPattern `json:"custom_stress,omitempty" yaml:"custom_stress,omitempty"`

	Lexicon      string `json:"lexicon,omitempty" yaml:"lexicon,omitempty"`
	Affixes      string `json:"affixes,omitempty" yaml:"affixes,omitempty"`
	DerivedWords string `json:"derived_words,omitempty" yaml:"derived_words,omitempty"`

	WordOrder             string   `json:"word_order,omitempty" yaml:"word_order,omitempty"`
	OptionalPartsOfSpeech []string `json:"optional_parts_of_speech,omitempty" yaml:"optional_parts_of_speech,omitempty"`
	GrammarNotes          string   `json:"grammar_notes,omitempty" yaml:"grammar_notes,omitempty"`
}
