package lyrics

// Vocabulary drives the scanner. Terms are matched case- and
// accent-insensitively on whole words; multi-word terms are allowed.
type Vocabulary struct {
	// Production lists instrument, mixing and section names that belong in the
	// style field. Every hit on a line is reported.
	Production []string
	// Descriptive lists stage-direction words. Only the first hit per line is
	// reported, and only on lines of more than three words without quotes.
	Descriptive []string
	// InstrumentalMarker opens a section that must not contain sung text.
	InstrumentalMarker string
}

// DefaultVocabulary covers Portuguese and English.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Production: []string{
			// instruments
			"guitarra", "guitar", "violão", "bateria", "drums", "bass", "piano",
			"teclado", "keyboard", "sintetizador", "synth", "saxofone", "sax",
			"violino", "violin", "808",
			// production and mixing
			"reverb", "delay", "autotune", "auto-tune", "mixagem", "mixing",
			"fade out", "fade in", "beat drop", "bpm",
			// sections
			"refrão", "chorus", "pré-refrão", "pre-chorus", "verso", "verse",
			"ponte", "bridge", "intro", "outro", "solo",
		},
		Descriptive: []string{
			"sussurrando", "sussurrado", "gritando", "falado", "suavemente",
			"lentamente", "whispering", "whispered", "shouting", "spoken",
			"softly", "slowly", "aplausos", "applause",
		},
		InstrumentalMarker: "[Instrumental]",
	}
}
