package model

// Language selector values
type Language string

const (
	LanguagePTBR  Language = "pt-BR"
	LanguagePTPT  Language = "pt-PT"
	LanguageEN    Language = "en"
	LanguageES    Language = "es"
	LanguageMix   Language = "mix"
	LanguageOther Language = "outro"
)

// Voice types
type VoiceType string

const (
	VoiceFemale       VoiceType = "Feminina"
	VoiceMale         VoiceType = "Masculina"
	VoiceDuet         VoiceType = "Dueto"
	VoiceChild        VoiceType = "Infantil"
	VoiceChoir        VoiceType = "Coral"
	VoiceAndrogynous  VoiceType = "Andrógina"
	VoiceInstrumental VoiceType = "Instrumental"
)

// Voice formations
type Formation string

const (
	FormationSolo  Formation = "Solo"
	FormationDuet  Formation = "Dueto"
	FormationTrio  Formation = "Trio"
	FormationBand  Formation = "Banda"
	FormationChoir Formation = "Coral"
)

// Tempo / energy
type Tempo string

const (
	TempoSlow     Tempo = "Lento"
	TempoMedium   Tempo = "Médio"
	TempoFast     Tempo = "Rápido"
	TempoVeryFast Tempo = "Muito rápido"
	TempoVariable Tempo = "Variável"
)

// Point of view
type POV string

const (
	POVFirstPerson  POV = "1ª pessoa (eu)"
	POVSecondPerson POV = "2ª pessoa (você)"
	POVThirdPerson  POV = "3ª pessoa (ele/ela)"
	POVPlural       POV = "1ª pessoa do plural (nós)"
)

// Chorus types
type ChorusType string

const (
	ChorusExplosive  ChorusType = "Explosivo"
	ChorusSoft       ChorusType = "Suave"
	ChorusRepetitive ChorusType = "Repetitivo"
	ChorusNarrative  ChorusType = "Narrativo"
)

// Style optimization levels
type StyleLevel string

const (
	StyleLevelMinimal   StyleLevel = "minimal"
	StyleLevelOptimized StyleLevel = "optimized"
	StyleLevelDetailed  StyleLevel = "detailed"
)

var ValidStyleLevels = []StyleLevel{
	StyleLevelMinimal, StyleLevelOptimized, StyleLevelDetailed,
}

// Valid reports whether l is one of the known levels.
func (l StyleLevel) Valid() bool {
	for _, v := range ValidStyleLevels {
		if l == v {
			return true
		}
	}
	return false
}
