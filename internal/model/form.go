package model

import (
	"strings"

	"github.com/makeasinger/briefgen/internal/textutil"
)

// DefaultStructure is the structure suggested on a fresh form.
const DefaultStructure = "Intro, Verso 1, Pré-refrão, Refrão, Verso 2, Pré-refrão, Refrão, Ponte, Refrão final, Outro"

// FormInput is one snapshot of every form field. Free-text fields are
// normalized before use; enum fields pass through as supplied.
type FormInput struct {
	Language        Language   `json:"language" yaml:"language" validate:"omitempty,max=32"`
	LanguageOther   string     `json:"languageOther" yaml:"languageOther" validate:"max=64"`
	Genre           string     `json:"genre" yaml:"genre" validate:"max=200"`
	Style           string     `json:"style" yaml:"style" validate:"max=500"`
	Reference       string     `json:"reference" yaml:"reference" validate:"max=200"`
	VoiceType       VoiceType  `json:"voiceType" yaml:"voiceType" validate:"max=64"`
	Formation       Formation  `json:"formation" yaml:"formation" validate:"max=64"`
	EmotionMain     string     `json:"emotionMain" yaml:"emotionMain" validate:"max=200"`
	EmotionSide     string     `json:"emotionSide" yaml:"emotionSide" validate:"max=200"`
	Theme           string     `json:"theme" yaml:"theme" validate:"max=500"`
	POV             POV        `json:"pov" yaml:"pov" validate:"max=64"`
	Tempo           Tempo      `json:"tempo" yaml:"tempo" validate:"max=64"`
	Mood            string     `json:"mood" yaml:"mood" validate:"max=200"`
	InstrumentsMain string     `json:"instrumentsMain" yaml:"instrumentsMain" validate:"max=300"`
	InstrumentsSide string     `json:"instrumentsSide" yaml:"instrumentsSide" validate:"max=300"`
	Structure       string     `json:"structure" yaml:"structure" validate:"max=500"`
	ChorusType      ChorusType `json:"chorusType" yaml:"chorusType" validate:"max=64"`
	Hook            string     `json:"hook" yaml:"hook" validate:"max=300"`
	Solo            string     `json:"solo" yaml:"solo" validate:"max=300"`
	MustInclude     string     `json:"mustInclude" yaml:"mustInclude" validate:"max=500"`
	Avoid           string     `json:"avoid" yaml:"avoid" validate:"max=500"`
	Extras          string     `json:"extras" yaml:"extras" validate:"max=1000"`
	Lyrics          string     `json:"lyrics" yaml:"lyrics" validate:"max=20000"`
	Metatags        bool       `json:"metatags" yaml:"metatags"`
	BPM             string     `json:"bpm" yaml:"bpm" validate:"max=16"`
	StyleLevel      StyleLevel `json:"styleLevel" yaml:"styleLevel" validate:"omitempty,oneof=minimal optimized detailed"`
}

// Normalized returns a copy with every free-text field normalized. Lyrics are
// only trimmed so their line structure survives. An empty or unknown style
// level becomes StyleLevelOptimized.
func (f FormInput) Normalized() FormInput {
	out := f
	out.LanguageOther = textutil.Normalize(f.LanguageOther)
	out.Genre = textutil.Normalize(f.Genre)
	out.Style = textutil.Normalize(f.Style)
	out.Reference = textutil.Normalize(f.Reference)
	out.EmotionMain = textutil.Normalize(f.EmotionMain)
	out.EmotionSide = textutil.Normalize(f.EmotionSide)
	out.Theme = textutil.Normalize(f.Theme)
	out.Mood = textutil.Normalize(f.Mood)
	out.InstrumentsMain = textutil.Normalize(f.InstrumentsMain)
	out.InstrumentsSide = textutil.Normalize(f.InstrumentsSide)
	out.Structure = textutil.Normalize(f.Structure)
	out.Hook = textutil.Normalize(f.Hook)
	out.Solo = textutil.Normalize(f.Solo)
	out.MustInclude = textutil.Normalize(f.MustInclude)
	out.Avoid = textutil.Normalize(f.Avoid)
	out.Extras = textutil.Normalize(f.Extras)
	out.BPM = textutil.Normalize(f.BPM)
	out.Lyrics = strings.TrimSpace(f.Lyrics)
	if !out.StyleLevel.Valid() {
		out.StyleLevel = StyleLevelOptimized
	}
	return out
}

// DefaultFormInput holds the values a reset form starts from.
func DefaultFormInput() FormInput {
	return FormInput{
		Language:   LanguagePTBR,
		VoiceType:  VoiceFemale,
		Formation:  FormationSolo,
		Tempo:      TempoMedium,
		ChorusType: ChorusExplosive,
		POV:        POVFirstPerson,
		Structure:  DefaultStructure,
		Metatags:   true,
		StyleLevel: StyleLevelOptimized,
	}
}
