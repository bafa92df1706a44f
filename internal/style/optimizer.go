// Package style condenses form vocabulary into the compact style descriptor
// pasted into the generator's Style field.
package style

import (
	"strings"

	"github.com/makeasinger/briefgen/internal/model"
)

// Defaults used when a field is empty.
const (
	DefaultBPM         = "~130"
	DefaultEmotion     = "melodic"
	DefaultMood        = "vibe"
	DefaultInstruments = "standard instruments"
	fixedDescriptors   = "melodic, catchy hooks"
)

// Optimizer is stateless and safe for concurrent use.
type Optimizer struct {
	Genres      *Table
	Emotions    *Table
	Voices      *Table
	Formations  *Table
	Tempos      *Table
	Instruments *Table
}

// NewOptimizer uses the package tables.
func NewOptimizer() *Optimizer {
	return &Optimizer{
		Genres:      Genres,
		Emotions:    Emotions,
		Voices:      Voices,
		Formations:  Formations,
		Tempos:      Tempos,
		Instruments: Instruments,
	}
}

// Optimize builds the descriptor for the form's style level. derived is the
// stand-in artist name, possibly empty.
func (o *Optimizer) Optimize(form model.FormInput, derived string) string {
	f := form.Normalized()

	genre := o.Genres.MapList(f.Genre)
	voice := o.Voices.Map(string(f.VoiceType))
	tempo := o.Tempos.Map(string(f.Tempo))
	emotions := o.emotions(f)
	bpm := bpmPhrase(f.BPM)
	ref := ""
	if derived != "" {
		ref = "inspired by " + derived
	}

	switch f.StyleLevel {
	case model.StyleLevelMinimal:
		return join(genre, voice, emotions, tempo, bpm, ref)
	case model.StyleLevelDetailed:
		return join(genre, voice, o.Formations.Map(string(f.Formation)), emotions, mood(f.Mood),
			f.Style, fixedDescriptors, o.instruments(f), tempo, bpm, ref)
	default:
		return join(genre, voice, o.Formations.Map(string(f.Formation)), emotions, mood(f.Mood),
			fixedDescriptors, o.instruments(f), tempo, bpm, ref)
	}
}

func (o *Optimizer) emotions(f model.FormInput) string {
	out := join(o.Emotions.MapList(f.EmotionMain), o.Emotions.MapList(f.EmotionSide))
	if out == "" {
		return DefaultEmotion
	}
	return out
}

func (o *Optimizer) instruments(f model.FormInput) string {
	out := join(o.Instruments.MapList(f.InstrumentsMain), o.Instruments.MapList(f.InstrumentsSide))
	if out == "" {
		return DefaultInstruments
	}
	return out
}

func mood(m string) string {
	if m == "" {
		return DefaultMood
	}
	return strings.ToLower(m)
}

// bpmPhrase accepts "120", "120 bpm" or "~120"; empty falls back to DefaultBPM.
func bpmPhrase(raw string) string {
	v := strings.TrimSpace(raw)
	if len(v) >= 3 && strings.EqualFold(v[len(v)-3:], "bpm") {
		v = strings.TrimSpace(v[:len(v)-3])
	}
	if v == "" {
		v = DefaultBPM
	}
	return v + " BPM"
}

func join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
