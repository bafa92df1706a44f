// Package prompt assembles the final instruction document from a form
// snapshot.
package prompt

import (
	"fmt"
	"strings"

	"github.com/makeasinger/briefgen/internal/artist"
	"github.com/makeasinger/briefgen/internal/lyrics"
	"github.com/makeasinger/briefgen/internal/model"
	"github.com/makeasinger/briefgen/internal/style"
)

// MissingGenre is the label reported when no genre was given.
const MissingGenre = "Gênero musical"

const notInformed = "(não informado)"

// Result is everything one generation produces.
type Result struct {
	Prompt         string
	Missing        []string
	Warnings       []string
	LyricsWarnings []lyrics.Warning
	DerivedName    string
	Style          string
	Input          model.FormInput
}

// Builder wires the pipeline stages. It keeps no per-call state.
type Builder struct {
	names     artist.NameGenerator
	validator *lyrics.Validator
	optimizer *style.Optimizer
}

// NewBuilder fills nil collaborators with the package defaults.
func NewBuilder(names artist.NameGenerator, validator *lyrics.Validator, optimizer *style.Optimizer) *Builder {
	if names == nil {
		names = artist.NewGenerator(nil)
	}
	if validator == nil {
		validator = lyrics.Default()
	}
	if optimizer == nil {
		optimizer = style.NewOptimizer()
	}
	return &Builder{names: names, validator: validator, optimizer: optimizer}
}

// Build normalizes form and renders the document.
func (b *Builder) Build(form model.FormInput) Result {
	f := form.Normalized()

	derived := ""
	if f.Reference != "" {
		derived = b.names.Similar(f.Reference)
	}

	res := Result{
		Missing:        missingFields(f),
		Warnings:       []string{},
		LyricsWarnings: []lyrics.Warning{},
		DerivedName:    derived,
		Style:          b.optimizer.Optimize(f, derived),
		Input:          f,
	}

	if f.Lyrics != "" {
		check := b.validator.Validate(f.Lyrics)
		res.LyricsWarnings = check.Warnings
		res.Warnings = check.Messages()
	}

	res.Prompt = render(f, derived, res.Style, res.Warnings)
	return res
}

// Style runs only the optimizer stage, deriving the artist name on the way.
func (b *Builder) Style(form model.FormInput) (descriptor, derived string) {
	f := form.Normalized()
	if f.Reference != "" {
		derived = b.names.Similar(f.Reference)
	}
	return b.optimizer.Optimize(f, derived), derived
}

func missingFields(f model.FormInput) []string {
	missing := []string{}
	if f.Genre == "" {
		missing = append(missing, MissingGenre)
	}
	return missing
}

func orNotInformed(s string) string {
	if s == "" {
		return notInformed
	}
	return s
}

func render(f model.FormInput, derived, styleLine string, warnings []string) string {
	var refLine string
	if f.Reference != "" {
		refLine = fmt.Sprintf(`Referência (não copiar): %s → use algo na vibe de "%s" (nome parecido, não igual).`, f.Reference, derived)
	} else {
		refLine = "Referência: (nenhuma) — crie um direcionamento estético sem citar artista real."
	}

	lyricsInstr := "LETRA: O usuário NÃO forneceu letra. Crie uma letra ORIGINAL completa, coerente e cantável, alinhada ao tema, emoção e estrutura."
	if f.Lyrics != "" {
		lyricsInstr = "LETRA: O usuário já forneceu letra. Use exatamente a letra abaixo (pode ajustar só pontuação/quebras se necessário para cantar melhor, mas SEM mudar o sentido)."
	}

	metatagsLine := "Não use metatags explícitas; apenas descreva estrutura de forma natural."
	if f.Metatags {
		metatagsLine = "Use metatags no formato [Intro], [Verse], [Pre-Chorus], [Chorus], [Bridge], [Outro] (conforme fizer sentido)."
	}

	hookLine := "Hook/frase central: (você deve criar uma)."
	if f.Hook != "" {
		hookLine = fmt.Sprintf(`Hook/frase central sugerida: "%s".`, f.Hook)
	}

	emotionLine := "Emoção principal: " + orNotInformed(f.EmotionMain)
	if f.EmotionSide != "" {
		emotionLine += " | Secundárias: " + f.EmotionSide
	}

	var sb strings.Builder
	sb.WriteString("Você é um especialista em composições para Suno AI.\n\n")

	sb.WriteString("TAREFA:\n")
	sb.WriteString("1) Crie a CANÇÃO completa (letra + orientação de melodia/arranjo).\n")
	sb.WriteString("2) Entregue um PROMPT FINAL para eu colar no Suno (campo Style + campo Lyrics), bem formatado.\n")
	sb.WriteString("3) Garanta coerência entre tema, emoção, estrutura e estética.\n\n")

	sb.WriteString("BRIEF (respostas do usuário):\n")
	bullet(&sb, "Idioma: "+LanguageLabel(f.Language, f.LanguageOther))
	bullet(&sb, "Gênero: "+orNotInformed(f.Genre))
	bullet(&sb, "Estilo/vibe: "+orNotInformed(f.Style))
	bullet(&sb, refLine)
	bullet(&sb, fmt.Sprintf("Voz: %s | Formação: %s", f.VoiceType, f.Formation))
	bullet(&sb, emotionLine)
	bullet(&sb, fmt.Sprintf("Tema: %s | POV: %s", orNotInformed(f.Theme), f.POV))
	bullet(&sb, fmt.Sprintf("Andamento/energia: %s | Atmosfera: %s", f.Tempo, orNotInformed(f.Mood)))
	bullet(&sb, "BPM alvo: "+orNotInformed(f.BPM))
	bullet(&sb, "Instrumentos principais: "+orNotInformed(f.InstrumentsMain))
	bullet(&sb, "Instrumentos secundários: "+orNotInformed(f.InstrumentsSide))
	bullet(&sb, "Estrutura desejada: "+orNotInformed(f.Structure))
	bullet(&sb, fmt.Sprintf("Refrão: %s", f.ChorusType))
	bullet(&sb, hookLine)
	bullet(&sb, labeled("Solo instrumental desejado", "Solo instrumental", f.Solo, "(não especificado)"))
	bullet(&sb, labeled("Obrigatórios", "Obrigatórios", f.MustInclude, "(nenhum)"))
	bullet(&sb, labeled("Evitar", "Evitar", f.Avoid, "(nenhum)"))
	bullet(&sb, labeled("Extras", "Extras", f.Extras, "(nenhum)"))
	sb.WriteString("\n")

	sb.WriteString("REGRAS DE SAÍDA:\n")
	bullet(&sb, metatagsLine)
	bullet(&sb, "O resultado deve vir em 2 blocos:")
	sb.WriteString(`  A) STYLE (um parágrafo objetivo com gênero, vibe, timbres, andamento sugerido, voz, e referências "parecidas").` + "\n")
	sb.WriteString("  B) LYRICS (letra final pronta para cantar, seguindo a estrutura).\n")
	bullet(&sb, "Se o usuário deixou letra pronta, use-a. Se não, crie.")
	bullet(&sb, `Não cite o nome do artista real diretamente no prompt final; use apenas a "referência similar" ou descrições.`)
	bullet(&sb, "Termos de instrumento, produção ou seção vão no STYLE ou em metatags, nunca no texto cantado.")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("STYLE SUGERIDO (nível %s, pode refinar):\n%s\n\n", f.StyleLevel, styleLine))

	sb.WriteString(lyricsInstr + "\n")

	if len(warnings) > 0 {
		sb.WriteString("\nAVISOS NA LETRA DO USUÁRIO:\n")
		for i, w := range warnings {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, w))
		}
		sb.WriteString("Observação: a letra contém termos que parecem instruções musicais ou de produção. " +
			"Não cante esses termos; converta-os em metatags ou leve-os para o STYLE, sem alterar o restante da letra.\n")
	}

	if f.Lyrics != "" {
		sb.WriteString("\nLETRA DO USUÁRIO:\n")
		sb.WriteString(f.Lyrics)
		sb.WriteString("\n")
	}

	sb.WriteString("\nAgora gere a composição completa e entregue STYLE + LYRICS prontos.")
	return sb.String()
}

func bullet(sb *strings.Builder, line string) {
	sb.WriteString("- ")
	sb.WriteString(line)
	sb.WriteString("\n")
}

// labeled renders "<label>: value." or "<emptyLabel>: placeholder.".
func labeled(label, emptyLabel, value, placeholder string) string {
	if value != "" {
		return fmt.Sprintf("%s: %s.", label, value)
	}
	return fmt.Sprintf("%s: %s.", emptyLabel, placeholder)
}
