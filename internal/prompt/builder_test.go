package prompt

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makeasinger/briefgen/internal/artist"
	"github.com/makeasinger/briefgen/internal/model"
)

// fixedName returns a predictable derived name.
type fixedName string

func (f fixedName) Similar(name string) string {
	if name == "" {
		return ""
	}
	return string(f)
}

func newTestBuilder() *Builder {
	return NewBuilder(fixedName("Anotta Luz"), nil, nil)
}

func TestBuild_MissingGenre(t *testing.T) {
	res := newTestBuilder().Build(model.FormInput{Genre: "   "})

	assert.Equal(t, []string{MissingGenre}, res.Missing)
	assert.Contains(t, res.Prompt, "- Gênero: (não informado)")
	assert.NotEmpty(t, res.Prompt)
}

func TestBuild_NoMissingWithGenre(t *testing.T) {
	res := newTestBuilder().Build(model.FormInput{Genre: "pop"})
	assert.Empty(t, res.Missing)
	assert.NotNil(t, res.Missing)
}

func TestBuild_LyricsWithForbiddenWordKeptVerbatim(t *testing.T) {
	lyrics := "[Verse]\nEu vou   embora\ncom drums no peito\n\n[Chorus]\nVolta pra mim"
	res := newTestBuilder().Build(model.FormInput{Genre: "pop", Lyrics: "\n" + lyrics + "\n\n"})

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "Linha 3")
	assert.Contains(t, res.Prompt, "LETRA DO USUÁRIO:\n"+lyrics+"\n")
	assert.Contains(t, res.Prompt, "AVISOS NA LETRA DO USUÁRIO:\n1. Linha 3:")
	assert.Contains(t, res.Prompt, "Use exatamente a letra abaixo")
}

func TestBuild_CleanLyricsHaveNoWarningBlock(t *testing.T) {
	res := newTestBuilder().Build(model.FormInput{Genre: "pop", Lyrics: "[Verse]\nla la la"})

	assert.Empty(t, res.Warnings)
	assert.NotContains(t, res.Prompt, "AVISOS")
	assert.Contains(t, res.Prompt, "LETRA DO USUÁRIO:\n[Verse]\nla la la\n")
}

func TestBuild_ReferenceScenario(t *testing.T) {
	b := NewBuilder(artist.NewSeededGenerator(3), nil, nil)
	res := b.Build(model.FormInput{Genre: "pop", Reference: "Anitta", Lyrics: ""})

	require.NotEmpty(t, res.DerivedName)
	assert.NotEqual(t, "Anitta", res.DerivedName)
	assert.Contains(t, res.Prompt, "Referência (não copiar): Anitta → use algo na vibe de \""+res.DerivedName+"\"")
	assert.Contains(t, res.Prompt, "Crie uma letra ORIGINAL completa")
	assert.NotContains(t, res.Prompt, "LETRA DO USUÁRIO")
	assert.Contains(t, res.Style, "inspired by "+res.DerivedName)
}

func TestBuild_NoReference(t *testing.T) {
	res := newTestBuilder().Build(model.FormInput{Genre: "rock"})

	assert.Empty(t, res.DerivedName)
	assert.Contains(t, res.Prompt, "Referência: (nenhuma)")
	assert.NotContains(t, res.Style, "inspired by")
}

func TestBuild_OptionalLinesUsePlaceholders(t *testing.T) {
	res := newTestBuilder().Build(model.FormInput{Genre: "rock"})

	for _, want := range []string{
		"- Solo instrumental: (não especificado).",
		"- Hook/frase central: (você deve criar uma).",
		"- Obrigatórios: (nenhum).",
		"- Evitar: (nenhum).",
		"- Extras: (nenhum).",
		"Não use metatags explícitas",
	} {
		assert.Contains(t, res.Prompt, want)
	}
}

func TestBuild_OptionalLinesWithValues(t *testing.T) {
	res := newTestBuilder().Build(model.FormInput{
		Genre:       "rock",
		Hook:        "  vem  comigo ",
		Solo:        "guitarra no final",
		MustInclude: "a palavra mar",
		Avoid:       "palavrões",
		Extras:      "fade no fim",
		Metatags:    true,
		EmotionMain: "saudade",
		EmotionSide: "esperança",
	})

	for _, want := range []string{
		`- Hook/frase central sugerida: "vem comigo".`,
		"- Solo instrumental desejado: guitarra no final.",
		"- Obrigatórios: a palavra mar.",
		"- Evitar: palavrões.",
		"- Extras: fade no fim.",
		"- Emoção principal: saudade | Secundárias: esperança",
		"Use metatags no formato [Intro]",
	} {
		assert.Contains(t, res.Prompt, want)
	}
}

func TestBuild_StyleBlockFollowsLevel(t *testing.T) {
	res := newTestBuilder().Build(model.FormInput{
		Genre:      "pop, rock",
		Tempo:      "Lento",
		StyleLevel: model.StyleLevelMinimal,
	})

	assert.Contains(t, res.Prompt, "STYLE SUGERIDO (nível minimal, pode refinar):\n"+res.Style+"\n")
	assert.Equal(t, model.StyleLevelMinimal, res.Input.StyleLevel)
}

func TestBuild_DeterministicWithFixedName(t *testing.T) {
	form := model.FormInput{Genre: "samba", Reference: "Cartola", Lyrics: "[Verse]\nAs rosas não falam"}
	b := newTestBuilder()
	assert.Equal(t, b.Build(form), b.Build(form))
}

func TestBuild_Concurrent(t *testing.T) {
	b := NewBuilder(nil, nil, nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := b.Build(model.FormInput{Genre: "pop", Reference: "Anitta"})
			assert.True(t, strings.HasSuffix(res.Prompt, "entregue STYLE + LYRICS prontos."))
		}()
	}
	wg.Wait()
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "Português (Brasil)", LanguageLabel(model.LanguagePTBR, ""))
	assert.Equal(t, "Misto (PT + EN)", LanguageLabel(model.LanguageMix, "ignored"))
	assert.Equal(t, "Italiano", LanguageLabel(model.LanguageOther, "Italiano"))
	assert.Equal(t, "Outro", LanguageLabel(model.LanguageOther, ""))
	assert.Equal(t, "Outro", LanguageLabel("", ""))
	assert.Equal(t, "fr", LanguageLabel("fr", ""))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Pronto. Agora copie e cole aqui no chat.", Status(Result{}))
	assert.Equal(t,
		"Faltando: Gênero musical (recomendado preencher). Mesmo assim gerei. Letra com 2 aviso(s).",
		Status(Result{Missing: []string{MissingGenre}, Warnings: []string{"a", "b"}}))
}
