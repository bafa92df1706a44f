package prompt

import (
	"fmt"
	"strings"
)

// Status summarizes a result the way the form's status line shows it.
func Status(r Result) string {
	var s string
	if len(r.Missing) > 0 {
		s = fmt.Sprintf("Faltando: %s (recomendado preencher). Mesmo assim gerei.", strings.Join(r.Missing, ", "))
	} else {
		s = "Pronto. Agora copie e cole aqui no chat."
	}
	if n := len(r.Warnings); n > 0 {
		s += fmt.Sprintf(" Letra com %d aviso(s).", n)
	}
	return s
}
