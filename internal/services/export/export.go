// Package export renders a technique as shareable plain text
package export

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
)

const (
	fallbackName        = "Sin Nombre"
	fallbackForce       = "Ninguna"
	fallbackDescription = "Sin descripción."
	noEffects           = "Ningún efecto añadido."

	// DefaultSlug names exports of unnamed techniques
	DefaultSlug = "tecnica-rpg"
)

// Document is a rendered technique
type Document struct {
	Text     string
	Slug     string
	FileName string
}

// Render produces the text export of a technique.
// Returns errors.FailedPrecondition when no power level is chosen.
func Render(t *technique.Technique) (*Document, error) {
	if t == nil {
		return nil, errors.InvalidArgument("technique is required")
	}
	if !t.HasLevel() {
		return nil, errors.FailedPrecondition("choose a power level before exporting")
	}

	slug := Slug(t.Name)
	return &Document{
		Text:     Text(t),
		Slug:     slug,
		FileName: slug + ".txt",
	}, nil
}

// Text renders the technique without checking its level
func Text(t *technique.Technique) string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- TÉCNICA: %s ---\n\n", orDefault(t.Name, fallbackName))
	fmt.Fprintf(&b, "Nivel: %s\n", t.Level)
	fmt.Fprintf(&b, "Fuerza: %s\n", orDefault(string(t.Force), fallbackForce))
	fmt.Fprintf(&b, "Coste de Resistencia: %d\n\n", t.ResistanceCost)
	fmt.Fprintf(&b, "PC Gastados: %d / %d\n\n", engine.TotalCost(t.Effects), engine.BudgetFor(t.Level))
	fmt.Fprintf(&b, "Descripción:\n%s\n\n", orDefault(t.Description, fallbackDescription))
	b.WriteString("--- EFECTOS ---\n")

	if len(t.Effects) == 0 {
		b.WriteString(noEffects)
	}
	for i, inst := range t.Effects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(EffectLine(inst))
	}

	return strings.TrimSpace(b.String())
}

// EffectLine renders one instance: name, chosen options and signed cost
func EffectLine(inst technique.EffectInstance) string {
	details := make([]string, 0, len(inst.SelectedOptions))
	for _, so := range inst.SelectedOptions {
		if d := optionDetail(so); d != "" {
			details = append(details, d)
		}
	}

	line := "- " + inst.EffectName
	if len(details) > 0 {
		line += " (" + strings.Join(details, ", ") + ")"
	}
	return line + ": " + SignedCost(inst.FinalCost)
}

// SignedCost formats a cost with an explicit sign for non-negative values
func SignedCost(cost int) string {
	if cost >= 0 {
		return fmt.Sprintf("+%d PC", cost)
	}
	return fmt.Sprintf("%d PC", cost)
}

// optionDetail shows booleans by their name without the price suffix and
// selects by their chosen label
func optionDetail(so technique.SelectedOption) string {
	if so.Value == technique.BooleanOn {
		name, _, _ := strings.Cut(so.Name, " (")
		return name
	}
	return so.Value
}

// Slug turns a technique name into an ASCII file name stem: accents are
// stripped, letters lower-cased and words joined with "-"
func Slug(name string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		stripped = name
	}

	words := strings.FieldsFunc(strings.ToLower(stripped), func(r rune) bool {
		return !((r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) || r == '-')
	})
	slug := strings.Trim(strings.Join(words, "-"), "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
