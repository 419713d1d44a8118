package notify

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FileSafeName strips accents and replaces spaces with underscores, so
// "José Pérez" becomes "Jose_Perez". QR and chart image files are named this
// way, matching the historical naming of the distributed images.
func FileSafeName(name string) string {
	decomposed := norm.NFD.String(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ShortName returns "First_Surname" for a full name, the scheme the
// registration QR batch uses.
func ShortName(fullName string) string {
	parts := strings.Fields(fullName)
	first, surname := "Desconocido", "SinApellido"
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		surname = parts[1]
	}
	return FileSafeName(first + " " + surname)
}
