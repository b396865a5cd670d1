package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"espacios a guion", "Acme Corp", "acme-corp"},
		{"una palabra", "Tech", "tech"},
		{"puntuacion eliminada", "Apple, Inc.", "apple-inc"},
		{"espacios repetidos y bordes", "  Big   Blue  ", "big-blue"},
		{"guiones existentes", "testco-1700000000", "testco-1700000000"},
		{"guiones repetidos", "a -- b", "a-b"},
		{"acentos transliterados", "Café Ñandú", "cafe-nandu"},
		{"ampersand deletreado", "AT&T", "atandt"},
		{"simbolo deletreado", "R&D Labs", "randd-labs"},
		{"guion bajo eliminado", "snake_case", "snakecase"},
		{"ligadura", "Straße", "strasse"},
		{"digitos", "3M Company", "3m-company"},
		{"tabs y saltos", "New\tIndustry\n42", "new-industry-42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := slug.Make(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMake_Determinista(t *testing.T) {
	a, err := slug.Make("International Business Machines")
	require.NoError(t, err)
	b, err := slug.Make("International Business Machines")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMake_SinCaracteresValidos(t *testing.T) {
	for _, in := range []string{"", "   ", "!!!", "---", "日本語"} {
		_, err := slug.Make(in)
		assert.ErrorIs(t, err, slug.ErrEmpty, "entrada %q", in)
	}
}
