package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Casa com Piscina", "casa-com-piscina"},
		{"Apartamento no Setor Bueno, 3 Quartos", "apartamento-no-setor-bueno-3-quartos"},
		{"Chácara à Venda — Região Sul", "chacara-a-venda-regiao-sul"},
		{"  Cobertura!!!  ", "cobertura"},
		{"São João", "sao-joao"},
		{"REF-2024/015", "ref-2024-015"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}
