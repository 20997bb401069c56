package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/enrichment/model"
)

func sampleProfile() model.Document {
	return model.Document{
		"DadosBasicos": map[string]any{
			"nome":           "Maria Silva Santos",
			"cpf":            "12345678901",
			"dataNascimento": "15/03/1985",
			"sexo":           "F",
			"nomeMae":        "Ana Silva",
		},
		"DadosEconomicos": map[string]any{
			"renda": "3500,00",
			"poderAquisitivo": map[string]any{
				"poderAquisitivoDescricao": "MEDIO",
				"faixaPoderAquisitivo":     "De R$ 1630 até R$ 4082",
			},
			"score": map[string]any{
				"scoreCSBA":           "720",
				"scoreCSBAFaixaRisco": "BAIXO RISCO",
			},
		},
		"emails": []any{
			map[string]any{"email": "maria@example.com", "prioridade": "1"},
		},
		"telefones": []any{
			map[string]any{"telefone": "11999887766", "tipo": "CELULAR", "whatsapp": "SIM"},
		},
		"enderecos": []any{
			map[string]any{
				"logradouro": "Rua das Flores", "logradouroNumero": "123",
				"bairro": "Jardins", "cidade": "São Paulo", "uf": "SP", "cep": "01410000",
			},
		},
		"empresas": []any{
			map[string]any{"cnpj": "11222333000144", "relacao": "SOCIO"},
		},
	}
}

func TestComposeSamePerson(t *testing.T) {
	profiles := []Profile{{Doc: sampleProfile(), Channel: model.ChannelPhone}}

	msg := Compose("+5511999887766", "maria@example.com", profiles, true)

	assert.True(t, strings.HasPrefix(msg, "📞📧 Telefone e e-mail da mesma pessoa\n\n"))
	assert.NotContains(t, msg, "PESSOA 1")
	assert.NotContains(t, msg, "PESSOAS DIFERENTES")
}

func TestComposeDistinctPersons(t *testing.T) {
	profiles := []Profile{
		{Doc: sampleProfile(), Channel: model.ChannelPhone},
		{
			Doc:     model.Document{"DadosBasicos": map[string]any{"nome": "João Souza", "cpf": "98765432100"}},
			Channel: model.ChannelEmail,
		},
	}

	msg := Compose("+5511999887766", "maria@example.com", profiles, false)

	assert.True(t, strings.HasPrefix(msg, "⚠️ Telefone e e-mail relacionados a PESSOAS DIFERENTES!\n\n"))
	assert.Contains(t, msg, "═══ PESSOA 1 (Telefone: +5511999887766) ═══")
	assert.Contains(t, msg, "═══ PESSOA 2 (Email: maria@example.com) ═══")
	assert.Contains(t, msg, "Maria Silva Santos")
	assert.Contains(t, msg, "João Souza")
}

func TestComposeLabelsFollowProfileChannel(t *testing.T) {
	// When only the email-channel profile leads, its section must not be
	// labeled with the phone number.
	profiles := []Profile{
		{Doc: sampleProfile(), Channel: model.ChannelEmail},
		{
			Doc:     model.Document{"DadosBasicos": map[string]any{"nome": "João Souza"}},
			Channel: model.ChannelPhone,
		},
	}

	msg := Compose("+5511999887766", "maria@example.com", profiles, false)

	assert.Contains(t, msg, "═══ PESSOA 1 (Email: maria@example.com) ═══")
	assert.Contains(t, msg, "═══ PESSOA 2 (Telefone: +5511999887766) ═══")
}

func TestComposeSingleProfileWithoutConfirmation(t *testing.T) {
	// A single-channel resolution never claims the contacts belong to the
	// same person and never warns about a mismatch.
	profiles := []Profile{{Doc: sampleProfile(), Channel: model.ChannelEmail}}

	msg := Compose("+5511999887766", "maria@example.com", profiles, false)

	assert.NotContains(t, msg, "mesma pessoa")
	assert.NotContains(t, msg, "PESSOAS DIFERENTES")
	assert.NotContains(t, msg, "PESSOA 1")
	assert.True(t, strings.HasPrefix(msg, "✅ DADOS PESSOAIS\n"))
}

func TestComposeDeterministic(t *testing.T) {
	profiles := []Profile{{Doc: sampleProfile(), Channel: model.ChannelPhone}}
	assert.Equal(t,
		Compose("+5511999887766", "maria@example.com", profiles, true),
		Compose("+5511999887766", "maria@example.com", profiles, true),
	)
}

func TestFormatProfileSections(t *testing.T) {
	msg := FormatProfile(sampleProfile())

	assert.Contains(t, msg, "✅ DADOS PESSOAIS\n")
	assert.Contains(t, msg, "Nome: Maria Silva Santos\n")
	assert.Contains(t, msg, "CPF: 12345678901\n")
	assert.Contains(t, msg, "Mãe: Ana Silva\n")
	assert.Contains(t, msg, "💰 DADOS FINANCEIROS\n")
	assert.Contains(t, msg, "Score de Crédito: 720\n")
	assert.Contains(t, msg, "Risco: BAIXO RISCO\n")
	assert.Contains(t, msg, "📧 EMAILS\n1. maria@example.com (1)\n")
	assert.Contains(t, msg, "📱 TELEFONES\n1. 11999887766 - CELULAR ✅\n")
	assert.Contains(t, msg, "🏠 ENDEREÇOS\n1. Rua das Flores 123, Jardins - São Paulo/SP - CEP: 01410000\n")
	assert.Contains(t, msg, "🏢 EMPRESAS\n1. CNPJ: 11222333000144 - SOCIO\n")
}

func TestFormatProfileScalesIncome(t *testing.T) {
	msg := FormatProfile(sampleProfile())

	// 3500.00 * 1.9
	assert.Contains(t, msg, "Renda: R$ 6650.00\n")
	// Range values scale too: 1630*1.9 and 4082*1.9.
	assert.Contains(t, msg, "Faixa de Renda: De R$ 3097.00 até R$ 7755.80\n")
}

func TestFormatProfileUnparseableIncomePassesThrough(t *testing.T) {
	doc := model.Document{
		"DadosEconomicos": map[string]any{"renda": "sigilosa"},
	}
	msg := FormatProfile(doc)
	assert.Contains(t, msg, "Renda: R$ sigilosa\n")
}

func TestFormatProfileOmitsEmptySections(t *testing.T) {
	doc := model.Document{
		"DadosBasicos": map[string]any{"nome": "Maria"},
	}
	msg := FormatProfile(doc)

	assert.Contains(t, msg, "✅ DADOS PESSOAIS\n")
	assert.NotContains(t, msg, "DADOS FINANCEIROS")
	assert.NotContains(t, msg, "EMAILS")
	assert.NotContains(t, msg, "TELEFONES")
	assert.NotContains(t, msg, "ENDEREÇOS")
	assert.NotContains(t, msg, "EMPRESAS")
}

func TestFormatProfileTruncatesLists(t *testing.T) {
	emails := make([]any, 5)
	for i := range emails {
		emails[i] = map[string]any{"email": "x@example.com"}
	}
	doc := model.Document{"emails": emails}

	msg := FormatProfile(doc)

	assert.Contains(t, msg, "3. x@example.com")
	assert.NotContains(t, msg, "4. x@example.com")
}
