// Package message renders enriched profiles into the Portuguese text block
// posted back to the CRM lead thread. Everything here is pure: identical
// inputs always produce an identical message.
package message

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"encore.app/enrichment/model"
)

// Reported income is scaled before display.
const incomeMultiplier = 1.9

const (
	maxEmails    = 3
	maxPhones    = 3
	maxAddresses = 2
	maxCompanies = 3
)

var currencyValue = regexp.MustCompile(`R\$\s*(\d+)`)

// Profile is one enriched document tagged with the lookup channel that
// produced it, so conflict sections stay correctly labeled even when a
// profile was dropped along the way.
type Profile struct {
	Doc     model.Document
	Channel string
}

// Compose builds the full CRM message. With samePerson the single profile is
// prefixed with a confirmation line; a lone profile without that confirmation
// renders as one plain section. Only genuinely conflicting profiles get the
// mismatch warning, each under a header naming its source channel.
func Compose(phone, email string, profiles []Profile, samePerson bool) string {
	if len(profiles) == 0 {
		return ""
	}

	if samePerson {
		return "📞📧 Telefone e e-mail da mesma pessoa\n\n" + FormatProfile(profiles[0].Doc)
	}
	if len(profiles) == 1 {
		return FormatProfile(profiles[0].Doc)
	}

	var sb strings.Builder
	sb.WriteString("⚠️ Telefone e e-mail relacionados a PESSOAS DIFERENTES!\n\n")
	for i, p := range profiles {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("═══ PESSOA %d (%s) ═══\n", i+1, channelContact(p.Channel, phone, email)))
		sb.WriteString(FormatProfile(p.Doc))
	}
	return sb.String()
}

func channelContact(channel, phone, email string) string {
	if channel == model.ChannelEmail {
		return "Email: " + email
	}
	return "Telefone: " + phone
}

// FormatProfile renders one profile document section by section. Sections
// with no data are omitted entirely except the personal-data header, which
// always opens the message.
func FormatProfile(doc model.Document) string {
	var sb strings.Builder

	sb.WriteString("✅ DADOS PESSOAIS\n")
	if basics, ok := doc.Section("DadosBasicos"); ok {
		writeField(&sb, "Nome", basics, "nome")
		writeField(&sb, "CPF", basics, "cpf")
		writeField(&sb, "Data Nascimento", basics, "dataNascimento")
		writeField(&sb, "Sexo", basics, "sexo")
		writeField(&sb, "Mãe", basics, "nomeMae")
	}

	if econ, ok := doc.Section("DadosEconomicos"); ok {
		sb.WriteString("\n💰 DADOS FINANCEIROS\n")
		if renda, ok := econ.Str("renda"); ok {
			sb.WriteString("Renda: " + formatIncome(renda) + "\n")
		}
		if poder, ok := econ.Section("poderAquisitivo"); ok {
			writeField(&sb, "Poder Aquisitivo", poder, "poderAquisitivoDescricao")
			if faixa, ok := poder.Str("faixaPoderAquisitivo"); ok {
				sb.WriteString("Faixa de Renda: " + scaleRangeValues(faixa) + "\n")
			}
		}
		if score, ok := econ.Section("score"); ok {
			writeField(&sb, "Score de Crédito", score, "scoreCSBA")
			writeField(&sb, "Risco", score, "scoreCSBAFaixaRisco")
		}
	}

	if emails := doc.Items("emails"); len(emails) > 0 {
		sb.WriteString("\n📧 EMAILS\n")
		for i, email := range emails[:min(len(emails), maxEmails)] {
			addr, ok := email.Str("email")
			if !ok {
				continue
			}
			priority := strOr(email, "prioridade", "N/A")
			sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, addr, priority))
		}
	}

	if phones := doc.Items("telefones"); len(phones) > 0 {
		sb.WriteString("\n📱 TELEFONES\n")
		for i, phone := range phones[:min(len(phones), maxPhones)] {
			number, ok := phone.Str("telefone")
			if !ok {
				continue
			}
			kind := strOr(phone, "tipo", "N/A")
			whatsIcon := ""
			if whats, _ := phone.Str("whatsapp"); whats == "SIM" {
				whatsIcon = "✅"
			}
			sb.WriteString(fmt.Sprintf("%d. %s - %s %s\n", i+1, number, kind, whatsIcon))
		}
	}

	if addresses := doc.Items("enderecos"); len(addresses) > 0 {
		sb.WriteString("\n🏠 ENDEREÇOS\n")
		for i, addr := range addresses[:min(len(addresses), maxAddresses)] {
			sb.WriteString(fmt.Sprintf("%d. %s %s, %s - %s/%s - CEP: %s\n",
				i+1,
				strOr(addr, "logradouro", ""),
				strOr(addr, "logradouroNumero", ""),
				strOr(addr, "bairro", ""),
				strOr(addr, "cidade", ""),
				strOr(addr, "uf", ""),
				strOr(addr, "cep", ""),
			))
		}
	}

	if companies := doc.Items("empresas"); len(companies) > 0 {
		sb.WriteString("\n🏢 EMPRESAS\n")
		for i, company := range companies[:min(len(companies), maxCompanies)] {
			sb.WriteString(fmt.Sprintf("%d. CNPJ: %s - %s\n",
				i+1,
				strOr(company, "cnpj", ""),
				strOr(company, "relacao", "SOCIO"),
			))
		}
	}

	return sb.String()
}

// formatIncome scales a decimal income string. The provider uses a comma
// decimal separator; unparseable values pass through unscaled.
func formatIncome(renda string) string {
	value, err := strconv.ParseFloat(strings.ReplaceAll(renda, ",", "."), 64)
	if err != nil {
		return "R$ " + renda
	}
	return fmt.Sprintf("R$ %.2f", value*incomeMultiplier)
}

// scaleRangeValues multiplies each currency amount inside a range string
// like "De R$ 1630 até R$ 4082".
func scaleRangeValues(rangeStr string) string {
	return currencyValue.ReplaceAllStringFunc(rangeStr, func(match string) string {
		digits := currencyValue.FindStringSubmatch(match)[1]
		value, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return match
		}
		return fmt.Sprintf("R$ %.2f", value*incomeMultiplier)
	})
}

func writeField(sb *strings.Builder, label string, doc model.Document, key string) {
	if value, ok := doc.Str(key); ok && value != "" {
		sb.WriteString(label + ": " + value + "\n")
	}
}

func strOr(doc model.Document, key, fallback string) string {
	if value, ok := doc.Str(key); ok && value != "" {
		return value
	}
	return fallback
}
