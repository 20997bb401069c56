package party

import (
	"strconv"
	"strings"

	"encore.app/enrichment/model"
)

// Reported income is scaled before persistence, matching the CRM message.
const incomeMultiplier = 1.9

// Risk band labels from the provider mapped onto a numeric score.
var riskScores = map[string]float64{
	"BAIXISSIMO RISCO": 0.1,
	"BAIXO RISCO":      0.3,
	"MEDIO RISCO":      0.5,
	"ALTO RISCO":       0.7,
	"ALTISSIMO RISCO":  0.9,
}

// extractFinancial derives the financial summary stored alongside the profile:
// adjusted income, parsed credit score, numeric risk score, and the purchasing
// power block as-is. Returns nil when the profile has no economic section.
func extractFinancial(doc model.Document) map[string]any {
	econ, ok := doc.Section("DadosEconomicos")
	if !ok {
		return nil
	}

	summary := map[string]any{}

	if renda, ok := econ.Str("renda"); ok {
		if value, err := strconv.ParseFloat(strings.ReplaceAll(renda, ",", "."), 64); err == nil {
			summary["renda_ajustada"] = value * incomeMultiplier
		}
	}

	if score, ok := econ.Section("score"); ok {
		if raw, ok := score.Str("scoreCSBA"); ok {
			if credit, err := strconv.Atoi(raw); err == nil {
				summary["score_credito"] = credit
			}
		}
		if band, ok := score.Str("scoreCSBAFaixaRisco"); ok {
			if risk, ok := riskScores[band]; ok {
				summary["score_risco"] = risk
			}
		}
	}

	if poder, ok := econ.Section("poderAquisitivo"); ok {
		summary["poder_aquisitivo"] = map[string]any(poder)
	}
	if mosaic, ok := econ["serasaMosaic"]; ok {
		summary["mosaic"] = mosaic
	}

	if len(summary) == 0 {
		return nil
	}
	return summary
}

// normalizedPayload is the provider document plus the derived financial
// summary, serialized for the snapshot row.
func normalizedPayload(doc model.Document) model.Document {
	fin := extractFinancial(doc)
	if fin == nil {
		return doc
	}
	out := make(model.Document, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	out["resumoFinanceiro"] = fin
	return out
}
