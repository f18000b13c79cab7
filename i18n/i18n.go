package i18n

import (
	"context"

	"golang.org/x/text/language"
)

const DefaultLang = "pt"

type ctxKey struct{}

var supported = []language.Tag{language.BrazilianPortuguese, language.English}

var matcher = language.NewMatcher(supported)

var messages = map[string]map[string]string{
	"pt": {
		"title":                   "Gestão de Cartões de Crédito",
		"footer":                  "Sistema de uso pessoal e familiar. Sem necessidade de login.",
		"purchase_date":           "Data da Compra",
		"buyer":                   "Quem comprou?",
		"card":                    "Cartão Utilizado",
		"amount":                  "Valor total (R$)",
		"installment_toggle":      "A compra é parcelada?",
		"installment_count":       "Número de parcelas",
		"description":             "Descrição da compra",
		"description_placeholder": "Descreva os detalhes da compra aqui...",
		"select_buyer":            "Selecione um Comprador",
		"select_card":             "Selecione um Cartão",
		"update":                  "Atualizar",
		"submit":                  "Salvar na Planilha",
		"submitting":              "Registrando no banco de dados...",
		"words":                   "Extenso:",
		"cash_banner":             "Compra à vista no Cartão: %s | R$ %s",
		"installment_banner":      "Parcelamento no Cartão: %s | %dx de R$ %s",
		"success":                 "Compra registrada com sucesso!",
		"amount_must_be_positive": "O valor deve ser maior que zero!",
		"required":                "Obrigatório",
		"must_be_positive":        "O valor deve ser maior que zero!",
		"out_of_range":            "Fora do intervalo permitido",
		"too_long":                "Texto muito longo",
		"invalid_option":          "Opção inválida",
		"invalid_number":          "Número inválido",
		"invalid_date":            "Data inválida",
		"busy":                    "Já existe um envio em andamento.",
		"validation_failed":       "Verifique os campos destacados.",
		"reset":                   "Limpar",
		"credential_error":        "Credenciais indisponíveis: %s",
		"connection_error":        "Erro de acesso à planilha: %s",
		"write_error":             "Erro ao salvar: %s",
		"unexpected_error":        "Erro inesperado: %s",
	},
	"en": {
		"title":                   "Credit Card Expenses",
		"footer":                  "Personal and family use. No login required.",
		"purchase_date":           "Purchase date",
		"buyer":                   "Who bought it?",
		"card":                    "Card used",
		"amount":                  "Total amount (R$)",
		"installment_toggle":      "Paid in installments?",
		"installment_count":       "Number of installments",
		"description":             "Description",
		"description_placeholder": "Describe the purchase...",
		"select_buyer":            "Select a buyer",
		"select_card":             "Select a card",
		"update":                  "Update",
		"submit":                  "Save to spreadsheet",
		"submitting":              "Saving...",
		"words":                   "In words:",
		"cash_banner":             "Single payment on card: %s | R$ %s",
		"installment_banner":      "Installments on card: %s | %dx of R$ %s",
		"success":                 "Purchase recorded!",
		"amount_must_be_positive": "The amount must be greater than zero!",
		"required":                "Required",
		"must_be_positive":        "The amount must be greater than zero!",
		"out_of_range":            "Out of range",
		"too_long":                "Too long",
		"invalid_option":          "Invalid option",
		"invalid_number":          "Invalid number",
		"invalid_date":            "Invalid date",
		"busy":                    "A submission is already in progress.",
		"validation_failed":       "Check the highlighted fields.",
		"reset":                   "Clear",
		"credential_error":        "Credentials unavailable: %s",
		"connection_error":        "Cannot reach the spreadsheet: %s",
		"write_error":             "Could not save: %s",
		"unexpected_error":        "Unexpected error: %s",
	},
}

// T translates code for lang, falling back to Portuguese and then to the code itself.
func T(lang, code string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := messages[DefaultLang][code]; ok {
		return s
	}
	return code
}

// DetectLanguage picks "pt" or "en" from an Accept-Language header.
func DetectLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	if supported[idx] == language.English {
		return "en"
	}
	return DefaultLang
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

func LangFromContext(ctx context.Context) string {
	if l, ok := ctx.Value(ctxKey{}).(string); ok && l != "" {
		return l
	}
	return DefaultLang
}
