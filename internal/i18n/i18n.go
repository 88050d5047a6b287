// Package i18n localizes the confirmation and error messages shown to the operator.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	MsgRecordCreated     = "RecordCreated"
	MsgRecordUpdated     = "RecordUpdated"
	MsgRecordDeleted     = "RecordDeleted"
	MsgRecordNotFound    = "RecordNotFound"
	MsgAllRecordsDeleted = "AllRecordsDeleted"
	MsgWrongPassword     = "WrongPassword"
	MsgTotalWeight       = "TotalWeight"
	MsgNoRecords         = "NoRecords"
	MsgReportExported    = "ReportExported"
	MsgCalculationResult = "CalculationResult"
	MsgDivisionByZero    = "DivisionByZero"
	MsgAllProductsLabel  = "AllProductsLabel"
)

//go:embed locales/*.json
var locales embed.FS

// Bundle holds every loaded message file. It is safe for concurrent use once built.
type Bundle struct {
	b *goi18n.Bundle
}

// NewBundle loads the embedded locale files with English as the fallback.
func NewBundle() (*Bundle, error) {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, name := range []string{"active.en.json", "active.pt.json"} {
		if _, err := b.LoadMessageFileFS(locales, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	return &Bundle{b: b}, nil
}

// Localizer picks the best matching language for langs (tags or Accept-Language values).
func (b *Bundle) Localizer(langs ...string) *Localizer {
	return &Localizer{l: goi18n.NewLocalizer(b.b, langs...)}
}

type Localizer struct {
	l *goi18n.Localizer
}

// T renders messageID with data. Unknown ids render as the id itself.
func (l *Localizer) T(messageID string, data map[string]interface{}) string {
	msg, err := l.l.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
