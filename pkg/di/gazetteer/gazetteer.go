package gazetteer_di

import (
	"github.com/lintang-b-s/osm-gazetteer/pkg/di/config"
	"github.com/lintang-b-s/osm-gazetteer/pkg/gazetteer"

	"go.uber.org/zap"
)

// New returns an assembler rendering text for LOCALE with the locale aware formatter.
func New(log *zap.Logger, cfg *config.Config) *gazetteer.Assembler {
	assembler := gazetteer.NewAssembler(log.Named("assembler"), gazetteer.FilterNameTags, gazetteer.NewLocaleFormatter())
	if cfg.Locale == "" {
		return assembler
	}
	return assembler.ForLang(cfg.Locale)
}
