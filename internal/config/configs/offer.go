package configs

import "channel-offers/internal/core/domain"

// Offer configures the closed sets channel offers are validated against.
// Values are comma separated lists, e.g. OFFER_OPERATOR_CODES=facl,fape.
type Offer struct {
	OperatorCodes []string `env:"OPERATOR_CODES" envSeparator:"," envDefault:"facl,faco,fape,famx,MP"`
	Statuses      []string `env:"STATUSES" envSeparator:"," envDefault:"active,inactive,deleted"`
}

// Vocabulary builds the domain vocabulary from the configured sets.
func (c Offer) Vocabulary() *domain.Vocabulary {
	return domain.NewVocabulary(c.OperatorCodes, c.Statuses)
}
