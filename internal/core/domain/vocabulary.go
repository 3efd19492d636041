package domain

// Default operator codes accepted by the marketplace. Country operators use
// the lowercase two-letter prefix form, MP is the marketplace-wide operator.
var DefaultOperatorCodes = []string{"facl", "faco", "fape", "famx", "MP"}

// Default offer statuses.
var DefaultStatuses = []string{"active", "inactive", "deleted"}

// Vocabulary holds the closed sets of operator codes and statuses an offer
// is validated against. It is immutable once built and safe to share.
type Vocabulary struct {
	operatorCodes map[string]struct{}
	statuses      map[string]struct{}
}

// NewVocabulary builds a Vocabulary from the given operator codes and
// statuses. Membership checks are exact string matches.
func NewVocabulary(operatorCodes, statuses []string) *Vocabulary {
	return &Vocabulary{
		operatorCodes: toSet(operatorCodes),
		statuses:      toSet(statuses),
	}
}

// DefaultVocabulary returns a Vocabulary built from DefaultOperatorCodes and
// DefaultStatuses.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(DefaultOperatorCodes, DefaultStatuses)
}

// IsOperatorCode reports whether code belongs to the operator code set.
func (v *Vocabulary) IsOperatorCode(code string) bool {
	_, ok := v.operatorCodes[code]
	return ok
}

// IsStatus reports whether status belongs to the status set.
func (v *Vocabulary) IsStatus(status string) bool {
	_, ok := v.statuses[status]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
