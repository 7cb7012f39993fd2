package cv

// ParsedProfile is the structured result of parsing one resume. Optional
// fields are nil when nothing was found; Name is always set and holds
// NameNotFound as a sentinel.
type ParsedProfile struct {
	Name        string   `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Gender      *string  `json:"gender"`
	Nationality *string  `json:"nationality"`
	Address     *string  `json:"address"`
	Summary     *string  `json:"summary"`
	Education   *string  `json:"education"`
	Experience  *string  `json:"experience"`
	LinkedIn    *string  `json:"linkedin"`
	GitHub      *string  `json:"github"`
	Skills      []string `json:"skills"`
}

// Str dereferences an optional field, mapping nil to "".
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
