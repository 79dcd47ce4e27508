package structs

// Condition is a field-name/value equality predicate over a configuration.
// It is plain data so config schemas stay serializable and admin-editable;
// a single interpreter (Matches) evaluates it everywhere it appears
// (field visibility, recipe matching).
type Condition struct {
	Field  string `json:"field" bun:"field"`
	Equals string `json:"equals" bun:"equals"`
}

// Matches reports whether the configuration satisfies the condition.
// A nil condition matches everything.
func (c *Condition) Matches(config map[string]string) bool {
	if c == nil {
		return true
	}
	return config[c.Field] == c.Equals
}
