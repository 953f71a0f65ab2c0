package leave

type Type string

const (
	TypeFullDay Type = "FULL_DAY"
	TypePartial Type = "PARTIAL"
)

func (t Type) IsValid() bool {
	return t == TypeFullDay || t == TypePartial
}

// WindowsOverlap tests two HH:mm wall-clock windows on the same day.
// Half-open semantics: touching boundaries do not overlap. HH:mm
// strings compare correctly as strings.
func WindowsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}
