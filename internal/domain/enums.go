package domain

import "fmt"

// Dialect is the label of a supported regional dialect. The label itself is
// what gets sent to the translation provider and persisted with history.
type Dialect string

const (
	DialectHokkaido  Dialect = "北海道弁"
	DialectTohoku    Dialect = "東北弁（津軽弁）"
	DialectKansai    Dialect = "関西弁"
	DialectHiroshima Dialect = "広島弁"
	DialectHakata    Dialect = "博多弁"
	DialectOkinawa   Dialect = "沖縄弁"
	DialectSaga      Dialect = "佐賀弁"
)

// DefaultDialect is selected when a session starts.
const DefaultDialect = DialectKansai

// Dialects lists every supported dialect in display order.
func Dialects() []Dialect {
	return []Dialect{
		DialectHokkaido,
		DialectTohoku,
		DialectKansai,
		DialectHiroshima,
		DialectHakata,
		DialectOkinawa,
		DialectSaga,
	}
}

func (d Dialect) String() string { return string(d) }

func (d Dialect) IsValid() bool {
	switch d {
	case DialectHokkaido, DialectTohoku, DialectKansai, DialectHiroshima,
		DialectHakata, DialectOkinawa, DialectSaga:
		return true
	}
	return false
}

var dialectAliases = map[string]Dialect{
	"hokkaido":  DialectHokkaido,
	"tohoku":    DialectTohoku,
	"tsugaru":   DialectTohoku,
	"kansai":    DialectKansai,
	"hiroshima": DialectHiroshima,
	"hakata":    DialectHakata,
	"okinawa":   DialectOkinawa,
	"saga":      DialectSaga,
}

// ParseDialect accepts either the exact label or a romanized alias
// ("kansai", "tsugaru", ...).
func ParseDialect(s string) (Dialect, error) {
	d := Dialect(NormalizeTitle(s))
	if d.IsValid() {
		return d, nil
	}
	if alias, ok := dialectAliases[NormalizeText(s)]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("unknown dialect %q: %w", s, ErrValidation)
}

// Direction tells whether text goes from standard Japanese to a dialect or back.
type Direction string

const (
	DirectionStandardToDialect Direction = "standard-to-dialect"
	DirectionDialectToStandard Direction = "dialect-to-standard"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionStandardToDialect, DirectionDialectToStandard:
		return true
	}
	return false
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == DirectionDialectToStandard {
		return DirectionStandardToDialect
	}
	return DirectionDialectToStandard
}

// ParseDirection parses the wire form of a direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(NormalizeText(s))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown direction %q: %w", s, ErrValidation)
	}
	return d, nil
}

// MessageRole identifies the author of a transcript message.
type MessageRole string

const (
	MessageRoleUser MessageRole = "user"
	MessageRoleBot  MessageRole = "bot"
)

func (r MessageRole) String() string { return string(r) }

func (r MessageRole) IsValid() bool {
	switch r {
	case MessageRoleUser, MessageRoleBot:
		return true
	}
	return false
}
