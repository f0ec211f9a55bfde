package classifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/heartmarshall/attention-backend/internal/domain"
)

// packageNumberPattern matches a tracking label, a delimiter run and an
// 8-40 character alphanumeric token. "hw box" is listed before "box" so the
// longer label wins when both could start at the same position.
var packageNumberPattern = regexp.MustCompile(
	`(?i)\b(?:hw\s*box|box|pkg|cylinder)[\s:#.\-]+([a-z0-9]{8,40})\b`,
)

// ExtractPackageNumber returns the uppercased tracking token found in body,
// or nil when no label/token pair is present. A nil result is expected and
// means the package cannot be matched against pickups.
func ExtractPackageNumber(body string) *string {
	m := packageNumberPattern.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	token := strings.ToUpper(m[1])
	return &token
}

// UnitExtractor finds which of two configured residence units a message is
// about.
type UnitExtractor struct {
	primary   unitPattern
	secondary unitPattern
}

type unitPattern struct {
	label domain.Unit
	re    *regexp.Regexp
}

// NewUnitExtractor compiles matchers for the two unit tokens. Each token
// also matches its hyphenated and spaced variants ("12A" matches "12-a",
// "unit 12 a", "#12A").
func NewUnitExtractor(primary, secondary string) (*UnitExtractor, error) {
	p, err := compileUnit(primary)
	if err != nil {
		return nil, fmt.Errorf("primary unit: %w", err)
	}
	s, err := compileUnit(secondary)
	if err != nil {
		return nil, fmt.Errorf("secondary unit: %w", err)
	}
	if p.label == s.label {
		return nil, fmt.Errorf("unit tokens must differ (both %q)", p.label)
	}
	return &UnitExtractor{primary: p, secondary: s}, nil
}

// Extract searches subject and body together. It returns UnitBoth when both
// units are mentioned, the single matching unit, or UnitUnknown for a
// building-wide message.
func (e *UnitExtractor) Extract(subject, body string) domain.Unit {
	text := strings.ToLower(subject + " " + body)

	hasPrimary := e.primary.re.MatchString(text)
	hasSecondary := e.secondary.re.MatchString(text)

	switch {
	case hasPrimary && hasSecondary:
		return domain.UnitBoth
	case hasPrimary:
		return e.primary.label
	case hasSecondary:
		return e.secondary.label
	default:
		return domain.UnitUnknown
	}
}

func compileUnit(token string) (unitPattern, error) {
	parts := splitUnitToken(token)
	if len(parts) == 0 {
		return unitPattern{}, fmt.Errorf("token %q has no letters or digits", token)
	}

	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(p))
	}
	expr := `(?:^|[^a-z0-9])` + strings.Join(quoted, `[-\s]?`) + `(?:[^a-z0-9]|$)`

	re, err := regexp.Compile(expr)
	if err != nil {
		return unitPattern{}, fmt.Errorf("compile %q: %w", token, err)
	}
	return unitPattern{label: domain.Unit(strings.ToUpper(strings.Join(parts, ""))), re: re}, nil
}

// splitUnitToken breaks "PH-2E" into ["PH", "2", "E"]: runs of letters and
// runs of digits, dropping separators.
func splitUnitToken(token string) []string {
	var parts []string
	var cur strings.Builder
	var curIsDigit bool

	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			if cur.Len() > 0 && !curIsDigit {
				flush()
			}
			curIsDigit = true
			cur.WriteRune(r)
		case unicode.IsLetter(r):
			if cur.Len() > 0 && curIsDigit {
				flush()
			}
			curIsDigit = false
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return parts
}
