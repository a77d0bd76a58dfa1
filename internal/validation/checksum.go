package validation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ninetySeven = decimal.NewFromInt(97)
	one         = decimal.NewFromInt(1)
)

// ChecksumValid runs the ISO 13616 mod-97 check. It is informational only:
// records are accepted on format alone, so a failing checksum is reported as
// a warning by callers.
func ChecksumValid(iban string) bool {
	s := strings.ToUpper(StripIBAN(iban))
	if len(s) < 5 {
		return false
	}

	rearranged := s[4:] + s[:4]
	var digits strings.Builder
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			digits.WriteString(strconv.Itoa(int(r-'A') + 10))
		default:
			return false
		}
	}

	n, err := decimal.NewFromString(digits.String())
	if err != nil {
		return false
	}
	return n.Mod(ninetySeven).Equal(one)
}
