package cart

import (
	"regexp"
	"strings"
)

// Form carries the checkout fields as entered. Card details are checked
// locally and then discarded; they are never part of the order payload.
type Form struct {
	FullName         string
	DeliveryAddress  string
	Phone            string
	Email            string
	DeliveryDate     string // yyyy-mm-dd
	DeliveryInterval string
	Comment          string
	Subscribe        bool

	CardNumber string
	CardHolder string
	CardExpiry string
	CardCVC    string
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3}$`)
)

func (f Form) contactComplete() bool {
	for _, v := range []string{f.FullName, f.DeliveryAddress, f.Phone, f.Email} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// cardPresent requires all four card fields; the holder name has no
// format check beyond being non-blank.
func (f Form) cardPresent() bool {
	return strings.TrimSpace(f.CardNumber) != "" &&
		strings.TrimSpace(f.CardHolder) != "" &&
		strings.TrimSpace(f.CardExpiry) != "" &&
		strings.TrimSpace(f.CardCVC) != ""
}

func validCardNumber(v string) bool {
	return cardNumberPattern.MatchString(strings.ReplaceAll(strings.TrimSpace(v), " ", ""))
}

func validCardExpiry(v string) bool {
	return cardExpiryPattern.MatchString(strings.TrimSpace(v))
}

func validCardCVC(v string) bool {
	return cardCVCPattern.MatchString(strings.TrimSpace(v))
}
