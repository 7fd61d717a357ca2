// Package validate holds the per-entity input checks and the financial
// total reconciliation applied before anything is persisted.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"grocerly/internal/errors"
	"grocerly/internal/model"
	"grocerly/internal/sanitize"
)

// Field bounds. Rates and totals are currency amounts; quantities are
// whole units.
const (
	MaxItemNameLen = 200
	MaxCategoryLen = 100
	MaxImageURLLen = 2000
	MaxItemIDLen   = 50
	MaxRate        = 1_000_000
	MaxQuantity    = 10_000
	MaxOrderItems  = 100
	MinPhoneLen    = 7
	MaxPhoneLen    = 20
	MinAddressLen  = 5
	MaxAddressLen  = 1000
)

// totalTolerance is the largest client/server disagreement on a derived
// total that is kept as submitted. Anything larger is silently replaced
// with the recomputed value; client-side float arithmetic is unreliable
// and the server is the source of truth for money.
var totalTolerance = decimal.NewFromFloat(0.01)

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

// ItemInput is a catalog item payload after binding, before persistence.
type ItemInput struct {
	Name     string
	Rate     float64
	ImageURL string
	Category string
}

// Item checks an item create/update payload and returns the sanitized
// copy to persist.
func Item(in ItemInput) (ItemInput, error) {
	in.Name = sanitize.Clean(in.Name, MaxItemNameLen)
	if in.Name == "" {
		return in, errors.NewInvalidFormat("item name is required")
	}
	if in.Rate <= 0 || in.Rate > MaxRate {
		return in, errors.NewOutOfRange(fmt.Sprintf("rate must be greater than 0 and at most %d", MaxRate))
	}
	if len([]rune(in.ImageURL)) > MaxImageURLLen {
		return in, errors.NewOutOfRange(fmt.Sprintf("image_url must be at most %d characters", MaxImageURLLen))
	}
	if !validImageURL(in.ImageURL) {
		return in, errors.NewInvalidFormat("image_url must start with http://, https:// or data:image/")
	}
	in.Category = sanitize.Clean(in.Category, MaxCategoryLen)
	if in.Category == "" {
		return in, errors.NewInvalidFormat("category is required")
	}
	return in, nil
}

func validImageURL(url string) bool {
	return strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "data:image/")
}

// LineItems validates order/cart lines and reconciles each line total.
// A submitted total within a cent of round(rate*quantity, 2) is kept;
// anything further off is replaced, never rejected.
func LineItems(items []model.OrderItem) ([]model.OrderItem, error) {
	out := make([]model.OrderItem, 0, len(items))
	for i, item := range items {
		if item.ItemID == "" || len([]rune(item.ItemID)) > MaxItemIDLen {
			return nil, errors.NewInvalidFormat(fmt.Sprintf("items[%d]: item_id must be 1-%d characters", i, MaxItemIDLen))
		}
		item.ItemName = sanitize.Clean(item.ItemName, MaxItemNameLen)
		if item.ItemName == "" {
			return nil, errors.NewInvalidFormat(fmt.Sprintf("items[%d]: item_name is required", i))
		}
		if item.Rate < 0 || item.Rate > MaxRate {
			return nil, errors.NewOutOfRange(fmt.Sprintf("items[%d]: rate must be between 0 and %d", i, MaxRate))
		}
		if item.Quantity <= 0 || item.Quantity > MaxQuantity {
			return nil, errors.NewOutOfRange(fmt.Sprintf("items[%d]: quantity must be between 1 and %d", i, MaxQuantity))
		}
		if item.Total < 0 {
			return nil, errors.NewOutOfRange(fmt.Sprintf("items[%d]: total must not be negative", i))
		}
		item.Total = reconcile(lineTotal(item.Rate, item.Quantity), item.Total)
		out = append(out, item)
	}
	return out, nil
}

// OrderItems validates an order's lines (1-100 of them) and returns the
// corrected lines plus the reconciled grand total.
func OrderItems(items []model.OrderItem, grandTotal float64) ([]model.OrderItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, errors.NewInvalidFormat("order must contain at least one item")
	}
	if len(items) > MaxOrderItems {
		return nil, 0, errors.NewOutOfRange(fmt.Sprintf("order must contain at most %d items", MaxOrderItems))
	}
	corrected, err := LineItems(items)
	if err != nil {
		return nil, 0, err
	}
	sum := decimal.Zero
	for _, item := range corrected {
		sum = sum.Add(decimal.NewFromFloat(item.Total))
	}
	return corrected, reconcile(sum.Round(2), grandTotal), nil
}

// Phone sanitizes and checks a phone number: 7-20 characters of digits,
// spaces, and the +-() set.
func Phone(phone string) (string, error) {
	phone = sanitize.Clean(phone, 0)
	if n := len([]rune(phone)); n < MinPhoneLen || n > MaxPhoneLen {
		return "", errors.NewOutOfRange(fmt.Sprintf("phone_number must be %d-%d characters", MinPhoneLen, MaxPhoneLen))
	}
	if !phonePattern.MatchString(phone) {
		return "", errors.NewInvalidFormat("phone_number may only contain digits, spaces and +-()")
	}
	return phone, nil
}

// Address sanitizes and checks a delivery address (5-1000 characters).
func Address(address string) (string, error) {
	address = sanitize.Clean(address, MaxAddressLen)
	if len([]rune(address)) < MinAddressLen {
		return "", errors.NewOutOfRange(fmt.Sprintf("home_address must be %d-%d characters", MinAddressLen, MaxAddressLen))
	}
	return address, nil
}

// CategoryName sanitizes and checks a category name.
func CategoryName(name string) (string, error) {
	name = sanitize.Clean(name, MaxCategoryLen)
	if name == "" {
		return "", errors.NewInvalidFormat("category name is required")
	}
	return name, nil
}

// lineTotal computes round(rate*quantity, 2) in decimal space.
func lineTotal(rate float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// reconcile keeps the submitted value when it is within a cent of the
// recomputed one and substitutes the recomputed value otherwise.
func reconcile(want decimal.Decimal, submitted float64) float64 {
	if decimal.NewFromFloat(submitted).Sub(want).Abs().GreaterThan(totalTolerance) {
		return want.InexactFloat64()
	}
	return submitted
}
