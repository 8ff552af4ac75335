// Package order normalizes drink orders and phrases them as the
// "Order summary:" chat messages that chat entries render specially.
package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// MessagePrefix starts every order summary chat message.
const MessagePrefix = "Order summary: "

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidExtras = errors.New("extras must be a string or a list of strings")
)

var validate = validator.New()

// RawOrder is an order as captured from a conversation. Extras may be a
// comma separated string, a list of strings, or nil.
type RawOrder struct {
	DrinkType string `json:"drinkType"`
	Size      string `json:"size"`
	Milk      string `json:"milk"`
	Extras    any    `json:"extras"`
	Name      string `json:"name"`
}

// Order is a normalized order.
type Order struct {
	DrinkType string   `json:"drinkType" validate:"required"`
	Size      string   `json:"size" validate:"required"`
	Milk      string   `json:"milk" validate:"required"`
	Extras    []string `json:"extras"`
	Name      string   `json:"name" validate:"required"`
}

// Normalize trims every field, requires drinkType, size, milk and name,
// and splits extras on commas, dropping blanks and case-insensitive
// duplicates while keeping the first spelling.
func Normalize(raw RawOrder) (Order, error) {
	extras, err := normalizeExtras(raw.Extras)
	if err != nil {
		return Order{}, err
	}

	o := Order{
		DrinkType: strings.TrimSpace(raw.DrinkType),
		Size:      strings.TrimSpace(raw.Size),
		Milk:      strings.TrimSpace(raw.Milk),
		Extras:    extras,
		Name:      strings.TrimSpace(raw.Name),
	}

	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
				return fe.Field()
			})
			return Order{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fields, ", "))
		}
		return Order{}, fmt.Errorf("failed to validate order: %w", err)
	}
	return o, nil
}

func normalizeExtras(extras any) ([]string, error) {
	var candidates []string
	switch v := extras.(type) {
	case nil:
		return []string{}, nil
	case string:
		candidates = strings.Split(v, ",")
	case []string:
		for _, item := range v {
			candidates = append(candidates, strings.Split(item, ",")...)
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				candidates = append(candidates, strings.Split(s, ",")...)
			} else {
				candidates = append(candidates, fmt.Sprint(item))
			}
		}
	default:
		return nil, ErrInvalidExtras
	}

	trimmed := lo.Compact(lo.Map(candidates, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	return lo.UniqBy(trimmed, strings.ToLower), nil
}

// BuildSummary phrases o as a single pickup sentence.
func BuildSummary(brand string, o Order) string {
	extras := "no extras"
	if len(o.Extras) > 0 {
		extras = "extras: " + strings.Join(o.Extras, ", ")
	}

	milk := strings.TrimSpace(o.Milk)
	var milkPhrase string
	switch {
	case milk == "":
		milkPhrase = "with house milk"
	case strings.HasSuffix(strings.ToLower(milk), "milk"):
		milkPhrase = "with " + milk
	default:
		milkPhrase = "with " + milk + " milk"
	}

	return fmt.Sprintf("%s order for %s: %s %s %s, %s. Ready for pickup under %s.",
		brand, o.Name, o.Size, o.DrinkType, milkPhrase, extras, o.Name)
}

// Message wraps a summary as a chat message text.
func Message(summary string) string {
	return MessagePrefix + summary
}
