package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// SpecificationSeparator joins the chosen option names of a line, in group order.
const SpecificationSeparator = `\`

// MaxLineCount is the largest number of portions a single line may carry.
const MaxLineCount = 9999

// LineItem is one dish line of the order snapshot. It is embedded in the order and
// never persisted on its own.
type LineItem struct {
	name           string
	specifications string
	price          kernel.Money
	count          int
	imageURL       string
	total          kernel.Money
}

// NewLineItem builds a line from the resolved unit price. optionNames are joined with
// SpecificationSeparator.
func NewLineItem(name string, optionNames []string, price kernel.Money, count int, imageURL string) (LineItem, error) {
	return RestoreLineItem(name, strings.Join(optionNames, SpecificationSeparator), price, count, imageURL)
}

// RestoreLineItem rebuilds a line from its stored description.
func RestoreLineItem(name, specifications string, price kernel.Money, count int, imageURL string) (LineItem, error) {
	var nameErr, priceErr, countErr, totalErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("line name")
	}
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("line price", fmt.Errorf("%s is negative", price))
	}
	if count < 1 || count > MaxLineCount {
		countErr = errs.NewValueIsOutOfRangeError("line count", count, 1, MaxLineCount)
	}
	var total kernel.Money
	if priceErr == nil && countErr == nil {
		total, totalErr = price.Multiply(count)
	}
	if err := errors.Join(nameErr, priceErr, countErr, totalErr); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		name:           name,
		specifications: specifications,
		price:          price,
		count:          count,
		imageURL:       imageURL,
		total:          total,
	}, nil
}

func (l LineItem) Name() string { return l.name }

// Specifications is the human readable description of the chosen options.
func (l LineItem) Specifications() string { return l.specifications }

// Price is the unit price: base price plus the chosen deltas.
func (l LineItem) Price() kernel.Money { return l.price }

func (l LineItem) Count() int { return l.count }

func (l LineItem) ImageURL() string { return l.imageURL }

// Total is Price times Count.
func (l LineItem) Total() kernel.Money { return l.total }
