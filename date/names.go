package date

import "errors"

// ErrNoLocaleData is returned by the categorical entry points when the
// Dataset was constructed without a LocaleData collaborator.
var ErrNoLocaleData = errors.New("date: no locale data configured")

type nameOptions struct {
	abbreviated bool
	context     bool
}

// NameOption adjusts how Month and Weekday resolve their category key.
type NameOption func(*nameOptions)

// Abbreviated selects the short form ("Jan" instead of "January").
func Abbreviated() NameOption {
	return func(o *nameOptions) { o.abbreviated = true }
}

// WithContext selects the grammatical-context variant of the category when
// the locale defines one; otherwise the plain variant is used silently.
func WithContext() NameOption {
	return func(o *nameOptions) { o.context = true }
}

func applyNameOptions(opts []NameOption) nameOptions {
	var o nameOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Month returns a random month name from the locale data.
func (d *Dataset) Month(opts ...NameOption) (string, error) {
	o := applyNameOptions(opts)
	key := "wide"
	hasContext := d.hasMonthWideContext
	if o.abbreviated {
		key = "abbr"
		hasContext = d.hasMonthAbbrContext
	}
	if o.context && hasContext {
		key += "_context"
	}
	return d.randomArrayItem("month." + key)
}

// Weekday returns a random weekday name from the locale data.
func (d *Dataset) Weekday(opts ...NameOption) (string, error) {
	o := applyNameOptions(opts)
	key := "wide"
	hasContext := d.hasWeekdayWideContext
	if o.abbreviated {
		key = "abbr"
		hasContext = d.hasWeekdayAbbrContext
	}
	if o.context && hasContext {
		key += "_context"
	}
	return d.randomArrayItem("weekday." + key)
}

// TimezoneString returns a random IANA timezone name from the locale data.
func (d *Dataset) TimezoneString() (string, error) {
	return d.randomArrayItem("address.time_zone")
}

// randomArrayItem picks one entry of the named list, consuming exactly one
// draw from the source. Collaborator errors propagate unchanged.
func (d *Dataset) randomArrayItem(key string) (string, error) {
	if d.data == nil {
		return "", ErrNoLocaleData
	}
	list, err := d.data.GetArray(key)
	if err != nil {
		return "", err
	}
	idx := int(d.src.Float64() * float64(len(list)))
	if idx >= len(list) {
		idx = len(list) - 1
	}
	return list[idx], nil
}
