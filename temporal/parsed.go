package temporal

import "github.com/chronon-dev/chronon/chronerr"

// Parsed is a mutable bag of resolved field values implementing Accessor.
// The text boundary fills one while parsing; value types assemble instances
// from it through their FromAccessor constructors.
//
// Parsed performs base-range validation on Put but no cross-field validation;
// that happens when a value type is assembled.
type Parsed struct {
	fields map[Field]int64
}

// NewParsed creates an empty Parsed.
func NewParsed() *Parsed {
	return &Parsed{fields: make(map[Field]int64)}
}

// Put stores a field value after checking it against the field's base range.
func (p *Parsed) Put(field Field, value int64) error {
	if !field.IsValid() {
		return chronerr.UnsupportedField("Parsed.Put", field)
	}
	if err := field.Range().Check("Parsed.Put", field, value); err != nil {
		return err
	}
	p.fields[field] = value
	return nil
}

// Has reports whether a value for the field has been stored.
func (p *Parsed) Has(field Field) bool {
	_, ok := p.fields[field]
	return ok
}

// IsFieldSupported implements Accessor; a Parsed supports exactly the fields
// it holds.
func (p *Parsed) IsFieldSupported(field Field) bool {
	return p.Has(field)
}

// Range implements Accessor using the field's base range.
func (p *Parsed) Range(field Field) (ValueRange, error) {
	if !p.Has(field) {
		return ValueRange{}, chronerr.UnsupportedField("Parsed.Range", field)
	}
	return field.Range(), nil
}

// Get implements Accessor.
func (p *Parsed) Get(field Field) (int, error) {
	v, err := p.GetLong(field)
	if err != nil {
		return 0, err
	}
	return field.Range().CheckInt("Parsed.Get", field, v)
}

// GetLong implements Accessor.
func (p *Parsed) GetLong(field Field) (int64, error) {
	v, ok := p.fields[field]
	if !ok {
		return 0, chronerr.UnsupportedField("Parsed.GetLong", field)
	}
	return v, nil
}

// Query implements Accessor. A Parsed answers only the chronology query;
// higher-level captures are resolved by the assembling value type.
func (p *Parsed) Query(query Query) (any, bool) {
	if query == QueryChronology {
		return ChronologyISO, true
	}
	return nil, false
}
