package nbt

import "strconv"

// normalizeFloat round-trips v through its 7-significant-digit decimal
// presentation, so that two assignments producing the same printed value
// also produce the same stored bits. This is a deliberate lossy coercion
// inherited from the source format and must be preserved for round-trip
// identity.
func normalizeFloat(v float32) float32 {
	s := strconv.FormatFloat(float64(v), 'g', 7, 32)
	out, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return v
	}
	return float32(out)
}

// normalizeDouble is normalizeFloat's 15-significant-digit counterpart.
func normalizeDouble(v float64) float64 {
	s := strconv.FormatFloat(v, 'g', 15, 64)
	out, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return out
}

// FloatTag holds an IEEE-754 single-precision float, normalized to 7
// significant decimal digits on every assignment.
type FloatTag struct {
	baseTag
	value float32
}

func NewFloat(name string, value float32) *FloatTag {
	return &FloatTag{baseTag: baseTag{name: name}, value: normalizeFloat(value)}
}

func (t *FloatTag) Type() TagType { return TagFloat }

func (t *FloatTag) Value() float32 { return t.value }

func (t *FloatTag) SetValue(v float32) { t.value = normalizeFloat(v) }

func (t *FloatTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *FloatTag) Path() string { return buildPath(t) }

func (t *FloatTag) Clone() Tag {
	return &FloatTag{baseTag: baseTag{name: t.name}, value: t.value}
}

func (t *FloatTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "Float", t.name, strconv.FormatFloat(float64(t.value), 'g', 7, 32))}
}

// DoubleTag holds an IEEE-754 double-precision float, normalized to 15
// significant decimal digits on every assignment.
type DoubleTag struct {
	baseTag
	value float64
}

func NewDouble(name string, value float64) *DoubleTag {
	return &DoubleTag{baseTag: baseTag{name: name}, value: normalizeDouble(value)}
}

func (t *DoubleTag) Type() TagType { return TagDouble }

func (t *DoubleTag) Value() float64 { return t.value }

func (t *DoubleTag) SetValue(v float64) { t.value = normalizeDouble(v) }

func (t *DoubleTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *DoubleTag) Path() string { return buildPath(t) }

func (t *DoubleTag) Clone() Tag {
	return &DoubleTag{baseTag: baseTag{name: t.name}, value: t.value}
}

func (t *DoubleTag) prettyLines(indent string, depth int) []string {
	return []string{prettyScalarLine(indent, depth, "Double", t.name, strconv.FormatFloat(t.value, 'g', 15, 64))}
}
