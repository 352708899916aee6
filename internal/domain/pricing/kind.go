package pricing

import "strings"

// DocumentKind identifies which document screen a line item belongs to.
// All kinds share one computation graph; they differ only in the fields
// they declare.
type DocumentKind string

const (
	KindPurchase  DocumentKind = "purchase"
	KindDraft     DocumentKind = "draft"
	KindQuotation DocumentKind = "quotation"
)

// ParseDocumentKind normalizes a document kind name
func ParseDocumentKind(name string) (DocumentKind, error) {
	k := DocumentKind(strings.ToLower(strings.TrimSpace(name)))
	if !k.IsValid() {
		return "", newFieldError(CodeUnknownDocumentKind, "kind", "unknown document kind %q", name)
	}
	return k, nil
}

// IsValid checks if the kind is a known DocumentKind
func (k DocumentKind) IsValid() bool {
	switch k {
	case KindPurchase, KindDraft, KindQuotation:
		return true
	}
	return false
}

// String returns the string representation of DocumentKind
func (k DocumentKind) String() string {
	return string(k)
}

// HasMargin reports whether the kind carries a profit margin input and
// therefore a derived selling price. Only purchases do.
func (k DocumentKind) HasMargin() bool {
	return k == KindPurchase
}

// EditableFields returns the fields a line item of this kind accepts
func (k DocumentKind) EditableFields() []Field {
	fields := []Field{FieldQuantity, FieldUnitCost, FieldDiscountPercent}
	if k.HasMargin() {
		fields = append(fields, FieldProfitMargin)
	}
	return fields
}

// Accepts reports whether the field can be edited on this kind
func (k DocumentKind) Accepts(f Field) bool {
	if f == FieldProfitMargin {
		return k.HasMargin()
	}
	return f.IsValid()
}
