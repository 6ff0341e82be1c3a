package domain

import "fmt"

// DocumentKind names a family of source documents a ledger entry may point to.
// The reference is a lookup-only link; there is no database-enforced foreign
// key across document tables, so kinds are validated against this registry at
// write time.
type DocumentKind string

const (
	RefPurchaseInvoice DocumentKind = "purchase_invoices"
	RefPurchaseReturn  DocumentKind = "purchase_returns"
	RefSalesInvoice    DocumentKind = "sales_invoices"
	RefSalesReturn     DocumentKind = "sales_returns"
	RefPayrollRun      DocumentKind = "payroll_runs"
	RefManual          DocumentKind = "manual"
)

var knownDocumentKinds = map[DocumentKind]struct{}{
	RefPurchaseInvoice: {},
	RefPurchaseReturn:  {},
	RefSalesInvoice:    {},
	RefSalesReturn:     {},
	RefPayrollRun:      {},
	RefManual:          {},
}

// DocumentRef is a tagged reference to the document that originated a ledger entry.
type DocumentRef struct {
	Kind DocumentKind `json:"kind"`
	ID   int64        `json:"id"`
}

// Validate checks the ref against the registry of known kinds.
func (r DocumentRef) Validate() error {
	if _, ok := knownDocumentKinds[r.Kind]; !ok {
		return fmt.Errorf("unknown document reference kind %q", r.Kind)
	}
	if r.ID <= 0 {
		return fmt.Errorf("document reference id must be positive, got %d", r.ID)
	}
	return nil
}

// IsInvoiceDocument reports whether the ref points at an invoice table.
// Invoice-type entries carrying such a reference belong to the source document
// and cannot be deleted directly through the ledger API.
func (r DocumentRef) IsInvoiceDocument() bool {
	return r.Kind == RefPurchaseInvoice || r.Kind == RefSalesInvoice
}
