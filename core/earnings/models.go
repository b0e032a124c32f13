package earnings

import (
	"fmt"
	"time"

	"github.com/darasaonline/darasa/core"
)

// Payout statuses.
const (
	PayoutPending  = "pending"
	PayoutApproved = "approved"
	PayoutRejected = "rejected"
	PayoutPaid     = "paid"
)

// Snapshot is the server-computed earnings aggregate. The client derives
// nothing from it beyond the available balance.
type Snapshot struct {
	Total     float64     `json:"total"`
	ThisMonth float64     `json:"this_month"`
	Pending   float64     `json:"pending"`
	PaidOut   float64     `json:"paid_out"`
	Batches   []BatchRow  `json:"batches"`
	Payouts   []PayoutRow `json:"payouts"`
}

// Available is the only client-side recomputation over the snapshot.
func (s Snapshot) Available() float64 {
	return s.Total - s.Pending - s.PaidOut
}

// BatchRow is one per-batch earnings line.
type BatchRow struct {
	BatchID   string  `json:"batch_id"`
	BatchName string  `json:"batch_name"`
	Students  int     `json:"students"`
	Amount    float64 `json:"amount"`
}

// PayoutRow is one payout-history line.
type PayoutRow struct {
	ID          string     `json:"id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Method      string     `json:"method"`
	AdminNotes  string     `json:"admin_notes"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// PayoutRequest is a teacher-initiated withdrawal against accumulated
// earnings. Amount floor comes from config, not a hard-coded constant.
type PayoutRequest struct {
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Method     string  `json:"method" validate:"required"`
	AccountRef string  `json:"account_ref" validate:"required"`
}

func (pr *PayoutRequest) Validate(minAmount float64) error {
	pr.Method = core.CleanString(pr.Method, true /* lower */)
	pr.AccountRef = core.CleanString(pr.AccountRef)

	if err := core.Validate.Struct(pr); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	if pr.Amount < minAmount {
		msg := fmt.Sprintf("minimum payout amount is %.2f", minAmount)
		return core.NewValidationError(
			fmt.Errorf("amount below minimum"),
			core.FieldError{Field: "amount", Error: msg},
		)
	}
	return nil
}

// QueryFilter applies AND operation on available fields.
// Search does a case-insensitive match on PayoutRow.Method or PayoutRow.ID.
type QueryFilter struct {
	Search string
	Status string // all | pending | approved | rejected | paid
}

func (f QueryFilter) Apply(rows []PayoutRow) []PayoutRow {
	out := make([]PayoutRow, 0, len(rows))
	for _, r := range rows {
		if !core.ContainsFold(core.CleanString(f.Search), r.Method, r.ID) {
			continue
		}
		if !core.MatchesStatus(r.Status, f.Status) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func PayoutExportHeader() []string {
	return []string{"ID", "Amount", "Status", "Method", "Requested", "Processed"}
}

func PayoutExportRow(r PayoutRow) []string {
	processed := ""
	if r.ProcessedAt != nil {
		processed = r.ProcessedAt.Format("2006-01-02")
	}
	return []string{
		r.ID,
		fmt.Sprintf("%.2f", r.Amount),
		r.Status,
		r.Method,
		r.RequestedAt.Format("2006-01-02"),
		processed,
	}
}
